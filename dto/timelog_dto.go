package dto

// CreateTimeLogRequest represents the request payload for logging hours
type CreateTimeLogRequest struct {
	Date             string   `json:"date" binding:"required"` // "2006-01-02"
	InstallerID      string   `json:"installerId" binding:"required"`
	ProjectID        string   `json:"projectId" binding:"required"`
	Hours            float64  `json:"hours" binding:"required,gt=0"`
	BillRateOverride *float64 `json:"billRateOverride" binding:"omitempty,gt=0"`
	Notes            string   `json:"notes"`
}

// UpdateTimeLogRequest represents the request payload for editing a time log
type UpdateTimeLogRequest struct {
	Date             string   `json:"date" binding:"required"`
	Hours            float64  `json:"hours" binding:"required,gt=0"`
	BillRateOverride *float64 `json:"billRateOverride" binding:"omitempty,gt=0"`
	Notes            string   `json:"notes"`
}

// TimeLogFilter represents filter criteria for time logs
type TimeLogFilter struct {
	ProjectID   string
	InstallerID string
	From        string // "2006-01-02", inclusive
	To          string // "2006-01-02", inclusive
}
