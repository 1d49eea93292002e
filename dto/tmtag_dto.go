package dto

// CreateTMTagRequest represents the request payload for creating a T&M tag.
// Totals are not accepted from the caller; the billing engine computes them
// from the referenced records.
type CreateTMTagRequest struct {
	ProjectID   string   `json:"projectId" binding:"required"`
	TagNumber   string   `json:"tagNumber" binding:"required"`
	PeriodStart string   `json:"periodStart" binding:"required"` // "2006-01-02"
	PeriodEnd   string   `json:"periodEnd" binding:"required"`
	TimeLogIDs  []string `json:"timeLogIds"`
	MaterialIDs []string `json:"materialIds"`
	ExpenseIDs  []string `json:"expenseIds"`
	ForemanName string   `json:"foremanName"`
}

// UpdateTMTagRequest represents the request payload for editing a draft or
// submitted tag
type UpdateTMTagRequest struct {
	TagNumber   string   `json:"tagNumber" binding:"required"`
	PeriodStart string   `json:"periodStart" binding:"required"`
	PeriodEnd   string   `json:"periodEnd" binding:"required"`
	TimeLogIDs  []string `json:"timeLogIds"`
	MaterialIDs []string `json:"materialIds"`
	ExpenseIDs  []string `json:"expenseIds"`
	ForemanName string   `json:"foremanName"`
	GcSignature string   `json:"gcSignature"`
}

// UpdateTagStatusRequest moves a tag through its workflow
type UpdateTagStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft submitted accepted rejected"`
}
