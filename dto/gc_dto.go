package dto

// ValidatePinRequest is the PIN-only GC login: the project is found by
// searching for the outstanding PIN.
type ValidatePinRequest struct {
	Pin string `json:"pin" binding:"required"`
}

// GcLoginRequest is the stricter variant where the caller already knows
// which project it expects.
type GcLoginRequest struct {
	Pin string `json:"pin" binding:"required"`
}

// PinResponse is returned to the office when issuing or peeking at a
// project's current PIN.
type PinResponse struct {
	ProjectID   string `json:"projectId"`
	ProjectName string `json:"projectName"`
	Pin         string `json:"pin"`
	PinUsed     bool   `json:"pinUsed"`
}

// ValidatePinResponse is returned on a successful GC login. NewPin is the
// freshly rotated PIN the operator hands to the GC out-of-band for their
// next visit.
type ValidatePinResponse struct {
	Success     bool   `json:"success"`
	ProjectID   string `json:"projectId"`
	ProjectName string `json:"projectName"`
	NewPin      string `json:"newPin"`
}

// GcProjectDashboard is the read-only view a GC sees after PIN login.
//
// Hard invariant: no dollar figures. Nothing named or meaning
// cost/rate/bill/amount/revenue/profit may ever be added here.
type GcProjectDashboard struct {
	ProjectID     string `json:"projectId"`
	ProjectName   string `json:"projectName"`
	ProjectStatus string `json:"projectStatus"`

	TotalHours     float64 `json:"totalHours"`
	WorkDays       int     `json:"workDays"`
	InstallerCount int     `json:"installerCount"`
	TimeLogCount   int     `json:"timeLogCount"`

	TagCounts        map[string]int `json:"tagCounts"`
	MaterialLines    int            `json:"materialLines"`
	MaterialQuantity float64        `json:"materialQuantity"`

	Narrative string `json:"narrative,omitempty"`
}
