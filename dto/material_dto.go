package dto

// CreateMaterialRequest represents the request payload for a material purchase.
// MarkupPercent is a whole-number percentage (20 means 20%).
type CreateMaterialRequest struct {
	ProjectID     string  `json:"projectId" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Quantity      float64 `json:"quantity" binding:"required,gt=0"`
	Unit          string  `json:"unit"`
	UnitCost      float64 `json:"unitCost" binding:"gte=0"`
	Total         float64 `json:"total" binding:"gte=0"`
	MarkupPercent float64 `json:"markupPercent" binding:"gte=0"`
	Date          string  `json:"date"` // "2006-01-02"
}

// UpdateMaterialRequest represents the request payload for editing a material
type UpdateMaterialRequest struct {
	Description   string  `json:"description" binding:"required"`
	Quantity      float64 `json:"quantity" binding:"required,gt=0"`
	Unit          string  `json:"unit"`
	UnitCost      float64 `json:"unitCost" binding:"gte=0"`
	Total         float64 `json:"total" binding:"gte=0"`
	MarkupPercent float64 `json:"markupPercent" binding:"gte=0"`
	Date          string  `json:"date"`
}

// CreateExpenseRequest represents the request payload for a project expense
type CreateExpenseRequest struct {
	ProjectID   string  `json:"projectId" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

// UpdateExpenseRequest represents the request payload for editing an expense
type UpdateExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}
