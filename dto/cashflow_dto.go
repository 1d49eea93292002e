package dto

// CreateCashflowRequest represents the request payload for a monthly forecast
type CreateCashflowRequest struct {
	Month           string  `json:"month" binding:"required"` // "2006-01"
	ExpectedInflow  float64 `json:"expectedInflow" binding:"gte=0"`
	ExpectedOutflow float64 `json:"expectedOutflow" binding:"gte=0"`
	OpeningBalance  float64 `json:"openingBalance"`
	Notes           string  `json:"notes"`
}

// UpdateCashflowRequest represents the request payload for editing a forecast
type UpdateCashflowRequest struct {
	ExpectedInflow  float64 `json:"expectedInflow" binding:"gte=0"`
	ExpectedOutflow float64 `json:"expectedOutflow" binding:"gte=0"`
	OpeningBalance  float64 `json:"openingBalance"`
	Notes           string  `json:"notes"`
}

// CashflowResponse adds the derived closing balance to the stored forecast
type CashflowResponse struct {
	ID              string  `json:"id"`
	Month           string  `json:"month"`
	ExpectedInflow  float64 `json:"expectedInflow"`
	ExpectedOutflow float64 `json:"expectedOutflow"`
	OpeningBalance  float64 `json:"openingBalance"`
	ClosingBalance  float64 `json:"closingBalance"`
	Notes           string  `json:"notes"`
}

// UpsertSettingRequest sets one configuration key
type UpsertSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}
