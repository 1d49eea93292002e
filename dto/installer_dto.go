package dto

// CreateInstallerRequest represents the request payload for creating an installer
type CreateInstallerRequest struct {
	Name     string  `json:"name" binding:"required"`
	CostRate float64 `json:"costRate" binding:"required,gt=0"`
	Position string  `json:"position"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email" binding:"omitempty,email"`
}

// UpdateInstallerRequest represents the request payload for updating an installer
type UpdateInstallerRequest struct {
	Name     string  `json:"name" binding:"required"`
	CostRate float64 `json:"costRate" binding:"required,gt=0"`
	Position string  `json:"position"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email" binding:"omitempty,email"`
	Active   *bool   `json:"active"`
}
