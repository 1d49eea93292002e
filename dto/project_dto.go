package dto

import (
	"github.com/firetm-simple/models"
)

// ProjectFilter represents filter criteria for projects
type ProjectFilter struct {
	Search      string
	Status      string
	BillingType string
	SortBy      string
	SortOrder   string
	Page        int
	PageSize    int
}

// ProjectListResponse represents paginated project list response
type ProjectListResponse struct {
	Projects   []models.Project `json:"projects"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name           string   `json:"name" binding:"required"`
	ClientName     string   `json:"clientName"`
	Address        string   `json:"address"`
	Description    string   `json:"description"`
	BillingType    string   `json:"billingType" binding:"required,oneof=tm fixed sov bid"`
	TMBillRate     *float64 `json:"tmBillRate"`
	ContractAmount float64  `json:"contractAmount"`
	OpeningBalance float64  `json:"openingBalance"`
}

// UpdateProjectRequest represents the request payload for updating an existing project
type UpdateProjectRequest struct {
	Name           string   `json:"name" binding:"required"`
	ClientName     string   `json:"clientName"`
	Address        string   `json:"address"`
	Description    string   `json:"description"`
	BillingType    string   `json:"billingType" binding:"required,oneof=tm fixed sov bid"`
	TMBillRate     *float64 `json:"tmBillRate"`
	ContractAmount float64  `json:"contractAmount"`
	OpeningBalance float64  `json:"openingBalance"`
	Status         string   `json:"status" binding:"omitempty,oneof=active on_hold completed archived"`
}

// BillingRateResponse returns a project's effective T&M rate, null for
// non-TM projects.
type BillingRateResponse struct {
	ProjectID   string   `json:"projectId"`
	BillingType string   `json:"billingType"`
	TMBillRate  *float64 `json:"tmBillRate"`
}
