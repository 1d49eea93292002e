package services

import (
	"fmt"

	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
	"github.com/firetm-simple/repositories"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
	}
}

// validateBillingConfig enforces the project invariant: a TM project always
// carries a positive TM bill rate, any other billing type never does.
func validateBillingConfig(billingType models.BillingType, tmBillRate *float64) error {
	switch billingType {
	case models.BillingTypeTM:
		if tmBillRate == nil || *tmBillRate <= 0 {
			return fmt.Errorf("%w: a TM project requires a positive tmBillRate", models.ErrValidation)
		}
	case models.BillingTypeFixed, models.BillingTypeSOV, models.BillingTypeBid:
		if tmBillRate != nil {
			return fmt.Errorf("%w: tmBillRate is only valid on TM projects", models.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown billing type %q", models.ErrValidation, billingType)
	}
	return nil
}

// ListProjects retrieves projects with pagination, filtering and sorting
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	// Set defaults if not provided
	if filter.Page <= 0 {
		filter.Page = 1
	}

	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}

	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}

	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	// Validate sort order
	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"name":       true,
		"status":     true,
	}

	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder,
		filter.Status,
		filter.BillingType,
		filter.Search,
	)

	if err != nil {
		return response, err
	}

	// Calculate total pages
	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}

	return response, nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(projectID string) (models.Project, error) {
	return s.projectRepo.FindByID(projectID)
}

// BillingRate returns a project's T&M rate, nil for non-TM projects
func (s *ProjectService) BillingRate(projectID string) (dto.BillingRateResponse, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return dto.BillingRateResponse{}, err
	}

	response := dto.BillingRateResponse{
		ProjectID:   project.ID,
		BillingType: string(project.BillingType),
	}
	if project.IsTM() {
		response.TMBillRate = project.TMBillRate
	}
	return response, nil
}

// CreateProject creates a new project after checking the billing invariant
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest) (models.Project, error) {
	billingType := models.BillingType(req.BillingType)
	if err := validateBillingConfig(billingType, req.TMBillRate); err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		Name:           req.Name,
		ClientName:     req.ClientName,
		Address:        req.Address,
		Description:    req.Description,
		BillingType:    billingType,
		TMBillRate:     req.TMBillRate,
		ContractAmount: req.ContractAmount,
		OpeningBalance: req.OpeningBalance,
		Status:         models.ProjectStatusActive,
	}

	return s.projectRepo.Create(project)
}

// UpdateProject updates an existing project. The GC PIN fields are owned by
// the access control service and are carried over untouched.
func (s *ProjectService) UpdateProject(projectID string, req dto.UpdateProjectRequest) (models.Project, error) {
	existing, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return models.Project{}, err
	}

	billingType := models.BillingType(req.BillingType)
	if err := validateBillingConfig(billingType, req.TMBillRate); err != nil {
		return models.Project{}, err
	}

	existing.Name = req.Name
	existing.ClientName = req.ClientName
	existing.Address = req.Address
	existing.Description = req.Description
	existing.BillingType = billingType
	existing.TMBillRate = req.TMBillRate
	existing.ContractAmount = req.ContractAmount
	existing.OpeningBalance = req.OpeningBalance
	if req.Status != "" {
		existing.Status = models.ProjectStatus(req.Status)
	}

	if err := s.projectRepo.Update(existing); err != nil {
		return models.Project{}, err
	}

	return existing, nil
}

// DeleteProject deletes a project and its dependent records
func (s *ProjectService) DeleteProject(projectID string) error {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrNotFound
	}
	return s.projectRepo.Delete(projectID)
}
