package services

import (
	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
	"github.com/firetm-simple/repositories"
)

// MaterialService handles business logic for materials
type MaterialService struct {
	materialRepo *repositories.MaterialRepository
	projectRepo  *repositories.ProjectRepository
}

// NewMaterialService creates a new material service instance
func NewMaterialService() *MaterialService {
	return &MaterialService{
		materialRepo: repositories.NewMaterialRepository(),
		projectRepo:  repositories.NewProjectRepository(),
	}
}

// ListMaterials retrieves all materials of a project
func (s *MaterialService) ListMaterials(projectID string) ([]models.Material, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return nil, err
	}
	return s.materialRepo.FindByProjectID(projectID)
}

// GetMaterial retrieves a material by ID
func (s *MaterialService) GetMaterial(id string) (models.Material, error) {
	return s.materialRepo.FindByID(id)
}

// CreateMaterial records a material purchase. A zero Total is derived from
// quantity x unit cost.
func (s *MaterialService) CreateMaterial(req dto.CreateMaterialRequest) (models.Material, error) {
	if _, err := s.projectRepo.FindByID(req.ProjectID); err != nil {
		return models.Material{}, err
	}

	date, err := parseDateOptional(req.Date)
	if err != nil {
		return models.Material{}, err
	}

	total := req.Total
	if total == 0 {
		total = req.Quantity * req.UnitCost
	}

	material := models.Material{
		ProjectID:     req.ProjectID,
		Description:   req.Description,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		UnitCost:      req.UnitCost,
		Total:         total,
		MarkupPercent: req.MarkupPercent,
		Date:          date,
	}
	return s.materialRepo.Create(material)
}

// UpdateMaterial updates an existing material
func (s *MaterialService) UpdateMaterial(id string, req dto.UpdateMaterialRequest) (models.Material, error) {
	existing, err := s.materialRepo.FindByID(id)
	if err != nil {
		return models.Material{}, err
	}

	date, err := parseDateOptional(req.Date)
	if err != nil {
		return models.Material{}, err
	}

	total := req.Total
	if total == 0 {
		total = req.Quantity * req.UnitCost
	}

	existing.Description = req.Description
	existing.Quantity = req.Quantity
	existing.Unit = req.Unit
	existing.UnitCost = req.UnitCost
	existing.Total = total
	existing.MarkupPercent = req.MarkupPercent
	if !date.IsZero() {
		existing.Date = date
	}

	if err := s.materialRepo.Update(existing); err != nil {
		return models.Material{}, err
	}
	return existing, nil
}

// DeleteMaterial removes a material
func (s *MaterialService) DeleteMaterial(id string) error {
	if _, err := s.materialRepo.FindByID(id); err != nil {
		return err
	}
	return s.materialRepo.Delete(id)
}
