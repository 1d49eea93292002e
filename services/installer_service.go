package services

import (
	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
	"github.com/firetm-simple/repositories"
)

// InstallerService handles business logic for installers
type InstallerService struct {
	installerRepo *repositories.InstallerRepository
}

// NewInstallerService creates a new installer service instance
func NewInstallerService() *InstallerService {
	return &InstallerService{
		installerRepo: repositories.NewInstallerRepository(),
	}
}

// ListInstallers retrieves all installers, optionally only active ones
func (s *InstallerService) ListInstallers(activeOnly bool) ([]models.Installer, error) {
	return s.installerRepo.FindAll(activeOnly)
}

// GetInstaller retrieves an installer by ID
func (s *InstallerService) GetInstaller(id string) (models.Installer, error) {
	return s.installerRepo.FindByID(id)
}

// CreateInstaller creates a new installer
func (s *InstallerService) CreateInstaller(req dto.CreateInstallerRequest) (models.Installer, error) {
	installer := models.Installer{
		Name:     req.Name,
		CostRate: req.CostRate,
		Position: req.Position,
		Phone:    req.Phone,
		Email:    req.Email,
		Active:   true,
	}
	return s.installerRepo.Create(installer)
}

// UpdateInstaller updates an existing installer
func (s *InstallerService) UpdateInstaller(id string, req dto.UpdateInstallerRequest) (models.Installer, error) {
	existing, err := s.installerRepo.FindByID(id)
	if err != nil {
		return models.Installer{}, err
	}

	existing.Name = req.Name
	existing.CostRate = req.CostRate
	existing.Position = req.Position
	existing.Phone = req.Phone
	existing.Email = req.Email
	if req.Active != nil {
		existing.Active = *req.Active
	}

	if err := s.installerRepo.Update(existing); err != nil {
		return models.Installer{}, err
	}
	return existing, nil
}

// DeleteInstaller removes an installer
func (s *InstallerService) DeleteInstaller(id string) error {
	if _, err := s.installerRepo.FindByID(id); err != nil {
		return err
	}
	return s.installerRepo.Delete(id)
}
