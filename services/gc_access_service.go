package services

import (
	"errors"
	"log"

	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
	"github.com/firetm-simple/repositories"
	"github.com/firetm-simple/utils"
)

// pinRetryAttempts bounds the best-effort avoidance of a PIN that is
// currently outstanding on another project. Collisions are acceptable;
// uniqueness is per-project, not global.
const pinRetryAttempts = 5

// GcAccessService governs the one-time PIN login flow for the read-only GC
// dashboard. Authentication is entirely PIN-possession-based: there is no
// GC identity.
//
// Per-project PIN states: no pin -> issued -> consumed -> issued -> ...
// Consumption always immediately rotates to a fresh PIN, so an issued PIN
// authenticates at most once.
type GcAccessService struct {
	projectRepo   *repositories.ProjectRepository
	accessLogRepo *repositories.GcAccessLogRepository
	installerRepo *repositories.InstallerRepository
	timeLogRepo   *repositories.TimeLogRepository
	materialRepo  *repositories.MaterialRepository
	tmTagRepo     *repositories.TMTagRepository
}

// NewGcAccessService creates a new GC access service instance
func NewGcAccessService() *GcAccessService {
	return &GcAccessService{
		projectRepo:   repositories.NewProjectRepository(),
		accessLogRepo: repositories.NewGcAccessLogRepository(),
		installerRepo: repositories.NewInstallerRepository(),
		timeLogRepo:   repositories.NewTimeLogRepository(),
		materialRepo:  repositories.NewMaterialRepository(),
		tmTagRepo:     repositories.NewTMTagRepository(),
	}
}

// IssuePin returns the project's current PIN, generating a new one only when
// no PIN exists or the current one has been consumed. Calling it repeatedly
// before the PIN is used returns the same value every time, so peeking at
// the PIN never invalidates it.
func (s *GcAccessService) IssuePin(projectID string) (dto.PinResponse, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return dto.PinResponse{}, err
	}

	if project.GcPin != nil && !project.GcPinUsed {
		return dto.PinResponse{
			ProjectID:   project.ID,
			ProjectName: project.Name,
			Pin:         *project.GcPin,
			PinUsed:     false,
		}, nil
	}

	pin := s.generatePin(project.ID)
	if err := s.projectRepo.SetPin(project.ID, pin); err != nil {
		return dto.PinResponse{}, err
	}

	return dto.PinResponse{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Pin:         pin,
		PinUsed:     false,
	}, nil
}

// ValidatePin is the PIN-only login: it searches all projects for the one
// holding pin outstanding, consumes it and rotates.
//
// Every failure — unknown PIN, already-used PIN, or losing the consume race —
// is reported as the same ErrInvalidPin so a brute-forcing caller learns
// nothing about why the attempt failed. A malformed PIN is rejected before
// the store is touched.
func (s *GcAccessService) ValidatePin(pin, ip, userAgent string) (dto.ValidatePinResponse, error) {
	if !utils.IsValidPin(pin) {
		return dto.ValidatePinResponse{}, models.ErrMalformedPin
	}

	project, err := s.projectRepo.FindByActivePin(pin)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logAttempt("", ip, userAgent, models.AccessStatusFailed)
			return dto.ValidatePinResponse{}, models.ErrInvalidPin
		}
		return dto.ValidatePinResponse{}, err
	}

	return s.consumeAndRotate(project, pin, ip, userAgent)
}

// LoginWithProjectAndPin is the stricter variant used when the caller
// already knows which project it expects: the PIN must be outstanding on
// that exact project. Rotate-on-success and the uniform rejection are
// identical to ValidatePin.
func (s *GcAccessService) LoginWithProjectAndPin(projectID, pin, ip, userAgent string) (dto.ValidatePinResponse, error) {
	if !utils.IsValidPin(pin) {
		return dto.ValidatePinResponse{}, models.ErrMalformedPin
	}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logAttempt(projectID, ip, userAgent, models.AccessStatusFailed)
			return dto.ValidatePinResponse{}, models.ErrInvalidPin
		}
		return dto.ValidatePinResponse{}, err
	}

	if project.GcPin == nil || *project.GcPin != pin || project.GcPinUsed {
		s.logAttempt(project.ID, ip, userAgent, models.AccessStatusFailed)
		return dto.ValidatePinResponse{}, models.ErrInvalidPin
	}

	return s.consumeAndRotate(project, pin, ip, userAgent)
}

// consumeAndRotate performs the atomic test-and-set on the PIN and, on
// success, immediately issues the next PIN. The new PIN is returned to the
// caller so the office can hand it to the GC out-of-band for their next
// visit. Exactly one of two concurrent attempts on the same PIN can win the
// conditional update.
func (s *GcAccessService) consumeAndRotate(project models.Project, pin, ip, userAgent string) (dto.ValidatePinResponse, error) {
	consumed, err := s.projectRepo.ConsumePin(project.ID, pin)
	if err != nil {
		return dto.ValidatePinResponse{}, err
	}
	if !consumed {
		// Lost the race or the record changed under us. Same uniform
		// rejection as a wrong PIN.
		s.logAttempt(project.ID, ip, userAgent, models.AccessStatusFailed)
		return dto.ValidatePinResponse{}, models.ErrInvalidPin
	}

	s.logAttempt(project.ID, ip, userAgent, models.AccessStatusSuccess)

	next, err := s.IssuePin(project.ID)
	if err != nil {
		return dto.ValidatePinResponse{}, err
	}

	return dto.ValidatePinResponse{
		Success:     true,
		ProjectID:   project.ID,
		ProjectName: project.Name,
		NewPin:      next.Pin,
	}, nil
}

// AccessLogs returns a project's login history, newest first.
func (s *GcAccessService) AccessLogs(projectID string, limit int) ([]models.GcAccessLog, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return nil, err
	}
	return s.accessLogRepo.FindByProjectID(projectID, limit)
}

// Dashboard builds the read-only view a GC sees after logging in.
//
// Redaction is a hard security invariant: the response carries hours, day
// counts, tag counts, material quantities and status only — never costs,
// rates, bills or any other dollar figure, regardless of what the
// underlying records hold.
func (s *GcAccessService) Dashboard(projectID string) (dto.GcProjectDashboard, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return dto.GcProjectDashboard{}, err
	}

	timeLogs, err := s.timeLogRepo.FindByProjectID(projectID)
	if err != nil {
		return dto.GcProjectDashboard{}, err
	}

	materials, err := s.materialRepo.FindByProjectID(projectID)
	if err != nil {
		return dto.GcProjectDashboard{}, err
	}

	tags, err := s.tmTagRepo.FindByProjectID(projectID)
	if err != nil {
		return dto.GcProjectDashboard{}, err
	}

	dashboard := dto.GcProjectDashboard{
		ProjectID:     project.ID,
		ProjectName:   project.Name,
		ProjectStatus: string(project.Status),
		TagCounts:     map[string]int{},
		TimeLogCount:  len(timeLogs),
		MaterialLines: len(materials),
		Narrative:     project.Description,
	}

	days := make(map[string]bool)
	installers := make(map[string]bool)
	for _, timeLog := range timeLogs {
		dashboard.TotalHours += timeLog.Hours
		days[timeLog.Date.Format("2006-01-02")] = true
		installers[timeLog.InstallerID] = true
	}
	dashboard.WorkDays = len(days)
	dashboard.InstallerCount = len(installers)

	for _, material := range materials {
		dashboard.MaterialQuantity += material.Quantity
	}

	for _, tag := range tags {
		dashboard.TagCounts[string(tag.Status)]++
	}

	return dashboard, nil
}

// generatePin draws random PINs, preferring one not currently outstanding on
// another project to avoid operator confusion.
func (s *GcAccessService) generatePin(projectID string) string {
	for i := 0; i < pinRetryAttempts; i++ {
		pin := utils.GeneratePin()
		active, err := s.projectRepo.PinActiveElsewhere(pin, projectID)
		if err != nil || !active {
			return pin
		}
	}
	return utils.GeneratePin()
}

func (s *GcAccessService) logAttempt(projectID, ip, userAgent string, status models.AccessStatus) {
	entry := models.GcAccessLog{
		IP:        ip,
		UserAgent: userAgent,
		Status:    status,
	}
	if projectID != "" {
		entry.ProjectID = &projectID
	}
	if err := s.accessLogRepo.Append(entry); err != nil {
		log.Printf("Warning: failed to append gc access log: %v", err)
	}
}
