package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/models"
	"github.com/firetm-simple/repositories"
	"github.com/firetm-simple/utils"
)

func TestIssuePinIdempotentWhileUnused(t *testing.T) {
	setupTestDB(t)
	project := createTestProject(t, models.BillingTypeTM, floatPtr(95), 0)
	service := NewGcAccessService()

	first, err := service.IssuePin(project.ID)
	if err != nil {
		t.Fatalf("issue pin: %v", err)
	}
	if !utils.IsValidPin(first.Pin) {
		t.Fatalf("pin %q is not 4 digits", first.Pin)
	}

	// Peeking again and again must return the same PIN, not rotate it.
	for i := 0; i < 3; i++ {
		again, err := service.IssuePin(project.ID)
		if err != nil {
			t.Fatalf("issue pin: %v", err)
		}
		if again.Pin != first.Pin {
			t.Fatalf("pin rotated on peek: %q -> %q", first.Pin, again.Pin)
		}
	}
}

func TestIssuePinUnknownProject(t *testing.T) {
	setupTestDB(t)
	service := NewGcAccessService()

	_, err := service.IssuePin("no-such-project")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestValidatePinConsumesAndRotates(t *testing.T) {
	setupTestDB(t)
	project := createTestProject(t, models.BillingTypeTM, floatPtr(95), 0)
	service := NewGcAccessService()

	issued, err := service.IssuePin(project.ID)
	if err != nil {
		t.Fatalf("issue pin: %v", err)
	}

	resp, err := service.ValidatePin(issued.Pin, "10.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("validate pin: %v", err)
	}
	if !resp.Success || resp.ProjectID != project.ID {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if !utils.IsValidPin(resp.NewPin) {
		t.Fatalf("rotated pin %q is not 4 digits", resp.NewPin)
	}

	// The rotated PIN is outstanding again.
	var stored models.Project
	if err := database.DB.First(&stored, "id = ?", project.ID).Error; err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if stored.GcPin == nil || *stored.GcPin != resp.NewPin || stored.GcPinUsed {
		t.Fatalf("rotation not persisted: pin=%v used=%v", stored.GcPin, stored.GcPinUsed)
	}

	// Replaying the consumed PIN must be rejected with the uniform error.
	if resp.NewPin != issued.Pin {
		if _, err := service.ValidatePin(issued.Pin, "10.0.0.1", "test-agent"); !errors.Is(err, models.ErrInvalidPin) {
			t.Fatalf("replay err = %v, want ErrInvalidPin", err)
		}
	}

	// Successful attempt was logged.
	count, err := NewGcAccessService().accessLogRepo.CountByProjectIDAndStatus(project.ID, models.AccessStatusSuccess)
	if err != nil {
		t.Fatalf("count logs: %v", err)
	}
	if count != 1 {
		t.Fatalf("success log count = %d, want 1", count)
	}
}

func TestValidatePinMalformed(t *testing.T) {
	setupTestDB(t)
	service := NewGcAccessService()

	for _, pin := range []string{"", "12", "12345", "12a4", "١٢٣٤"} {
		if _, err := service.ValidatePin(pin, "10.0.0.1", "test-agent"); !errors.Is(err, models.ErrMalformedPin) {
			t.Errorf("pin %q: err = %v, want ErrMalformedPin", pin, err)
		}
	}
}

func TestValidatePinUnknownLogsFailure(t *testing.T) {
	setupTestDB(t)
	service := NewGcAccessService()

	if _, err := service.ValidatePin("0000", "10.0.0.1", "test-agent"); !errors.Is(err, models.ErrInvalidPin) {
		t.Fatalf("err = %v, want ErrInvalidPin", err)
	}

	var logs []models.GcAccessLog
	if err := database.DB.Find(&logs).Error; err != nil {
		t.Fatalf("load logs: %v", err)
	}
	if len(logs) != 1 || logs[0].Status != models.AccessStatusFailed {
		t.Fatalf("logs = %+v, want one failed entry", logs)
	}
	if logs[0].ProjectID != nil {
		t.Fatalf("failed attempt with no match must not reference a project, got %v", *logs[0].ProjectID)
	}
}

func TestLoginWithProjectAndPinRejectsOtherProjectsPin(t *testing.T) {
	setupTestDB(t)
	projectA := createTestProject(t, models.BillingTypeTM, floatPtr(95), 0)
	projectB := createTestProject(t, models.BillingTypeFixed, nil, 25000)
	service := NewGcAccessService()

	issued, err := service.IssuePin(projectA.ID)
	if err != nil {
		t.Fatalf("issue pin: %v", err)
	}

	// A valid PIN for project A authenticates nothing on project B.
	if _, err := service.LoginWithProjectAndPin(projectB.ID, issued.Pin, "10.0.0.1", "test-agent"); !errors.Is(err, models.ErrInvalidPin) {
		t.Fatalf("err = %v, want ErrInvalidPin", err)
	}

	// And the PIN on project A is still outstanding.
	resp, err := service.LoginWithProjectAndPin(projectA.ID, issued.Pin, "10.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("login on owning project: %v", err)
	}
	if !resp.Success {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestValidatePinDuplicateValueConsumesOldestOnly(t *testing.T) {
	setupTestDB(t)
	projectA := createTestProject(t, models.BillingTypeTM, floatPtr(95), 0)
	projectB := createTestProject(t, models.BillingTypeTM, floatPtr(95), 0)
	service := NewGcAccessService()
	repo := repositories.NewProjectRepository()

	// Independent rotations can leave the same value outstanding on two
	// projects at once.
	if err := repo.SetPin(projectA.ID, "7341"); err != nil {
		t.Fatalf("set pin A: %v", err)
	}
	if err := repo.SetPin(projectB.ID, "7341"); err != nil {
		t.Fatalf("set pin B: %v", err)
	}

	// Make project A unambiguously the older issuance.
	older := time.Now().Add(-time.Hour)
	if err := database.DB.Model(&models.Project{}).
		Where("id = ?", projectA.ID).
		UpdateColumn("updated_at", older).Error; err != nil {
		t.Fatalf("backdate project A: %v", err)
	}

	resp, err := service.ValidatePin("7341", "10.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("validate pin: %v", err)
	}
	if resp.ProjectID != projectA.ID {
		t.Fatalf("consumed project %s, want the older issuance %s", resp.ProjectID, projectA.ID)
	}

	// Project B's identical PIN is untouched.
	var storedB models.Project
	if err := database.DB.First(&storedB, "id = ?", projectB.ID).Error; err != nil {
		t.Fatalf("reload project B: %v", err)
	}
	if storedB.GcPin == nil || *storedB.GcPin != "7341" || storedB.GcPinUsed {
		t.Fatalf("project B pin disturbed: pin=%v used=%v", storedB.GcPin, storedB.GcPinUsed)
	}

	// And it still authenticates on its own project.
	respB, err := service.LoginWithProjectAndPin(projectB.ID, "7341", "10.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("login on project B: %v", err)
	}
	if !respB.Success {
		t.Fatalf("unexpected response: %+v", respB)
	}
}

func TestValidatePinConcurrentSingleUse(t *testing.T) {
	setupTestDB(t)
	project := createTestProject(t, models.BillingTypeTM, floatPtr(95), 0)
	service := NewGcAccessService()

	issued, err := service.IssuePin(project.ID)
	if err != nil {
		t.Fatalf("issue pin: %v", err)
	}

	const attempts = 2
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.ValidatePin(issued.Pin, "10.0.0.1", "test-agent")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, rejections int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, models.ErrInvalidPin):
			rejections++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || rejections != attempts-1 {
		t.Fatalf("successes = %d, rejections = %d; exactly one attempt may win", successes, rejections)
	}
}

func TestDashboardAggregatesWithoutFinancials(t *testing.T) {
	setupTestDB(t)
	project := createTestProject(t, models.BillingTypeTM, floatPtr(95), 0)
	installerA := createTestInstaller(t, 65)
	installerB := createTestInstaller(t, 72)
	service := NewGcAccessService()

	days := []time.Time{
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	}
	installerIDs := []string{installerA.ID, installerB.ID, installerA.ID}
	for i, day := range days {
		timeLog := models.TimeLog{
			Date:        day,
			InstallerID: installerIDs[i],
			ProjectID:   project.ID,
			Hours:       8,
		}
		if err := database.DB.Create(&timeLog).Error; err != nil {
			t.Fatalf("create time log: %v", err)
		}
	}

	material := models.Material{
		ProjectID:     project.ID,
		Description:   "sprinkler heads",
		Quantity:      24,
		Total:         1500,
		MarkupPercent: 20,
	}
	if err := database.DB.Create(&material).Error; err != nil {
		t.Fatalf("create material: %v", err)
	}

	dashboard, err := service.Dashboard(project.ID)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if !almostEqual(dashboard.TotalHours, 24) {
		t.Errorf("total hours = %v, want 24", dashboard.TotalHours)
	}
	if dashboard.WorkDays != 2 {
		t.Errorf("work days = %d, want 2", dashboard.WorkDays)
	}
	if dashboard.InstallerCount != 2 {
		t.Errorf("installer count = %d, want 2", dashboard.InstallerCount)
	}
	if dashboard.TimeLogCount != 3 {
		t.Errorf("time log count = %d, want 3", dashboard.TimeLogCount)
	}
	if dashboard.MaterialLines != 1 || !almostEqual(dashboard.MaterialQuantity, 24) {
		t.Errorf("materials = %d lines / %v qty, want 1 / 24", dashboard.MaterialLines, dashboard.MaterialQuantity)
	}
}
