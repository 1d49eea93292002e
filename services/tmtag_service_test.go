package services

import (
	"errors"
	"testing"
	"time"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
)

func seedTagRecords(t *testing.T) (models.Project, models.TimeLog, models.Material, models.Expense) {
	t.Helper()
	project := createTestProject(t, models.BillingTypeTM, floatPtr(95), 0)
	installer := createTestInstaller(t, 65)

	timeLog := models.TimeLog{
		Date:        time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		InstallerID: installer.ID,
		ProjectID:   project.ID,
		Hours:       8,
	}
	if err := database.DB.Create(&timeLog).Error; err != nil {
		t.Fatalf("create time log: %v", err)
	}

	material := models.Material{
		ProjectID:     project.ID,
		Description:   "pipe and hangers",
		Quantity:      1,
		Total:         1500,
		MarkupPercent: 20,
	}
	if err := database.DB.Create(&material).Error; err != nil {
		t.Fatalf("create material: %v", err)
	}

	expense := models.Expense{ProjectID: project.ID, Description: "scissor lift", Amount: 100}
	if err := database.DB.Create(&expense).Error; err != nil {
		t.Fatalf("create expense: %v", err)
	}

	return project, timeLog, material, expense
}

func TestCreateTagComputesTotals(t *testing.T) {
	setupTestDB(t)
	project, timeLog, material, expense := seedTagRecords(t)
	service := NewTMTagService()

	tag, err := service.CreateTag(dto.CreateTMTagRequest{
		ProjectID:   project.ID,
		TagNumber:   "TM-001",
		PeriodStart: "2025-06-01",
		PeriodEnd:   "2025-06-07",
		TimeLogIDs:  []string{timeLog.ID},
		MaterialIDs: []string{material.ID},
		ExpenseIDs:  []string{expense.ID},
		ForemanName: "R. Okafor",
	})
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}

	if tag.Status != models.TagStatusDraft {
		t.Errorf("status = %v, want draft", tag.Status)
	}
	if !almostEqual(tag.TotalLaborCost, 520) {
		t.Errorf("labor cost = %v, want 520", tag.TotalLaborCost)
	}
	if !almostEqual(tag.TotalLaborBill, 760) {
		t.Errorf("labor bill = %v, want 760", tag.TotalLaborBill)
	}
	if !almostEqual(tag.TotalMaterialBill, 1800) {
		t.Errorf("material bill = %v, want 1800", tag.TotalMaterialBill)
	}
	if !almostEqual(tag.TotalExpense, 100) {
		t.Errorf("expense = %v, want 100", tag.TotalExpense)
	}
	if !almostEqual(tag.TotalBill, 2660) {
		t.Errorf("total bill = %v, want 2660", tag.TotalBill)
	}
}

func TestCreateTagRejectsMissingReferences(t *testing.T) {
	setupTestDB(t)
	project, timeLog, _, _ := seedTagRecords(t)
	service := NewTMTagService()

	_, err := service.CreateTag(dto.CreateTMTagRequest{
		ProjectID:   project.ID,
		TagNumber:   "TM-002",
		PeriodStart: "2025-06-01",
		PeriodEnd:   "2025-06-07",
		TimeLogIDs:  []string{timeLog.ID, "ghost-entry"},
	})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestCreateTagRejectsInvertedPeriod(t *testing.T) {
	setupTestDB(t)
	project, _, _, _ := seedTagRecords(t)
	service := NewTMTagService()

	_, err := service.CreateTag(dto.CreateTMTagRequest{
		ProjectID:   project.ID,
		TagNumber:   "TM-003",
		PeriodStart: "2025-06-07",
		PeriodEnd:   "2025-06-01",
	})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestAcceptedTagIsImmutable(t *testing.T) {
	setupTestDB(t)
	project, timeLog, _, _ := seedTagRecords(t)
	service := NewTMTagService()

	tag, err := service.CreateTag(dto.CreateTMTagRequest{
		ProjectID:   project.ID,
		TagNumber:   "TM-004",
		PeriodStart: "2025-06-01",
		PeriodEnd:   "2025-06-07",
		TimeLogIDs:  []string{timeLog.ID},
	})
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}

	if _, err := service.UpdateTagStatus(tag.ID, models.TagStatusAccepted); err != nil {
		t.Fatalf("accept tag: %v", err)
	}

	if _, err := service.UpdateTag(tag.ID, dto.UpdateTMTagRequest{
		TagNumber:   "TM-004-b",
		PeriodStart: "2025-06-01",
		PeriodEnd:   "2025-06-07",
	}); !errors.Is(err, models.ErrImmutableTag) {
		t.Errorf("update err = %v, want ErrImmutableTag", err)
	}

	if _, err := service.UpdateTagStatus(tag.ID, models.TagStatusRejected); !errors.Is(err, models.ErrImmutableTag) {
		t.Errorf("status err = %v, want ErrImmutableTag", err)
	}

	if err := service.DeleteTag(tag.ID); !errors.Is(err, models.ErrImmutableTag) {
		t.Errorf("delete err = %v, want ErrImmutableTag", err)
	}
}
