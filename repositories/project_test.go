package repositories

import (
	"errors"
	"testing"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db
}

func createProject(t *testing.T, name string) models.Project {
	t.Helper()
	rate := 95.0
	project := models.Project{
		Name:        name,
		BillingType: models.BillingTypeTM,
		TMBillRate:  &rate,
		Status:      models.ProjectStatusActive,
	}
	if err := database.DB.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}
	return project
}

func TestConsumePinSingleUse(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()
	project := createProject(t, "Midtown Tower")

	if err := repo.SetPin(project.ID, "4821"); err != nil {
		t.Fatalf("set pin: %v", err)
	}

	consumed, err := repo.ConsumePin(project.ID, "4821")
	if err != nil {
		t.Fatalf("consume pin: %v", err)
	}
	if !consumed {
		t.Fatal("first consume must succeed")
	}

	// Second attempt with the same PIN must lose.
	consumed, err = repo.ConsumePin(project.ID, "4821")
	if err != nil {
		t.Fatalf("consume pin: %v", err)
	}
	if consumed {
		t.Fatal("consumed PIN must not consume twice")
	}
}

func TestConsumePinWrongValue(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()
	project := createProject(t, "Midtown Tower")

	if err := repo.SetPin(project.ID, "4821"); err != nil {
		t.Fatalf("set pin: %v", err)
	}

	consumed, err := repo.ConsumePin(project.ID, "0000")
	if err != nil {
		t.Fatalf("consume pin: %v", err)
	}
	if consumed {
		t.Fatal("wrong PIN must not consume")
	}

	// The outstanding PIN is untouched.
	found, err := repo.FindByActivePin("4821")
	if err != nil {
		t.Fatalf("find by pin: %v", err)
	}
	if found.ID != project.ID {
		t.Fatalf("found %s, want %s", found.ID, project.ID)
	}
}

func TestFindByActivePinIgnoresConsumed(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()
	project := createProject(t, "Midtown Tower")

	if err := repo.SetPin(project.ID, "4821"); err != nil {
		t.Fatalf("set pin: %v", err)
	}
	if _, err := repo.ConsumePin(project.ID, "4821"); err != nil {
		t.Fatalf("consume pin: %v", err)
	}

	if _, err := repo.FindByActivePin("4821"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for consumed pin", err)
	}
}

func TestSetPinUnknownProject(t *testing.T) {
	setupTestDB(t)
	repo := NewProjectRepository()

	if err := repo.SetPin("no-such-id", "4821"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
