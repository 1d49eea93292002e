package services

import (
	"testing"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the global connection at an isolated in-memory sqlite
// database. Connections are capped at one so conditional updates serialize
// the same way they would against postgres.
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

func createTestProject(t *testing.T, billingType models.BillingType, tmRate *float64, contract float64) models.Project {
	t.Helper()
	project := models.Project{
		Name:           "Station 4 Sprinkler Retrofit",
		BillingType:    billingType,
		TMBillRate:     tmRate,
		ContractAmount: contract,
		Status:         models.ProjectStatusActive,
	}
	if err := database.DB.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}
	return project
}

func createTestInstaller(t *testing.T, costRate float64) models.Installer {
	t.Helper()
	installer := models.Installer{
		Name:     "J. Alvarez",
		CostRate: costRate,
		Active:   true,
	}
	if err := database.DB.Create(&installer).Error; err != nil {
		t.Fatalf("create installer: %v", err)
	}
	return installer
}

func floatPtr(v float64) *float64 {
	return &v
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
