package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/firetm-simple/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBConnection represents a named database connection used by migration
// tooling.
type DBConnection struct {
	DB    *gorm.DB
	Name  string
	DbURL string
}

// NewDBConnection creates a new database connection
func NewDBConnection(name, dbURL string) (*DBConnection, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %v", name, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB for %s: %v", name, err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Printf("✅ Connected to %s database", name)

	return &DBConnection{
		DB:    db,
		Name:  name,
		DbURL: dbURL,
	}, nil
}

// Migrate migrates the database schema
func (c *DBConnection) Migrate() error {
	log.Printf("Migrating %s database schema...", c.Name)
	err := c.DB.AutoMigrate(Models()...)
	if err != nil {
		return fmt.Errorf("failed to migrate %s database: %v", c.Name, err)
	}
	log.Printf("✅ %s database schema migrated", c.Name)
	return nil
}

// MigrateDataBetweenDatabases copies all collections from source to target.
// Used when moving a deployment between hosts; the target schema must
// already be migrated.
func MigrateDataBetweenDatabases(source, target *DBConnection) error {
	log.Println("Starting data migration from source to target...")

	if err := copyTable[models.User](source, target, "users"); err != nil {
		return err
	}
	if err := copyTable[models.Setting](source, target, "settings"); err != nil {
		return err
	}
	if err := copyTable[models.Project](source, target, "projects"); err != nil {
		return err
	}
	if err := copyTable[models.Installer](source, target, "installers"); err != nil {
		return err
	}
	if err := copyTable[models.TimeLog](source, target, "time logs"); err != nil {
		return err
	}
	if err := copyTable[models.Material](source, target, "materials"); err != nil {
		return err
	}
	if err := copyTable[models.Expense](source, target, "expenses"); err != nil {
		return err
	}
	if err := copyTable[models.TMTag](source, target, "tm tags"); err != nil {
		return err
	}
	if err := copyTable[models.Invoice](source, target, "invoices"); err != nil {
		return err
	}
	if err := copyTable[models.Payable](source, target, "payables"); err != nil {
		return err
	}
	if err := copyTable[models.CashflowForecast](source, target, "cashflow forecasts"); err != nil {
		return err
	}
	if err := copyTable[models.GcAccessLog](source, target, "gc access logs"); err != nil {
		return err
	}

	log.Println("✅ Data migration completed successfully!")
	return nil
}

func copyTable[T any](source, target *DBConnection, label string) error {
	var rows []T
	if err := source.DB.Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to fetch %s: %v", label, err)
	}
	log.Printf("Found %d %s to migrate", len(rows), label)
	if len(rows) > 0 {
		if err := target.DB.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to migrate %s: %v", label, err)
		}
	}
	return nil
}
