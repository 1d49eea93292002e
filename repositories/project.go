package repositories

import (
	"errors"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindAll retrieves all projects
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return project, models.ErrNotFound
	}
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := database.DB.Save(&project)
	return result.Error
}

// Delete removes a project and its dependent records (soft delete)
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.TimeLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Material{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.TMTag{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, "id = ?", id)
		return result.Error
	})
}

// Exists checks if a project exists (including soft-deleted ones)
func (r *ProjectRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Unscoped().Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindWithPagination retrieves projects with pagination, filtering and sorting
func (r *ProjectRepository) FindWithPagination(
	page, pageSize int,
	sortBy, sortOrder string,
	status, billingType, search string) ([]models.Project, int64, error) {

	var projects []models.Project
	var totalCount int64

	db := database.DB.Model(&models.Project{})

	if status != "" {
		db = db.Where("status = ?", status)
	}

	if billingType != "" {
		db = db.Where("billing_type = ?", billingType)
	}

	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(name LIKE ? OR client_name LIKE ? OR address LIKE ?)", searchPattern, searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	orderString := sortBy + " " + sortOrder
	if err := db.Order(orderString).Limit(pageSize).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}

// FindByActivePin retrieves the project currently holding an outstanding
// (unused) PIN equal to pin. When independent rotations left the same value
// on several projects, the oldest issuance wins.
func (r *ProjectRepository) FindByActivePin(pin string) (models.Project, error) {
	var project models.Project
	result := database.DB.
		Where("gc_pin = ? AND gc_pin_used = ?", pin, false).
		Order("updated_at ASC").
		First(&project)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return project, models.ErrNotFound
	}
	return project, result.Error
}

// PinActiveElsewhere reports whether pin is outstanding on any project other
// than excludeID.
func (r *ProjectRepository) PinActiveElsewhere(pin, excludeID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Project{}).
		Where("gc_pin = ? AND gc_pin_used = ? AND id <> ?", pin, false, excludeID).
		Count(&count).Error
	return count > 0, err
}

// SetPin stores a freshly issued PIN on the project and marks it unused.
func (r *ProjectRepository) SetPin(id, pin string) error {
	result := database.DB.Model(&models.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"gc_pin": pin, "gc_pin_used": false})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ConsumePin atomically marks a PIN used. The conditional update is the
// single point that closes the double-use race: two concurrent attempts on
// the same outstanding PIN can each issue this statement, but only one sees
// RowsAffected == 1.
func (r *ProjectRepository) ConsumePin(id, pin string) (bool, error) {
	result := database.DB.Model(&models.Project{}).
		Where("id = ? AND gc_pin = ? AND gc_pin_used = ?", id, pin, false).
		Update("gc_pin_used", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
