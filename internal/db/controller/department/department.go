// Package department provides CRUD operations for departments.
package department

import (
	"errors"

	"gorm.io/gorm"

	"github.com/civilapp/user-management/internal/db/models"
)

var (
	// ErrDepartmentNotFound is returned when a department is not found.
	ErrDepartmentNotFound = errors.New("department not found")
	// ErrDepartmentNameEmpty is returned when attempting to create a department with an empty name.
	ErrDepartmentNameEmpty = errors.New("department name cannot be empty")
	// ErrDepartmentAlreadyExists is returned when the department name is already taken.
	ErrDepartmentAlreadyExists = errors.New("department already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all departments.
func GetAll(db *gorm.DB) ([]models.Department, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var departments []models.Department
	result := db.Order("id ASC").Find(&departments)
	if result.Error != nil {
		return nil, result.Error
	}

	return departments, nil
}

// GetByID retrieves a department by its ID.
func GetByID(db *gorm.DB, id uint) (*models.Department, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var department models.Department
	result := db.First(&department, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, result.Error
	}

	return &department, nil
}

// Create creates a new department. Name uniqueness is enforced by the
// database constraint, not by a pre-check.
func Create(db *gorm.DB, name, description string) (*models.Department, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrDepartmentNameEmpty
	}

	department := &models.Department{
		Name:        name,
		Description: description,
	}

	result := db.Create(department)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDepartmentAlreadyExists
		}
		return nil, result.Error
	}

	return department, nil
}

// Delete deletes a department by ID. Sub-departments, users and permission
// grants under the department are removed by the cascade rules.
func Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Department{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDepartmentNotFound
	}

	return nil
}
