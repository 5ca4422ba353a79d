// Package permission provides operations for managing permission grants.
//
// A grant binds a permission template to one of four scope tiers
// (department, sub-department, role, user). Uniqueness per tier fingerprint
// is enforced by the partial unique indexes on the permissions table; the
// create path deliberately has no duplicate pre-check, concurrent writers
// would race past it.
package permission

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/civilapp/user-management/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrDuplicateGrant is returned when a grant already exists for the
	// same tier fingerprint and template.
	ErrDuplicateGrant = errors.New("permission grant already exists for this scope")
	// ErrReferenceNotFound is returned when a referenced entity does not exist.
	ErrReferenceNotFound = errors.New("referenced entity not found")
	// ErrGrantNotFound is returned when a grant is not found.
	ErrGrantNotFound = errors.New("permission grant not found")
)

// GrantInput carries the references for a new grant. The populated optional
// fields determine the grant's tier.
type GrantInput struct {
	DepartmentID         uint
	SubDepartmentID      *uint
	RoleID               *uint
	UserID               *uint64
	PermissionTemplateID uint
	Allowed              bool
}

// CreateGrant inserts a new grant after verifying every referenced row
// exists. The existence checks and the insert share one transaction;
// duplicate detection is left entirely to the unique indexes and surfaces
// as ErrDuplicateGrant.
func CreateGrant(db *gorm.DB, input GrantInput) (*models.Permission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	grant := &models.Permission{
		DepartmentID:         input.DepartmentID,
		SubDepartmentID:      input.SubDepartmentID,
		RoleID:               input.RoleID,
		UserID:               input.UserID,
		PermissionTemplateID: input.PermissionTemplateID,
		Allowed:              input.Allowed,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := checkReference(tx, &models.Department{}, uint64(input.DepartmentID), "department"); err != nil {
			return err
		}

		if err := checkReference(tx, &models.PermissionTemplate{}, uint64(input.PermissionTemplateID), "permission template"); err != nil {
			return err
		}

		if input.SubDepartmentID != nil {
			if err := checkReference(tx, &models.SubDepartment{}, uint64(*input.SubDepartmentID), "sub-department"); err != nil {
				return err
			}
		}

		if input.RoleID != nil {
			if err := checkReference(tx, &models.Role{}, uint64(*input.RoleID), "role"); err != nil {
				return err
			}
		}

		if input.UserID != nil {
			if err := checkReference(tx, &models.User{}, *input.UserID, "user"); err != nil {
				return err
			}
		}

		if err := tx.Create(grant).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return pkgerrors.Wrap(ErrDuplicateGrant, string(grant.Tier())+" tier")
			}
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return grant, nil
}

// checkReference verifies that a row of the given model with the given ID
// exists within the transaction.
func checkReference(tx *gorm.DB, model any, id uint64, name string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return pkgerrors.Wrap(ErrReferenceNotFound, name)
	}

	return nil
}

// GetAll retrieves all grants.
func GetAll(db *gorm.DB) ([]models.Permission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var grants []models.Permission
	result := db.Order("id ASC").Find(&grants)
	if result.Error != nil {
		return nil, result.Error
	}

	return grants, nil
}

// GetByID retrieves a grant by its ID.
func GetByID(db *gorm.DB, id uint) (*models.Permission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var grant models.Permission
	result := db.First(&grant, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGrantNotFound
		}
		return nil, result.Error
	}

	return &grant, nil
}

// SetAllowed toggles the allow/deny flag of an existing grant.
func SetAllowed(db *gorm.DB, id uint, allowed bool) (*models.Permission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	grant, err := GetByID(db, id)
	if err != nil {
		return nil, err
	}

	grant.Allowed = allowed
	if err := db.Save(grant).Error; err != nil {
		return nil, err
	}

	return grant, nil
}

// Delete deletes a grant by ID.
func Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Permission{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGrantNotFound
	}

	return nil
}
