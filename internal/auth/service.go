package auth

import (
	"errors"

	"gorm.io/gorm"

	"github.com/civilapp/user-management/internal/db/models"
)

// Service resolves effective permissions for users.
type Service struct {
	db *gorm.DB
}

// NewService creates a new auth service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Decision is the outcome of resolving a (user, template) pair.
type Decision struct {
	// Allowed is the effective allow/deny value.
	Allowed bool `json:"allowed"`
	// Matched reports whether any grant matched. When false, Allowed is the
	// default-deny value.
	Matched bool `json:"matched"`
	// Tier is the tier of the matching grant, empty when none matched.
	Tier models.Tier `json:"tier,omitempty"`
}

// Resolve evaluates the grant tiers for a user and template in precedence
// order user > role > sub-department > department and returns the allowed
// value of the first matching grant. Every tier is anchored to the user's
// current department; grants anchored elsewhere never apply. When no tier
// matches, or the user is inactive, the decision is deny.
func (s *Service) Resolve(userID uint64, templateID uint) (Decision, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Decision{}, ErrUserNotFound
		}

		return Decision{}, err
	}

	// inactive accounts hold no effective permissions
	if !user.IsActive {
		return Decision{Allowed: false, Matched: false}, nil
	}

	// user tier: grants pinned to this user, anchored to their current
	// department. The partial indexes permit several fingerprints per
	// (user, template); the most fully specified one wins, consistent with
	// the role-tier rule below.
	var grant models.Permission

	err := s.db.
		Where("user_id = ? AND department_id = ? AND permission_template_id = ?",
			userID, user.DepartmentID, templateID).
		Where("(sub_department_id IS NULL OR sub_department_id = ?)", user.SubDepartmentID).
		Where("(role_id IS NULL OR role_id = ?)", user.RoleID).
		Order("sub_department_id IS NULL").
		Order("role_id IS NULL").
		First(&grant).Error
	if err == nil {
		return Decision{Allowed: grant.Allowed, Matched: true, Tier: models.TierUser}, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Decision{}, err
	}

	// role tier: grants for the user's role within their department. A
	// grant pinned to the user's sub-department outranks one declared for
	// the role across the whole department.
	err = s.db.
		Where("user_id IS NULL AND role_id = ? AND department_id = ?", user.RoleID, user.DepartmentID).
		Where("(sub_department_id IS NULL OR sub_department_id = ?)", user.SubDepartmentID).
		Where("permission_template_id = ?", templateID).
		Order("sub_department_id IS NULL").
		First(&grant).Error
	if err == nil {
		return Decision{Allowed: grant.Allowed, Matched: true, Tier: models.TierRole}, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Decision{}, err
	}

	// sub-department tier.
	err = s.db.
		Where("user_id IS NULL AND role_id IS NULL AND sub_department_id = ? AND department_id = ?",
			user.SubDepartmentID, user.DepartmentID).
		Where("permission_template_id = ?", templateID).
		First(&grant).Error
	if err == nil {
		return Decision{Allowed: grant.Allowed, Matched: true, Tier: models.TierSubDepartment}, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Decision{}, err
	}

	// department tier.
	err = s.db.
		Where("user_id IS NULL AND role_id IS NULL AND sub_department_id IS NULL AND department_id = ?",
			user.DepartmentID).
		Where("permission_template_id = ?", templateID).
		First(&grant).Error
	if err == nil {
		return Decision{Allowed: grant.Allowed, Matched: true, Tier: models.TierDepartment}, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Decision{}, err
	}

	// no grant at any tier: default deny.
	return Decision{Allowed: false, Matched: false}, nil
}

// HasPermission checks whether a user may perform the named action on the
// named dashboard. An unknown or inactive dashboard/action pair resolves
// to deny.
func (s *Service) HasPermission(userID uint64, dashboard, action string) (bool, error) {
	var template models.PermissionTemplate

	err := s.db.
		Joins("JOIN dashboards ON dashboards.id = permission_templates.dashboard_id").
		Where("dashboards.name = ? AND permission_templates.action_name = ?", dashboard, action).
		Where("permission_templates.is_active = ?", true).
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	decision, err := s.Resolve(userID, template.ID)
	if err != nil {
		return false, err
	}

	return decision.Allowed, nil
}
