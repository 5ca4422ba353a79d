package models

import "time"

// Tier identifies the specificity level a permission grant is declared at.
// A grant's tier is derived from which optional scope references are set,
// never stored. More specific tiers override less specific ones during
// resolution: user > role > sub-department > department.
type Tier string

const (
	// TierDepartment is a grant applying to everyone in a department.
	TierDepartment Tier = "department"
	// TierSubDepartment is a grant applying to everyone in a sub-department.
	TierSubDepartment Tier = "sub_department"
	// TierRole is a grant applying to everyone holding a role.
	TierRole Tier = "role"
	// TierUser is a grant applying to a single user.
	TierUser Tier = "user"
)

// Permission binds a permission template to an organizational scope with an
// allow/deny flag. The four partial unique indexes below enforce at most
// one grant per (scope fingerprint, template) at each tier while letting
// the same template carry independent grants at different tiers, which is
// what makes override composition (e.g. department-level deny plus
// user-level allow) possible. Uniqueness lives in the database on purpose:
// an application-side existence check would race under concurrent writers.
type Permission struct {
	// ID is the unique identifier for the grant.
	ID uint `gorm:"primaryKey" json:"id"`
	// DepartmentID anchors the grant to a department. Always required.
	DepartmentID uint `gorm:"not null;uniqueIndex:idx_perm_department,priority:1,where:sub_department_id IS NULL AND role_id IS NULL AND user_id IS NULL;uniqueIndex:idx_perm_sub_department,priority:1,where:role_id IS NULL AND user_id IS NULL;uniqueIndex:idx_perm_role,priority:1,where:user_id IS NULL;uniqueIndex:idx_perm_user,priority:1" json:"department_id"`
	// Department is the anchoring department (loaded via foreign key).
	Department Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"-"`
	// SubDepartmentID narrows the grant to a sub-department when set.
	SubDepartmentID *uint `gorm:"uniqueIndex:idx_perm_sub_department,priority:2;uniqueIndex:idx_perm_role,priority:2;uniqueIndex:idx_perm_user,priority:2" json:"sub_department_id"`
	// SubDepartment is the associated sub-department, if any.
	SubDepartment *SubDepartment `gorm:"foreignKey:SubDepartmentID;constraint:OnDelete:CASCADE" json:"-"`
	// RoleID narrows the grant to a role when set.
	RoleID *uint `gorm:"uniqueIndex:idx_perm_role,priority:3;uniqueIndex:idx_perm_user,priority:3" json:"role_id"`
	// Role is the associated role, if any.
	Role *Role `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"-"`
	// UserID narrows the grant to a single user when set.
	UserID *uint64 `gorm:"uniqueIndex:idx_perm_user,priority:4" json:"user_id"`
	// User is the associated user, if any.
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	// PermissionTemplateID is the template being allowed or denied.
	PermissionTemplateID uint `gorm:"not null;uniqueIndex:idx_perm_department,priority:5;uniqueIndex:idx_perm_sub_department,priority:5;uniqueIndex:idx_perm_role,priority:5;uniqueIndex:idx_perm_user,priority:5" json:"permission_template_id"`
	// PermissionTemplate is the associated template (loaded via foreign key).
	PermissionTemplate PermissionTemplate `gorm:"foreignKey:PermissionTemplateID;constraint:OnDelete:CASCADE" json:"-"`
	// Allowed is the allow/deny flag for the grant. Written explicitly on
	// every insert; a column default would swallow explicit false values.
	Allowed bool `gorm:"not null" json:"allowed"`
	// CreatedAt is the timestamp when the grant was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the grant was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Permission model.
// This overrides GORM's default pluralized table naming.
func (Permission) TableName() string {
	return "permissions"
}

// Tier derives the specificity tier of the grant from its populated scope
// references.
func (p *Permission) Tier() Tier {
	switch {
	case p.UserID != nil:
		return TierUser
	case p.RoleID != nil:
		return TierRole
	case p.SubDepartmentID != nil:
		return TierSubDepartment
	default:
		return TierDepartment
	}
}
