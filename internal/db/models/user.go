package models

import "time"

// User represents an individual actor in the system.
// Every user belongs to exactly one department, one sub-department and one
// role; those references anchor which permission grants apply to them.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Username is the display name for the user.
	Username string `gorm:"size:100;not null" json:"username"`
	// Email is the globally unique email address of the user.
	Email string `gorm:"unique;size:255;not null" json:"email"`
	// DepartmentID is the ID of the department the user belongs to.
	DepartmentID uint `gorm:"not null" json:"department_id"`
	// Department is the associated department (loaded via foreign key).
	// Deleting a department removes its users (CASCADE).
	Department Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"-"`
	// SubDepartmentID is the ID of the sub-department the user belongs to.
	SubDepartmentID uint `gorm:"not null" json:"sub_department_id"`
	// SubDepartment is the associated sub-department (loaded via foreign key).
	SubDepartment SubDepartment `gorm:"foreignKey:SubDepartmentID;constraint:OnDelete:CASCADE" json:"-"`
	// RoleID is the ID of the role assigned to this user.
	RoleID uint `gorm:"not null" json:"role_id"`
	// Role is the associated role (loaded via foreign key).
	Role Role `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"-"`
	// IsActive indicates whether the user account is active. Inactive
	// accounts hold no effective permissions.
	IsActive bool `gorm:"not null" json:"is_active"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the User model.
// This overrides GORM's default pluralized table naming.
func (User) TableName() string {
	return "users"
}
