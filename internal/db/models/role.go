package models

import "time"

// Role represents a job function users can be assigned to.
// Role names are global, not scoped to a department.
type Role struct {
	// ID is the unique identifier for the role.
	ID uint `gorm:"primaryKey" json:"id"`
	// Name is the unique name of the role (e.g. "manager", "engineer").
	Name string `gorm:"unique;size:50;not null" json:"name"`
	// Description provides a human-readable description of the role's purpose.
	Description string `gorm:"type:text" json:"description"`
	// CreatedAt is the timestamp when the role was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the role was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Role model.
// The singular form matches the existing schema.
func (Role) TableName() string {
	return "role"
}
