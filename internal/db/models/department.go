// Package models contains database model definitions.
package models

import "time"

// Department represents a top-level organizational unit.
// Departments own sub-departments, users and permission grants; deleting a
// department cascades to all of them.
type Department struct {
	// ID is the unique identifier for the department.
	ID uint `gorm:"primaryKey" json:"id"`
	// Name is the globally unique department name.
	Name string `gorm:"unique;size:50;not null" json:"name"`
	// Description provides a human-readable explanation of the department's purpose.
	Description string `gorm:"type:text" json:"description"`
	// CreatedAt is the timestamp when the department was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the department was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Department model.
// This overrides GORM's default pluralized table naming.
func (Department) TableName() string {
	return "departments"
}
