package models

import "time"

// Dashboard represents a permission-bearing surface that permission
// templates are declared against.
type Dashboard struct {
	// ID is the unique identifier for the dashboard.
	ID uint `gorm:"primaryKey" json:"id"`
	// Name is the globally unique dashboard name.
	Name string `gorm:"unique;size:50;not null" json:"name"`
	// Description provides a human-readable explanation of the dashboard.
	Description string `gorm:"type:text" json:"description"`
	// Config holds arbitrary structured configuration as raw JSON.
	// The contents are opaque to this service and are stored verbatim.
	Config JSONValue `gorm:"type:text" json:"config"`
	// CreatedAt is the timestamp when the dashboard was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the dashboard was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Dashboard model.
// This overrides GORM's default pluralized table naming.
func (Dashboard) TableName() string {
	return "dashboards"
}
