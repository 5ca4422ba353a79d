package models

import "time"

// PermissionTemplate declares a named action on a dashboard.
// Templates are the unit being allowed or denied by Permission grants.
// An action name may be declared only once per dashboard.
type PermissionTemplate struct {
	// ID is the unique identifier for the permission template.
	ID uint `gorm:"primaryKey" json:"id"`
	// DashboardID is the ID of the dashboard this template belongs to.
	DashboardID uint `gorm:"not null;uniqueIndex:idx_template_dashboard_action" json:"dashboard_id"`
	// Dashboard is the owning dashboard (loaded via foreign key).
	// Deleting a dashboard removes its templates (CASCADE).
	Dashboard Dashboard `gorm:"foreignKey:DashboardID;constraint:OnDelete:CASCADE" json:"-"`
	// ActionName is the action declared by this template (e.g. "export", "approve").
	ActionName string `gorm:"size:100;not null;uniqueIndex:idx_template_dashboard_action" json:"action_name"`
	// Description provides a human-readable explanation of the action.
	Description string `gorm:"type:text" json:"description"`
	// IsActive indicates whether the template is currently in use.
	// Grants against an inactive template do not resolve.
	IsActive bool `gorm:"not null" json:"is_active"`
	// CreatedAt is the timestamp when the template was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the template was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the PermissionTemplate model.
// This overrides GORM's default pluralized table naming.
func (PermissionTemplate) TableName() string {
	return "permission_templates"
}
