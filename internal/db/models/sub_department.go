package models

import "time"

// SubDepartment represents an organizational unit nested under a department.
// Sub-department names are unique within their owning department only, so
// two departments may each have e.g. an "Operations" sub-department.
type SubDepartment struct {
	// ID is the unique identifier for the sub-department.
	ID uint `gorm:"primaryKey" json:"id"`
	// Name is the sub-department name, unique per owning department.
	Name string `gorm:"size:50;not null;uniqueIndex:idx_subdept_name_department" json:"name"`
	// Description provides a human-readable explanation of the sub-department's purpose.
	Description string `gorm:"type:text" json:"description"`
	// DepartmentID is the ID of the owning department.
	DepartmentID uint `gorm:"not null;uniqueIndex:idx_subdept_name_department" json:"department_id"`
	// Department is the owning department (loaded via foreign key).
	// When a department is deleted, its sub-departments are removed as well (CASCADE).
	Department Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"-"`
	// CreatedAt is the timestamp when the sub-department was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the sub-department was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the SubDepartment model.
// This overrides GORM's default pluralized table naming.
func (SubDepartment) TableName() string {
	return "sub_departments"
}
