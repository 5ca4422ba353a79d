package daemon

import (
	"gorm.io/gorm"

	"github.com/civilapp/user-management/internal/config"
	"github.com/civilapp/user-management/internal/db/models"
)

// seed creates minimal reference data on an empty database so the service
// is usable right after first start.
func seed(_ *config.Config, db *gorm.DB) {
	var count int64
	db.Model(&models.Department{}).Count(&count)
	if count > 0 {
		return
	}

	dept := models.Department{
		Name:        "General",
		Description: "Default department",
	}
	db.Create(&dept)

	subDept := models.SubDepartment{
		Name:         "Operations",
		Description:  "Default sub-department",
		DepartmentID: dept.ID,
	}
	db.Create(&subDept)

	role := models.Role{
		Name:        "admin",
		Description: "Administrator role",
	}
	db.Create(&role)

	db.Create(
		&models.User{
			Username:        "admin",
			Email:           "admin@localhost",
			DepartmentID:    dept.ID,
			SubDepartmentID: subDept.ID,
			RoleID:          role.ID,
			IsActive:        true,
		},
	)
}
