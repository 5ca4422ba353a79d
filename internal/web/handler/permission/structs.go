package permission

type createInput struct {
	DepartmentID         uint    `json:"department_id" validate:"required"`
	SubDepartmentID      *uint   `json:"sub_department_id"`
	RoleID               *uint   `json:"role_id"`
	UserID               *uint64 `json:"user_id"`
	PermissionTemplateID uint    `json:"permission_template_id" validate:"required"`
	Allowed              *bool   `json:"allowed"`
}
