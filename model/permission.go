package model

type Permission struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type EmployeePermission struct {
	ID          uint     `json:"id"`
	FullName    string   `json:"fullname"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}

type AssignPermissionsInput struct {
	UserID        uint   `json:"userId" validate:"required"`
	PermissionIDs []uint `json:"permissionIds" validate:"required"`
}

// AssignPermissionsRequest là body backend nhận, quyền được gửi theo tên
type AssignPermissionsRequest struct {
	UserID          uint     `json:"userId"`
	RoleName        string   `json:"roleName"`
	PermissionNames []string `json:"permissionNames"`
}
