package validate

import (
	"cinema_admin/model"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return body[model.LoginInput]("inputLogin")
}

func RegisterEmployee() fiber.Handler {
	return body[model.RegisterEmployeeInput]("inputRegister")
}

func AssignPermissions() fiber.Handler {
	return body[model.AssignPermissionsInput]("inputAssignPermissions")
}
