package validate

import (
	"cinema_admin/model"

	"github.com/gofiber/fiber/v2"
)

func MovieInput() fiber.Handler {
	return body[model.MovieInput]("inputMovie")
}
