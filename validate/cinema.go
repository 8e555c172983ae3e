package validate

import (
	"strings"

	"cinema_admin/constants"
	"cinema_admin/model"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

func CinemaInput() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CinemaInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		input.Name = strings.TrimSpace(input.Name)
		input.Address = strings.TrimSpace(input.Address)
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputCinema", input)
		return c.Next()
	}
}

func MoviesByCinema() fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, err := utils.ParseDate(c.Query("date"))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		c.Locals("inputDate", date)
		return c.Next()
	}
}
