package validate

import (
	"errors"

	"cinema_admin/constants"
	"cinema_admin/model"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

func ShowtimeInput() fiber.Handler {
	return body[model.ShowtimeInput]("inputShowtime")
}

func AutoGenerateShowtime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AutoGenerateShowtimeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		start, err := utils.ParseDate(input.StartDate)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		end, err := utils.ParseDate(input.EndDate)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if end.Before(start.Time) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("endDate before startDate"))
		}

		c.Locals("inputAutoGenerate", input)
		return c.Next()
	}
}
