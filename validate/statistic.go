package validate

import (
	"errors"
	"slices"

	"cinema_admin/constants"
	"cinema_admin/model"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

var statisticPeriods = []string{"week", "month", "year"}

func StatisticPeriod() fiber.Handler {
	return func(c *fiber.Ctx) error {
		period := c.Params("period")
		if !slices.Contains(statisticPeriods, period) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("period must be week, month or year"))
		}

		var input model.StatisticPeriodInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if period == "week" && input.Week == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("week is required"))
		}
		if period == "month" && input.Month == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("month is required"))
		}

		c.Locals("period", period)
		c.Locals("inputStatistic", input)
		return c.Next()
	}
}
