package validate

import (
	"errors"
	"strings"

	"cinema_admin/constants"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

type selectDeviceInput struct {
	DeviceID string `json:"deviceId" validate:"required,max=128"`
}

func SelectDevice() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input selectDeviceInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		input.DeviceID = strings.TrimSpace(input.DeviceID)
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("deviceId", input.DeviceID)
		return c.Next()
	}
}

func PaymentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Params("paymentId"))
		if id == "" || len(id) > 256 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("paymentId invalid"))
		}
		c.Locals("paymentId", id)
		return c.Next()
	}
}
