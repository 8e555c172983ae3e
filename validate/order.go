package validate

import (
	"cinema_admin/constants"
	"cinema_admin/model"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

// UpdateOrder kiểm tra patch trước khi tới store: loại ghế hợp lệ, giá >= 0, số lượng dịch vụ >= 1
func UpdateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.OrderPatch
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputOrderPatch", input)
		return c.Next()
	}
}
