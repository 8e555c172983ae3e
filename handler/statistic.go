package handler

import (
	"cinema_admin/model"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetStatisticToday(c *fiber.Ctx) error {
	res, err := h.Stats.Get(c.UserContext())
	if err != nil {
		return h.backendError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *Handler) GetStatisticByPeriod(c *fiber.Ctx) error {
	res, err := h.Backend.StatisticByPeriod(c.UserContext(), c.Locals("period").(string), c.Locals("inputStatistic").(model.StatisticPeriodInput))
	if err != nil {
		return h.backendError(c, err)
	}
	return c.Status(fiber.StatusOK).Type("json").Send(res)
}
