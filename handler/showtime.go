package handler

import (
	"cinema_admin/model"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetShowtimes(c *fiber.Ctx) error {
	res, err := h.Backend.SearchShowtimes(c.UserContext(), c.Locals("listQuery").(model.ListQuery))
	if err != nil {
		return h.backendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

// showtimeResult: trùng lịch hay lỗi nghiệp vụ vẫn là kết quả, trả 409 kèm lịch bị trùng
func showtimeResult(c *fiber.Ctx, okStatus int, res model.ShowtimeResult) error {
	if res.OK() {
		return c.Status(okStatus).JSON(res)
	}
	if res.ConflictingSchedule != nil {
		return c.Status(fiber.StatusConflict).JSON(res)
	}
	return c.Status(fiber.StatusBadRequest).JSON(res)
}

func (h *Handler) CreateShowtime(c *fiber.Ctx) error {
	res, err := h.Backend.CreateShowtime(c.UserContext(), c.Locals("inputShowtime").(model.ShowtimeInput))
	if err != nil {
		return h.backendError(c, err)
	}
	return showtimeResult(c, fiber.StatusCreated, res)
}

func (h *Handler) EditShowtime(c *fiber.Ctx) error {
	res, err := h.Backend.UpdateShowtime(c.UserContext(), c.Locals("inputId").(uint), c.Locals("inputShowtime").(model.ShowtimeInput))
	if err != nil {
		return h.backendError(c, err)
	}
	return showtimeResult(c, fiber.StatusOK, res)
}

func (h *Handler) DeleteShowtime(c *fiber.Ctx) error {
	res, err := h.Backend.DeleteShowtime(c.UserContext(), c.Locals("inputId").(uint))
	if err != nil {
		return h.backendError(c, err)
	}
	return showtimeResult(c, fiber.StatusOK, res)
}

func (h *Handler) AutoGenerateShowtimes(c *fiber.Ctx) error {
	res, err := h.Backend.AutoGenerateShowtimes(c.UserContext(), c.Locals("inputAutoGenerate").(model.AutoGenerateShowtimeInput))
	if err != nil {
		return h.backendError(c, err)
	}
	return showtimeResult(c, fiber.StatusCreated, res)
}
