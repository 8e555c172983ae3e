package handler

import (
	"cinema_admin/model"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetCinemas(c *fiber.Ctx) error {
	res, err := h.Backend.SearchCinemas(c.UserContext(), c.Locals("listQuery").(model.ListQuery))
	if err != nil {
		return h.backendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *Handler) CreateCinema(c *fiber.Ctx) error {
	res, err := h.Backend.CreateCinema(c.UserContext(), c.Locals("inputCinema").(model.CinemaInput))
	if err != nil {
		return h.backendError(c, err)
	}
	return c.Status(fiber.StatusCreated).Type("json").Send(res)
}

func (h *Handler) EditCinema(c *fiber.Ctx) error {
	res, err := h.Backend.UpdateCinema(c.UserContext(), c.Locals("inputId").(uint), c.Locals("inputCinema").(model.CinemaInput))
	if err != nil {
		return h.backendError(c, err)
	}
	return c.Status(fiber.StatusOK).Type("json").Send(res)
}

func (h *Handler) DeleteCinema(c *fiber.Ctx) error {
	res, err := h.Backend.DeleteCinema(c.UserContext(), c.Locals("inputId").(uint))
	if err != nil {
		return h.backendError(c, err)
	}
	return c.Status(fiber.StatusOK).Type("json").Send(res)
}

// GetMoviesByCinema phim và suất chiếu của rạp trong ngày, dùng cho màn chọn rạp khi bán vé
func (h *Handler) GetMoviesByCinema(c *fiber.Ctx) error {
	res, err := h.Backend.MoviesByCinema(c.UserContext(), c.Locals("inputId").(uint), c.Locals("inputDate").(utils.CustomDate))
	if err != nil {
		return h.backendError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, res)
}
