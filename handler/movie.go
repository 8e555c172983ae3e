package handler

import (
	"cinema_admin/model"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetMovies(c *fiber.Ctx) error {
	res, err := h.Backend.SearchMovies(c.UserContext(), c.Locals("listQuery").(model.ListQuery))
	if err != nil {
		return h.backendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *Handler) CreateMovie(c *fiber.Ctx) error {
	res, err := h.Backend.CreateMovie(c.UserContext(), c.Locals("inputMovie").(model.MovieInput))
	if err != nil {
		return h.backendError(c, err)
	}
	return c.Status(fiber.StatusCreated).Type("json").Send(res)
}

func (h *Handler) EditMovie(c *fiber.Ctx) error {
	res, err := h.Backend.UpdateMovie(c.UserContext(), c.Locals("inputId").(uint), c.Locals("inputMovie").(model.MovieInput))
	if err != nil {
		return h.backendError(c, err)
	}
	return c.Status(fiber.StatusOK).Type("json").Send(res)
}

func (h *Handler) DeleteMovie(c *fiber.Ctx) error {
	res, err := h.Backend.DeleteMovie(c.UserContext(), c.Locals("inputId").(uint))
	if err != nil {
		return h.backendError(c, err)
	}
	return c.Status(fiber.StatusOK).Type("json").Send(res)
}
