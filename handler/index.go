package handler

import (
	"errors"

	"cinema_admin/api"
	"cinema_admin/checkout"
	"cinema_admin/constants"
	"cinema_admin/helper"
	"cinema_admin/order"
	"cinema_admin/scanner"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	Backend  *api.Client
	Orders   *order.Registry
	Checkout *checkout.Submitter
	Scanner  *scanner.Scanner
	Camera   *scanner.FeedCamera
	Stats    *helper.StatisticCache
	Log      *zap.Logger
}

// backendError chuyển lỗi gọi backend thành phản hồi cho trình duyệt
func (h *Handler) backendError(c *fiber.Ctx, err error) error {
	var apiErr *api.Error
	switch {
	case errors.Is(err, api.ErrUnauthenticated):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, err)
	case errors.Is(err, api.ErrSessionExpired):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.SESSION_EXPIRED, err)
	case errors.As(err, &apiErr):
		msg := apiErr.Message
		if msg == "" {
			msg = constants.ERROR_BACKEND
		}
		return utils.ErrorResponse(c, apiErr.Status, msg, err)
	}

	h.Log.Error("backend call failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.ERROR_BACKEND, err)
}
