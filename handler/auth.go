package handler

import (
	"time"

	"cinema_admin/api"
	"cinema_admin/constants"
	"cinema_admin/helper"
	"cinema_admin/middleware"
	"cinema_admin/model"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func sessionCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     constants.SESSION_COOKIE,
		Value:    value,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  expires,
	}
}

// Login đăng nhập qua backend; access token ở lại server, trình duyệt chỉ giữ session id
func (h *Handler) Login(c *fiber.Ctx) error {
	input := c.Locals("inputLogin").(model.LoginInput)

	sessionID, token, err := h.Backend.Login(c.UserContext(), input)
	if err != nil {
		return h.backendError(c, err)
	}

	claim, err := helper.DecodeClaim(token)
	if err != nil {
		_ = h.Backend.Logout(api.WithSession(c.UserContext(), sessionID))
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_FAILED, err)
	}
	if claim.Role != constants.ROLE_ADMIN && claim.Role != constants.ROLE_EMPLOYEE {
		h.Log.Warn("login by non staff account", zap.String("username", claim.Username), zap.String("role", claim.Role))
	}

	var expires time.Time
	if claim.Exp > 0 {
		expires = time.Unix(claim.Exp, 0)
	}
	c.Cookie(sessionCookie(sessionID, expires))
	return utils.MessageResponse(c, fiber.StatusOK, constants.LOGIN_SUCCESS, model.Me{
		Role:      claim.Role,
		Username:  claim.Username,
		Exp:       claim.Exp,
		SessionID: sessionID,
	})
}

// Logout xoá token của phiên gửi kèm request và tắt máy quét
func (h *Handler) Logout(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)
	h.Scanner.Stop()
	if sessionID != "" {
		if err := h.Backend.Logout(api.WithSession(c.UserContext(), sessionID)); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		h.Stats.Invalidate(sessionID)
	}
	c.Cookie(sessionCookie("", time.Unix(0, 0)))
	return utils.MessageResponse(c, fiber.StatusOK, constants.LOGOUT_SUCCESS, nil)
}

func (h *Handler) Me(c *fiber.Ctx) error {
	claim := c.Locals("claim").(model.TokenClaim)
	return utils.SuccessResponse(c, fiber.StatusOK, model.Me{
		Role:     claim.Role,
		Username: claim.Username,
		Exp:      claim.Exp,
	})
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	res, err := h.Backend.GetUser(c.UserContext())
	if err != nil {
		return h.backendError(c, err)
	}
	return c.Status(fiber.StatusOK).Type("json").Send(res)
}

func (h *Handler) RegisterEmployee(c *fiber.Ctx) error {
	input := c.Locals("inputRegister").(model.RegisterEmployeeInput)
	if input.Role == "" {
		input.Role = constants.ROLE_EMPLOYEE
	}
	res, err := h.Backend.Register(c.UserContext(), input)
	if err != nil {
		return h.backendError(c, err)
	}
	return c.Status(fiber.StatusCreated).Type("json").Send(res)
}
