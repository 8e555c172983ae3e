package middleware

import (
	"context"
	"errors"
	"slices"
	"strings"

	"cinema_admin/api"
	"cinema_admin/constants"
	"cinema_admin/helper"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

type TokenReader interface {
	Get(ctx context.Context, sessionID string) (string, error)
}

// SessionID lấy phiên đăng nhập từ cookie, không có thì từ header Authorization: Bearer xxx
func SessionID(c *fiber.Ctx) string {
	id := c.Cookies(constants.SESSION_COOKIE)
	if id == "" {
		auth := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(auth, "Bearer ") {
			id = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		}
	}
	return id
}

// Protected chặn route theo role trong access token của phiên gửi kèm request.
// Không có roles thì chỉ cần đã đăng nhập.
func Protected(tokens TokenReader, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := SessionID(c)
		if sessionID == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no session"))
		}

		token, err := tokens.Get(c.UserContext(), sessionID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.SESSION_EXPIRED, errors.New("unknown session"))
		}

		claim, err := helper.DecodeClaim(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, err)
		}
		if len(roles) > 0 && !slices.Contains(roles, claim.Role) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("not permission"))
		}

		c.Locals("claim", claim)
		c.Locals("sessionId", sessionID)
		c.SetUserContext(api.WithSession(c.UserContext(), sessionID))
		return c.Next()
	}
}
