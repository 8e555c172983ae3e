package api

import (
	"context"
	"encoding/json"
	"errors"

	"cinema_admin/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var ErrNoToken = errors.New("api: login response has no access token")

// Login đăng nhập, mở một phiên mới và lưu access token của phiên vào TokenStore
func (c *Client) Login(ctx context.Context, input model.LoginInput) (sessionID, token string, err error) {
	var res model.TokenResponse
	if err := c.do(ctx, request{method: fiber.MethodPost, path: "/auth/login", body: input}, &res); err != nil {
		return "", "", err
	}
	if res.Token.AccessToken == "" {
		return "", "", ErrNoToken
	}
	sessionID = uuid.New().String()
	if err := c.tokens.Set(ctx, sessionID, res.Token.AccessToken); err != nil {
		return "", "", err
	}
	return sessionID, res.Token.AccessToken, nil
}

// Logout xoá token của phiên trong ctx
func (c *Client) Logout(ctx context.Context) error {
	sessionID := SessionFrom(ctx)
	if sessionID == "" {
		return nil
	}
	return c.tokens.Delete(ctx, sessionID)
}

func (c *Client) Register(ctx context.Context, input model.RegisterEmployeeInput) (json.RawMessage, error) {
	var res json.RawMessage
	err := c.do(ctx, request{method: fiber.MethodPost, path: "/auth/register", body: input, auth: true}, &res)
	return res, err
}

func (c *Client) GetUser(ctx context.Context) (json.RawMessage, error) {
	var res json.RawMessage
	err := c.do(ctx, request{method: fiber.MethodGet, path: "/auth/get-user", auth: true}, &res)
	return res, err
}
