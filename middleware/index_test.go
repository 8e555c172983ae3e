package middleware

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"cinema_admin/api"
	"cinema_admin/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessions là TokenReader cố định theo session id
type sessions map[string]string

func (s sessions) Get(_ context.Context, sessionID string) (string, error) { return s[sessionID], nil }

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": role, "username": "u"}).SignedString([]byte("k"))
	require.NoError(t, err)
	return token
}

func app(tokens TokenReader, roles ...string) *fiber.App {
	a := fiber.New()
	a.Get("/", Protected(tokens, roles...), func(c *fiber.Ctx) error {
		claim := c.Locals("claim").(model.TokenClaim)
		return c.SendString(claim.Role + "|" + api.SessionFrom(c.UserContext()))
	})
	return a
}

func TestProtected(t *testing.T) {
	store := sessions{
		"emp":     tokenFor(t, "employee"),
		"adm":     tokenFor(t, "admin"),
		"garbage": "abc",
	}
	cases := []struct {
		name    string
		session string
		roles   []string
		status  int
	}{
		{"no session", "", nil, fiber.StatusUnauthorized},
		{"unknown session", "nope", nil, fiber.StatusUnauthorized},
		{"garbage token", "garbage", nil, fiber.StatusUnauthorized},
		{"any role", "emp", nil, fiber.StatusOK},
		{"allowed role", "adm", []string{"admin"}, fiber.StatusOK},
		{"role not allowed", "emp", []string{"admin"}, fiber.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tc.session != "" {
				req.Header.Set("Authorization", "Bearer "+tc.session)
			}
			resp, err := app(store, tc.roles...).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestProtectedReadsCookieAndSetsSession(t *testing.T) {
	store := sessions{"adm": tokenFor(t, "admin")}
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Cookie", "session_id=adm")

	resp, err := app(store).Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "admin|adm", string(body))
}
