package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"cinema_admin/model"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	ErrUnauthenticated = errors.New("api: no access token")
	ErrSessionExpired  = errors.New("api: session expired")
)

// TokenStore lưu access token theo từng phiên đăng nhập
type TokenStore interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID, token string) error
	Delete(ctx context.Context, sessionID string) error
}

// Error là phản hồi HTTP lỗi từ backend
type Error struct {
	Status  int
	Message string
	Body    []byte
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

type Client struct {
	baseURL string
	timeout time.Duration
	tokens  TokenStore
	log     *zap.Logger

	renewMu sync.Mutex
}

func New(baseURL string, tokens TokenStore, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		tokens:  tokens,
		log:     log,
	}
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	auth   bool
}

// do gửi request, nếu backend trả 403 thì làm mới token và gửi lại đúng một lần
func (c *Client) do(ctx context.Context, r request, out any) error {
	token := ""
	sessionID := SessionFrom(ctx)
	if r.auth {
		if sessionID == "" {
			return ErrUnauthenticated
		}
		var err error
		token, err = c.tokens.Get(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("api: read token: %w", err)
		}
		if token == "" {
			return ErrUnauthenticated
		}
	}

	status, body, err := c.send(ctx, r, token)
	if err != nil {
		return err
	}

	if r.auth && status == fiber.StatusForbidden {
		token, err = c.renew(ctx, sessionID, token)
		if err != nil {
			return err
		}
		status, body, err = c.send(ctx, r, token)
		if err != nil {
			return err
		}
	}

	return decode(status, body, out)
}

func (c *Client) send(ctx context.Context, r request, token string) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(r.method)
	req.SetRequestURI(c.url(r.path, r.query))
	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return 0, nil, fmt.Errorf("api: %s %s: %w", r.method, r.path, err)
	}

	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	if r.body != nil {
		a.JSON(r.body)
	}
	a.Timeout(c.timeoutFor(ctx))

	start := time.Now()
	type result struct {
		code int
		body []byte
		errs []error
	}
	// Agent không nhận ctx: chạy riêng để trả về ngay khi ctx bị huỷ,
	// request bỏ dở vẫn bị giới hạn bởi timeout
	done := make(chan result, 1)
	go func() {
		code, body, errs := a.Bytes()
		done <- result{code, body, errs}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		c.log.Debug("backend request cancelled",
			zap.String("method", r.method),
			zap.String("path", r.path),
		)
		return 0, nil, ctx.Err()
	}
	code, body, errs := res.code, res.body, res.errs
	if len(errs) > 0 {
		c.log.Warn("backend request failed",
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.Errors("errors", errs),
		)
		return 0, nil, fmt.Errorf("api: %s %s: %w", r.method, r.path, errors.Join(errs...))
	}
	c.log.Debug("backend request",
		zap.String("method", r.method),
		zap.String("path", r.path),
		zap.Int("status", code),
		zap.Duration("latency", time.Since(start)),
	)
	return code, body, nil
}

func (c *Client) renew(ctx context.Context, sessionID, old string) (string, error) {
	c.renewMu.Lock()
	defer c.renewMu.Unlock()

	// request khác đã làm mới token trong lúc chờ khoá
	if current, err := c.tokens.Get(ctx, sessionID); err == nil && current != "" && current != old {
		return current, nil
	}

	c.log.Info("call refresh token API")
	status, body, err := c.send(ctx, request{
		method: fiber.MethodPost,
		path:   "/auth/renew-token",
		body:   model.RenewTokenInput{AccessToken: old},
	}, "")
	if err != nil {
		return "", err
	}
	if status == fiber.StatusBadRequest {
		if err := c.tokens.Delete(ctx, sessionID); err != nil {
			c.log.Error("delete token failed", zap.Error(err))
		}
		return "", ErrSessionExpired
	}

	var res model.TokenResponse
	if err := decode(status, body, &res); err != nil {
		return "", err
	}
	if res.Token.AccessToken == "" {
		return "", ErrSessionExpired
	}
	if err := c.tokens.Set(ctx, sessionID, res.Token.AccessToken); err != nil {
		return "", fmt.Errorf("api: store token: %w", err)
	}
	return res.Token.AccessToken, nil
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) timeoutFor(ctx context.Context) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < c.timeout {
			return left
		}
	}
	return c.timeout
}

func decode(status int, body []byte, out any) error {
	if status < 200 || status >= 300 {
		apiErr := &Error{Status: status, Body: body}
		var msg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &msg) == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

// recoverBody: với các API trả kết quả nghiệp vụ kèm mã lỗi HTTP, đọc lại body lỗi vào out
func recoverBody(err error, out any) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) || len(apiErr.Body) == 0 {
		return false
	}
	return json.Unmarshal(apiErr.Body, out) == nil
}
