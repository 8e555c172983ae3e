package api

import "context"

type sessionKey struct{}

// WithSession gắn phiên đăng nhập của trình duyệt vào ctx, các request cần xác thực
// sẽ dùng access token của phiên này
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

func SessionFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
