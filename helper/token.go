package helper

import (
	"errors"
	"fmt"

	"cinema_admin/model"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidClaim = errors.New("token has no role")

// DecodeClaim đọc claim của access token mà không kiểm chữ ký.
// Token do backend cấp, backend tự kiểm khi nhận request; ở đây chỉ cần role để chặn route.
func DecodeClaim(token string) (model.TokenClaim, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return model.TokenClaim{}, fmt.Errorf("decode token: %w", err)
	}

	var claim model.TokenClaim
	claim.Role, _ = claims["role"].(string)
	claim.Username, _ = claims["username"].(string)
	claim.Subject, _ = claims.GetSubject()
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		claim.Exp = exp.Unix()
	}
	if claim.Role == "" {
		return claim, ErrInvalidClaim
	}
	return claim, nil
}
