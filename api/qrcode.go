package api

import (
	"context"
	"encoding/json"
	"fmt"

	"cinema_admin/model"

	"github.com/gofiber/fiber/v2"
)

// DirectPayment gửi đơn hàng đã chiếu lên /qrcode/direct-payment.
// Phản hồi lỗi có body {success:false} được trả như kết quả bị từ chối.
func (c *Client) DirectPayment(ctx context.Context, req model.PaymentRequest) (model.PaymentResult, error) {
	var res model.PaymentResult
	err := c.do(ctx, request{method: fiber.MethodPost, path: "/qrcode/direct-payment", body: req, auth: true}, &res)
	if err != nil {
		var declined model.PaymentResult
		if recoverBody(err, &declined) && declined.Message != "" {
			declined.Success = false
			return declined, nil
		}
		return model.PaymentResult{}, err
	}
	return res, nil
}

// CheckQRCode xác minh mã thanh toán đọc được từ QR
func (c *Client) CheckQRCode(ctx context.Context, paymentID string) (model.QRCheckResult, error) {
	payload, err := json.Marshal(model.QRPayload{PaymentID: paymentID})
	if err != nil {
		return model.QRCheckResult{}, fmt.Errorf("api: encode qr payload: %w", err)
	}

	var res model.QRCheckResult
	err = c.do(ctx, request{
		method: fiber.MethodPost,
		path:   "/qrcode/check-qrcode",
		body:   model.QRCheckRequest{QrData: string(payload)},
		auth:   true,
	}, &res)
	if err != nil {
		var declined model.QRCheckResult
		if recoverBody(err, &declined) && declined.Message != "" {
			declined.Success = false
			return declined, nil
		}
		return model.QRCheckResult{}, err
	}
	return res, nil
}
