package utils

import (
	"errors"

	"github.com/gosimple/slug"
	"github.com/skip2/go-qrcode"
)

var ErrEmptyQRContent = errors.New("qr content is empty")

// GenerateQRCode mã hoá content thành ảnh PNG vuông cạnh size px.
// Vé in ra giấy nên gọi với qrcode.High để còn đọc được khi bị nhàu.
func GenerateQRCode(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyQRContent
	}
	return qrcode.Encode(content, level, size)
}

// QRFileName tên file tải về cho ảnh QR của một mã thanh toán
func QRFileName(paymentID string) string {
	name := slug.Make(paymentID)
	if name == "" {
		name = "payment"
	}
	return "qr-" + name + ".png"
}
