package handler

import (
	"fmt"

	"cinema_admin/constants"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/skip2/go-qrcode"
)

const qrImageSize = 256

// QRCodeImage sinh ảnh QR cho một mã thanh toán, dùng để in lại vé
func (h *Handler) QRCodeImage(c *fiber.Ctx) error {
	paymentID := c.Locals("paymentId").(string)
	png, err := utils.GenerateQRCode(paymentID, qrcode.High, qrImageSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.QR_GENERATE_FAILED, err)
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, utils.QRFileName(paymentID)))
	c.Type("png")
	return c.Send(png)
}
