package handler

import (
	"errors"

	"cinema_admin/constants"
	"cinema_admin/scanner"
	"cinema_admin/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) scannerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scanner.ErrScanning):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SCANNER_RUNNING, err)
	case errors.Is(err, scanner.ErrDeviceBusy):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.CAMERA_BUSY, err)
	case errors.Is(err, scanner.ErrNoDevice):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CAMERA_UNAVAILABLE, err)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAMERA_LIST_FAILED, err)
}

func (h *Handler) GetScanner(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.Scanner.Snapshot())
}

func (h *Handler) StartScanner(c *fiber.Ctx) error {
	if err := h.Scanner.Start(c.UserContext()); err != nil {
		return h.scannerError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, h.Scanner.Snapshot())
}

func (h *Handler) StopScanner(c *fiber.Ctx) error {
	h.Scanner.Stop()
	return utils.SuccessResponse(c, fiber.StatusOK, h.Scanner.Snapshot())
}

func (h *Handler) ToggleScanner(c *fiber.Ctx) error {
	if err := h.Scanner.Toggle(c.UserContext()); err != nil {
		return h.scannerError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, h.Scanner.Snapshot())
}

func (h *Handler) SelectDevice(c *fiber.Ctx) error {
	if err := h.Scanner.SelectDevice(c.Locals("deviceId").(string)); err != nil {
		return h.scannerError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, h.Scanner.Snapshot())
}

func (h *Handler) GetDevices(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.Scanner.Devices())
}

// ScannerSocket đẩy snapshot máy quét mỗi khi trạng thái đổi
func (h *Handler) ScannerSocket(c *websocket.Conn) {
	updates, unsubscribe := h.Scanner.Subscribe()
	defer func() {
		unsubscribe()
		c.Close()
	}()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				return
			}
			if err := c.WriteJSON(snap); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}

// CameraFeed nhận khung hình JPEG/PNG từ camera của trình duyệt.
// Mỗi kết nối là một thiết bị :deviceId cho tới khi ngắt.
func (h *Handler) CameraFeed(c *websocket.Conn) {
	feed := h.Camera.Attach(c.Params("deviceId"), c.Query("label"))
	h.Log.Info("camera feed connected", zap.String("deviceId", feed.ID()))
	defer func() {
		h.Camera.Detach(feed)
		c.Close()
		h.Log.Info("camera feed disconnected", zap.String("deviceId", feed.ID()))
	}()

	for {
		mt, data, err := c.ReadMessage()
		if err != nil {
			return
		}
		if mt != websocket.BinaryMessage {
			continue
		}
		if err := feed.Push(data); err != nil {
			h.Log.Debug("drop camera frame", zap.String("deviceId", feed.ID()), zap.Error(err))
		}
	}
}
