package handler

import (
	"errors"

	"cinema_admin/checkout"
	"cinema_admin/constants"
	"cinema_admin/model"
	"cinema_admin/order"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

// LoadOrder tìm phiên đặt vé theo :sessionId và lưu vào Locals
func (h *Handler) LoadOrder(c *fiber.Ctx) error {
	s, err := h.Orders.Get(c.Params("sessionId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}
	c.Locals("orderSession", s)
	return c.Next()
}

func (h *Handler) orderView(s *order.Session) model.OrderSession {
	o := s.Store.Get()
	return model.OrderSession{
		SessionID:  s.ID,
		Processing: h.Checkout.Processing(s.ID),
		SeatSlots:  o.SeatSlots(),
		Order:      o,
	}
}

func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	s := h.Orders.Create()
	return utils.SuccessResponse(c, fiber.StatusCreated, h.orderView(s))
}

func (h *Handler) GetOrder(c *fiber.Ctx) error {
	s := c.Locals("orderSession").(*order.Session)
	return utils.SuccessResponse(c, fiber.StatusOK, h.orderView(s))
}

func (h *Handler) UpdateOrder(c *fiber.Ctx) error {
	s := c.Locals("orderSession").(*order.Session)
	patch := c.Locals("inputOrderPatch").(model.OrderPatch)
	s.Store.Update(patch)
	return utils.SuccessResponse(c, fiber.StatusOK, h.orderView(s))
}

func (h *Handler) ResetOrder(c *fiber.Ctx) error {
	s := c.Locals("orderSession").(*order.Session)
	s.Store.Reset()
	return utils.SuccessResponse(c, fiber.StatusOK, h.orderView(s))
}

func (h *Handler) DeleteOrder(c *fiber.Ctx) error {
	if err := h.Orders.Delete(c.Params("sessionId")); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CheckoutOrder gửi đơn hàng của phiên lên backend; thành công thì đơn được đặt lại rỗng
func (h *Handler) CheckoutOrder(c *fiber.Ctx) error {
	s := c.Locals("orderSession").(*order.Session)

	res, err := h.Checkout.Submit(c.UserContext(), s.ID, s.Store.Get(), func(model.PaymentResult) {
		s.Store.Reset()
	})

	var checkoutErr *checkout.Error
	switch {
	case err == nil:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": constants.PAYMENT_SUCCESS,
			"data":    res,
			"session": h.orderView(s),
		})
	case errors.Is(err, checkout.ErrNoSeats):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ORDER_EMPTY_SEATS, err)
	case errors.Is(err, checkout.ErrInFlight):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.PAYMENT_PROCESSING, err)
	case errors.As(err, &checkoutErr) && checkoutErr.Err != nil:
		return utils.ErrorResponse(c, fiber.StatusBadGateway, checkoutErr.Message, err)
	case errors.As(err, &checkoutErr):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, checkoutErr.Message, err)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}
