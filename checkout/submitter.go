package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cinema_admin/constants"
	"cinema_admin/model"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

var (
	ErrNoSeats  = errors.New("checkout: order has no seats")
	ErrInFlight = errors.New("checkout: payment already in progress")
)

// PaymentClient là phần backend mà checkout cần
type PaymentClient interface {
	DirectPayment(ctx context.Context, req model.PaymentRequest) (model.PaymentResult, error)
}

// Error là thanh toán thất bại, Message hiển thị được cho người dùng.
// Err khác nil khi lỗi đến từ kết nối chứ không phải backend từ chối.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("checkout: %s: %v", e.Message, e.Err)
	}
	return "checkout: " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Project chiếu Order sang body thanh toán, bỏ các tổng phụ chỉ để hiển thị
func Project(o model.Order) (model.PaymentRequest, error) {
	var req model.PaymentRequest
	if err := copier.CopyWithOption(&req, &o, copier.Option{DeepCopy: true}); err != nil {
		return req, fmt.Errorf("checkout: project order: %w", err)
	}
	if req.Seats == nil {
		req.Seats = []model.PaymentSeat{}
	}
	if req.Services == nil {
		req.Services = []model.PaymentService{}
	}
	return req, nil
}

type Submitter struct {
	client PaymentClient
	log    *zap.Logger

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewSubmitter(client PaymentClient, log *zap.Logger) *Submitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Submitter{client: client, log: log, inFlight: make(map[string]bool)}
}

// Processing cho biết phiên đang có yêu cầu thanh toán chưa trả về
func (s *Submitter) Processing(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[sessionID]
}

// Submit gửi đúng một yêu cầu thanh toán cho đơn hàng.
// onConfirm chỉ được gọi khi backend báo thành công; khi thất bại đơn hàng giữ nguyên để thử lại.
func (s *Submitter) Submit(ctx context.Context, sessionID string, order model.Order, onConfirm func(model.PaymentResult)) (model.PaymentResult, error) {
	if len(order.Seats) == 0 {
		return model.PaymentResult{}, ErrNoSeats
	}

	req, err := Project(order)
	if err != nil {
		return model.PaymentResult{}, err
	}

	s.mu.Lock()
	if s.inFlight[sessionID] {
		s.mu.Unlock()
		return model.PaymentResult{}, ErrInFlight
	}
	s.inFlight[sessionID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, sessionID)
		s.mu.Unlock()
	}()

	res, err := s.client.DirectPayment(ctx, req)
	if err != nil {
		s.log.Error("direct payment failed",
			zap.String("sessionId", sessionID),
			zap.Error(err),
		)
		return model.PaymentResult{}, &Error{Message: constants.PAYMENT_ERROR, Err: err}
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = constants.PAYMENT_FAILED
		}
		s.log.Warn("direct payment declined",
			zap.String("sessionId", sessionID),
			zap.String("message", msg),
		)
		return res, &Error{Message: msg}
	}

	s.log.Info("direct payment confirmed",
		zap.String("sessionId", sessionID),
		zap.Float64("totalPrice", req.TotalPrice),
	)
	if onConfirm != nil {
		onConfirm(res)
	}
	return res, nil
}
