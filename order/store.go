package order

import (
	"sync"

	"cinema_admin/model"

	"go.uber.org/zap"
)

// Recompute tính lại các tổng tiền từ danh sách ghế và dịch vụ
func Recompute(o model.Order) model.Order {
	o.TotalSeatPrice = 0
	for _, seat := range o.Seats {
		o.TotalSeatPrice += seat.Price
	}
	o.TotalServicePrice = 0
	for _, service := range o.Services {
		o.TotalServicePrice += service.Price * float64(service.Quantity)
	}
	o.TotalPrice = o.TotalSeatPrice + o.TotalServicePrice
	return o
}

// Empty trả về đơn hàng rỗng mặc định
func Empty() model.Order {
	return model.Order{
		Seats:    []model.Seat{},
		Services: []model.Service{},
	}
}

// Store giữ đơn hàng của một phiên đặt vé. Chỉ ghi qua Update/Reset.
type Store struct {
	mu    sync.RWMutex
	order model.Order
	log   *zap.Logger
}

func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{order: Empty(), log: log}
}

func (s *Store) Get() model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.order)
}

// Update gộp patch vào đơn hiện tại. Tổng tiền chỉ tính lại khi patch có seats hoặc services.
func (s *Store) Update(patch model.OrderPatch) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := merge(s.order, patch)
	if patch.Seats != nil || patch.Services != nil {
		next = Recompute(next)
	}
	s.order = next

	s.log.Debug("order updated",
		zap.Int("seats", len(next.Seats)),
		zap.Int("services", len(next.Services)),
		zap.Float64("totalPrice", next.TotalPrice),
	)
	return clone(next)
}

func (s *Store) Reset() {
	s.mu.Lock()
	s.order = Empty()
	s.mu.Unlock()
	s.log.Debug("order reset")
}

func merge(o model.Order, p model.OrderPatch) model.Order {
	if p.Title != nil {
		o.Title = *p.Title
	}
	if p.Cinema != nil {
		o.Cinema = *p.Cinema
	}
	if p.CinemaID != nil {
		o.CinemaID = ptr(*p.CinemaID)
	}
	if p.Showtime != nil {
		o.Showtime = *p.Showtime
	}
	if p.ShowtimeID != nil {
		o.ShowtimeID = ptr(*p.ShowtimeID)
	}
	if p.Date != nil {
		o.Date = *p.Date
	}
	if p.MovieID != nil {
		o.MovieID = ptr(*p.MovieID)
	}
	if p.Seats != nil {
		o.Seats = append([]model.Seat{}, (*p.Seats)...)
	}
	if p.Services != nil {
		o.Services = append([]model.Service{}, (*p.Services)...)
	}
	return o
}

func clone(o model.Order) model.Order {
	o.Seats = append([]model.Seat{}, o.Seats...)
	o.Services = append([]model.Service{}, o.Services...)
	if o.CinemaID != nil {
		o.CinemaID = ptr(*o.CinemaID)
	}
	if o.ShowtimeID != nil {
		o.ShowtimeID = ptr(*o.ShowtimeID)
	}
	if o.MovieID != nil {
		o.MovieID = ptr(*o.MovieID)
	}
	return o
}

func ptr[T any](v T) *T {
	return &v
}
