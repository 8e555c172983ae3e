package model

const (
	SeatStandard = "standard"
	SeatVip      = "vip"
	SeatCouple   = "couple"
)

type Seat struct {
	ID    uint    `json:"id" validate:"required"`
	Name  string  `json:"name"`
	Price float64 `json:"price" validate:"gte=0"`
	Type  string  `json:"type" validate:"required,oneof=standard vip couple"`
}

// Slots số chỗ ngồi thực tế, ghế đôi chiếm 2 chỗ
func (s Seat) Slots() int {
	if s.Type == SeatCouple {
		return 2
	}
	return 1
}

type Service struct {
	ID       uint    `json:"id" validate:"required"`
	Name     string  `json:"name"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=1"`
}

// Order là đơn đặt vé đang thao tác. Các trường Total* luôn được tính lại, không gán trực tiếp.
type Order struct {
	Title             string    `json:"title"`
	Cinema            string    `json:"cinema"`
	CinemaID          *uint     `json:"cinemaId"`
	Showtime          string    `json:"showtime"`
	ShowtimeID        *uint     `json:"showtimeId"`
	Date              string    `json:"date"`
	MovieID           *uint     `json:"movieId"`
	Seats             []Seat    `json:"seats"`
	Services          []Service `json:"services"`
	TotalSeatPrice    float64   `json:"totalSeatPrice"`
	TotalServicePrice float64   `json:"totalServicePrice"`
	TotalPrice        float64   `json:"totalPrice"`
}

func (o Order) SeatSlots() int {
	n := 0
	for _, s := range o.Seats {
		n += s.Slots()
	}
	return n
}

// OrderPatch: trường nil nghĩa là không thay đổi.
// Seats/Services phải là toàn bộ danh sách mới, không phải phần chênh lệch.
type OrderPatch struct {
	Title      *string    `json:"title"`
	Cinema     *string    `json:"cinema"`
	CinemaID   *uint      `json:"cinemaId"`
	Showtime   *string    `json:"showtime"`
	ShowtimeID *uint      `json:"showtimeId"`
	Date       *string    `json:"date"`
	MovieID    *uint      `json:"movieId"`
	Seats      *[]Seat    `json:"seats" validate:"omitempty,dive"`
	Services   *[]Service `json:"services" validate:"omitempty,dive"`
}

type OrderSession struct {
	SessionID  string `json:"sessionId"`
	Processing bool   `json:"processing"`
	SeatSlots  int    `json:"seatSlots"`
	Order      Order  `json:"order"`
}
