package model

type PaymentSeat struct {
	ID    uint    `json:"id"`
	Price float64 `json:"price"`
	Type  string  `json:"type"`
}

type PaymentService struct {
	ID       uint    `json:"id"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// PaymentRequest là body gửi lên /qrcode/direct-payment, chiếu từ Order
type PaymentRequest struct {
	MovieID    *uint            `json:"movieId"`
	CinemaID   *uint            `json:"cinemaId"`
	ShowtimeID *uint            `json:"showtimeId"`
	Seats      []PaymentSeat    `json:"seats"`
	Services   []PaymentService `json:"services"`
	TotalPrice float64          `json:"totalPrice"`
	Showtime   string           `json:"showtime"`
	Date       string           `json:"date"`
	Cinema     string           `json:"cinema"`
	Title      string           `json:"title"`
}

type PaidOrder struct {
	Name string `json:"name"`
}

type PaymentResult struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Order   *PaidOrder `json:"order,omitempty"`
}

// QRCheckRequest: QrData là chuỗi JSON {"paymentId": "..."}
type QRCheckRequest struct {
	QrData string `json:"qrData"`
}

type QRPayload struct {
	PaymentID string `json:"paymentId"`
}

type QRCheckResult struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Order   *PaidOrder `json:"order,omitempty"`
}
