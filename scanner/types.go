package scanner

import (
	"context"
	"errors"
	"image"

	"cinema_admin/model"
)

type State string

const (
	Idle      State = "idle"
	Scanning  State = "scanning"
	Verifying State = "verifying"
	Cooldown  State = "cooldown"
)

var (
	ErrNoDevice   = errors.New("scanner: camera device not found")
	ErrDeviceBusy = errors.New("scanner: camera device is busy")
	ErrScanning   = errors.New("scanner: cannot change device while scanning")
)

type Device struct {
	ID    string `json:"deviceId"`
	Label string `json:"label"`
}

// Camera liệt kê thiết bị và mở luồng hình cho một thiết bị
type Camera interface {
	Devices(ctx context.Context) ([]Device, error)
	Open(ctx context.Context, deviceID string) (Stream, error)
}

// Stream là luồng hình đang mở. Frame trả về false khi chưa có khung hình mới
// hoặc luồng đã đóng; Frame có thể được gọi sau Close.
type Stream interface {
	Frame() (image.Image, bool)
	Close() error
}

type Decoder interface {
	Decode(img image.Image) (string, error)
}

type Verifier interface {
	CheckQRCode(ctx context.Context, paymentID string) (model.QRCheckResult, error)
}

// FrameScheduler hẹn lần lấy khung hình tiếp theo, cancel huỷ lần hẹn chưa chạy
type FrameScheduler interface {
	Request(fn func()) (cancel func())
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type StatusMessage struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Snapshot là trạng thái chỉ đọc của máy quét để trả cho giao diện
type Snapshot struct {
	SessionID        string         `json:"sessionId"`
	State            State          `json:"state"`
	IsScanning       bool           `json:"isScanning"`
	SelectedDeviceID string         `json:"selectedDeviceId"`
	LastResult       *string        `json:"lastResult"`
	StatusMessage    *StatusMessage `json:"statusMessage"`
	Devices          []Device       `json:"devices"`
}
