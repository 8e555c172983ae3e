package scanner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cinema_admin/constants"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	BannerTimeout = 3 * time.Second
	ResumeDelay   = 5 * time.Second
)

// Scanner là vòng quét QR: Idle -> Scanning -> Verifying -> Idle | Cooldown -> Scanning.
// Mỗi lần kích hoạt có một gen riêng; callback khung hình, hẹn giờ và kết quả xác minh
// của gen cũ đều bị bỏ qua.
type Scanner struct {
	camera   Camera
	decoder  Decoder
	verifier Verifier
	frames   FrameScheduler
	clock    clockwork.Clock
	log      *zap.Logger

	mu            sync.Mutex
	state         State
	gen           uint64
	sessionID     string
	ctx           context.Context
	cancel        context.CancelFunc
	devices       []Device
	selected      string
	stream        Stream
	cancelFrame   func()
	resumeTimer   clockwork.Timer
	lastResult    *string
	status        *StatusMessage
	bannerSeq     uint64
	bannerTimer   clockwork.Timer
	subscribers   map[chan Snapshot]struct{}
	verifications int
}

type Options struct {
	Camera   Camera
	Decoder  Decoder
	Verifier Verifier
	Frames   FrameScheduler
	Clock    clockwork.Clock
	Log      *zap.Logger
}

func New(opts Options) *Scanner {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Frames == nil {
		opts.Frames = NewTickerScheduler(opts.Clock, 30)
	}
	if opts.Decoder == nil {
		opts.Decoder = NewZXingDecoder()
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	return &Scanner{
		camera:      opts.Camera,
		decoder:     opts.Decoder,
		verifier:    opts.Verifier,
		frames:      opts.Frames,
		clock:       opts.Clock,
		log:         opts.Log,
		state:       Idle,
		subscribers: make(map[chan Snapshot]struct{}),
	}
}

func (s *Scanner) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Scanner) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Devices trả về danh sách camera đã liệt kê ở lần bật gần nhất
func (s *Scanner) Devices() []Device {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Device{}, s.devices...)
}

func (s *Scanner) SelectDevice(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Idle {
		return ErrScanning
	}
	if len(s.devices) > 0 && !hasDevice(s.devices, id) {
		return fmt.Errorf("%w: %s", ErrNoDevice, id)
	}
	s.selected = id
	s.notifyLocked()
	return nil
}

// Toggle bật quét khi đang Idle, ngược lại dừng
func (s *Scanner) Toggle(ctx context.Context) error {
	if s.State() == Idle {
		return s.Start(ctx)
	}
	s.Stop()
	return nil
}

// Start chuyển Idle -> Scanning và mở camera. Gọi khi đang quét thì không làm gì.
func (s *Scanner) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state != Idle {
		s.mu.Unlock()
		return nil
	}
	s.gen++
	gen := s.gen
	s.sessionID = uuid.New().String()
	// giữ giá trị của ctx (phiên đăng nhập) nhưng không bị huỷ khi request kết thúc
	s.ctx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	s.state = Scanning
	s.lastResult = nil
	s.clearBannerLocked()
	sessionID := s.sessionID
	s.notifyLocked()
	s.mu.Unlock()

	s.log.Info("scanner started", zap.String("sessionId", sessionID))
	return s.acquire(ctx, gen)
}

// Stop dừng quét từ bất kỳ trạng thái nào: trả camera, huỷ hẹn giờ quét lại
// và bỏ kết quả xác minh đang chờ. Gọi nhiều lần không lỗi.
func (s *Scanner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resumeTimer != nil {
		s.resumeTimer.Stop()
		s.resumeTimer = nil
	}
	if s.state == Idle {
		return
	}
	s.gen++
	s.releaseLocked()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.state = Idle
	s.clearBannerLocked()
	s.log.Info("scanner stopped", zap.String("sessionId", s.sessionID))
	s.notifyLocked()
}

// Close dừng quét và đóng mọi kênh theo dõi
func (s *Scanner) Close() {
	s.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bannerTimer != nil {
		s.bannerTimer.Stop()
	}
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
}

// Subscribe nhận snapshot mỗi khi trạng thái thay đổi. Kênh chỉ giữ snapshot mới nhất.
func (s *Scanner) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)
	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	ch <- s.snapshotLocked()
	s.mu.Unlock()

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
	}
}

// Verifications đếm số yêu cầu xác minh đã gửi
func (s *Scanner) Verifications() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verifications
}

func (s *Scanner) acquire(ctx context.Context, gen uint64) error {
	devices, err := s.camera.Devices(ctx)
	if err != nil {
		s.fail(gen, constants.CAMERA_LIST_FAILED, err)
		return err
	}

	s.mu.Lock()
	if gen != s.gen || s.state != Scanning {
		s.mu.Unlock()
		return nil
	}
	s.devices = devices
	if !hasDevice(devices, s.selected) {
		s.selected = ""
		if len(devices) > 0 {
			s.selected = devices[0].ID
		}
	}
	deviceID := s.selected
	s.mu.Unlock()

	if deviceID == "" {
		s.fail(gen, constants.CAMERA_UNAVAILABLE, ErrNoDevice)
		return ErrNoDevice
	}

	stream, err := s.camera.Open(ctx, deviceID)
	if err != nil {
		msg := constants.CAMERA_UNAVAILABLE
		if errors.Is(err, ErrDeviceBusy) {
			msg = constants.CAMERA_BUSY
		}
		s.fail(gen, msg, err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.state != Scanning {
		stream.Close()
		return nil
	}
	s.stream = stream
	s.scheduleLocked(gen)
	s.log.Debug("camera stream opened", zap.String("deviceId", deviceID))
	s.notifyLocked()
	return nil
}

func (s *Scanner) fail(gen uint64, msg string, err error) {
	s.log.Error("camera unavailable", zap.Error(err))
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.state != Scanning {
		return
	}
	s.gen++
	s.releaseLocked()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.state = Idle
	s.bannerLocked(StatusError, msg)
	s.notifyLocked()
}

func (s *Scanner) scheduleLocked(gen uint64) {
	s.cancelFrame = s.frames.Request(func() { s.tick(gen) })
}

func (s *Scanner) tick(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.state != Scanning || s.stream == nil {
		s.mu.Unlock()
		return
	}
	stream := s.stream
	s.cancelFrame = nil
	s.mu.Unlock()

	img, ok := stream.Frame()
	if !ok {
		s.reschedule(gen)
		return
	}
	text, err := s.decoder.Decode(img)
	if err != nil || text == "" {
		s.reschedule(gen)
		return
	}

	s.mu.Lock()
	if gen != s.gen || s.state != Scanning {
		s.mu.Unlock()
		return
	}
	s.state = Verifying
	s.lastResult = &text
	s.releaseLocked()
	s.verifications++
	ctx := s.ctx
	s.notifyLocked()
	s.mu.Unlock()

	s.log.Info("qr decoded", zap.String("paymentId", text))
	s.verify(ctx, gen, text)
}

func (s *Scanner) reschedule(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.state != Scanning || s.stream == nil {
		return
	}
	s.scheduleLocked(gen)
}

func (s *Scanner) verify(ctx context.Context, gen uint64, paymentID string) {
	res, err := s.verifier.CheckQRCode(ctx, paymentID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.state != Verifying {
		return
	}

	if err == nil && res.Success {
		name := ""
		if res.Order != nil {
			name = res.Order.Name
		}
		s.state = Idle
		s.gen++
		if s.cancel != nil {
			s.cancel()
			s.cancel = nil
		}
		s.bannerLocked(StatusSuccess, fmt.Sprintf(constants.QR_VERIFY_SUCCESS, name))
		s.log.Info("qr verified", zap.String("paymentId", paymentID))
		s.notifyLocked()
		return
	}

	msg := constants.QR_INVALID
	if err != nil {
		msg = constants.QR_VERIFY_ERROR
		s.log.Error("qr verification failed", zap.String("paymentId", paymentID), zap.Error(err))
	} else {
		s.log.Warn("qr rejected", zap.String("paymentId", paymentID), zap.String("message", res.Message))
	}
	s.state = Cooldown
	s.bannerLocked(StatusError, msg)
	s.resumeTimer = s.clock.AfterFunc(ResumeDelay, func() { s.resume(gen) })
	s.notifyLocked()
}

func (s *Scanner) resume(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.state != Cooldown {
		s.mu.Unlock()
		return
	}
	s.resumeTimer = nil
	s.state = Scanning
	ctx := s.ctx
	s.notifyLocked()
	s.mu.Unlock()

	s.log.Debug("scanner resumed after cooldown")
	_ = s.acquire(ctx, gen)
}

func (s *Scanner) releaseLocked() {
	if s.cancelFrame != nil {
		s.cancelFrame()
		s.cancelFrame = nil
	}
	if s.stream != nil {
		if err := s.stream.Close(); err != nil {
			s.log.Warn("close camera stream", zap.Error(err))
		}
		s.stream = nil
	}
}

func (s *Scanner) bannerLocked(kind, text string) {
	if s.bannerTimer != nil {
		s.bannerTimer.Stop()
	}
	s.bannerSeq++
	seq := s.bannerSeq
	s.status = &StatusMessage{Kind: kind, Text: text}
	s.bannerTimer = s.clock.AfterFunc(BannerTimeout, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.bannerSeq != seq {
			return
		}
		s.status = nil
		s.bannerTimer = nil
		s.notifyLocked()
	})
}

func (s *Scanner) clearBannerLocked() {
	if s.bannerTimer != nil {
		s.bannerTimer.Stop()
		s.bannerTimer = nil
	}
	s.bannerSeq++
	s.status = nil
}

func (s *Scanner) snapshotLocked() Snapshot {
	snap := Snapshot{
		SessionID:        s.sessionID,
		State:            s.state,
		IsScanning:       s.state == Scanning,
		SelectedDeviceID: s.selected,
		Devices:          append([]Device{}, s.devices...),
	}
	if s.lastResult != nil {
		v := *s.lastResult
		snap.LastResult = &v
	}
	if s.status != nil {
		v := *s.status
		snap.StatusMessage = &v
	}
	return snap
}

func (s *Scanner) notifyLocked() {
	snap := s.snapshotLocked()
	for ch := range s.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

func hasDevice(devices []Device, id string) bool {
	if id == "" {
		return false
	}
	for _, d := range devices {
		if d.ID == id {
			return true
		}
	}
	return false
}
