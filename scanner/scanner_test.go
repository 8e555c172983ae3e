package scanner

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"cinema_admin/model"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualFrames chạy khung hình khi test gọi Step
type manualFrames struct {
	mu      sync.Mutex
	pending []*func()
}

func (m *manualFrames) Request(fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := &fn
	m.pending = append(m.pending, p)
	return func() {
		m.mu.Lock()
		*p = nil
		m.mu.Unlock()
	}
}

// Step chạy lần hẹn đầu tiên còn hiệu lực, trả về false nếu không còn gì
func (m *manualFrames) Step() bool {
	for {
		m.mu.Lock()
		if len(m.pending) == 0 {
			m.mu.Unlock()
			return false
		}
		p := m.pending[0]
		m.pending = m.pending[1:]
		fn := *p
		m.mu.Unlock()
		if fn != nil {
			fn()
			return true
		}
	}
}

func (m *manualFrames) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.pending {
		if *p != nil {
			n++
		}
	}
	return n
}

// codeImage là khung hình giả mang sẵn nội dung QR
type codeImage struct {
	image.Image
	text string
}

func frame(text string) image.Image {
	return codeImage{Image: image.NewGray(image.Rect(0, 0, 4, 4)), text: text}
}

type fakeDecoder struct{}

func (fakeDecoder) Decode(img image.Image) (string, error) {
	if c, ok := img.(codeImage); ok && c.text != "" {
		return c.text, nil
	}
	return "", errors.New("no qr code")
}

type operatorKey struct{}

type fakeVerifier struct {
	mu        sync.Mutex
	calls     []string
	operators []any
	result  model.QRCheckResult
	err     error
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeVerifier) CheckQRCode(ctx context.Context, paymentID string) (model.QRCheckResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, paymentID)
	f.operators = append(f.operators, ctx.Value(operatorKey{}))
	res, err := f.result, f.err
	f.mu.Unlock()
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return model.QRCheckResult{}, ctx.Err()
		}
	}
	return res, err
}

func (f *fakeVerifier) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.calls...)
}

type fixture struct {
	scanner  *Scanner
	camera   *FeedCamera
	feed     *Feed
	frames   *manualFrames
	clock    *clockwork.FakeClock
	verifier *fakeVerifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		camera:   NewFeedCamera(),
		frames:   &manualFrames{},
		clock:    clockwork.NewFakeClock(),
		verifier: &fakeVerifier{result: model.QRCheckResult{Success: true, Order: &model.PaidOrder{Name: "Nguyễn Văn A"}}},
	}
	f.feed = f.camera.Attach("cam-1", "Quầy 1")
	f.scanner = New(Options{
		Camera:   f.camera,
		Decoder:  fakeDecoder{},
		Verifier: f.verifier,
		Frames:   f.frames,
		Clock:    f.clock,
	})
	t.Cleanup(f.scanner.Close)
	return f
}

func TestStartAcquiresCamera(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.scanner.Start(context.Background()))

	snap := f.scanner.Snapshot()
	assert.Equal(t, Scanning, snap.State)
	assert.True(t, snap.IsScanning)
	assert.Equal(t, "cam-1", snap.SelectedDeviceID)
	assert.NotEmpty(t, snap.SessionID)
	assert.Equal(t, []Device{{ID: "cam-1", Label: "Quầy 1"}}, snap.Devices)
	assert.True(t, f.feed.Held())
	assert.Equal(t, 1, f.frames.Pending())
}

func TestDevicesEnumeratedOnFirstActivation(t *testing.T) {
	f := newFixture(t)
	assert.Empty(t, f.scanner.Devices())

	require.NoError(t, f.scanner.Start(context.Background()))
	assert.Len(t, f.scanner.Devices(), 1)
}

func TestNoFrameKeepsPolling(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.scanner.Start(context.Background()))

	require.True(t, f.frames.Step())
	assert.Equal(t, Scanning, f.scanner.State())
	assert.Equal(t, 1, f.frames.Pending())

	f.feed.PushImage(image.NewGray(image.Rect(0, 0, 4, 4)))
	require.True(t, f.frames.Step())
	assert.Equal(t, Scanning, f.scanner.State(), "undecodable frame is ignored")
	assert.Equal(t, 1, f.frames.Pending())
	assert.Empty(t, f.verifier.Calls())
}

func TestDecodeVerifiesOnceAndSucceeds(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.scanner.Start(context.Background()))

	f.feed.PushImage(frame("PAY-1"))
	require.True(t, f.frames.Step())

	assert.Equal(t, []string{"PAY-1"}, f.verifier.Calls())
	snap := f.scanner.Snapshot()
	assert.Equal(t, Idle, snap.State)
	assert.False(t, snap.IsScanning)
	require.NotNil(t, snap.LastResult)
	assert.Equal(t, "PAY-1", *snap.LastResult)
	require.NotNil(t, snap.StatusMessage)
	assert.Equal(t, StatusSuccess, snap.StatusMessage.Kind)
	assert.Equal(t, "Xác minh thành công cho Nguyễn Văn A", snap.StatusMessage.Text)
	assert.False(t, f.feed.Held(), "camera released once decoded")
	assert.Zero(t, f.frames.Pending())

	f.clock.Advance(ResumeDelay + time.Second)
	assert.Eventually(t, func() bool { return f.scanner.Snapshot().StatusMessage == nil }, time.Second, 5*time.Millisecond)
	assert.Equal(t, Idle, f.scanner.State(), "success does not resume scanning")
	assert.Len(t, f.verifier.Calls(), 1)
}

func TestSingleVerificationInFlight(t *testing.T) {
	f := newFixture(t)
	f.verifier.block = make(chan struct{})
	f.verifier.entered = make(chan struct{}, 1)
	require.NoError(t, f.scanner.Start(context.Background()))

	f.feed.PushImage(frame("PAY-1"))
	done := make(chan struct{})
	go func() {
		f.frames.Step()
		close(done)
	}()
	<-f.verifier.entered

	assert.Equal(t, Verifying, f.scanner.State())
	f.feed.PushImage(frame("PAY-2"))
	assert.False(t, f.frames.Step(), "no frame sampling while verifying")
	assert.NoError(t, f.scanner.Start(context.Background()))
	assert.Equal(t, 1, f.scanner.Verifications())

	close(f.verifier.block)
	<-done
	assert.Equal(t, []string{"PAY-1"}, f.verifier.Calls())
}

func TestFailedVerificationCoolsDownAndResumes(t *testing.T) {
	f := newFixture(t)
	f.verifier.result = model.QRCheckResult{Success: false, Message: "invalid"}
	require.NoError(t, f.scanner.Start(context.Background()))

	f.feed.PushImage(frame("PAY-1"))
	require.True(t, f.frames.Step())

	snap := f.scanner.Snapshot()
	assert.Equal(t, Cooldown, snap.State)
	require.NotNil(t, snap.StatusMessage)
	assert.Equal(t, StatusError, snap.StatusMessage.Kind)
	assert.Equal(t, "Mã QR không hợp lệ. Vui lòng thử lại.", snap.StatusMessage.Text)
	assert.False(t, f.feed.Held())

	f.clock.Advance(BannerTimeout)
	assert.Eventually(t, func() bool { return f.scanner.Snapshot().StatusMessage == nil }, time.Second, 5*time.Millisecond)
	assert.Equal(t, Cooldown, f.scanner.State())

	f.clock.Advance(ResumeDelay - BannerTimeout)
	assert.Eventually(t, func() bool { return f.scanner.State() == Scanning && f.feed.Held() }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return f.frames.Pending() == 1 }, time.Second, 5*time.Millisecond)

	f.clock.Advance(ResumeDelay)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, Scanning, f.scanner.State())
	assert.Equal(t, 1, f.frames.Pending(), "exactly one re-entry")
}

func TestTransportErrorCoolsDown(t *testing.T) {
	f := newFixture(t)
	f.verifier.err = errors.New("connection reset")
	require.NoError(t, f.scanner.Start(context.Background()))

	f.feed.PushImage(frame("PAY-1"))
	require.True(t, f.frames.Step())

	snap := f.scanner.Snapshot()
	assert.Equal(t, Cooldown, snap.State)
	assert.Equal(t, "Lỗi khi xác minh QR. Vui lòng thử lại.", snap.StatusMessage.Text)
}

func TestStopDuringCooldownCancelsResume(t *testing.T) {
	f := newFixture(t)
	f.verifier.result = model.QRCheckResult{Success: false}
	require.NoError(t, f.scanner.Start(context.Background()))
	f.feed.PushImage(frame("PAY-1"))
	require.True(t, f.frames.Step())
	require.Equal(t, Cooldown, f.scanner.State())

	f.scanner.Stop()
	f.clock.Advance(2 * ResumeDelay)
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, Idle, f.scanner.State())
	assert.False(t, f.feed.Held())
	assert.Zero(t, f.frames.Pending())
}

func TestStopDuringVerificationDiscardsResult(t *testing.T) {
	f := newFixture(t)
	f.verifier.result = model.QRCheckResult{Success: false}
	f.verifier.block = make(chan struct{})
	f.verifier.entered = make(chan struct{}, 1)
	require.NoError(t, f.scanner.Start(context.Background()))

	f.feed.PushImage(frame("PAY-1"))
	done := make(chan struct{})
	go func() {
		f.frames.Step()
		close(done)
	}()
	<-f.verifier.entered

	f.scanner.Stop()
	<-done

	snap := f.scanner.Snapshot()
	assert.Equal(t, Idle, snap.State)
	assert.Nil(t, snap.StatusMessage)
	f.clock.Advance(2 * ResumeDelay)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, Idle, f.scanner.State())
}

func TestVerificationKeepsStartValuesAfterRequestEnds(t *testing.T) {
	f := newFixture(t)
	reqCtx, cancel := context.WithCancel(context.WithValue(context.Background(), operatorKey{}, "op-1"))
	require.NoError(t, f.scanner.Start(reqCtx))
	cancel()

	f.feed.PushImage(frame("PAY-1"))
	require.True(t, f.frames.Step())

	f.verifier.mu.Lock()
	operators := append([]any{}, f.verifier.operators...)
	f.verifier.mu.Unlock()
	assert.Equal(t, []any{"op-1"}, operators)
	snap := f.scanner.Snapshot()
	require.NotNil(t, snap.StatusMessage)
	assert.Equal(t, StatusSuccess, snap.StatusMessage.Kind)
}

func TestStopIsIdempotentAndReleasesCamera(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.scanner.Start(context.Background()))
	require.True(t, f.feed.Held())

	f.scanner.Stop()
	f.scanner.Stop()

	assert.Equal(t, Idle, f.scanner.State())
	assert.False(t, f.feed.Held())
	assert.False(t, f.frames.Step(), "pending frame callback cancelled")
}

func TestToggle(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.scanner.Toggle(context.Background()))
	assert.Equal(t, Scanning, f.scanner.State())
	require.NoError(t, f.scanner.Toggle(context.Background()))
	assert.Equal(t, Idle, f.scanner.State())
	assert.False(t, f.feed.Held())
}

func TestStartWithoutDevice(t *testing.T) {
	f := newFixture(t)
	f.camera.Detach(f.feed)

	err := f.scanner.Start(context.Background())
	assert.ErrorIs(t, err, ErrNoDevice)

	snap := f.scanner.Snapshot()
	assert.Equal(t, Idle, snap.State)
	require.NotNil(t, snap.StatusMessage)
	assert.Equal(t, StatusError, snap.StatusMessage.Kind)
}

func TestStartWithBusyDevice(t *testing.T) {
	f := newFixture(t)
	held, err := f.camera.Open(context.Background(), "cam-1")
	require.NoError(t, err)
	defer held.Close()

	err = f.scanner.Start(context.Background())
	assert.ErrorIs(t, err, ErrDeviceBusy)
	snap := f.scanner.Snapshot()
	assert.Equal(t, Idle, snap.State)
	assert.Equal(t, "Camera đang được sử dụng", snap.StatusMessage.Text)
}

func TestSelectDevice(t *testing.T) {
	f := newFixture(t)
	second := f.camera.Attach("cam-2", "Quầy 2")

	require.NoError(t, f.scanner.SelectDevice("cam-2"))
	require.NoError(t, f.scanner.Start(context.Background()))
	assert.True(t, second.Held())
	assert.False(t, f.feed.Held())

	assert.ErrorIs(t, f.scanner.SelectDevice("cam-1"), ErrScanning)

	f.scanner.Stop()
	assert.ErrorIs(t, f.scanner.SelectDevice("cam-9"), ErrNoDevice)
	require.NoError(t, f.scanner.SelectDevice("cam-1"))
}

func TestSubscribeReceivesLatest(t *testing.T) {
	f := newFixture(t)
	ch, unsubscribe := f.scanner.Subscribe()

	first := <-ch
	assert.Equal(t, Idle, first.State)

	require.NoError(t, f.scanner.Start(context.Background()))
	var latest Snapshot
	assert.Eventually(t, func() bool {
		select {
		case latest = <-ch:
		default:
		}
		return latest.State == Scanning && latest.SelectedDeviceID == "cam-1"
	}, time.Second, 5*time.Millisecond)

	unsubscribe()
	unsubscribe()
	for range ch {
	}
	assert.Equal(t, Scanning, f.scanner.State())
}
