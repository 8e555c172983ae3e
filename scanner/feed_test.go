package scanner

import (
	"context"
	"testing"
	"time"

	"cinema_admin/model"

	"github.com/jonboulle/clockwork"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedStreamReturnsEachFrameOnce(t *testing.T) {
	camera := NewFeedCamera()
	feed := camera.Attach("cam-1", "")

	stream, err := camera.Open(context.Background(), "cam-1")
	require.NoError(t, err)

	_, ok := stream.Frame()
	assert.False(t, ok)

	png, err := qrcode.Encode("PAY-9", qrcode.Medium, 256)
	require.NoError(t, err)
	require.NoError(t, feed.Push(png))

	img, ok := stream.Frame()
	require.True(t, ok)
	assert.NotNil(t, img)
	_, ok = stream.Frame()
	assert.False(t, ok, "same frame is not returned twice")

	_, err = camera.Open(context.Background(), "cam-1")
	assert.ErrorIs(t, err, ErrDeviceBusy)

	require.NoError(t, stream.Close())
	require.NoError(t, stream.Close())
	_, ok = stream.Frame()
	assert.False(t, ok)

	again, err := camera.Open(context.Background(), "cam-1")
	require.NoError(t, err)
	again.Close()
}

func TestFeedRejectsGarbage(t *testing.T) {
	feed := NewFeedCamera().Attach("cam-1", "")
	assert.Error(t, feed.Push([]byte("not an image")))
}

func TestDetachRemovesDevice(t *testing.T) {
	camera := NewFeedCamera()
	old := camera.Attach("cam-1", "")
	replacement := camera.Attach("cam-1", "Quầy 1")

	camera.Detach(old)
	devices, err := camera.Devices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Device{{ID: "cam-1", Label: "Quầy 1"}}, devices)

	camera.Detach(replacement)
	_, err = camera.Open(context.Background(), "cam-1")
	assert.ErrorIs(t, err, ErrNoDevice)
}

func TestZXingDecoder(t *testing.T) {
	png, err := qrcode.Encode("PAY-2026", qrcode.Medium, 256)
	require.NoError(t, err)
	feed := NewFeedCamera().Attach("cam-1", "")
	require.NoError(t, feed.Push(png))

	text, err := NewZXingDecoder().Decode(feed.latest)
	require.NoError(t, err)
	assert.Equal(t, "PAY-2026", text)
}

func TestLoopWithRealDecoder(t *testing.T) {
	camera := NewFeedCamera()
	feed := camera.Attach("cam-1", "")
	frames := &manualFrames{}
	verifier := &fakeVerifier{result: model.QRCheckResult{Success: true, Order: &model.PaidOrder{Name: "A"}}}
	s := New(Options{Camera: camera, Verifier: verifier, Frames: frames, Clock: clockwork.NewFakeClock()})
	defer s.Close()

	require.NoError(t, s.Start(context.Background()))
	png, err := qrcode.Encode("PAY-7", qrcode.Medium, 256)
	require.NoError(t, err)
	require.NoError(t, feed.Push(png))
	require.True(t, frames.Step())

	assert.Equal(t, []string{"PAY-7"}, verifier.Calls())
	assert.Equal(t, Idle, s.State())
}

func TestTickerScheduler(t *testing.T) {
	clock := clockwork.NewFakeClock()
	sched := NewTickerScheduler(clock, 20)
	assert.Equal(t, 50*time.Millisecond, sched.Interval())

	fired := make(chan struct{}, 2)
	sched.Request(func() { fired <- struct{}{} })
	cancel := sched.Request(func() { fired <- struct{}{} })
	cancel()

	clock.Advance(50 * time.Millisecond)
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("frame callback not fired")
	}
	select {
	case <-fired:
		t.Fatal("cancelled callback fired")
	case <-time.After(20 * time.Millisecond):
	}
}
