package scanner

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"sort"
	"sync"
)

// FeedCamera: mỗi thiết bị là một trình duyệt đang đẩy khung hình qua websocket
type FeedCamera struct {
	mu    sync.Mutex
	feeds map[string]*Feed
}

func NewFeedCamera() *FeedCamera {
	return &FeedCamera{feeds: make(map[string]*Feed)}
}

// Attach đăng ký một nguồn hình, thay thế nguồn cũ cùng id
func (c *FeedCamera) Attach(id, label string) *Feed {
	if label == "" {
		label = id
	}
	f := &Feed{id: id, label: label}
	c.mu.Lock()
	c.feeds[id] = f
	c.mu.Unlock()
	return f
}

// Detach gỡ nguồn hình nếu nó vẫn là nguồn đang đăng ký cho id
func (c *FeedCamera) Detach(f *Feed) {
	c.mu.Lock()
	if c.feeds[f.id] == f {
		delete(c.feeds, f.id)
	}
	c.mu.Unlock()
	f.close()
}

func (c *FeedCamera) Devices(context.Context) ([]Device, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	devices := make([]Device, 0, len(c.feeds))
	for _, f := range c.feeds {
		devices = append(devices, Device{ID: f.id, Label: f.label})
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i].ID < devices[j].ID })
	return devices, nil
}

func (c *FeedCamera) Open(_ context.Context, deviceID string) (Stream, error) {
	c.mu.Lock()
	f, ok := c.feeds[deviceID]
	c.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoDevice, deviceID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, fmt.Errorf("%w: %s", ErrNoDevice, deviceID)
	}
	if f.held {
		return nil, fmt.Errorf("%w: %s", ErrDeviceBusy, deviceID)
	}
	f.held = true
	return &feedStream{feed: f, seen: f.seq}, nil
}

type Feed struct {
	id    string
	label string

	mu     sync.Mutex
	latest image.Image
	seq    uint64
	held   bool
	closed bool
}

func (f *Feed) ID() string { return f.id }

// Push giải mã một khung hình JPEG/PNG và giữ lại làm khung mới nhất
func (f *Feed) Push(data []byte) error {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("scanner: decode frame: %w", err)
	}
	f.PushImage(img)
	return nil
}

func (f *Feed) PushImage(img image.Image) {
	f.mu.Lock()
	f.latest = img
	f.seq++
	f.mu.Unlock()
}

// Held cho biết có phiên quét nào đang giữ nguồn hình
func (f *Feed) Held() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.held
}

func (f *Feed) close() {
	f.mu.Lock()
	f.closed = true
	f.latest = nil
	f.mu.Unlock()
}

type feedStream struct {
	feed *Feed

	mu     sync.Mutex
	seen   uint64
	closed bool
}

func (s *feedStream) Frame() (image.Image, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, false
	}

	f := s.feed
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.latest == nil || f.seq == s.seen {
		return nil, false
	}
	s.seen = f.seq
	return f.latest, true
}

func (s *feedStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.feed.mu.Lock()
	s.feed.held = false
	s.feed.mu.Unlock()
	return nil
}
