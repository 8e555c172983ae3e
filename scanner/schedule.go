package scanner

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// TickerScheduler chạy khung hình kế tiếp sau một khoảng cố định theo fps
type TickerScheduler struct {
	clock    clockwork.Clock
	interval time.Duration
}

func NewTickerScheduler(clock clockwork.Clock, fps int) *TickerScheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if fps <= 0 {
		fps = 30
	}
	return &TickerScheduler{clock: clock, interval: time.Second / time.Duration(fps)}
}

func (t *TickerScheduler) Interval() time.Duration {
	return t.interval
}

func (t *TickerScheduler) Request(fn func()) func() {
	timer := t.clock.AfterFunc(t.interval, fn)
	return func() { timer.Stop() }
}
