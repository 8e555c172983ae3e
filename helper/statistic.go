package helper

import (
	"context"
	"errors"
	"sync"
	"time"

	"cinema_admin/api"
	"cinema_admin/model"
	"cinema_admin/utils"

	"github.com/jonboulle/clockwork"
)

type StatisticSource interface {
	StatisticToday(ctx context.Context) (model.StatisticToday, model.StatisticYesterday, error)
}

// StatisticCache giữ số liệu dashboard hôm nay, làm mới bởi cron hoặc khi đã quá maxAge
type StatisticCache struct {
	source StatisticSource
	maxAge time.Duration
	clock  clockwork.Clock

	mu      sync.Mutex
	latest  *model.DashboardToday
	fetched time.Time
	// phiên gần nhất xem dashboard, cron dùng phiên này để làm nóng số liệu
	session string
}

func NewStatisticCache(source StatisticSource, maxAge time.Duration, clock clockwork.Clock) *StatisticCache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &StatisticCache{source: source, maxAge: maxAge, clock: clock}
}

func (c *StatisticCache) Get(ctx context.Context) (model.DashboardToday, error) {
	c.mu.Lock()
	if id := api.SessionFrom(ctx); id != "" {
		c.session = id
	}
	if c.latest != nil && c.clock.Since(c.fetched) < c.maxAge {
		v := *c.latest
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()
	return c.Refresh(ctx)
}

func (c *StatisticCache) Refresh(ctx context.Context) (model.DashboardToday, error) {
	today, yesterday, err := c.source.StatisticToday(ctx)
	if err != nil {
		return model.DashboardToday{}, err
	}
	now := c.clock.Now()
	v := model.DashboardToday{
		Today:     today,
		Yesterday: yesterday,
		Growth: model.StatisticGrowth{
			Revenue:   utils.CalculateGrowth(today.TotalRevenue, yesterday.TotalRevenueYesterday),
			Tickets:   utils.CalculateGrowth(float64(today.TotalTickets), float64(yesterday.TotalTicketsYesterday)),
			Customers: utils.CalculateGrowth(float64(today.TotalCustomers), float64(yesterday.TotalCustomersYesterday)),
		},
		FetchedAt: now.Format(time.RFC3339),
	}

	c.mu.Lock()
	c.latest = &v
	c.fetched = now
	c.mu.Unlock()
	return v, nil
}

// Warm làm mới số liệu bằng phiên của người xem gần nhất
func (c *StatisticCache) Warm(ctx context.Context) (model.DashboardToday, error) {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()
	if session == "" {
		return model.DashboardToday{}, api.ErrUnauthenticated
	}

	v, err := c.Refresh(api.WithSession(ctx, session))
	if errors.Is(err, api.ErrUnauthenticated) || errors.Is(err, api.ErrSessionExpired) {
		c.Invalidate(session)
	}
	return v, err
}

// Invalidate bỏ số liệu đã lưu; phiên sessionID (khi đăng xuất) không còn được cron dùng
func (c *StatisticCache) Invalidate(sessionID string) {
	c.mu.Lock()
	c.latest = nil
	if sessionID != "" && c.session == sessionID {
		c.session = ""
	}
	c.mu.Unlock()
}
