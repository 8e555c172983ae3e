package helper

import (
	"context"
	"errors"
	"time"

	"cinema_admin/api"
	"cinema_admin/order"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Jobs gồm các tác vụ nền: dọn phiên đặt vé hết hạn (gocron) và làm nóng số liệu dashboard (cron)
type Jobs struct {
	sessions gocron.Scheduler
	stats    *cron.Cron
	log      *zap.Logger
}

func StartJobs(registry *order.Registry, sweepEvery time.Duration, stats *StatisticCache, statsSpec string, log *zap.Logger) (*Jobs, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		return nil, err
	}
	_, err = s.NewJob(
		gocron.DurationJob(sweepEvery),
		gocron.NewTask(func() { registry.Sweep() }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	if _, err := c.AddFunc(statsSpec, func() { warmStatistic(stats, log) }); err != nil {
		s.Shutdown()
		return nil, err
	}

	s.Start()
	c.Start()
	log.Info("background jobs started",
		zap.Duration("sessionSweep", sweepEvery),
		zap.String("statisticRefresh", statsSpec),
	)
	return &Jobs{sessions: s, stats: c, log: log}, nil
}

func warmStatistic(stats *StatisticCache, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := stats.Warm(ctx); err != nil {
		if errors.Is(err, api.ErrUnauthenticated) {
			log.Debug("skip statistic refresh, not logged in")
			return
		}
		log.Warn("statistic refresh failed", zap.Error(err))
	}
}

func (j *Jobs) Stop() {
	<-j.stats.Stop().Done()
	if err := j.sessions.Shutdown(); err != nil {
		j.log.Warn("stop session scheduler", zap.Error(err))
	}
	j.log.Info("background jobs stopped")
}
