package simulation

import (
	"autoOpsAI/pkg/logger"
	"context"
	"time"
)

// Ticker is the part of *time.Ticker the scheduler needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFactory func(interval time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

func RealTicker(interval time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(interval)}
}

// Scheduler runs a job on every tick until its context ends. A failed run
// is logged and the loop carries on.
type Scheduler struct {
	name      string
	interval  time.Duration
	newTicker TickerFactory
}

func NewScheduler(name string, interval time.Duration, newTicker TickerFactory) *Scheduler {
	if newTicker == nil {
		newTicker = RealTicker
	}
	return &Scheduler{
		name:      name,
		interval:  interval,
		newTicker: newTicker,
	}
}

// Run blocks until ctx is done and returns how many runs succeeded.
func (s *Scheduler) Run(ctx context.Context, job func(context.Context) error) int {
	ticker := s.newTicker(s.interval)
	defer ticker.Stop()

	logger.Info("scheduler started", "name", s.name, "interval", s.interval.String())

	ok := 0
	for {
		select {
		case <-ctx.Done():
			logger.Info("scheduler stopped", "name", s.name, "runs", ok)
			return ok
		case <-ticker.C():
			if err := job(ctx); err != nil {
				logger.Warn("scheduled job failed", "name", s.name, "error", err)
				continue
			}
			ok++
		}
	}
}
