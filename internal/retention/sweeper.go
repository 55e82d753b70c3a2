package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Purger deletes assessments completed before a cutoff.
type Purger interface {
	PurgeCompletedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// Sweeper periodically deletes assessments older than the retention window.
type Sweeper struct {
	purger    Purger
	retention time.Duration
	logger    *slog.Logger
	now       func() time.Time
	cron      *cron.Cron
}

func NewSweeper(p Purger, days int, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		purger:    p,
		retention: time.Duration(days) * 24 * time.Hour,
		logger:    logger,
		now:       time.Now,
	}
}

// RunOnce performs a single sweep and reports how many records were removed.
func (s *Sweeper) RunOnce(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.retention)
	n, err := s.purger.PurgeCompletedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("retention sweep", "deleted", n, "cutoff", cutoff)
	}
	return n, nil
}

// Start schedules RunOnce on a cron schedule such as "@daily" or "0 3 * * *".
func (s *Sweeper) Start(schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if _, err := s.RunOnce(context.Background()); err != nil {
			s.logger.Error("retention sweep failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", schedule, err)
	}
	s.cron = c
	c.Start()

	s.logger.Info("retention sweeper started",
		"schedule", schedule,
		"retention", s.retention,
	)
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish or ctx to expire.
func (s *Sweeper) Stop(ctx context.Context) {
	if s.cron == nil {
		return
	}
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
