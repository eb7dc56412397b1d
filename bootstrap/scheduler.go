package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RebuildScheduler runs the full vector-index rebuild on a fixed interval.
// A failing or panicking cycle is logged and the loop continues; requests
// racing a rebuild may transiently see a partial index, which is accepted.
type RebuildScheduler struct {
	interval time.Duration
	rebuild  func(ctx context.Context) error
	logger   *zap.Logger
}

func NewRebuildScheduler(interval time.Duration, rebuild func(ctx context.Context) error, logger *zap.Logger) *RebuildScheduler {
	return &RebuildScheduler{
		interval: interval,
		rebuild:  rebuild,
		logger:   logger,
	}
}

// Start launches the loop and returns immediately. One rebuild runs right
// away so a fresh deployment serves content-based results before the first
// tick. The loop stops when ctx is cancelled.
func (s *RebuildScheduler) Start(ctx context.Context) {
	go func() {
		s.runOnce(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("rebuild scheduler stopped")
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()
}

func (s *RebuildScheduler) runOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("index rebuild panicked", zap.Any("panic", r))
		}
	}()

	start := time.Now()
	if err := s.rebuild(ctx); err != nil {
		s.logger.Error("scheduled index rebuild failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled index rebuild finished", zap.Duration("took", time.Since(start)))
}
