package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"song_rounds_system/configs"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Ticker is what the scheduler drives once per interval.
type Ticker interface {
	Tick(ctx context.Context) error
}

// Scheduler owns the periodic tick: one run at startup (when configured) and
// one per interval after that. Singleton job mode serializes ticks, so a slow
// tick is never overlapped by the next one.
type Scheduler struct {
	config    configs.Scheduler
	ticker    Ticker
	logger    *zap.SugaredLogger
	scheduler *gocron.Scheduler

	mu      sync.Mutex
	running bool
}

func NewScheduler(ticker Ticker, config configs.Scheduler, logger *zap.SugaredLogger) *Scheduler {
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()
	// The startup run is the only immediate tick; the interval job waits a
	// full interval before its first run.
	scheduler.WaitForScheduleAll()

	return &Scheduler{
		config:    config,
		ticker:    ticker,
		logger:    logger,
		scheduler: scheduler,
	}
}

// Start begins periodic ticking and reports whether a scheduler was already
// active, in which case nothing changes.
func (s *Scheduler) Start(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return true, nil
	}

	if s.config.RunOnStartup {
		s.runTick(ctx)
	}

	if _, err := s.scheduler.Every(s.config.TickInterval()).Do(func() {
		s.runTick(ctx)
	}); err != nil {
		return false, fmt.Errorf("failed to schedule tick: %w", err)
	}

	s.scheduler.StartAsync()
	s.running = true

	s.logger.Infow("scheduler started", "interval", s.config.TickInterval())
	return false, nil
}

// Stop halts periodic ticking and reports whether a scheduler was active.
func (s *Scheduler) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return false
	}

	s.scheduler.Stop()
	s.scheduler.Clear()
	s.running = false

	s.logger.Info("scheduler stopped")
	return true
}

// A failing or panicking tick is logged and the next scheduled tick proceeds
// independently; the phase pass rolls back as a whole, so retrying on the
// next interval is safe.
func (s *Scheduler) runTick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorw("tick panicked", "panic", r)
		}
	}()

	if err := s.ticker.Tick(ctx); err != nil {
		s.logger.Errorw("tick failed", "error", err)
	}
}
