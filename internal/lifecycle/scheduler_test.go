package lifecycle

import (
	"context"
	"errors"
	"sync"
	"testing"

	"song_rounds_system/configs"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubTicker struct {
	mu    sync.Mutex
	ticks int
	err   error
	panic bool
}

func (s *stubTicker) Tick(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticks++
	if s.panic {
		panic("tick exploded")
	}
	return s.err
}

func (s *stubTicker) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

func newTestScheduler(ticker Ticker, runOnStartup bool) *Scheduler {
	config := configs.Scheduler{
		TickIntervalMinutes: 60,
		RunOnStartup:        runOnStartup,
	}
	return NewScheduler(ticker, config, zap.NewNop().Sugar())
}

func TestScheduler_StartRunsTickOnStartup(t *testing.T) {
	ticker := &stubTicker{}
	scheduler := newTestScheduler(ticker, true)
	defer scheduler.Stop()

	alreadyRunning, err := scheduler.Start(context.Background())
	assert.NoError(t, err)
	assert.False(t, alreadyRunning)
	assert.Equal(t, 1, ticker.count())
}

func TestScheduler_StartWithoutStartupRun(t *testing.T) {
	ticker := &stubTicker{}
	scheduler := newTestScheduler(ticker, false)
	defer scheduler.Stop()

	alreadyRunning, err := scheduler.Start(context.Background())
	assert.NoError(t, err)
	assert.False(t, alreadyRunning)
	assert.Equal(t, 0, ticker.count())
}

func TestScheduler_SecondStartReportsAlreadyActive(t *testing.T) {
	ticker := &stubTicker{}
	scheduler := newTestScheduler(ticker, true)
	defer scheduler.Stop()

	_, err := scheduler.Start(context.Background())
	assert.NoError(t, err)

	alreadyRunning, err := scheduler.Start(context.Background())
	assert.NoError(t, err)
	assert.True(t, alreadyRunning)
	assert.Equal(t, 1, ticker.count())
}

func TestScheduler_StopReportsWhetherActive(t *testing.T) {
	ticker := &stubTicker{}
	scheduler := newTestScheduler(ticker, false)

	assert.False(t, scheduler.Stop())

	_, err := scheduler.Start(context.Background())
	assert.NoError(t, err)
	assert.True(t, scheduler.Stop())
	assert.False(t, scheduler.Stop())
}

func TestScheduler_TickErrorDoesNotFailStart(t *testing.T) {
	ticker := &stubTicker{err: errors.New("database error")}
	scheduler := newTestScheduler(ticker, true)
	defer scheduler.Stop()

	alreadyRunning, err := scheduler.Start(context.Background())
	assert.NoError(t, err)
	assert.False(t, alreadyRunning)
	assert.Equal(t, 1, ticker.count())
}

func TestScheduler_TickPanicIsRecovered(t *testing.T) {
	ticker := &stubTicker{panic: true}
	scheduler := newTestScheduler(ticker, true)
	defer scheduler.Stop()

	assert.NotPanics(t, func() {
		_, err := scheduler.Start(context.Background())
		assert.NoError(t, err)
	})
	assert.Equal(t, 1, ticker.count())
}

func TestScheduler_CanRestartAfterStop(t *testing.T) {
	ticker := &stubTicker{}
	scheduler := newTestScheduler(ticker, true)

	_, err := scheduler.Start(context.Background())
	assert.NoError(t, err)
	assert.True(t, scheduler.Stop())

	alreadyRunning, err := scheduler.Start(context.Background())
	assert.NoError(t, err)
	assert.False(t, alreadyRunning)
	assert.Equal(t, 2, ticker.count())

	scheduler.Stop()
}
