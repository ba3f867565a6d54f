package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type countingChecker struct {
	calls atomic.Int32
}

func (c *countingChecker) CheckForTimeout(time.Time) int {
	c.calls.Add(1)
	return 1
}

func TestSweeper_Checks_Pool_At_Each_Tick(t *testing.T) {
	req := require.New(t)
	checker := &countingChecker{}
	sweeper := NewSweeper(logs.GetLoggerFromLevel(slog.LevelDebug), checker, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sweeper.Run(ctx) }()

	// Then the pool is checked periodically
	req.Eventually(func() bool { return checker.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	// And the sweeper stops cleanly with its context
	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("sweeper did not stop")
	}
}

func TestSweeper_Default_Rate(t *testing.T) {
	req := require.New(t)
	sweeper := NewSweeper(slog.Default(), &countingChecker{}, 0)
	req.Equal(DefaultSweepRate, sweeper.rate)
}

type fixedStats struct {
	calls atomic.Int32
}

func (f *fixedStats) Stats() Stats {
	f.calls.Add(1)
	return Stats{Notifiers: 2, Active: 1, Pending: 3}
}

func TestHeartbeatWorker_Reports_Pools(t *testing.T) {
	req := require.New(t)
	source := &fixedStats{}
	worker := NewHeartbeatWorker(logs.GetLoggerFromLevel(slog.LevelDebug), 10*time.Millisecond,
		map[string]StatsSource{"clients": source})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	req.Eventually(func() bool { return source.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}
