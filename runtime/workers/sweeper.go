package workers

import (
	"context"
	"log/slog"
	"time"
)

// DefaultSweepRate is how often the sweeper looks for callbacks running late.
const DefaultSweepRate = 4 * time.Second

type timeoutChecker interface {
	CheckForTimeout(now time.Time) int
}

// Sweeper periodically asks the pool to cancel callbacks that exceeded the
// maximum call time. Cancellation is cooperative: a callback only notices it
// at its next blocking point.
type Sweeper struct {
	log   *slog.Logger
	pool  timeoutChecker
	rate  time.Duration
	clock func() time.Time
}

func NewSweeper(log *slog.Logger, pool timeoutChecker, rate time.Duration) *Sweeper {
	if rate <= 0 {
		rate = DefaultSweepRate
	}
	return &Sweeper{log: log, pool: pool, rate: rate, clock: time.Now}
}

func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.rate)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Stopping sweeper")
			return nil
		case <-ticker.C:
			if n := s.pool.CheckForTimeout(s.clock()); n > 0 {
				s.log.Warn("Cancelled callbacks over the maximum call time", "count", n)
			}
		}
	}
}
