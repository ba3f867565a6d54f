package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"wordmole/contract"
	"wordmole/errors"
)

// Ensure *Notifier implements the contract.Worker interface at compile time.
var _ contract.Worker = (*Notifier)(nil)

// Notifier is one unit of the callback pool. It executes one request at a time
// and exposes when its current request started so the sweeper can cancel it.
type Notifier struct {
	id       int
	priority int
	queue    *CallbackQueue
	log      *slog.Logger

	mu      sync.Mutex
	active  bool
	started time.Time
	cancel  context.CancelCauseFunc
}

func NewNotifier(id, priority int, queue *CallbackQueue, log *slog.Logger) *Notifier {
	return &Notifier{
		id:       id,
		priority: priority,
		queue:    queue,
		log:      log.With("notifier", id, "priority", priority),
	}
}

func (n *Notifier) Name() string {
	return fmt.Sprintf("Notifier %d:%d", n.priority, n.id)
}

func (n *Notifier) ID() int { return n.id }

func (n *Notifier) Priority() int { return n.priority }

func (n *Notifier) Run(ctx context.Context) error {
	for {
		req, err := n.queue.Take(ctx)
		if err != nil {
			n.log.Debug("Stopping notifier")
			return err
		}
		n.execute(ctx, req)
		if ctx.Err() != nil {
			n.log.Debug("Stopping notifier")
			return ctx.Err()
		}
	}
}

// execute runs a single request. A panicking callback is logged and never
// escapes the notifier.
func (n *Notifier) execute(parent context.Context, req CallbackRequest) {
	ctx, cancel := context.WithCancelCause(parent)
	n.mu.Lock()
	n.active = true
	n.started = time.Now()
	n.cancel = cancel
	n.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			n.log.Error("Unexpected callback error", "error", fmt.Errorf("%w: %v", errors.ErrCallbackPanic, r))
		}
		if context.Cause(ctx) == errors.ErrTimeoutExceeded {
			n.log.Warn("Callback exceeded maximum time", "elapsed", n.Elapsed(time.Now()))
		}
		n.mu.Lock()
		n.active = false
		n.cancel = nil
		n.mu.Unlock()
		cancel(nil)
	}()

	req.execute(ctx)
}

// IsActive reports whether the notifier is currently executing a callback.
func (n *Notifier) IsActive() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

// Elapsed is the time spent on the current callback. It is meaningful only
// while IsActive returns true.
func (n *Notifier) Elapsed(now time.Time) time.Duration {
	n.mu.Lock()
	defer n.mu.Unlock()
	return now.Sub(n.started)
}

// CheckForTimeout cancels the current callback when it has been running for
// longer than max. It returns true when a cancellation was issued.
func (n *Notifier) CheckForTimeout(now time.Time, max time.Duration) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.active || n.cancel == nil {
		return false
	}
	if now.Sub(n.started) <= max {
		return false
	}
	n.cancel(errors.ErrTimeoutExceeded)
	return true
}
