package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
	"wordmole/contract"
	"wordmole/errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	TenSeconds    = 10 * time.Second
	ThirtySeconds = 30 * time.Second
	SixtySeconds  = 60 * time.Second
)

// Priority hints accepted by a pool. Goroutines have no scheduling priority,
// the hint only labels notifiers and is validated for compatibility with clients
// configuring pools by priority.
const (
	MinPriority  = 1
	NormPriority = 5
	MaxPriority  = 10
)

var validate = validator.New()

type PoolConfig struct {
	Size            int           `validate:"gte=0"`
	Priority        int           `validate:"gte=1,lte=10"`
	MaxCallTime     time.Duration `validate:"gte=0"`
	SweepRate       time.Duration `validate:"gte=0"`
	RestartInterval time.Duration `validate:"gte=0"`
}

// Stats is a point-in-time view of a pool.
type Stats struct {
	Notifiers int
	Active    int
	Pending   int
}

var _ contract.Dispatcher = (*AsyncCallback)(nil)

// AsyncCallback is the dispatch engine: a fixed set of notifiers consuming a
// single FIFO queue, watched by a sweeper that cancels callbacks running longer
// than the maximum call time.
//
// With one notifier, callbacks run in submission order. With more, dequeue
// order is FIFO but callbacks may overlap; callers needing serialization must
// hold their own lock inside the callback.
type AsyncCallback struct {
	log         *slog.Logger
	cfg         PoolConfig
	queue       *CallbackQueue
	maxCallTime atomic.Int64

	mu         sync.RWMutex
	notifiers  []*Notifier
	supervisor *Supervisor
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewAsyncCallback validates cfg and builds a stopped pool.
func NewAsyncCallback(log *slog.Logger, cfg PoolConfig) (*AsyncCallback, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidConfiguration, err)
	}
	if cfg.MaxCallTime == 0 {
		cfg.MaxCallTime = SixtySeconds
	}
	a := &AsyncCallback{
		log:   log.With("pool_priority", cfg.Priority),
		cfg:   cfg,
		queue: NewCallbackQueue(),
	}
	a.maxCallTime.Store(int64(cfg.MaxCallTime))
	return a, nil
}

// Start spawns the notifiers and the sweeper. Starting a running pool is a no-op.
func (a *AsyncCallback) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.supervisor != nil || a.cfg.Size == 0 {
		return
	}

	sup := NewSupervisor(a.log, a.cfg.RestartInterval)
	notifiers := make([]*Notifier, 0, a.cfg.Size)
	for i := a.cfg.Size; i > 0; i-- {
		n := NewNotifier(i, a.cfg.Priority, a.queue, a.log)
		notifiers = append(notifiers, n)
		sup.Add(n)
	}
	sup.Add(NewSweeper(a.log, a, a.cfg.SweepRate))

	ctx, cancel := context.WithCancel(context.Background())
	a.notifiers = notifiers
	a.supervisor = sup
	a.cancel = cancel
	a.done = make(chan struct{})
	done := a.done
	go func() {
		defer close(done)
		sup.Run(ctx)
	}()
	a.log.Debug("Callback pool started", "size", a.cfg.Size)
}

// Stop cancels every notifier and waits for them to return. Requests still
// queued are discarded.
func (a *AsyncCallback) Stop() {
	a.mu.Lock()
	sup, cancel, done := a.supervisor, a.cancel, a.done
	a.supervisor, a.cancel, a.done, a.notifiers = nil, nil, nil, nil
	a.mu.Unlock()
	if sup == nil {
		return
	}

	cancel()
	sup.Stop()
	<-done
	if dropped := a.queue.Clear(); dropped > 0 {
		a.log.Debug("Discarded pending callbacks", "count", dropped)
	}
	a.log.Debug("Callback pool stopped")
}

func (a *AsyncCallback) Submit(cb contract.Callback, arg any) {
	a.queue.Put(NewCallbackRequest(cb, arg))
}

func (a *AsyncCallback) SubmitFunc(fn func(ctx context.Context, arg any), arg any) {
	a.Submit(contract.CallbackFunc(fn), arg)
}

func (a *AsyncCallback) NumThreads() int { return a.cfg.Size }

func (a *AsyncCallback) SetMaxCallTime(d time.Duration) {
	a.maxCallTime.Store(int64(d))
}

func (a *AsyncCallback) MaxCallTime() time.Duration {
	return time.Duration(a.maxCallTime.Load())
}

// CheckForTimeout cancels every active callback older than the maximum call
// time and returns how many were cancelled.
func (a *AsyncCallback) CheckForTimeout(now time.Time) int {
	max := a.MaxCallTime()
	a.mu.RLock()
	defer a.mu.RUnlock()
	return lo.CountBy(a.notifiers, func(n *Notifier) bool {
		return n.CheckForTimeout(now, max)
	})
}

func (a *AsyncCallback) Running() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.supervisor != nil
}

func (a *AsyncCallback) Stats() Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return Stats{
		Notifiers: len(a.notifiers),
		Active:    lo.CountBy(a.notifiers, func(n *Notifier) bool { return n.IsActive() }),
		Pending:   a.queue.Len(),
	}
}
