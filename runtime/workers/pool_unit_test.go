package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"
	"wordmole/contract"
	"wordmole/errors"

	"github.com/stretchr/testify/require"
)

func TestNotifier_Name(t *testing.T) {
	req := require.New(t)
	n := NewNotifier(3, MaxPriority, NewCallbackQueue(), slog.Default())
	req.Equal("Notifier 10:3", contract.GetWorkerName(n))
	req.Equal(3, n.ID())
	req.Equal(MaxPriority, n.Priority())
}

func TestNotifier_Idle_Is_Never_Timed_Out(t *testing.T) {
	req := require.New(t)
	n := NewNotifier(1, NormPriority, NewCallbackQueue(), slog.Default())

	req.False(n.IsActive())
	req.False(n.CheckForTimeout(time.Now().Add(time.Hour), time.Second))
}

func TestNotifier_CheckForTimeout_Cancels_Running_Callback(t *testing.T) {
	req := require.New(t)
	n := NewNotifier(1, NormPriority, NewCallbackQueue(), slog.Default())
	started := make(chan struct{})
	cause := make(chan error, 1)

	// Given a notifier executing a blocked callback
	go n.execute(context.Background(), NewCallbackRequest(contract.CallbackFunc(func(ctx context.Context, _ any) {
		close(started)
		<-ctx.Done()
		cause <- context.Cause(ctx)
	}), nil))
	<-started
	req.True(n.IsActive())

	// When the sweeper looks within the budget, nothing happens
	req.False(n.CheckForTimeout(time.Now(), time.Minute))

	// When it looks past the budget, the callback is cancelled
	req.True(n.CheckForTimeout(time.Now().Add(2*time.Minute), time.Minute))
	req.ErrorIs(<-cause, errors.ErrTimeoutExceeded)
	req.Eventually(func() bool { return !n.IsActive() }, time.Second, 5*time.Millisecond)
}

func TestNotifier_Run_Stops_With_Context(t *testing.T) {
	req := require.New(t)
	n := NewNotifier(1, NormPriority, NewCallbackQueue(), slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- n.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		req.Fail("notifier did not stop")
	}
}
