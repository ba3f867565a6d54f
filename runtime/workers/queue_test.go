package workers

import (
	"context"
	"testing"
	"time"
	"wordmole/contract"

	"github.com/stretchr/testify/require"
)

func noop(context.Context, any) {}

func TestCallbackQueue_Take_Is_FIFO(t *testing.T) {
	req := require.New(t)
	queue := NewCallbackQueue()

	// Given three requests put in order
	for i := 1; i <= 3; i++ {
		queue.Put(NewCallbackRequest(contract.CallbackFunc(noop), i))
	}
	req.Equal(3, queue.Len())

	// When taking them back
	var args []any
	for i := 0; i < 3; i++ {
		r, err := queue.Take(context.Background())
		req.NoError(err)
		args = append(args, r.Arg())
	}

	// Then they come out in submission order
	req.Equal([]any{1, 2, 3}, args)
	req.Zero(queue.Len())
}

func TestCallbackQueue_Take_Returns_When_Context_Done(t *testing.T) {
	req := require.New(t)
	queue := NewCallbackQueue()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// When waiting on an empty queue
	_, err := queue.Take(ctx)

	// Then the wait ends with the context
	req.ErrorIs(err, context.DeadlineExceeded)
}

func TestCallbackQueue_Take_Wakes_Up_On_Put(t *testing.T) {
	req := require.New(t)
	queue := NewCallbackQueue()
	taken := make(chan any, 1)

	// Given a consumer blocked on an empty queue
	go func() {
		r, err := queue.Take(context.Background())
		if err == nil {
			taken <- r.Arg()
		}
	}()

	// When a request is put
	time.Sleep(20 * time.Millisecond)
	queue.Put(NewCallbackRequest(contract.CallbackFunc(noop), "hello"))

	// Then the consumer receives it
	select {
	case arg := <-taken:
		req.Equal("hello", arg)
	case <-time.After(time.Second):
		req.Fail("consumer was never woken up")
	}
}

func TestCallbackQueue_Clear(t *testing.T) {
	req := require.New(t)
	queue := NewCallbackQueue()
	queue.Put(NewCallbackRequest(contract.CallbackFunc(noop), 1))
	queue.Put(NewCallbackRequest(contract.CallbackFunc(noop), 2))

	req.Equal(2, queue.Clear())
	req.Zero(queue.Len())
}
