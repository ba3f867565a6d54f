package workers

import (
	"context"
	"sync"
)

// CallbackQueue is an unbounded FIFO shared by every notifier of a pool.
// Put never blocks; Take blocks until a request is available or ctx is done.
type CallbackQueue struct {
	mu       sync.Mutex
	requests []CallbackRequest
	signal   chan struct{}
}

func NewCallbackQueue() *CallbackQueue {
	return &CallbackQueue{signal: make(chan struct{}, 1)}
}

func (q *CallbackQueue) Put(req CallbackRequest) {
	q.mu.Lock()
	q.requests = append(q.requests, req)
	q.mu.Unlock()
	q.wake()
}

// Take removes the request at the head of the queue.
// When more requests remain, another waiting notifier is woken up.
func (q *CallbackQueue) Take(ctx context.Context) (CallbackRequest, error) {
	for {
		q.mu.Lock()
		if len(q.requests) > 0 {
			req := q.requests[0]
			q.requests[0] = CallbackRequest{}
			q.requests = q.requests[1:]
			remaining := len(q.requests)
			q.mu.Unlock()
			if remaining > 0 {
				q.wake()
			}
			return req, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return CallbackRequest{}, ctx.Err()
		case <-q.signal:
		}
	}
}

// Clear drops every pending request and returns how many were dropped.
func (q *CallbackQueue) Clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(q.requests)
	q.requests = nil
	return n
}

func (q *CallbackQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.requests)
}

func (q *CallbackQueue) wake() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}
