package services

import (
	"context"
	"sync"
	"wordmole/contract"
)

// manualDispatcher queues tasks until the test runs them, so that every
// interleaving is decided by the test.
type manualDispatcher struct {
	mu    sync.Mutex
	tasks []manualTask
}

type manualTask struct {
	cb  contract.Callback
	arg any
}

var _ contract.Dispatcher = (*manualDispatcher)(nil)

func (d *manualDispatcher) Submit(cb contract.Callback, arg any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tasks = append(d.tasks, manualTask{cb: cb, arg: arg})
}

func (d *manualDispatcher) SubmitFunc(fn func(ctx context.Context, arg any), arg any) {
	d.Submit(contract.CallbackFunc(fn), arg)
}

func (d *manualDispatcher) pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.tasks)
}

// runNext executes the oldest task with ctx and reports whether one ran.
func (d *manualDispatcher) runNext(ctx context.Context) bool {
	d.mu.Lock()
	if len(d.tasks) == 0 {
		d.mu.Unlock()
		return false
	}
	task := d.tasks[0]
	d.tasks = d.tasks[1:]
	d.mu.Unlock()

	task.cb.ExecuteCallback(ctx, task.arg)
	return true
}

// runAll executes tasks, including the ones they submit, until none is left.
func (d *manualDispatcher) runAll() {
	for d.runNext(context.Background()) {
	}
}

func cancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
