package workers

import (
	"context"
	"wordmole/contract"
)

// CallbackRequest pairs a callback with the argument it is invoked with.
// It is consumed exactly once by exactly one notifier.
type CallbackRequest struct {
	callback contract.Callback
	arg      any
}

func NewCallbackRequest(cb contract.Callback, arg any) CallbackRequest {
	return CallbackRequest{callback: cb, arg: arg}
}

func (r CallbackRequest) Arg() any { return r.arg }

func (r CallbackRequest) execute(ctx context.Context) {
	if r.callback == nil {
		return
	}
	r.callback.ExecuteCallback(ctx, r.arg)
}
