package errors

import (
	"context"
	stderrors "errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = fmt.Errorf("invalid configuration")
	ErrCommunicationFault   = fmt.Errorf("communication fault")
	ErrTimeoutExceeded      = fmt.Errorf("callback exceeded maximum call time")
	ErrCallbackPanic        = fmt.Errorf("callback panic")
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrInvalidInvite        = fmt.Errorf("invalid invite")
	ErrInvalidGame          = fmt.Errorf("invalid game")
	ErrNotInvited           = fmt.Errorf("identity is not an invitee")
	ErrAlreadyVoted         = fmt.Errorf("invitee has already voted")
	ErrUnknownIdentity      = fmt.Errorf("identity is not registered")
	ErrSessionClosed        = fmt.Errorf("session is closed")
	ErrEmptyWords           = fmt.Errorf("no words have been found")
	ErrJournalClosed        = fmt.Errorf("journal is closed")
)

// IsCommunicationFault reports whether err, returned by an outbound view call made
// with ctx, must be handled as a disconnect. A call aborted because ctx was
// cancelled is not a fault.
func IsCommunicationFault(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if ctx.Err() != nil {
		return false
	}
	return !stderrors.Is(err, context.Canceled)
}

// Aborted reports whether the task owning ctx has been cancelled, either by the
// sweeper or by a pool shutdown.
func Aborted(ctx context.Context) bool {
	return ctx.Err() != nil
}
