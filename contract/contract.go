//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"wordmole/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	if named, ok := w.(interface{ Name() string }); ok {
		return named.Name()
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Callback is a unit of deferred work executed by a notifier.
// ctx is cancelled when the callback exceeds the maximum call time or when the
// pool stops; every blocking call made by the callback must honor it.
type Callback interface {
	ExecuteCallback(ctx context.Context, arg any)
}

// CallbackFunc adapts a plain function to a Callback.
type CallbackFunc func(ctx context.Context, arg any)

func (f CallbackFunc) ExecuteCallback(ctx context.Context, arg any) {
	f(ctx, arg)
}

// Dispatcher is the fire-and-forget side of the dispatch engine.
type Dispatcher interface {
	Submit(cb Callback, arg any)
	SubmitFunc(fn func(ctx context.Context, arg any), arg any)
}

// LobbyView is the lobby capability of a client proxy.
type LobbyView interface {
	UpdateClientList(ctx context.Context, identities []domain.Identity) error
	DisplayMessage(ctx context.Context, text string) error
}

// InvitationView receives invitation traffic.
type InvitationView interface {
	ReceiveInvite(ctx context.Context, invitation Invitation) error
	CancelInvite(ctx context.Context) error
	ReceiveInviteDecision(ctx context.Context, identity domain.Identity, accepted bool) error
}

// GameView is the proxy of a player's game frame.
type GameView interface {
	ReceiveGame(ctx context.Context, game GameService) error
	StartGame(ctx context.Context) error
	DisconnectPlayer(ctx context.Context, identity domain.Identity) error
	UpdateScore(ctx context.Context, identity domain.Identity, score int) error
	NotifyWinner(ctx context.Context, identity domain.Identity) error
}

// ClientView is the proxy registered by a client when it joins the lobby.
type ClientView interface {
	LobbyView
	InvitationView
	GameView
}

// Invitation is the service a host and its invitees talk to while voting.
type Invitation interface {
	Invite() domain.Invite
	MakeDecision(identity domain.Identity, accept bool) error
	Ready() bool
	InitializeGame(commit bool)
}

// GameService is the service players talk to during a game.
type GameService interface {
	Game() domain.Game
	Register(identity domain.Identity, view GameView, connected bool)
	UpdateScore(identity domain.Identity, score int)
	WinGame(identity domain.Identity)
}

// Server is what sessions need from the coordinator that owns them.
// None of these methods may call back into a session lock.
type Server interface {
	CreateGame(game domain.Game) (GameService, error)
	RegisterIdentity(identity domain.Identity, connected bool)
	UpdateIdentity(identity domain.Identity)
	GetViewHandle(identity domain.Identity) (ClientView, bool)
	Log(msg string)
}

type IRegistry interface {
	Add(view ClientView, identity domain.Identity)
	Remove(identity domain.Identity)
	Update(identity domain.Identity) bool
	Get(identity domain.Identity) (ClientView, bool)
	GetIdentity(view ClientView) (domain.Identity, bool)
	Snapshot() []domain.Identity
}
