package services

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"wordmole/contract"
	"wordmole/domain"
	"wordmole/errors"

	"github.com/samber/lo"
)

type GameState string

const (
	WaitingForPlayers GameState = "WAITING_FOR_PLAYERS"
	InSession         GameState = "IN_SESSION"
	Finished          GameState = "FINISHED"
)

var _ contract.GameService = (*GameService)(nil)

type player struct {
	identity domain.Identity
	view     contract.GameView
}

type scoreUpdate struct {
	Identity domain.Identity
	Score    int
}

// GameService tracks the players who joined a game and relays their updates.
// Every broadcast runs under mu on a notifier; a player whose view fails during
// a broadcast is dropped and the remaining players are told so.
type GameService struct {
	log        *slog.Logger
	server     contract.Server
	dispatcher contract.Dispatcher
	game       domain.Game

	mu     sync.Mutex
	roster []player

	// state and the counters below are written under mu and read without it.
	state     atomic.Value
	players   atomic.Int32
	reached   atomic.Int32
	joined    atomic.Bool
	delivered atomic.Bool
}

// NewGameService dispatches the delivery of the game to every player.
func NewGameService(log *slog.Logger, server contract.Server, dispatcher contract.Dispatcher, game domain.Game) *GameService {
	s := &GameService{
		log:        log.With("game", game.ID().String()),
		server:     server,
		dispatcher: dispatcher,
		game:       game,
	}
	s.state.Store(WaitingForPlayers)
	dispatcher.SubmitFunc(s.deliver, nil)
	return s
}

func (s *GameService) deliver(ctx context.Context, _ any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.delivered.Store(true)

	for _, p := range s.game.Players() {
		if errors.Aborted(ctx) {
			s.log.Warn("Game delivery aborted", "player", p.Name)
			return
		}
		view, ok := s.server.GetViewHandle(p)
		if !ok {
			s.log.Debug("Player is not registered", "player", p.Name)
			s.disconnectLocked(ctx, p)
			continue
		}
		err := view.ReceiveGame(ctx, s)
		if errors.IsCommunicationFault(ctx, err) {
			s.log.Debug("Game not delivered", "player", p.Name, "error", err)
			s.server.RegisterIdentity(p, false)
			s.disconnectLocked(ctx, p)
			continue
		}
		if err == nil {
			s.reached.Add(1)
			s.server.UpdateIdentity(p.WithState(domain.PLAYING))
		}
	}
}

// Register adds or removes a player's view. The game starts once, the first
// time every expected player has joined.
func (s *GameService) Register(identity domain.Identity, view contract.GameView, connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !connected {
		if s.removeLocked(identity) {
			s.dispatcher.SubmitFunc(s.removePlayer, identity)
		}
		return
	}

	if !s.isPlayer(identity) {
		s.log.Warn("Not a player of this game", "identity", identity.Name)
		return
	}
	if idx := s.indexLocked(identity); idx >= 0 {
		s.roster[idx].view = view
	} else {
		s.roster = append(s.roster, player{identity: identity, view: view})
		s.players.Store(int32(len(s.roster)))
		s.joined.Store(true)
	}

	if s.State() == WaitingForPlayers && len(s.roster) == s.game.Size() {
		s.state.Store(InSession)
		s.log.Info("Game in session", "players", len(s.roster))
		s.dispatcher.SubmitFunc(s.startGame, nil)
	}
}

func (s *GameService) startGame(ctx context.Context, _ any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broadcastLocked(ctx, func(ctx context.Context, v contract.GameView) error {
		return v.StartGame(ctx)
	})
}

func (s *GameService) removePlayer(ctx context.Context, arg any) {
	gone := arg.(domain.Identity)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broadcastLocked(ctx, disconnectCall(gone))
}

// UpdateScore relays the score of a player to every player.
func (s *GameService) UpdateScore(identity domain.Identity, score int) {
	s.dispatcher.SubmitFunc(s.updateScore, scoreUpdate{Identity: identity, Score: score})
}

func (s *GameService) updateScore(ctx context.Context, arg any) {
	update := arg.(scoreUpdate)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broadcastLocked(ctx, func(ctx context.Context, v contract.GameView) error {
		return v.UpdateScore(ctx, update.Identity, update.Score)
	})
}

// WinGame announces the winner and finishes the game. Only the first win of a
// game in session has an effect.
func (s *GameService) WinGame(identity domain.Identity) {
	s.dispatcher.SubmitFunc(s.winGame, identity)
}

func (s *GameService) winGame(ctx context.Context, arg any) {
	winner := arg.(domain.Identity)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State() != InSession {
		s.log.Debug("Win ignored", "winner", winner.Name, "state", s.State())
		return
	}
	// Cancelled while waiting for the lock: nobody was told, the game goes on.
	if errors.Aborted(ctx) {
		s.log.Warn("Win aborted before broadcast", "winner", winner.Name)
		return
	}
	s.broadcastLocked(ctx, func(ctx context.Context, v contract.GameView) error {
		return v.NotifyWinner(ctx, winner)
	})
	s.state.Store(Finished)
	s.log.Info("Game finished", "winner", winner.Name)
}

// broadcastLocked calls every player of the roster. Players failing the call
// are dropped, then every remaining player is told about each dropped one,
// until a pass completes without new failures or the task is cancelled.
func (s *GameService) broadcastLocked(ctx context.Context, call func(context.Context, contract.GameView) error) {
	pending := s.deliverLocked(ctx, call)
	for len(pending) > 0 && !errors.Aborted(ctx) {
		gone := pending[0]
		pending = append(pending[1:], s.deliverLocked(ctx, disconnectCall(gone))...)
	}
}

// deliverLocked returns the players dropped because their view failed.
func (s *GameService) deliverLocked(ctx context.Context, call func(context.Context, contract.GameView) error) []domain.Identity {
	var dropped []domain.Identity
	for _, p := range slices.Clone(s.roster) {
		if errors.Aborted(ctx) {
			s.log.Warn("Broadcast aborted", "remaining", p.identity.Name)
			return dropped
		}
		err := call(ctx, p.view)
		if !errors.IsCommunicationFault(ctx, err) {
			continue
		}
		s.log.Debug("Player unreachable, dropping", "player", p.identity.Name, "error", err)
		s.removeLocked(p.identity)
		s.server.RegisterIdentity(p.identity, false)
		dropped = append(dropped, p.identity)
	}
	return dropped
}

// disconnectLocked runs the disconnect path inline, for a task already
// holding the lock.
func (s *GameService) disconnectLocked(ctx context.Context, identity domain.Identity) {
	s.removeLocked(identity)
	s.broadcastLocked(ctx, disconnectCall(identity))
}

func disconnectCall(gone domain.Identity) func(context.Context, contract.GameView) error {
	return func(ctx context.Context, v contract.GameView) error {
		return v.DisconnectPlayer(ctx, gone)
	}
}

func (s *GameService) removeLocked(identity domain.Identity) bool {
	idx := s.indexLocked(identity)
	if idx < 0 {
		return false
	}
	s.roster = slices.Delete(s.roster, idx, idx+1)
	s.players.Store(int32(len(s.roster)))
	return true
}

func (s *GameService) indexLocked(identity domain.Identity) int {
	return slices.IndexFunc(s.roster, func(p player) bool {
		return p.identity.SameAs(identity)
	})
}

func (s *GameService) isPlayer(identity domain.Identity) bool {
	return lo.ContainsBy(s.game.Players(), func(p domain.Identity) bool {
		return p.SameAs(identity)
	})
}

func (s *GameService) Game() domain.Game { return s.game }

func (s *GameService) State() GameState {
	return s.state.Load().(GameState)
}

// Abandoned reports a game outside of a session that nobody can still join:
// its delivery is over and its roster is empty, either because every player
// left or because the game reached no one.
func (s *GameService) Abandoned() bool {
	if s.State() == InSession || !s.delivered.Load() || s.players.Load() > 0 {
		return false
	}
	return s.joined.Load() || s.reached.Load() == 0
}

// Roster returns the identities currently in the game, in join order.
func (s *GameService) Roster() []domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Map(s.roster, func(p player, _ int) domain.Identity { return p.identity })
}
