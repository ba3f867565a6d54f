package services

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"wordmole/contract"
	"wordmole/domain"
	"wordmole/errors"

	"github.com/samber/lo"
)

type InvitationState string

const (
	InvitationSetup InvitationState = "SETUP"
	AwaitingVotes   InvitationState = "AWAITING_VOTES"
	GameCreated     InvitationState = "GAME_CREATED"
	Cancelled       InvitationState = "CANCELLED"
)

var _ contract.Invitation = (*InvitationService)(nil)

// inviteDecision is the command sent to the host once an invitee voted.
type inviteDecision struct {
	Identity domain.Identity
	Accepted bool
}

// InvitationService collects the votes of the invitees of a host.
// Every task it dispatches runs under mu, so two tasks of the same invitation
// never interleave whatever the size of the pool.
type InvitationService struct {
	log        *slog.Logger
	server     contract.Server
	dispatcher contract.Dispatcher
	invite     domain.Invite

	mu        sync.Mutex
	accepted  []domain.Identity
	views     map[string]contract.InvitationView
	voted     map[string]bool
	remaining int

	// state is written under mu and read without it.
	state atomic.Value
}

// NewInvitationService registers the host as the first accepted member and
// dispatches the delivery of the invite to every invitee.
func NewInvitationService(log *slog.Logger, server contract.Server, dispatcher contract.Dispatcher, invite domain.Invite) *InvitationService {
	s := &InvitationService{
		log:        log.With("host", invite.Host().Name),
		server:     server,
		dispatcher: dispatcher,
		invite:     invite,
		accepted:   []domain.Identity{invite.Host()},
		views:      make(map[string]contract.InvitationView),
		voted:      make(map[string]bool),
		remaining:  invite.NumInvitees(),
	}
	s.state.Store(InvitationSetup)
	dispatcher.SubmitFunc(s.setup, nil)
	return s
}

func (s *InvitationService) setup(ctx context.Context, _ any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.State() != InvitationSetup {
		return
	}
	s.state.Store(AwaitingVotes)

	host := s.invite.Host()
	s.server.UpdateIdentity(host.WithState(domain.WAITING))

	for _, invitee := range s.invite.Invitees() {
		if errors.Aborted(ctx) {
			// The invite never reached the remaining invitees: their vote
			// would never come.
			s.log.Warn("Invite delivery aborted", "invitee", invitee.Name)
			s.decideLocked(invitee, false, false)
			continue
		}
		view, ok := s.server.GetViewHandle(invitee)
		if !ok {
			s.log.Debug("Invitee is not registered, auto-reject", "invitee", invitee.Name)
			s.decideLocked(invitee, false, false)
			continue
		}
		if err := view.ReceiveInvite(ctx, s); err != nil {
			s.log.Debug("Invite not delivered, auto-reject", "invitee", invitee.Name, "error", err)
			s.decideLocked(invitee, false, false)
			if errors.IsCommunicationFault(ctx, err) {
				s.server.RegisterIdentity(invitee, false)
			}
			continue
		}
		s.views[invitee.Name] = view
		s.server.UpdateIdentity(invitee.WithState(domain.WAITING))
	}
}

// MakeDecision records the vote of an invitee. Each invitee votes once.
func (s *InvitationService) MakeDecision(identity domain.Identity, accept bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed() {
		return errors.ErrSessionClosed
	}
	if !s.isInviteeLocked(identity) {
		return errors.ErrNotInvited
	}
	if s.voted[identity.Name] {
		return errors.ErrAlreadyVoted
	}
	s.decideLocked(identity, accept, true)
	return nil
}

// decideLocked counts a vote. reset sends a rejecting invitee back to the lobby,
// it is false for invitees that could not be reached.
func (s *InvitationService) decideLocked(identity domain.Identity, accept, reset bool) {
	if s.voted[identity.Name] {
		return
	}
	s.voted[identity.Name] = true
	if accept {
		s.accepted = append(s.accepted, identity)
	} else if reset {
		s.dispatcher.SubmitFunc(s.resetIdentity, identity)
	}
	s.remaining--
	s.dispatcher.SubmitFunc(s.notifyHost, inviteDecision{Identity: identity, Accepted: accept})
}

func (s *InvitationService) resetIdentity(_ context.Context, arg any) {
	identity := arg.(domain.Identity)
	s.server.UpdateIdentity(identity.WithState(domain.CONNECTED))
}

func (s *InvitationService) notifyHost(ctx context.Context, arg any) {
	decision := arg.(inviteDecision)
	s.mu.Lock()
	defer s.mu.Unlock()

	host := s.invite.Host()
	view, ok := s.server.GetViewHandle(host)
	if !ok {
		s.log.Debug("Host left, decision not delivered", "invitee", decision.Identity.Name)
		return
	}
	err := view.ReceiveInviteDecision(ctx, decision.Identity, decision.Accepted)
	if errors.IsCommunicationFault(ctx, err) {
		s.log.Warn("Host unreachable", "invitee", decision.Identity.Name, "error", err)
		s.server.RegisterIdentity(host, false)
	}
}

// Ready reports whether every invitee has voted.
func (s *InvitationService) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining <= 0
}

// InitializeGame closes the invitation. commit creates a game with the accepted
// members, otherwise every member goes back to the lobby.
func (s *InvitationService) InitializeGame(commit bool) {
	s.dispatcher.SubmitFunc(s.initialize, commit)
}

func (s *InvitationService) initialize(ctx context.Context, arg any) {
	commit := arg.(bool)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed() {
		s.log.Debug("Invitation already closed", "state", s.State())
		return
	}
	if commit {
		s.commitLocked()
		return
	}
	s.cancelLocked(ctx)
}

func (s *InvitationService) commitLocked() {
	s.state.Store(GameCreated)
	game, err := domain.NewGame(s.accepted...)
	if err != nil {
		s.log.Error("Cannot build game", "error", err)
		return
	}
	if _, err := s.server.CreateGame(game); err != nil {
		s.log.Error("Cannot create game", "error", err)
	}
}

func (s *InvitationService) cancelLocked(ctx context.Context) {
	s.state.Store(Cancelled)
	s.server.UpdateIdentity(s.invite.Host().WithState(domain.CONNECTED))

	for _, invitee := range s.invite.Invitees() {
		view, ok := s.views[invitee.Name]
		if !ok {
			continue
		}
		if _, registered := s.server.GetViewHandle(invitee); !registered {
			continue
		}
		err := view.CancelInvite(ctx)
		if errors.Aborted(ctx) {
			s.log.Warn("Invite cancellation aborted", "invitee", invitee.Name)
			return
		}
		if errors.IsCommunicationFault(ctx, err) {
			s.server.RegisterIdentity(invitee, false)
			continue
		}
		s.server.UpdateIdentity(invitee.WithState(domain.CONNECTED))
	}
}

func (s *InvitationService) isInviteeLocked(identity domain.Identity) bool {
	return lo.ContainsBy(s.invite.Invitees(), func(i domain.Identity) bool {
		return i.SameAs(identity)
	})
}

func (s *InvitationService) Invite() domain.Invite { return s.invite }

func (s *InvitationService) State() InvitationState {
	return s.state.Load().(InvitationState)
}

func (s *InvitationService) closed() bool {
	state := s.State()
	return state == GameCreated || state == Cancelled
}

// Accepted returns the members who accepted, the host first.
func (s *InvitationService) Accepted() []domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Identity(nil), s.accepted...)
}

func (s *InvitationService) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}
