package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"wordmole/contract"
	"wordmole/domain"
	"wordmole/errors"
	"wordmole/moderation"
	"wordmole/runtime/workers"
	"wordmole/services"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var _ contract.Server = (*Coordinator)(nil)

type lobbyMessage struct {
	Sender domain.Identity
	Text   string
}

// Coordinator owns the lobby: the registry of connected clients, the callback
// pool shared by every session and the sessions themselves.
type Coordinator struct {
	log        *slog.Logger
	registry   *Registry
	callbacks  *workers.AsyncCallback
	logger     *Logger
	moderator  *moderation.Moderator
	supervisor *workers.Supervisor
	cancel     context.CancelFunc
	done       chan struct{}

	lobbyMu sync.Mutex // serializes lobby broadcasts

	mu          sync.Mutex
	invitations []*services.InvitationService
	games       map[uuid.UUID]*services.GameService
}

func NewCoordinator(log *slog.Logger, registry *Registry, callbacks *workers.AsyncCallback,
	logger *Logger, moderator *moderation.Moderator, heartbeat time.Duration) *Coordinator {
	c := &Coordinator{
		log:        log,
		registry:   registry,
		callbacks:  callbacks,
		logger:     logger,
		moderator:  moderator,
		supervisor: workers.NewSupervisor(log, 0),
		games:      make(map[uuid.UUID]*services.GameService),
	}
	c.supervisor.Add(workers.NewHeartbeatWorker(log, heartbeat, map[string]workers.StatsSource{
		"clients": callbacks,
		"logger":  logger,
	}))
	return c
}

// Start launches the callback pools and the heartbeat. It returns immediately.
func (c *Coordinator) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.mu.Lock()
	c.cancel, c.done = cancel, done
	c.mu.Unlock()

	c.logger.Start()
	c.callbacks.Start()
	go func() {
		defer close(done)
		c.supervisor.Run(ctx)
	}()
	c.log.Info("Coordinator started", "notifiers", c.callbacks.NumThreads())
}

// Stop halts the pools and waits for the heartbeat. Pending callbacks are
// discarded.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()
	if cancel != nil {
		cancel()
		c.supervisor.Stop()
		<-done
	}
	c.callbacks.Stop()
	c.logger.Stop()
	c.log.Info("Coordinator stopped")
}

// Connect registers the view of a client joining the lobby.
func (c *Coordinator) Connect(view contract.ClientView, identity domain.Identity) {
	identity = identity.WithState(domain.CONNECTED)
	c.Log(fmt.Sprintf("%s connected", identity.Name))
	c.registry.Add(view, identity)
	c.callbacks.SubmitFunc(c.sendClients, nil)
}

// RegisterIdentity adds back (connected) or removes an identity from the lobby.
// Adding back only works for an identity whose view is still known.
func (c *Coordinator) RegisterIdentity(identity domain.Identity, connected bool) {
	c.Log(fmt.Sprintf("%s %t connected in REGISTER", identity.Name, connected))
	if connected {
		view, ok := c.registry.Get(identity)
		if !ok {
			return
		}
		c.registry.Add(view, identity)
	} else {
		c.registry.Remove(identity)
	}
	c.callbacks.SubmitFunc(c.sendClients, nil)
}

// Reregister sends a client back to the lobby after a game.
func (c *Coordinator) Reregister(identity domain.Identity) {
	c.Log(fmt.Sprintf("%s reregistered", identity.Name))
	c.callbacks.SubmitFunc(func(_ context.Context, arg any) {
		c.UpdateIdentity(arg.(domain.Identity))
	}, identity.WithState(domain.CONNECTED))
}

// UpdateIdentity stores the new state of an identity. An unknown identity is
// treated as gone.
func (c *Coordinator) UpdateIdentity(identity domain.Identity) {
	c.Log(fmt.Sprintf("%s is now %s", identity.Name, identity.State))
	if !c.registry.Update(identity) {
		c.RegisterIdentity(identity, false)
		return
	}
	c.callbacks.SubmitFunc(c.sendClients, nil)
}

func (c *Coordinator) GetViewHandle(identity domain.Identity) (contract.ClientView, bool) {
	return c.registry.Get(identity)
}

// Identity returns the registered identity named name with its current state.
func (c *Coordinator) Identity(name string) (domain.Identity, bool) {
	return c.registry.Lookup(name)
}

// sendClients pushes the roster to every client of the lobby.
func (c *Coordinator) sendClients(ctx context.Context, _ any) {
	c.lobbyMu.Lock()
	defer c.lobbyMu.Unlock()

	snapshot := c.registry.Snapshot()
	for _, member := range c.registry.Members() {
		err := member.View.UpdateClientList(ctx, snapshot)
		if errors.Aborted(ctx) {
			c.log.Warn("Client list broadcast aborted", "remaining", member.Identity.Name)
			return
		}
		if errors.IsCommunicationFault(ctx, err) {
			c.log.Debug("Client unreachable", "identity", member.Identity.Name, "error", err)
			c.RegisterIdentity(member.Identity, false)
		}
	}
}

// CreateInvite opens an invitation for a registered host.
func (c *Coordinator) CreateInvite(invite domain.Invite) (*services.InvitationService, error) {
	host := invite.Host()
	if _, ok := c.registry.Get(host); !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownIdentity, host.Name)
	}
	c.Log(fmt.Sprintf("%s created an invite", host.Name))

	invitation := services.NewInvitationService(c.log, c, c.callbacks, invite)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pruneLocked()
	c.invitations = append(c.invitations, invitation)
	return invitation, nil
}

func (c *Coordinator) CreateGame(game domain.Game) (contract.GameService, error) {
	if game.Size() == 0 {
		return nil, errors.ErrInvalidGame
	}
	c.Log(fmt.Sprintf("%s has a game going", game.Players()[0].Name))

	session := services.NewGameService(c.log, c, c.callbacks, game)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pruneLocked()
	c.games[game.ID()] = session
	return session, nil
}

// Game returns a live game by id.
func (c *Coordinator) Game(id uuid.UUID) (*services.GameService, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	game, ok := c.games[id]
	return game, ok
}

// Sessions returns how many invitations and games are still open.
func (c *Coordinator) Sessions() (invitations, games int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pruneLocked()
	return len(c.invitations), len(c.games)
}

func (c *Coordinator) pruneLocked() {
	c.invitations = lo.Filter(c.invitations, func(i *services.InvitationService, _ int) bool {
		state := i.State()
		return state != services.GameCreated && state != services.Cancelled
	})
	for id, game := range c.games {
		if game.State() == services.Finished || game.Abandoned() {
			delete(c.games, id)
		}
	}
}

// PostMessage sends a moderated chat line to every client not playing.
func (c *Coordinator) PostMessage(sender domain.Identity, text string) {
	censored, words := c.moderator.Censor(text)
	lang := whatlanggo.Detect(text).Lang.Iso6391()
	c.logger.LogMessage(sender.Name, censored, lang, words)
	c.callbacks.SubmitFunc(c.sendMessage, lobbyMessage{Sender: sender, Text: censored})
}

func (c *Coordinator) sendMessage(ctx context.Context, arg any) {
	msg := arg.(lobbyMessage)
	c.lobbyMu.Lock()
	defer c.lobbyMu.Unlock()

	line := fmt.Sprintf("  %s: %s\n", msg.Sender.Name, msg.Text)
	for _, member := range c.registry.Members() {
		if member.Identity.State == domain.PLAYING {
			continue
		}
		err := member.View.DisplayMessage(ctx, line)
		if errors.Aborted(ctx) {
			return
		}
		if errors.IsCommunicationFault(ctx, err) {
			c.RegisterIdentity(member.Identity, false)
		}
	}
}

// Log records msg asynchronously. Ordering with state changes is not guaranteed.
func (c *Coordinator) Log(msg string) {
	c.logger.Log(msg)
}
