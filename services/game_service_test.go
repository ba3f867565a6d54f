package services

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"
	"wordmole/contract"
	"wordmole/domain"
	"wordmole/mocks"
	"wordmole/runtime/workers"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type gameFixture struct {
	server      *mocks.MockServer
	dispatcher  *manualDispatcher
	players     []domain.Identity
	clientViews map[string]*mocks.MockClientView
	frames      map[string]*mocks.MockGameView
}

func newGameFixture(t *testing.T, names ...string) *gameFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &gameFixture{
		server:      mocks.NewMockServer(ctrl),
		dispatcher:  &manualDispatcher{},
		clientViews: make(map[string]*mocks.MockClientView),
		frames:      make(map[string]*mocks.MockGameView),
	}
	for _, name := range names {
		f.players = append(f.players, domain.NewIdentity(name))
		f.clientViews[name] = mocks.NewMockClientView(ctrl)
		f.frames[name] = mocks.NewMockGameView(ctrl)
	}
	return f
}

func (f *gameFixture) open(t *testing.T) *GameService {
	t.Helper()
	game, err := domain.NewGame(f.players...)
	require.NoError(t, err)
	return NewGameService(logs.GetLoggerFromLevel(slog.LevelDebug), f.server, f.dispatcher, game)
}

func (f *gameFixture) expectDelivery(player domain.Identity) {
	view := f.clientViews[player.Name]
	f.server.EXPECT().GetViewHandle(player).Return(view, true)
	view.EXPECT().ReceiveGame(gomock.Any(), gomock.Any()).Return(nil)
	f.server.EXPECT().UpdateIdentity(player.WithState(domain.PLAYING))
}

// start delivers the game and registers every player, then runs the start
// broadcast.
func (f *gameFixture) start(t *testing.T) *GameService {
	t.Helper()
	for _, p := range f.players {
		f.expectDelivery(p)
		f.frames[p.Name].EXPECT().StartGame(gomock.Any()).Return(nil)
	}
	game := f.open(t)
	f.dispatcher.runAll()
	for _, p := range f.players {
		game.Register(p, f.frames[p.Name], true)
	}
	f.dispatcher.runAll()
	require.Equal(t, InSession, game.State())
	return game
}

func TestGame_Starts_Once_When_Every_Player_Joined(t *testing.T) {
	req := require.New(t)
	f := newGameFixture(t, "host", "a", "b")

	// Given the game was delivered to the three players
	for _, p := range f.players {
		f.expectDelivery(p)
	}
	game := f.open(t)
	f.dispatcher.runAll()
	req.Equal(WaitingForPlayers, game.State())

	// When two players joined, the game still waits
	game.Register(f.players[0], f.frames["host"], true)
	game.Register(f.players[1], f.frames["a"], true)
	req.Equal(WaitingForPlayers, game.State())
	req.Zero(f.dispatcher.pending())

	// When the last one joins, the start is broadcast exactly once to everyone
	for _, p := range f.players {
		f.frames[p.Name].EXPECT().StartGame(gomock.Any()).Return(nil).Times(1)
	}
	game.Register(f.players[2], f.frames["b"], true)
	req.Equal(InSession, game.State())

	// And joining again does not start it twice
	game.Register(f.players[1], f.frames["a"], true)
	f.dispatcher.runAll()
	req.Equal(f.players, game.Roster())
}

func TestGame_Ignores_Strangers(t *testing.T) {
	req := require.New(t)
	f := newGameFixture(t, "host", "a")
	for _, p := range f.players {
		f.expectDelivery(p)
	}
	game := f.open(t)
	f.dispatcher.runAll()

	game.Register(domain.NewIdentity("stranger"), mocks.NewMockGameView(gomock.NewController(t)), true)
	req.Empty(game.Roster())
	req.Zero(f.dispatcher.pending())
}

func TestGame_Undelivered_Player_Is_Deregistered(t *testing.T) {
	req := require.New(t)
	f := newGameFixture(t, "host", "a", "b")
	host, a, b := f.players[0], f.players[1], f.players[2]

	// Given b's client cannot receive the game and a already left the lobby
	f.expectDelivery(host)
	f.server.EXPECT().GetViewHandle(a).Return(nil, false)
	f.server.EXPECT().GetViewHandle(b).Return(f.clientViews["b"], true)
	f.clientViews["b"].EXPECT().ReceiveGame(gomock.Any(), gomock.Any()).Return(errBrokenPipe)
	f.server.EXPECT().RegisterIdentity(b, false)

	game := f.open(t)
	f.dispatcher.runAll()

	// Then the game keeps waiting for its full roster
	game.Register(host, f.frames["host"], true)
	req.Equal(WaitingForPlayers, game.State())
}

func TestGame_Faulty_Player_Is_Dropped_During_Broadcast(t *testing.T) {
	req := require.New(t)
	f := newGameFixture(t, "host", "a", "b")
	host, a, b := f.players[0], f.players[1], f.players[2]
	game := f.start(t)

	// Given b's frame fails while scores are relayed
	f.frames["host"].EXPECT().UpdateScore(gomock.Any(), a, 12).Return(nil)
	f.frames["a"].EXPECT().UpdateScore(gomock.Any(), a, 12).Return(nil)
	f.frames["b"].EXPECT().UpdateScore(gomock.Any(), a, 12).Return(errBrokenPipe)
	f.server.EXPECT().RegisterIdentity(b, false)

	// Then the remaining players are told b is gone
	f.frames["host"].EXPECT().DisconnectPlayer(gomock.Any(), b).Return(nil)
	f.frames["a"].EXPECT().DisconnectPlayer(gomock.Any(), b).Return(nil)

	game.UpdateScore(a, 12)
	f.dispatcher.runAll()
	req.Equal([]domain.Identity{host, a}, game.Roster())

	// And b leaving afterwards changes nothing
	game.Register(b, f.frames["b"], false)
	req.Zero(f.dispatcher.pending())
}

func TestGame_Fault_During_Disconnect_Cascades(t *testing.T) {
	req := require.New(t)
	f := newGameFixture(t, "host", "a", "b")
	host, a, b := f.players[0], f.players[1], f.players[2]
	game := f.start(t)

	// Given b fails the score relay and a fails when told about b
	f.frames["host"].EXPECT().UpdateScore(gomock.Any(), host, 3).Return(nil)
	f.frames["a"].EXPECT().UpdateScore(gomock.Any(), host, 3).Return(nil)
	f.frames["b"].EXPECT().UpdateScore(gomock.Any(), host, 3).Return(errBrokenPipe)
	f.server.EXPECT().RegisterIdentity(b, false)
	f.frames["host"].EXPECT().DisconnectPlayer(gomock.Any(), b).Return(nil)
	f.frames["a"].EXPECT().DisconnectPlayer(gomock.Any(), b).Return(errBrokenPipe)
	f.server.EXPECT().RegisterIdentity(a, false)

	// Then the host alone is told that a is gone too
	f.frames["host"].EXPECT().DisconnectPlayer(gomock.Any(), a).Return(nil)

	game.UpdateScore(host, 3)
	f.dispatcher.runAll()
	req.Equal([]domain.Identity{host}, game.Roster())
}

func TestGame_Leaving_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	f := newGameFixture(t, "host", "a", "b")
	host, a, b := f.players[0], f.players[1], f.players[2]
	game := f.start(t)

	f.frames["host"].EXPECT().DisconnectPlayer(gomock.Any(), b).Return(nil).Times(1)
	f.frames["a"].EXPECT().DisconnectPlayer(gomock.Any(), b).Return(nil).Times(1)

	game.Register(b, f.frames["b"], false)
	game.Register(b, f.frames["b"], false)
	req.Equal(1, f.dispatcher.pending())
	f.dispatcher.runAll()
	req.Equal([]domain.Identity{host, a}, game.Roster())
}

func TestGame_Only_The_First_Win_Counts(t *testing.T) {
	req := require.New(t)
	f := newGameFixture(t, "host", "a")
	a := f.players[1]
	game := f.start(t)

	// Given two players claim the win
	f.frames["host"].EXPECT().NotifyWinner(gomock.Any(), a).Return(nil).Times(1)
	f.frames["a"].EXPECT().NotifyWinner(gomock.Any(), a).Return(nil).Times(1)

	game.WinGame(a)
	game.WinGame(f.players[0])
	f.dispatcher.runAll()

	// Then only the first one is announced
	req.Equal(Finished, game.State())
}

func TestGame_Win_Before_Start_Is_Ignored(t *testing.T) {
	req := require.New(t)
	f := newGameFixture(t, "host", "a")
	for _, p := range f.players {
		f.expectDelivery(p)
	}
	game := f.open(t)
	f.dispatcher.runAll()

	game.WinGame(f.players[0])
	f.dispatcher.runAll()
	req.Equal(WaitingForPlayers, game.State())
}

func TestGame_Cancelled_Broadcast_Skips_Remaining_Players(t *testing.T) {
	req := require.New(t)
	f := newGameFixture(t, "host", "a", "b")
	host, a, b := f.players[0], f.players[1], f.players[2]
	game := f.start(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Given the task is cancelled while the host's frame is being called
	f.frames["host"].EXPECT().UpdateScore(gomock.Any(), host, 7).
		DoAndReturn(func(ctx context.Context, _ domain.Identity, _ int) error {
			cancel()
			return ctx.Err()
		})

	// When the score is relayed
	game.UpdateScore(host, 7)
	req.True(f.dispatcher.runNext(ctx))

	// Then a and b are never called and nobody is dropped
	req.Zero(f.dispatcher.pending())
	req.Equal([]domain.Identity{host, a, b}, game.Roster())
}

func TestGame_Win_Cancelled_Before_Broadcast_Keeps_The_Game_Going(t *testing.T) {
	req := require.New(t)
	f := newGameFixture(t, "host", "a")
	a := f.players[1]
	game := f.start(t)

	// Given a win whose task timed out before it got the game
	game.WinGame(a)
	req.True(f.dispatcher.runNext(cancelledContext()))

	// Then nobody was told and the game is still in session
	req.Equal(InSession, game.State())

	// And the next win is announced
	f.frames["host"].EXPECT().NotifyWinner(gomock.Any(), a).Return(nil)
	f.frames["a"].EXPECT().NotifyWinner(gomock.Any(), a).Return(nil)
	game.WinGame(a)
	f.dispatcher.runAll()
	req.Equal(Finished, game.State())
}

func TestGame_Abandoned_Once_Everyone_Left(t *testing.T) {
	req := require.New(t)
	f := newGameFixture(t, "host", "a")
	host := f.players[0]
	for _, p := range f.players {
		f.expectDelivery(p)
	}
	game := f.open(t)

	// A game not delivered yet is never abandoned
	req.False(game.Abandoned())
	f.dispatcher.runAll()

	// Nor one still waiting for players who received it
	req.False(game.Abandoned())

	// When the host joins then leaves before a arrives
	game.Register(host, f.frames["host"], true)
	req.False(game.Abandoned())
	game.Register(host, f.frames["host"], false)
	f.dispatcher.runAll()

	// Then the empty game is abandoned
	req.Equal(WaitingForPlayers, game.State())
	req.True(game.Abandoned())
}

func TestGame_Abandoned_When_Delivered_To_Nobody(t *testing.T) {
	req := require.New(t)
	f := newGameFixture(t, "host", "a")
	host, a := f.players[0], f.players[1]

	// Given neither player can be reached
	f.server.EXPECT().GetViewHandle(host).Return(nil, false)
	f.server.EXPECT().GetViewHandle(a).Return(nil, false)

	game := f.open(t)
	f.dispatcher.runAll()

	req.True(game.Abandoned())
}

// inFlightFrame records whether two broadcasts of the same game overlap.
type inFlightFrame struct {
	inFlight *atomic.Int32
	overlap  *atomic.Bool
	wg       *sync.WaitGroup
}

func (f inFlightFrame) updateScore(context.Context, domain.Identity, int) error {
	defer f.wg.Done()
	if f.inFlight.Add(1) > 1 {
		f.overlap.Store(true)
	}
	time.Sleep(time.Millisecond)
	f.inFlight.Add(-1)
	return nil
}

func TestGame_Broadcasts_Of_A_Session_Never_Overlap_On_A_Shared_Pool(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelInfo)
	const updates = 10

	pool, err := workers.NewAsyncCallback(log, workers.PoolConfig{Size: 4, Priority: workers.NormPriority})
	req.NoError(err)
	pool.Start()
	t.Cleanup(pool.Stop)

	server := mocks.NewMockServer(ctrl)
	server.EXPECT().UpdateIdentity(gomock.Any()).AnyTimes()

	var wg sync.WaitGroup
	var games []*GameService
	var overlaps []*atomic.Bool
	for _, names := range [][]string{{"host1", "a1"}, {"host2", "a2"}} {
		var players []domain.Identity
		frames := make(map[string]contract.GameView)
		inFlight, overlap := &atomic.Int32{}, &atomic.Bool{}
		for _, name := range names {
			p := domain.NewIdentity(name)
			players = append(players, p)

			view := mocks.NewMockClientView(ctrl)
			view.EXPECT().ReceiveGame(gomock.Any(), gomock.Any()).Return(nil)
			server.EXPECT().GetViewHandle(p).Return(view, true)

			frame := mocks.NewMockGameView(ctrl)
			frame.EXPECT().StartGame(gomock.Any()).Return(nil)
			frame.EXPECT().UpdateScore(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(inFlightFrame{inFlight: inFlight, overlap: overlap, wg: &wg}.updateScore).
				Times(updates)
			frames[name] = frame
		}
		game, err := domain.NewGame(players...)
		req.NoError(err)
		session := NewGameService(log, server, pool, game)
		for _, p := range players {
			session.Register(p, frames[p.Name], true)
		}
		games = append(games, session)
		overlaps = append(overlaps, overlap)
	}

	// When both games relay scores on the same pool
	wg.Add(len(games) * 2 * updates)
	for i := 0; i < updates; i++ {
		for _, game := range games {
			game.UpdateScore(game.Game().Players()[0], i)
		}
	}
	wg.Wait()

	// Then every player got every update and no game ran two broadcasts at once
	for i, game := range games {
		req.Equal(InSession, game.State())
		req.False(overlaps[i].Load())
	}
}
