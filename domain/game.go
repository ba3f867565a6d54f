package domain

import (
	"fmt"
	"wordmole/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Game is the fixed roster of an active game, taken from the accepted members of
// an invitation. Its size is the number of players the session waits for.
type Game struct {
	id      uuid.UUID
	players []Identity
}

func NewGame(players ...Identity) (Game, error) {
	if len(players) == 0 {
		return Game{}, fmt.Errorf("%w: no players", errors.ErrInvalidGame)
	}
	names := lo.Map(players, func(p Identity, _ int) string { return p.Name })
	if len(lo.Uniq(names)) != len(names) {
		return Game{}, fmt.Errorf("%w: duplicated player", errors.ErrInvalidGame)
	}
	return Game{id: uuid.New(), players: append([]Identity(nil), players...)}, nil
}

func (g Game) ID() uuid.UUID { return g.id }

func (g Game) Players() []Identity {
	return append([]Identity(nil), g.players...)
}

func (g Game) Size() int { return len(g.players) }
