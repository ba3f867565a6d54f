// Package domain contains core concepts of the lobby.
// This file defines Identity entities and their lifecycle states.
// No runtime, network, or UI logic should be added here.
package domain

import "fmt"

type PlayerState string

const (
	CONNECTED PlayerState = "CONNECTED"
	WAITING   PlayerState = "WAITING"
	PLAYING   PlayerState = "PLAYING"
)

// Identity is a participant known by the registry. Two identities are the same
// participant when their names match, whatever their state.
type Identity struct {
	Name  string      `validate:"required"`
	State PlayerState `validate:"omitempty,oneof=CONNECTED WAITING PLAYING"`
}

func NewIdentity(name string) Identity {
	return Identity{Name: name, State: CONNECTED}
}

func (i Identity) SameAs(other Identity) bool {
	return i.Name == other.Name
}

// WithState returns a copy of the identity in the given state.
func (i Identity) WithState(state PlayerState) Identity {
	i.State = state
	return i
}

func (i Identity) String() string {
	return fmt.Sprintf("%s(%s)", i.Name, i.State)
}
