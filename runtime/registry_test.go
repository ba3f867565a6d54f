package runtime

import (
	"testing"
	"wordmole/domain"
	"wordmole/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistry_Add_And_Lookup_Both_Ways(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()
	alice := domain.NewIdentity("alice")
	view := mocks.NewMockClientView(ctrl)

	// Given no client is connected
	req.Empty(registry.Snapshot())

	// When a client registers
	registry.Add(view, alice)

	// Then it can be found by identity and by view
	got, ok := registry.Get(alice)
	req.True(ok)
	req.Same(view, got)

	identity, ok := registry.GetIdentity(view)
	req.True(ok)
	req.Equal(alice, identity)
	req.Equal([]domain.Identity{alice}, registry.Snapshot())
}

func TestRegistry_Lookup_Ignores_State(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()
	view := mocks.NewMockClientView(ctrl)
	registry.Add(view, domain.NewIdentity("alice"))

	// A lookup with a stale state still finds the client
	got, ok := registry.Get(domain.NewIdentity("alice").WithState(domain.PLAYING))
	req.True(ok)
	req.Same(view, got)
}

func TestRegistry_Update(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()
	alice := domain.NewIdentity("alice")
	registry.Add(mocks.NewMockClientView(ctrl), alice)

	// When a registered identity changes state
	req.True(registry.Update(alice.WithState(domain.WAITING)))

	// Then the new state is kept
	identity, ok := registry.Lookup("alice")
	req.True(ok)
	req.Equal(domain.WAITING, identity.State)

	// And an unknown identity is not added by an update
	req.False(registry.Update(domain.NewIdentity("bob")))
	req.Equal(1, registry.Len())
}

func TestRegistry_Remove(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()
	alice := domain.NewIdentity("alice")
	view := mocks.NewMockClientView(ctrl)
	registry.Add(view, alice)

	// When the client is removed twice
	registry.Remove(alice)
	registry.Remove(alice)

	// Then nothing refers to it anymore
	_, ok := registry.Get(alice)
	req.False(ok)
	_, ok = registry.GetIdentity(view)
	req.False(ok)
	req.Zero(registry.Len())
}

func TestRegistry_Re_Add_Keeps_Position_And_Replaces_View(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()
	alice, bob := domain.NewIdentity("alice"), domain.NewIdentity("bob")
	oldView, newView := mocks.NewMockClientView(ctrl), mocks.NewMockClientView(ctrl)

	registry.Add(oldView, alice)
	registry.Add(mocks.NewMockClientView(ctrl), bob)

	// When alice joins again with another view
	registry.Add(newView, alice.WithState(domain.WAITING))

	// Then the roster order is unchanged
	req.Equal([]domain.Identity{alice.WithState(domain.WAITING), bob}, registry.Snapshot())

	// And the previous view is forgotten
	_, ok := registry.GetIdentity(oldView)
	req.False(ok)
	got, _ := registry.Get(alice)
	req.Same(newView, got)
	req.Len(registry.Members(), 2)
}
