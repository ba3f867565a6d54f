package runtime

import (
	"slices"
	"sync"
	"wordmole/contract"
	"wordmole/domain"

	"github.com/samber/lo"
)

var _ contract.IRegistry = (*Registry)(nil)

// Registry maps every connected identity to its client view and back.
// Views must be comparable (pointer proxies) since they are used as keys.
type Registry struct {
	mu         sync.RWMutex
	order      []string                       // names in registration order
	identities map[string]domain.Identity     // name -> identity
	views      map[string]contract.ClientView // name -> view
	names      map[contract.ClientView]string // view -> name
}

func NewRegistry() *Registry {
	return &Registry{
		identities: make(map[string]domain.Identity),
		views:      make(map[string]contract.ClientView),
		names:      make(map[contract.ClientView]string),
	}
}

// Add registers a view for an identity. Adding a known name replaces its view
// and state but keeps its position in the roster.
func (r *Registry) Add(view contract.ClientView, identity domain.Identity) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if previous, ok := r.views[identity.Name]; ok {
		delete(r.names, previous)
	} else {
		r.order = append(r.order, identity.Name)
	}
	r.identities[identity.Name] = identity
	r.views[identity.Name] = view
	r.names[view] = identity.Name
}

func (r *Registry) Remove(identity domain.Identity) {
	r.mu.Lock()
	defer r.mu.Unlock()

	view, ok := r.views[identity.Name]
	if !ok {
		return
	}
	delete(r.names, view)
	delete(r.views, identity.Name)
	delete(r.identities, identity.Name)
	r.order = slices.DeleteFunc(r.order, func(name string) bool { return name == identity.Name })
}

// Update stores the new state of a registered identity and reports whether it
// was registered.
func (r *Registry) Update(identity domain.Identity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.identities[identity.Name]; !ok {
		return false
	}
	r.identities[identity.Name] = identity
	return true
}

func (r *Registry) Get(identity domain.Identity) (contract.ClientView, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	view, ok := r.views[identity.Name]
	return view, ok
}

// Lookup returns the registered identity, with its current state, by name.
func (r *Registry) Lookup(name string) (domain.Identity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	identity, ok := r.identities[name]
	return identity, ok
}

func (r *Registry) GetIdentity(view contract.ClientView) (domain.Identity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[view]
	if !ok {
		return domain.Identity{}, false
	}
	return r.identities[name], true
}

// Snapshot returns a copy of the roster in registration order.
func (r *Registry) Snapshot() []domain.Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Map(r.order, func(name string, _ int) domain.Identity {
		return r.identities[name]
	})
}

// Members returns identities paired with their views, in registration order.
func (r *Registry) Members() []Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Map(r.order, func(name string, _ int) Member {
		return Member{Identity: r.identities[name], View: r.views[name]}
	})
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

type Member struct {
	Identity domain.Identity
	View     contract.ClientView
}
