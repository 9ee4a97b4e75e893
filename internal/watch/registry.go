// Package watch keeps browser push subscriptions to rooms. State is
// process-lifetime, like the rest of the engine.
package watch

import "sync"

// RoomKey identifies a watched room.
type RoomKey struct {
	Building string `json:"building" yaml:"building"`
	Floor    int    `json:"floor" yaml:"floor"`
	Room     string `json:"room" yaml:"room"`
}

// Subscription holds the information for a browser push subscription and the
// rooms it watches.
type Subscription struct {
	Endpoint string    `json:"endpoint"`
	P256DH   string    `json:"p256dh"`
	Auth     string    `json:"auth"`
	Rooms    []RoomKey `json:"rooms"`
}

// Registry is an in-memory subscription store keyed by endpoint.
type Registry struct {
	mu   sync.RWMutex
	subs map[string]Subscription
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{subs: make(map[string]Subscription)}
}

// Put creates or replaces the subscription for its endpoint.
func (r *Registry) Put(sub Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.Endpoint] = sub
}

// Get returns the subscription for an endpoint.
func (r *Registry) Get(endpoint string) (Subscription, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.subs[endpoint]
	return sub, ok
}

// Delete removes the subscription for an endpoint.
func (r *Registry) Delete(endpoint string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subs, endpoint)
}

// ForRoom returns a snapshot of every subscription watching the given room.
func (r *Registry) ForRoom(key RoomKey) []Subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Subscription
	for _, sub := range r.subs {
		for _, k := range sub.Rooms {
			if k == key {
				out = append(out, sub)
				break
			}
		}
	}
	return out
}
