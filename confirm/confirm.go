// Package confirm implements the two-phase confirmation protocol for
// destructive actions. A first request transitions to a pending state
// keyed by (kind, target id); only a second explicit confirm performs the
// mutation. A cancel call or the TTL clears the pending state without
// side effects.
package confirm

import (
	"sync"
	"time"
)

// Pending describes an action awaiting confirmation.
type Pending struct {
	Kind      string    `json:"kind"`
	TargetID  string    `json:"target_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type key struct {
	kind string
	id   string
}

// Registry tracks pending confirmations in memory.
type Registry struct {
	mu      sync.Mutex
	ttl     time.Duration
	pending map[key]time.Time
	now     func() time.Time
}

// NewRegistry creates a registry whose pendings expire after ttl.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		ttl:     ttl,
		pending: make(map[key]time.Time),
		now:     time.Now,
	}
}

// Request records a pending confirmation for (kind, targetID) and returns
// it. Requesting again before confirming refreshes the deadline.
func (r *Registry) Request(kind, targetID string) Pending {
	r.mu.Lock()
	defer r.mu.Unlock()

	deadline := r.now().Add(r.ttl)
	r.pending[key{kind, targetID}] = deadline

	return Pending{Kind: kind, TargetID: targetID, ExpiresAt: deadline}
}

// Confirm reports whether (kind, targetID) had a live pending entry, and
// clears it. An expired entry counts as absent.
func (r *Registry) Confirm(kind, targetID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{kind, targetID}
	deadline, ok := r.pending[k]
	if !ok {
		return false
	}

	delete(r.pending, k)
	return r.now().Before(deadline)
}

// Cancel clears any pending entry for (kind, targetID).
func (r *Registry) Cancel(kind, targetID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.pending, key{kind, targetID})
}

// Sweep drops expired entries. Called opportunistically; correctness does
// not depend on it since Confirm checks the deadline itself.
func (r *Registry) Sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for k, deadline := range r.pending {
		if !now.Before(deadline) {
			delete(r.pending, k)
		}
	}
}
