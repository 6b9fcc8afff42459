package session

import (
	"sync"
	"time"
)

// unknownExpiryRetention bounds how long opaque revoked tokens are remembered.
const unknownExpiryRetention = 24 * time.Hour

// Registry remembers tokens that were logged out or rejected by the backend,
// so the API refuses them until they expire.
type Registry struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (r *Registry) Revoke(token string) {
	if token == "" {
		return
	}
	until := tokenExpiry(token)
	if until.IsZero() {
		until = r.now().Add(unknownExpiryRetention)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[token] = until
}

func (r *Registry) IsRevoked(token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, revoked := r.revoked[token]
	return revoked
}

// Prune drops entries whose tokens can no longer be presented and returns how many were removed.
func (r *Registry) Prune() int {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for token, until := range r.revoked {
		if !now.Before(until) {
			delete(r.revoked, token)
			removed++
		}
	}
	return removed
}

// Len is the number of remembered tokens.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.revoked)
}
