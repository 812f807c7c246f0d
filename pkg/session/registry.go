package session

import "sync"

// Registry maps user identifiers to sessions, creating a session lazily on
// first reference. Creation is insert-if-absent atomic: concurrent first
// access by the same unseen user yields exactly one session. The sessions
// themselves are owned by their user's serial processing path and are not
// otherwise synchronized.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for the user, creating it on first reference.
func (r *Registry) Get(userID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[userID]
	if !ok {
		s = &Session{}
		r.sessions[userID] = s
	}
	return s
}

// Len returns the number of known sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Delete removes a session. The core never evicts; this exists for external
// collaborators that implement their own expiry policy.
func (r *Registry) Delete(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}
