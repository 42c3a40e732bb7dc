package session

import (
	"sync"

	"github.com/Ilya-36/planbot/core"
)

// InMemoryRegistry is a volatile SessionRegistry keeping active sessions in
// a process-local map keyed by user id. It is safe for concurrent access.
// Unlike a lazily-creating store, session creation is explicit: Begin fails
// when a session already exists so the one-dialog-per-user invariant holds
// regardless of transport routing policy.
type InMemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*core.DialogSession
}

// NewInMemoryRegistry constructs an empty in-memory session registry.
func NewInMemoryRegistry() *InMemoryRegistry {
	return &InMemoryRegistry{sessions: make(map[string]*core.DialogSession)}
}

// Begin creates a session for the user at the dialog's initial state.
func (r *InMemoryRegistry) Begin(userID string, kind core.DialogKind, state core.DialogState) (*core.DialogSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[userID]; ok {
		return nil, core.ErrDialogActive
	}
	sess := core.NewDialogSession(userID, kind, state)
	r.sessions[userID] = sess
	return sess, nil
}

// Get returns the user's active session, if any.
func (r *InMemoryRegistry) Get(userID string) (*core.DialogSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[userID]
	return sess, ok
}

// End destroys the user's session, discarding collected fields.
func (r *InMemoryRegistry) End(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}
