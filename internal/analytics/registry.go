package analytics

import "sync"

// Registry maps session IDs to their event logs. Each session owns an
// independent EventLog; the registry itself is the only cross-session
// state and is guarded accordingly.
type Registry struct {
	mu   sync.RWMutex
	logs map[string]*EventLog
}

func NewRegistry() *Registry {
	return &Registry{logs: make(map[string]*EventLog)}
}

// Register creates a fresh log for the session and returns it. An existing
// log for the same session is replaced, matching a session restart.
func (r *Registry) Register(sessionID, studentID string) *EventLog {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := NewEventLog(studentID)
	r.logs[sessionID] = log
	return log
}

// Get returns the session's log, or nil when the session is unknown.
func (r *Registry) Get(sessionID string) *EventLog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.logs[sessionID]
}

// Remove drops the session's log when its owning session ends.
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.logs, sessionID)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.logs)
}
