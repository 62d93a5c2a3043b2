package ballot

import "sync"

// Registry tracks the live session for each voting code.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

func (r *Registry) Get(code string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[code]
}

// Put registers a session under a code, closing any session it replaces.
func (r *Registry) Put(code string, s *Session) {
	r.mu.Lock()
	old := r.sessions[code]
	r.sessions[code] = s
	r.mu.Unlock()

	if old != nil && old != s {
		old.Close()
	}
}

func (r *Registry) Remove(code string) {
	r.mu.Lock()
	s := r.sessions[code]
	delete(r.sessions, code)
	r.mu.Unlock()

	if s != nil {
		s.Close()
	}
}
