// Package session tracks live conversation sessions for multi-conversation
// deployments. The orchestration layer itself is strictly one-session: each
// session gets its own Assistant (orchestrator, agents, shared context), and
// this store provides the external synchronization around the registry.
package session

import (
	"sync"
	"time"

	"github.com/daybrief-ai/daybrief/core"
)

// Entry is one live conversation session.
type Entry[T any] struct {
	ID       string
	Value    T
	Created  time.Time
	LastUsed time.Time

	mu sync.Mutex
}

// Do runs fn while holding the session's own lock, serializing turns so the
// single-conversation contract of the value holds under concurrent requests.
func (e *Entry[T]) Do(fn func(value T)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.Value)
}

// Factory builds the per-session value (typically a *daybrief.Assistant).
type Factory[T any] func() (T, error)

// InMemoryStore is a volatile session registry keyed by session id. It is
// safe for concurrent access; the values it hands out are not, and must each
// serve one conversation at a time.
type InMemoryStore[T any] struct {
	mu       sync.Mutex
	sessions map[string]*Entry[T]
	factory  Factory[T]
}

// NewInMemoryStore constructs an empty registry over the given factory.
func NewInMemoryStore[T any](factory Factory[T]) *InMemoryStore[T] {
	return &InMemoryStore[T]{sessions: make(map[string]*Entry[T]), factory: factory}
}

// Get returns the session with the given id, creating it lazily. An empty id
// allocates a fresh session with a generated id.
func (s *InMemoryStore[T]) Get(id string) (*Entry[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if e, ok := s.sessions[id]; ok {
			e.LastUsed = time.Now()
			return e, nil
		}
	} else {
		id = core.NewID()
	}

	value, err := s.factory()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	e := &Entry[T]{ID: id, Value: value, Created: now, LastUsed: now}
	s.sessions[id] = e
	return e, nil
}

// Delete removes a session, reporting whether it existed.
func (s *InMemoryStore[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// Len reports the number of live sessions.
func (s *InMemoryStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
