// Package session owns conversation state keyed by an opaque session id.
package session

import (
	"sync"
	"time"

	"github.com/careline/medichat/internal/model/chat"
)

// Store abstracts session persistence so the dialog engine stays agnostic of
// the backing map. GetOrCreate and Delete must be safe to call from
// concurrent turns; serializing turns within one session is the caller's
// responsibility.
type Store interface {
	GetOrCreate(key string) *chat.Session
	Delete(key string)
}

// MemoryStore keeps sessions in-process. State is lost on restart, which is
// acceptable for the current deployment model.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*chat.Session
}

// NewMemoryStore bootstraps an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*chat.Session)}
}

// GetOrCreate returns the session for key, lazily creating an empty one on
// first reference. The returned pointer is shared; the lock only guards the
// key space.
func (s *MemoryStore) GetOrCreate(key string) *chat.Session {
	s.mu.RLock()
	sess, ok := s.sessions[key]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[key]; ok {
		return sess
	}
	sess = &chat.Session{Key: key, CreatedAt: time.Now().UTC()}
	s.sessions[key] = sess
	return sess
}

// Delete removes the session entirely. Deleting an absent key is a no-op.
func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
