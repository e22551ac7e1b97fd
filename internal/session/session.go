// Package session keeps the authenticated user for each issued token. It
// is the server-side equivalent of the browser slot the console originally
// used: a JSON snapshot of the user under a fixed key, written at login,
// read on every request, cleared at logout.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/airmedops/medevac-console/internal/types"
)

// Store persists sessions. Load returns (nil, nil) for a token with no
// session; absence is not an error.
type Store interface {
	Save(ctx context.Context, token string, user types.User) error
	Load(ctx context.Context, token string) (*types.User, error)
	Delete(ctx context.Context, token string) error
	Close() error
}

// NewToken mints an opaque session token
func NewToken() string {
	return uuid.NewString()
}

type memoryEntry struct {
	user    types.User
	expires time.Time
}

// MemoryStore keeps sessions in process memory. It is the default backend
// when no Redis address is configured, and the test double elsewhere.
type MemoryStore struct {
	ttl time.Duration

	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

// NewMemoryStore creates an in-memory session store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
	}
}

// Save stores the user under the token
func (s *MemoryStore) Save(_ context.Context, token string, user types.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = memoryEntry{user: user, expires: time.Now().Add(s.ttl)}
	return nil
}

// Load returns the user for the token, or nil when absent or expired
func (s *MemoryStore) Load(_ context.Context, token string) (*types.User, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expires) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, nil
	}

	user := entry.user
	return &user, nil
}

// Delete removes the session for the token
func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

// Close releases nothing; it exists to satisfy Store
func (s *MemoryStore) Close() error {
	return nil
}
