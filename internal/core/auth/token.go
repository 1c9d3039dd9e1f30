// Package auth holds the single piece of state that survives a restart: the
// authentication token attached to every backend call. Issuing and refreshing
// tokens belongs to an external collaborator; this package only stores and
// hands them out.
package auth

import (
	"context"
	"errors"
	"sync"
)

// ErrNoToken is returned when no token has been stored yet.
var ErrNoToken = errors.New("no token stored")

// TokenSource supplies the token for outgoing requests.
type TokenSource interface {
	// Token returns the current token or ErrNoToken.
	Token(ctx context.Context) (string, error)
}

// TokenStore is a TokenSource that can also be written by the auth collaborator.
type TokenStore interface {
	TokenSource
	// SaveToken replaces the stored token.
	SaveToken(ctx context.Context, token string) error
	// ClearToken forgets the stored token (logout).
	ClearToken(ctx context.Context) error
}

// MemoryTokenStore keeps the token in process memory, typically seeded from
// AUTH_TOKEN. It is lost on restart.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenStore returns a store holding token. An empty token means
// unauthenticated.
func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: token}
}

// Token implements TokenSource.
func (s *MemoryTokenStore) Token(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

// SaveToken implements TokenStore.
func (s *MemoryTokenStore) SaveToken(_ context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// ClearToken implements TokenStore.
func (s *MemoryTokenStore) ClearToken(context.Context) error {
	return s.SaveToken(context.Background(), "")
}
