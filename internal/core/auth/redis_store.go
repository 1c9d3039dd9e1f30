package auth

import (
	"context"
	"errors"
	"fmt"

	"dispatch-store/internal/core/cache"
)

const tokenKey = "auth:token"

// CacheTokenStore persists the token through the cache port (Redis in production).
type CacheTokenStore struct {
	cache cache.Cache
}

// NewCacheTokenStore creates a token store on top of c.
func NewCacheTokenStore(c cache.Cache) *CacheTokenStore {
	return &CacheTokenStore{cache: c}
}

// Token implements TokenSource.
func (s *CacheTokenStore) Token(ctx context.Context) (string, error) {
	data, err := s.cache.Get(ctx, tokenKey)
	if errors.Is(err, cache.ErrMiss) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	if len(data) == 0 {
		return "", ErrNoToken
	}
	return string(data), nil
}

// SaveToken implements TokenStore. The token never expires on its own; the
// backend decides when it is no longer valid.
func (s *CacheTokenStore) SaveToken(ctx context.Context, token string) error {
	if err := s.cache.Set(ctx, tokenKey, []byte(token), 0); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// ClearToken implements TokenStore.
func (s *CacheTokenStore) ClearToken(ctx context.Context) error {
	if err := s.cache.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
