package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringTokenStore keeps the token in the operating system keyring.
type KeyringTokenStore struct {
	service string
	user    string
}

// NewKeyringTokenStore creates a store for the given keyring service and account.
func NewKeyringTokenStore(service, user string) *KeyringTokenStore {
	return &KeyringTokenStore{service: service, user: user}
}

// Token implements TokenSource.
func (s *KeyringTokenStore) Token(context.Context) (string, error) {
	tok, err := keyring.Get(s.service, s.user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("read keyring token: %w", err)
	}
	return tok, nil
}

// SaveToken implements TokenStore.
func (s *KeyringTokenStore) SaveToken(_ context.Context, token string) error {
	if err := keyring.Set(s.service, s.user, token); err != nil {
		return fmt.Errorf("save keyring token: %w", err)
	}
	return nil
}

// ClearToken implements TokenStore.
func (s *KeyringTokenStore) ClearToken(context.Context) error {
	err := keyring.Delete(s.service, s.user)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("clear keyring token: %w", err)
	}
	return nil
}
