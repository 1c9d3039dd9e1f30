package auth

import (
	"context"
	"fmt"

	"dispatch-store/internal/core/cache"
	"dispatch-store/internal/core/config"
	"dispatch-store/internal/core/logger"

	"go.uber.org/zap"
)

// Open returns the token store selected by cfg.TokenBackend and a function
// releasing its resources. A start-up token in cfg.Token is written to
// persistent backends so it survives the next restart.
func Open(ctx context.Context, cfg config.AuthConfig) (TokenStore, func() error, error) {
	noop := func() error { return nil }

	var store TokenStore
	closeFn := noop

	switch cfg.TokenBackend {
	case config.TokenBackendStatic, "":
		return NewMemoryTokenStore(cfg.Token), noop, nil
	case config.TokenBackendRedis:
		adapter, err := cache.NewRedisAdapter(cfg.RedisURL, "dispatch-store:")
		if err != nil {
			return nil, nil, fmt.Errorf("open token cache: %w", err)
		}
		if err := adapter.Ping(ctx); err != nil {
			_ = adapter.Close()
			return nil, nil, fmt.Errorf("open token cache: %w", err)
		}
		store = NewCacheTokenStore(adapter)
		closeFn = adapter.Close
	case config.TokenBackendKeyring:
		store = NewKeyringTokenStore(cfg.KeyringService, cfg.KeyringUser)
	default:
		return nil, nil, fmt.Errorf("unsupported token backend %q", cfg.TokenBackend)
	}

	if cfg.Token != "" {
		if err := store.SaveToken(ctx, cfg.Token); err != nil {
			_ = closeFn()
			return nil, nil, fmt.Errorf("seed token: %w", err)
		}
		logger.For("auth").Info("Start-up token stored", zap.String("backend", cfg.TokenBackend))
	}

	return store, closeFn, nil
}
