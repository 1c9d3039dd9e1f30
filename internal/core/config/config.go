package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// Token backends understood by TOKEN_BACKEND.
const (
	TokenBackendStatic  = "static"
	TokenBackendRedis   = "redis"
	TokenBackendKeyring = "keyring"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the consumer API listens.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Backend holds the REST backend connection details.
	Backend BackendConfig `mapstructure:",squash"`

	// Auth holds the token persistence settings.
	Auth AuthConfig `mapstructure:",squash"`

	// Proxy holds the optional upstream proxy for backend calls.
	Proxy ProxyConfig `mapstructure:",squash"`

	// Store holds the resource store behaviour switches.
	Store StoreConfig `mapstructure:",squash"`
}

// BackendConfig holds the location of the logistics REST backend.
type BackendConfig struct {
	// URL is the base URL every resource path is resolved against.
	URL string `mapstructure:"BACKEND_URL" required:"true"`
	// TimeoutSeconds bounds a single round trip to the backend.
	TimeoutSeconds int `mapstructure:"BACKEND_TIMEOUT_SECONDS" default:"15"`
}

// Timeout returns the backend timeout as a duration.
func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// AuthConfig selects where the authentication token lives.
type AuthConfig struct {
	// Token is an optional token supplied at start-up.
	Token string `mapstructure:"AUTH_TOKEN"`
	// TokenBackend is one of static, redis or keyring.
	TokenBackend string `mapstructure:"TOKEN_BACKEND" default:"static"`
	// RedisURL is used when TokenBackend is redis.
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// KeyringService is the OS keyring service name when TokenBackend is keyring.
	KeyringService string `mapstructure:"KEYRING_SERVICE" default:"dispatch-store"`
	// KeyringUser is the OS keyring account name when TokenBackend is keyring.
	KeyringUser string `mapstructure:"KEYRING_USER" default:"default"`
}

// ProxyConfig mirrors proxy.Settings in env form.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED"`
	Hostname string `mapstructure:"PROXY_HOSTNAME"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// StoreConfig tunes the resource store.
type StoreConfig struct {
	// GuardStaleStatus ignores status settlements of calls superseded by a newer call.
	GuardStaleStatus bool `mapstructure:"STORE_GUARD_STALE_STATUS" default:"true"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	bindFields(v, reflect.ValueOf(&config).Elem())

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(reflect.ValueOf(&config).Elem()); err != nil {
		return nil, err
	}

	if err := validateTokenBackend(config.Auth.TokenBackend); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindFields binds every tagged field to its env key and registers its default.
func bindFields(v *viper.Viper, val reflect.Value) {
	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			bindFields(v, val.Field(i))
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		_ = v.BindEnv(key)

		if def := field.Tag.Get("default"); def != "" {
			v.SetDefault(key, def)
		}
	}
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(val reflect.Value) error {
	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i)); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

func validateTokenBackend(backend string) error {
	switch backend {
	case TokenBackendStatic, TokenBackendRedis, TokenBackendKeyring:
		return nil
	default:
		return fmt.Errorf("unsupported TOKEN_BACKEND %q", backend)
	}
}
