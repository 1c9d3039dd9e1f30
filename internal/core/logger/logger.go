package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Service is attached to every entry as the "service" field.
const Service = "dispatch-store"

var globalLogger *zap.Logger

// Init builds the global logger. "production" writes JSON with ISO8601
// timestamps and no sampling, so every operation settlement is kept; anything
// else writes colored console output. An empty level keeps the environment
// default, an unknown one is an error.
func Init(environment string, level string) error {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
		config.Sampling = nil
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		l, err := zapcore.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("logger: invalid level %q: %w", level, err)
		}
		config.Level = zap.NewAtomicLevelAt(l)
	}

	logger, err := config.Build()
	if err != nil {
		return err
	}

	globalLogger = logger.With(zap.String("service", Service))
	return nil
}

// Get returns the global logger, or a no-op logger before Init.
func Get() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// For returns a child of the global logger named after a component,
// e.g. "gateway" or "pipeline".
func For(component string) *zap.Logger {
	return Get().Named(component)
}

// ForResource is For with the managed resource attached.
func ForResource(component, resource string) *zap.Logger {
	return For(component).With(zap.String("resource", resource))
}

// Sync flushes any buffered log entries.
func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}
