package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dispatch-store/internal/core/auth"
	"dispatch-store/internal/core/config"
	"dispatch-store/internal/core/httpclient"
	"dispatch-store/internal/core/logger"
	"dispatch-store/internal/core/proxy"
	"dispatch-store/internal/core/server"
	"dispatch-store/internal/features/catalog"
	pickuphandler "dispatch-store/internal/features/pickups/handler"
	"dispatch-store/internal/features/resource/adapters"
	resourcehandler "dispatch-store/internal/features/resource/handler"
	"dispatch-store/internal/features/resource/store"
	sessionhandler "dispatch-store/internal/features/session/handler"

	"go.uber.org/zap"
)

// @title Dispatch Store API
// @version 1.0
// @description Local API over the dispatch resource store: cached pickups, shipments, vehicles, employees and cash ledgers with their operation statuses.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("backend", cfg.Backend.URL),
		zap.String("token_backend", cfg.Auth.TokenBackend),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokens, closeTokens, err := auth.Open(ctx, cfg.Auth)
	if err != nil {
		l.Fatal("Token store unavailable", zap.Error(err))
	}
	defer closeTokens()

	httpClient := httpclient.NewClient(httpclient.Options{
		Timeout: cfg.Backend.Timeout(),
		Proxy: proxy.Settings{
			Enabled:  cfg.Proxy.Enabled,
			Hostname: cfg.Proxy.Hostname,
			Port:     cfg.Proxy.Port,
			Username: cfg.Proxy.Username,
			Password: cfg.Proxy.Password,
		},
	})

	registry := catalog.Build(
		adapters.NewClient(cfg.Backend.URL, httpClient, tokens),
		store.WithStaleGuard(cfg.Store.GuardStaleStatus),
	)
	l.Info("Resource stores ready", zap.Strings("resources", registry.Names()))

	resourceHdl := resourcehandler.NewResourceHandler(registry)
	pickupHdl := pickuphandler.NewPickupHandler(registry.Pickups())
	sessionHdl := sessionhandler.NewSessionHandler(tokens, registry)

	srv := server.New(cfg)

	// Register Routes
	resourceHdl.Register(srv.App)
	srv.App.Post("/pickups/:id/transition", pickupHdl.Transition)
	srv.App.Get("/pickups/:id/transitions", pickupHdl.Transitions)
	srv.App.Put("/session/token", sessionHdl.SaveToken)
	srv.App.Delete("/session/token", sessionHdl.Logout)

	go func() {
		<-ctx.Done()
		l.Info("Shutting down")
		if err := srv.Shutdown(); err != nil {
			l.Error("Shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
