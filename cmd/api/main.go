package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/server"
	"go-chi-calculator/internal/session"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logger
	err = observability.InitLogger()
	if err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing, metrics and OTLP logs
	shutdowns, err := initTelemetry(ctx, cfg)
	defer func() {
		for i := len(shutdowns) - 1; i >= 0; i-- {
			if err := shutdowns[i](context.Background()); err != nil {
				observability.Logger.Warn("telemetry shutdown failed", zap.Error(err))
			}
		}
	}()
	if err != nil {
		observability.Logger.Error("initialising telemetry", zap.Error(err))
		return
	}

	// Sessions
	store := session.NewStore(
		session.WithTTL(cfg.SessionTTL),
		session.WithLogger(observability.Logger),
	)
	go store.Run(ctx, cfg.JanitorInterval)

	// Router
	router := server.NewRouter(server.Options{
		Store:       store,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.Addr),
			zap.Duration("session_ttl", cfg.SessionTTL),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	waitForShutdown(ctx, srv, cfg)
}

func waitForShutdown(ctx context.Context, srv *http.Server, cfg config.Config) {

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		observability.Logger.Warn("graceful shutdown failed", zap.Error(err))
	}
	observability.Logger.Info("server stopped")
}
