package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-assistant/internal/bootstrap"
	"resume-assistant/internal/shared/config"
	"resume-assistant/internal/shared/server"
	"resume-assistant/internal/shared/telemetry"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := telemetry.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer telemetry.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		telemetry.Error("bootstrap.failed", map[string]any{"err": err})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              server.Addr(cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		telemetry.Info("server.start", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			telemetry.Error("server.failed", map[string]any{"err": err})
			os.Exit(1)
		}
	}

	telemetry.Info("server.shutdown", map[string]any{"timeout_s": shutdownTimeout.Seconds()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		telemetry.Error("server.shutdown_failed", map[string]any{"err": err})
	}
}
