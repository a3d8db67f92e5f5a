package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bjaus/hookline"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := hookline.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	router := hookline.New(
		hookline.WithOnEvent(hookline.HandlerFunc(func(ctx context.Context, evt hookline.Event) error {
			logger.Info("event received",
				"type", evt.Type,
				"event_id", evt.EventID,
			)
			return nil
		})),
		hookline.WithOnHandlerError(func(ctx context.Context, pattern, eventType string, err error, d time.Duration) {
			logger.Error("dispatch failure",
				"pattern", pattern,
				"type", eventType,
				"error", err,
				"duration", d,
			)
		}),
	)

	srv := hookline.NewServer(cfg, router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	logger.Info("hooklined listening", "addr", cfg.ListenAddr, "path", cfg.WebhookPath)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("listen failed", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("hooklined stopped")
}
