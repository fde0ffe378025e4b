package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/GildedRose_Go/internal/bootstrap"
	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/item"
	"github.com/osse101/GildedRose_Go/internal/scheduler"
	"github.com/osse101/GildedRose_Go/internal/server"
	"github.com/osse101/GildedRose_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings(cfg)
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

// run serves the shop until ctx is cancelled
func run(ctx context.Context, cfg *config.Config) error {
	catalog, err := item.NewLoader().Load(ctx, cfg.InventoryPath)
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	svc, err := inventory.NewService(ctx, catalog.Stock(), cfg.HistorySize)
	if err != nil {
		return fmt.Errorf("failed to create inventory service: %w", err)
	}

	srv := server.NewServer(cfg.Addr(), svc)
	components := bootstrap.ShutdownComponents{Server: srv}

	if cfg.ScheduledTicks() {
		pool := worker.NewPool(cfg.WorkerCount, cfg.QueueSize)
		pool.Start()

		sched := scheduler.New(pool)
		sched.Schedule(cfg.TickInterval, inventory.NewTickJob(svc))
		sched.Start()

		components.Scheduler = sched
		components.WorkerPool = pool
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := bootstrap.GracefulShutdown(shutdownCtx, components); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}
	return serveErr
}
