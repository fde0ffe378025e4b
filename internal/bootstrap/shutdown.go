package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is anything that stops without reporting an error
type Stopper interface {
	Stop()
}

// ServerStopper stops an HTTP server within the deadline of ctx
type ServerStopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Scheduler and WorkerPool are nil when days only advance on request.
type ShutdownComponents struct {
	Server     ServerStopper
	Scheduler  Stopper
	WorkerPool Stopper
}

// GracefulShutdown stops components in dependency order:
// the HTTP server first so no new ticks are requested, then the scheduler
// so nothing more is queued, then the pool once its in-flight tick is done.
// It returns the server's shutdown error, if any; the sequence always completes.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) error {
	slog.Info(LogMsgShuttingDownServer)

	var err error
	if components.Server != nil {
		if err = components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		slog.Info(LogMsgStoppingWorkerPool)
		components.WorkerPool.Stop()
	}

	slog.Info(LogMsgServerStopped)
	return err
}
