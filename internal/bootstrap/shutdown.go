package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/MeoFarm_Go/internal/sse"
)

// Stopper is a server that drains in-flight requests
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  Stopper
	Drivers *Drivers
	Hub     *sse.Hub
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Background drivers (no more growth or proximity passes)
// 3. SSE hub (close any stream the server did not already end)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Drivers != nil {
		slog.Info(LogMsgStoppingDrivers)
		components.Drivers.Stop()
	}

	if components.Hub != nil {
		slog.Info(LogMsgClosingStreams)
		components.Hub.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
