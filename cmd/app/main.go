// @title MeoFarm API
// @version 1.0
// @description Farm state, commands and live updates for the MeoFarm game.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
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

	"golang.org/x/sync/errgroup"

	"github.com/osse101/MeoFarm_Go/docs"
	"github.com/osse101/MeoFarm_Go/internal/bootstrap"
	"github.com/osse101/MeoFarm_Go/internal/config"
	"github.com/osse101/MeoFarm_Go/internal/handler"
	"github.com/osse101/MeoFarm_Go/internal/logger"
	"github.com/osse101/MeoFarm_Go/internal/server"
	"github.com/osse101/MeoFarm_Go/internal/sse"
)

func main() {
	if err := run(); err != nil {
		slog.Error("MeoFarm exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// stdout only until the environment says where session logs go
	logger.InitLogger(logger.DefaultConfig())

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	warnings, err := cfg.ValidateWithWarnings()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	docs.SwaggerInfo.Version = cfg.Version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := bootstrap.InitializeEventSystem()

	fc, err := bootstrap.InitializeFarm(ctx, cfg, bus)
	if err != nil {
		return err
	}

	hub := sse.NewHub()
	hub.Start()

	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		Journal:  fc.Journal,
		Hub:      hub,
		State:    fc.Store,
	})

	drivers := bootstrap.StartDrivers(cfg, fc.Store, fc.Journal)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, server.Dependencies{
		FarmService:  fc.Service,
		Journal:      fc.Journal,
		Hub:          hub,
		SSEKeepalive: cfg.SSEKeepalive,
		Build: handler.BuildInfo{
			Service:     cfg.ServiceName,
			Version:     cfg.Version,
			Environment: cfg.Environment,
		},
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:  srv,
			Drivers: drivers,
			Hub:     hub,
		})
		return nil
	})

	return g.Wait()
}
