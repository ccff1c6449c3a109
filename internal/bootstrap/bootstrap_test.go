package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MeoFarm_Go/internal/config"
	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/eventlog"
	"github.com/osse101/MeoFarm_Go/internal/farm"
	"github.com/osse101/MeoFarm_Go/internal/sse"
	"github.com/osse101/MeoFarm_Go/internal/testing/leaktest"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		LogLevel:              "debug",
		LogFormat:             "text",
		LogDir:                t.TempDir(),
		ServiceName:           "meofarm",
		Version:               "test",
		Environment:           config.EnvironmentDev,
		FarmConfigPath:        filepath.Join(t.TempDir(), "missing.yaml"),
		GrowthTickInterval:    time.Second,
		ProximityTickInterval: time.Second,
		ViewportWidth:         800,
		ViewportHeight:        600,
		BareHandClearsPlant:   true,
		EventLogSize:          20,
		EventLogMaxAge:        time.Minute,
	}
}

func TestInitializeFarm(t *testing.T) {
	cfg := testConfig(t)
	bus := InitializeEventSystem()

	fc, err := InitializeFarm(context.Background(), cfg, bus)
	require.NoError(t, err)

	assert.Equal(t, fc.Scene.Soil.Rows*fc.Scene.Soil.Cols, fc.Store.TileCount())
	assert.Equal(t, 800.0, fc.Layout.Width)
	assert.Equal(t, domain.ToolNone, fc.Service.Snapshot(context.Background()).Tool)
	assert.Zero(t, fc.Journal.Len())
}

func TestInitializeFarm_BadScene(t *testing.T) {
	cfg := testConfig(t)
	cfg.FarmConfigPath = filepath.Join(t.TempDir(), "farm.yaml")
	require.NoError(t, os.WriteFile(cfg.FarmConfigPath, []byte("soil: [not, a, map"), 0o600))

	_, err := InitializeFarm(context.Background(), cfg, InitializeEventSystem())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedLoadScene)
}

func TestInitializeFarm_BadViewport(t *testing.T) {
	cfg := testConfig(t)
	cfg.ViewportWidth = 0

	_, err := InitializeFarm(context.Background(), cfg, InitializeEventSystem())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidViewport)
}

func TestRegisterEventHandlers(t *testing.T) {
	cfg := testConfig(t)
	bus := InitializeEventSystem()
	fc, err := InitializeFarm(context.Background(), cfg, bus)
	require.NoError(t, err)

	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	RegisterEventHandlers(EventHandlerDependencies{
		EventBus: bus,
		Journal:  fc.Journal,
		Hub:      hub,
		State:    fc.Store,
	})

	_, err = fc.Service.SelectTool(context.Background(), "water")
	require.NoError(t, err)

	recent := fc.Journal.Recent(context.Background(), eventlog.Query{})
	require.Len(t, recent, 1)
	assert.Equal(t, domain.EventTypeToolSelected, string(recent[0].Type))
}

func TestDrivers_GrowPlants(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	clock := clockwork.NewFakeClock()
	store := farm.NewStore(farm.Options{Clock: clock})
	journal, err := eventlog.NewService(10, clock)
	require.NoError(t, err)

	cfg := testConfig(t)
	drivers := StartDrivers(cfg, store, journal)

	plant := store.PlantAt(context.Background(), 10, 10)
	require.Equal(t, domain.PlantStatusGrowing, plant.Status)

	// wait for every ticker before moving time
	require.NoError(t, clock.BlockUntilContext(context.Background(), 3))
	clock.Advance(domain.PlantGrowthDuration + time.Second)

	assert.Eventually(t, func() bool {
		p, ok := store.Snapshot().FindPlant(plant.ID)
		return ok && p.Status == domain.PlantStatusReady
	}, time.Second, 10*time.Millisecond)

	drivers.Stop()
	checker.Check(0)
}

type stubServer struct {
	stopped bool
	err     error
}

func (s *stubServer) Stop(context.Context) error {
	s.stopped = true
	return s.err
}

func TestGracefulShutdown(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	clock := clockwork.NewFakeClock()
	store := farm.NewStore(farm.Options{Clock: clock})
	journal, err := eventlog.NewService(10, clock)
	require.NoError(t, err)

	hub := sse.NewHub()
	hub.Start()
	srv := &stubServer{err: errors.New("deadline exceeded")}

	GracefulShutdown(context.Background(), ShutdownComponents{
		Server:  srv,
		Drivers: StartDrivers(testConfig(t), store, journal),
		Hub:     hub,
	})

	assert.True(t, srv.stopped, "server error must not stop the sequence")
	select {
	case <-hub.Done():
	default:
		t.Fatal("hub still running")
	}
	checker.Check(0)
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, LogFileRetentionCount+1)
	assert.Contains(t, names, "notes.txt")
	assert.NotContains(t, names, fmt.Sprintf(LogFileNamePattern, "2026-01-01_00-00-00"), "oldest goes first")
	assert.Contains(t, names, fmt.Sprintf(LogFileNamePattern, "2026-01-12_00-00-00"))
}

func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	cfg := testConfig(t)
	logFile, err := SetupLogger(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { logFile.Close() })

	slog.Info("hello from the barn")

	data, err := os.ReadFile(logFile.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgStartingMeoFarm)
	assert.Contains(t, string(data), "hello from the barn")
	assert.Contains(t, string(data), "service=meofarm")
}
