package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/MeoFarm_Go/internal/config"
	"github.com/osse101/MeoFarm_Go/internal/event"
	"github.com/osse101/MeoFarm_Go/internal/eventlog"
	"github.com/osse101/MeoFarm_Go/internal/farm"
	"github.com/osse101/MeoFarm_Go/internal/handler"
	"github.com/osse101/MeoFarm_Go/internal/scene"
)

// FarmComponents is the farm state and everything derived from the scene file
type FarmComponents struct {
	Scene   scene.Config
	Layout  scene.Layout
	Store   *farm.Store
	Service farm.Service
	Journal eventlog.Service
}

// InitializeFarm loads the scene, builds the layout for the configured viewport and
// creates the store with a freshly rolled soil grid.
// It handles the complete lifecycle: load YAML → validate → lay out → generate tiles → log results.
func InitializeFarm(ctx context.Context, cfg *config.Config, bus event.Bus) (*FarmComponents, error) {
	sceneCfg, err := config.LoadScene(cfg.FarmConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadScene, err)
	}
	slog.Info(LogMsgSceneLoaded,
		"path", cfg.FarmConfigPath,
		"crops", len(sceneCfg.Crops),
		"tools", len(sceneCfg.Tools))

	// request validation only accepts crops from the loaded menu
	handler.InitValidatorWithPalette(sceneCfg.Crops)

	layout, err := scene.NewLayout(sceneCfg, float64(cfg.ViewportWidth), float64(cfg.ViewportHeight))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildLayout, err)
	}

	store := farm.NewStore(farm.Options{
		Bus:                 bus,
		BareHandClearsPlant: cfg.BareHandClearsPlant,
	})
	tiles := store.RegenerateTiles(ctx, layout.Soil)

	journal, err := eventlog.NewService(cfg.EventLogSize, store.Clock())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateJournal, err)
	}

	slog.Info(LogMsgFarmInitialized,
		"tiles", len(tiles),
		"width", layout.Width,
		"height", layout.Height)

	return &FarmComponents{
		Scene:   sceneCfg,
		Layout:  layout,
		Store:   store,
		Service: farm.NewService(store, sceneCfg, layout),
		Journal: journal,
	}, nil
}
