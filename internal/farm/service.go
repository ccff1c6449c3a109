package farm

import (
	"context"
	"sync"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/logger"
	"github.com/osse101/MeoFarm_Go/internal/scene"
)

// Catalog is the toolbar and crop menu content
type Catalog struct {
	Tools []domain.ToolInfo `json:"tools"`
	Crops []string          `json:"crops"`
}

// Service is the command surface the HTTP layer talks to. It translates client input
// into store commands and re-runs the proximity check after every change that can move
// the character relative to the tiles or change what the tool does.
type Service interface {
	Snapshot(ctx context.Context) domain.Snapshot
	Layout(ctx context.Context) scene.Layout
	Catalog(ctx context.Context) Catalog
	TileCount(ctx context.Context) int

	MoveCharacter(ctx context.Context, x, y float64) ProximityResult
	StepCharacter(ctx context.Context, key string) (domain.Character, error)
	SelectTool(ctx context.Context, name string) (domain.Tool, error)
	SelectCrop(ctx context.Context, crop string) (string, error)
	ClickAt(ctx context.Context, x, y float64) (domain.Plant, bool)
	PlantAt(ctx context.Context, x, y float64) domain.Plant
	UpdatePlant(ctx context.Context, id string, patch domain.PlantPatch) bool
	Harvest(ctx context.Context, id string) (domain.Plant, bool)
	SetTiles(ctx context.Context, tiles []domain.SoilTile)
	SetTileStatus(ctx context.Context, id string, patch domain.TileStatusPatch) bool
	Resize(ctx context.Context, width, height float64) (scene.Layout, error)
}

type service struct {
	store *Store
	cfg   scene.Config

	mu     sync.RWMutex
	layout scene.Layout
}

// NewService creates the farm service over store, starting from the given layout
func NewService(store *Store, cfg scene.Config, layout scene.Layout) Service {
	return &service{
		store:  store,
		cfg:    cfg,
		layout: layout,
	}
}

func (s *service) Snapshot(_ context.Context) domain.Snapshot {
	return s.store.Snapshot()
}

func (s *service) Layout(_ context.Context) scene.Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layout
}

func (s *service) Catalog(_ context.Context) Catalog {
	tools := make([]domain.ToolInfo, len(s.cfg.Tools))
	copy(tools, s.cfg.Tools)
	crops := make([]string, len(s.cfg.Crops))
	copy(crops, s.cfg.Crops)
	return Catalog{Tools: tools, Crops: crops}
}

func (s *service) TileCount(_ context.Context) int {
	return s.store.TileCount()
}

func (s *service) MoveCharacter(ctx context.Context, x, y float64) ProximityResult {
	s.store.MoveCharacter(ctx, x, y)
	return s.store.ApplyProximity(ctx)
}

func (s *service) StepCharacter(ctx context.Context, key string) (domain.Character, error) {
	layout := s.Layout(ctx)
	next, err := layout.Step(s.store.Character(), key)
	if err != nil {
		return domain.Character{}, err
	}
	s.store.MoveCharacter(ctx, next.X, next.Y)
	s.store.ApplyProximity(ctx)
	return next, nil
}

func (s *service) SelectTool(ctx context.Context, name string) (domain.Tool, error) {
	tool, err := domain.ParseTool(name)
	if err != nil {
		return "", err
	}
	s.store.SelectTool(ctx, tool)
	s.store.ApplyProximity(ctx)
	return tool, nil
}

func (s *service) SelectCrop(ctx context.Context, crop string) (string, error) {
	parsed, err := domain.ParseCrop(crop, s.cfg.Crops)
	if err != nil {
		return "", err
	}
	s.store.SelectCrop(ctx, parsed)
	return parsed, nil
}

func (s *service) ClickAt(ctx context.Context, x, y float64) (domain.Plant, bool) {
	tileSize := s.Layout(ctx).Soil.TileSize
	p, planted := s.store.PlantAtPointer(ctx, x, y, tileSize)
	if planted {
		s.store.ApplyProximity(ctx)
	}
	return p, planted
}

func (s *service) PlantAt(ctx context.Context, x, y float64) domain.Plant {
	return s.store.PlantAt(ctx, x, y)
}

func (s *service) UpdatePlant(ctx context.Context, id string, patch domain.PlantPatch) bool {
	return s.store.UpdatePlant(ctx, id, patch)
}

func (s *service) Harvest(ctx context.Context, id string) (domain.Plant, bool) {
	return s.store.Harvest(ctx, id)
}

func (s *service) SetTiles(ctx context.Context, tiles []domain.SoilTile) {
	s.store.SetTiles(ctx, tiles)
	s.store.ApplyProximity(ctx)
}

func (s *service) SetTileStatus(ctx context.Context, id string, patch domain.TileStatusPatch) bool {
	found := s.store.SetTileStatus(ctx, id, patch)
	if found {
		s.store.ApplyProximity(ctx)
	}
	return found
}

// Resize recomputes the layout, regenerates the soil and puts the character back at the start
func (s *service) Resize(ctx context.Context, width, height float64) (scene.Layout, error) {
	layout, err := scene.NewLayout(s.cfg, width, height)
	if err != nil {
		return scene.Layout{}, err
	}

	s.mu.Lock()
	s.layout = layout
	s.mu.Unlock()

	s.store.MoveCharacter(ctx, layout.Start.X, layout.Start.Y)
	s.store.RegenerateTiles(ctx, layout.Soil)
	s.store.ApplyProximity(ctx)

	logger.FromContext(ctx).Info(LogMsgViewportChanged, "width", width, "height", height)
	return layout, nil
}
