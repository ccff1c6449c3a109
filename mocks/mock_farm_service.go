// Package mocks holds testify mocks for service interfaces consumed by the HTTP layer.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/farm"
	"github.com/osse101/MeoFarm_Go/internal/scene"
)

// MockFarmService is a mock implementation of farm.Service
type MockFarmService struct {
	mock.Mock
}

var _ farm.Service = (*MockFarmService)(nil)

func (m *MockFarmService) Snapshot(ctx context.Context) domain.Snapshot {
	args := m.Called(ctx)
	return args.Get(0).(domain.Snapshot)
}

func (m *MockFarmService) Layout(ctx context.Context) scene.Layout {
	args := m.Called(ctx)
	return args.Get(0).(scene.Layout)
}

func (m *MockFarmService) Catalog(ctx context.Context) farm.Catalog {
	args := m.Called(ctx)
	return args.Get(0).(farm.Catalog)
}

func (m *MockFarmService) TileCount(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *MockFarmService) MoveCharacter(ctx context.Context, x, y float64) farm.ProximityResult {
	args := m.Called(ctx, x, y)
	return args.Get(0).(farm.ProximityResult)
}

func (m *MockFarmService) StepCharacter(ctx context.Context, key string) (domain.Character, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(domain.Character), args.Error(1)
}

func (m *MockFarmService) SelectTool(ctx context.Context, name string) (domain.Tool, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Tool), args.Error(1)
}

func (m *MockFarmService) SelectCrop(ctx context.Context, crop string) (string, error) {
	args := m.Called(ctx, crop)
	return args.String(0), args.Error(1)
}

func (m *MockFarmService) ClickAt(ctx context.Context, x, y float64) (domain.Plant, bool) {
	args := m.Called(ctx, x, y)
	return args.Get(0).(domain.Plant), args.Bool(1)
}

func (m *MockFarmService) PlantAt(ctx context.Context, x, y float64) domain.Plant {
	args := m.Called(ctx, x, y)
	return args.Get(0).(domain.Plant)
}

func (m *MockFarmService) UpdatePlant(ctx context.Context, id string, patch domain.PlantPatch) bool {
	args := m.Called(ctx, id, patch)
	return args.Bool(0)
}

func (m *MockFarmService) Harvest(ctx context.Context, id string) (domain.Plant, bool) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Plant), args.Bool(1)
}

func (m *MockFarmService) SetTiles(ctx context.Context, tiles []domain.SoilTile) {
	m.Called(ctx, tiles)
}

func (m *MockFarmService) SetTileStatus(ctx context.Context, id string, patch domain.TileStatusPatch) bool {
	args := m.Called(ctx, id, patch)
	return args.Bool(0)
}

func (m *MockFarmService) Resize(ctx context.Context, width, height float64) (scene.Layout, error) {
	args := m.Called(ctx, width, height)
	return args.Get(0).(scene.Layout), args.Error(1)
}
