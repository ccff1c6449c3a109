package farm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MeoFarm_Go/internal/domain"
)

// dirtyTile has every flag set and its center at (25, 25)
func dirtyTile() domain.SoilTile {
	return tileAt("t", 0, 0, domain.TileStatus{Dry: true, NoFertilizer: true, Weedy: true, HasPlant: true})
}

func TestApplyProximity_ToolEffects(t *testing.T) {
	tests := []struct {
		tool domain.Tool
		want domain.TileStatus
	}{
		{tool: domain.ToolWater, want: domain.TileStatus{NoFertilizer: true, Weedy: true, HasPlant: true}},
		{tool: domain.ToolFertilizer, want: domain.TileStatus{Dry: true, Weedy: true, HasPlant: true}},
		{tool: domain.ToolWeedRemover, want: domain.TileStatus{Dry: true, NoFertilizer: true, HasPlant: true}},
		{tool: domain.ToolSickle, want: domain.TileStatus{Dry: true, NoFertilizer: true, Weedy: true}},
		{tool: domain.ToolNone, want: domain.TileStatus{Dry: true, NoFertilizer: true, Weedy: true}},
		{tool: domain.Tool("shovel"), want: domain.TileStatus{Dry: true, NoFertilizer: true, Weedy: true}},
	}

	for _, tt := range tests {
		t.Run(string(tt.tool), func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t, true)
			f.store.SetTiles(ctx, []domain.SoilTile{dirtyTile()})
			f.store.MoveCharacter(ctx, 25, 25)
			f.store.SelectTool(ctx, tt.tool)

			f.store.ApplyProximity(ctx)

			assert.Equal(t, tt.want, f.store.Snapshot().Tiles[0].Status)
		})
	}
}

func TestApplyProximity_Radius(t *testing.T) {
	tests := []struct {
		name    string
		offset  float64
		cleared bool
	}{
		{name: "39px away", offset: 39, cleared: true},
		{name: "40px away", offset: 40, cleared: false},
		{name: "41px away", offset: 41, cleared: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t, true)
			f.store.SetTiles(ctx, []domain.SoilTile{dirtyTile()})
			f.store.SelectTool(ctx, domain.ToolWater)
			f.store.MoveCharacter(ctx, 25+tt.offset, 25)

			res := f.store.ApplyProximity(ctx)

			assert.Equal(t, !tt.cleared, f.store.Snapshot().Tiles[0].Status.Dry)
			assert.Equal(t, tt.cleared, res.Changed())
		})
	}
}

func TestApplyProximity_BareHandSwitch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	f.store.SetTiles(ctx, []domain.SoilTile{dirtyTile()})
	f.store.MoveCharacter(ctx, 25, 25)

	res := f.store.ApplyProximity(ctx)

	assert.False(t, res.Changed())
	assert.True(t, f.store.Snapshot().Tiles[0].Status.HasPlant)
}

func TestApplyProximity_SickleHarvest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	near := f.store.PlantAt(ctx, 100, 100)
	far := f.store.PlantAt(ctx, 121, 100)
	growing := f.store.PlantAt(ctx, 101, 100)
	ready := domain.PlantStatusReady
	f.store.UpdatePlant(ctx, near.ID, domain.PlantPatch{Status: &ready})
	f.store.UpdatePlant(ctx, far.ID, domain.PlantPatch{Status: &ready})

	f.store.MoveCharacter(ctx, 100, 100)
	f.store.SelectTool(ctx, domain.ToolSickle)
	res := f.store.ApplyProximity(ctx)

	assert.Equal(t, []string{near.ID}, res.Harvested)
	snap := f.store.Snapshot()
	assert.Equal(t, 10, snap.Coins)
	assert.Equal(t, 1, snap.Harvested)
	_, ok := snap.FindPlant(far.ID)
	assert.True(t, ok)
	_, ok = snap.FindPlant(growing.ID)
	assert.True(t, ok)
}

func TestApplyProximity_ReadyPlantNeedsSickle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	p := f.store.PlantAt(ctx, 100, 100)
	ready := domain.PlantStatusReady
	f.store.UpdatePlant(ctx, p.ID, domain.PlantPatch{Status: &ready})
	f.store.MoveCharacter(ctx, 100, 100)

	for _, tool := range []domain.Tool{domain.ToolNone, domain.ToolWater, domain.ToolFertilizer, domain.ToolWeedRemover} {
		f.store.SelectTool(ctx, tool)
		res := f.store.ApplyProximity(ctx)
		assert.Empty(t, res.Harvested, tool)
	}
	assert.Len(t, f.store.Snapshot().Plants, 1)
}

func TestApplyProximity_HarvestsSeveral(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	ready := domain.PlantStatusReady
	for i := 0; i < 3; i++ {
		p := f.store.PlantAt(ctx, 50+float64(i), 50)
		f.store.UpdatePlant(ctx, p.ID, domain.PlantPatch{Status: &ready})
	}
	f.store.MoveCharacter(ctx, 51, 50)
	f.store.SelectTool(ctx, domain.ToolSickle)
	f.rec.reset()

	res := f.store.ApplyProximity(ctx)

	require.Len(t, res.Harvested, 3)
	snap := f.store.Snapshot()
	assert.Empty(t, snap.Plants)
	assert.Equal(t, 30, snap.Coins)
	assert.Equal(t, 3, snap.Harvested)
	assert.Len(t, f.rec.types(), 3)
}

func TestApplyProximity_SickleFreesHarvestedTile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.store.SetTiles(ctx, []domain.SoilTile{tileAt("t", 0, 0, domain.TileStatus{})})

	p, ok := f.store.PlantAtPointer(ctx, 25, 25, 50)
	require.True(t, ok)
	ready := domain.PlantStatusReady
	f.store.UpdatePlant(ctx, p.ID, domain.PlantPatch{Status: &ready})

	// the plant sprite sits at (1, 1), inside both radii
	f.store.MoveCharacter(ctx, 1, 1)
	f.store.SelectTool(ctx, domain.ToolSickle)
	res := f.store.ApplyProximity(ctx)

	assert.Equal(t, []string{p.ID}, res.Harvested)
	assert.Equal(t, []string{"t"}, res.UpdatedTiles)
	assert.False(t, f.store.Snapshot().Tiles[0].Status.HasPlant)

	_, ok = f.store.PlantAtPointer(ctx, 25, 25, 50)
	assert.True(t, ok, "tile can be replanted right after the harvest")
}

func TestApplyProximity_SickleRespectsBareHandSwitch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	f.store.SetTiles(ctx, []domain.SoilTile{dirtyTile()})
	f.store.MoveCharacter(ctx, 25, 25)
	f.store.SelectTool(ctx, domain.ToolSickle)

	f.store.ApplyProximity(ctx)

	assert.True(t, f.store.Snapshot().Tiles[0].Status.HasPlant)
}
