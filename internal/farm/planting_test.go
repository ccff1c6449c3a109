package farm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MeoFarm_Go/internal/domain"
)

func TestPlantAtPointer_PlantsOnTile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.store.SetTiles(ctx, []domain.SoilTile{
		tileAt("left", 0, 0, domain.TileStatus{}),
		tileAt("right", 58, 0, domain.TileStatus{}),
	})
	f.store.SelectCrop(ctx, "🍓")
	f.rand.values = []float64{0.1, 0.5, 0.1}
	f.rec.reset()

	p, ok := f.store.PlantAtPointer(ctx, 60, 10, 50)
	require.True(t, ok)

	// right tile center is (83, 25)
	assert.Equal(t, 59.0, p.X)
	assert.Equal(t, 1.0, p.Y)
	assert.Equal(t, "🍓", p.Emoji)

	snap := f.store.Snapshot()
	right, _ := snap.FindTile("right")
	assert.Equal(t, domain.TileStatus{Dry: true, Weedy: true, HasPlant: true}, right.Status)
	left, _ := snap.FindTile("left")
	assert.False(t, left.Status.HasPlant)
	assert.Equal(t, []string{domain.EventTypePlantPlanted, domain.EventTypeTileUpdated}, f.rec.types())
}

func TestPlantAtPointer_InclusiveEdges(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.store.SetTiles(ctx, []domain.SoilTile{tileAt("a", 10, 10, domain.TileStatus{})})

	_, ok := f.store.PlantAtPointer(ctx, 60, 60, 50)
	assert.True(t, ok)
}

func TestPlantAtPointer_Refused(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.store.SetTiles(ctx, []domain.SoilTile{tileAt("a", 0, 0, domain.TileStatus{HasPlant: true})})

	_, ok := f.store.PlantAtPointer(ctx, 500, 500, 50)
	assert.False(t, ok, "outside every tile")

	_, ok = f.store.PlantAtPointer(ctx, 10, 10, 50)
	assert.False(t, ok, "tile already planted")

	assert.Empty(t, f.store.Snapshot().Plants)
}

func TestPlantAtPointer_RunsProximityFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.store.SetTiles(ctx, []domain.SoilTile{tileAt("a", 0, 0, domain.TileStatus{HasPlant: true})})
	// bare hand next to a planted tile clears the flag, which frees it for planting
	f.store.MoveCharacter(ctx, 25, 25)

	_, ok := f.store.PlantAtPointer(ctx, 10, 10, 50)
	assert.True(t, ok)
	assert.Len(t, f.store.Snapshot().Plants, 1)
}
