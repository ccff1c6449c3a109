package farm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MeoFarm_Go/internal/domain"
)

func TestAdvanceGrowth_Boundary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	p := f.store.PlantAt(ctx, 0, 0)

	assert.Empty(t, f.store.AdvanceGrowth(ctx, testStart.Add(9999*time.Millisecond)))
	got, _ := f.store.Snapshot().FindPlant(p.ID)
	assert.Equal(t, domain.PlantStatusGrowing, got.Status)

	promoted := f.store.AdvanceGrowth(ctx, testStart.Add(10000*time.Millisecond))
	assert.Equal(t, []string{p.ID}, promoted)
	got, _ = f.store.Snapshot().FindPlant(p.ID)
	assert.Equal(t, domain.PlantStatusReady, got.Status)
}

func TestAdvanceGrowth_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.store.PlantAt(ctx, 0, 0)
	f.rec.reset()

	now := testStart.Add(time.Minute)
	require.Len(t, f.store.AdvanceGrowth(ctx, now), 1)
	assert.Empty(t, f.store.AdvanceGrowth(ctx, now))
	assert.Empty(t, f.store.AdvanceGrowth(ctx, now.Add(time.Hour)))
	assert.Equal(t, []string{domain.EventTypePlantReady}, f.rec.types())
}

func TestAdvanceGrowth_OnlyElapsedPlants(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	old := f.store.PlantAt(ctx, 0, 0)
	f.clock.Advance(5 * time.Second)
	young := f.store.PlantAt(ctx, 10, 10)

	promoted := f.store.AdvanceGrowth(ctx, f.clock.Now().Add(5*time.Second))
	assert.Equal(t, []string{old.ID}, promoted)

	got, _ := f.store.Snapshot().FindPlant(young.ID)
	assert.Equal(t, domain.PlantStatusGrowing, got.Status)
}

func TestAdvanceGrowth_SkipsDead(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	p := f.store.PlantAt(ctx, 0, 0)
	dead := domain.PlantStatusDead
	f.store.UpdatePlant(ctx, p.ID, domain.PlantPatch{Status: &dead})

	assert.Empty(t, f.store.AdvanceGrowth(ctx, testStart.Add(time.Hour)))
}
