package eventlog

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/event"
)

func newJournal(t *testing.T, size int) (Service, *event.MemoryBus, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	svc, err := NewService(size, clock)
	require.NoError(t, err)
	bus := event.NewMemoryBus()
	svc.Subscribe(bus)
	return svc, bus, clock
}

func TestJournal_NewestFirstAndBounded(t *testing.T) {
	ctx := context.Background()
	svc, bus, clock := newJournal(t, 3)

	for _, tool := range []domain.Tool{domain.ToolWater, domain.ToolSickle, domain.ToolFertilizer, domain.ToolWeedRemover} {
		require.NoError(t, bus.Publish(ctx, event.NewToolSelectedEvent(clock.Now(), tool)))
	}

	got := svc.Recent(ctx, Query{})
	require.Len(t, got, 3)
	assert.Equal(t, 3, svc.Len())

	first, err := event.DecodePayload[event.ToolSelectedPayloadV1](got[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, domain.ToolWeedRemover, first.Tool)

	last, err := event.DecodePayload[event.ToolSelectedPayloadV1](got[2].Payload)
	require.NoError(t, err)
	assert.Equal(t, domain.ToolSickle, last.Tool, "the water event was evicted")
}

func TestJournal_Filter(t *testing.T) {
	ctx := context.Background()
	svc, bus, clock := newJournal(t, 10)
	plant := domain.Plant{ID: "plant-1"}

	require.NoError(t, bus.Publish(ctx, event.NewPlantEvent(domain.EventTypePlantPlanted, clock.Now(), plant)))
	require.NoError(t, bus.Publish(ctx, event.NewCropSelectedEvent(clock.Now(), "🌽")))
	require.NoError(t, bus.Publish(ctx, event.NewPlantEvent(domain.EventTypePlantReady, clock.Now(), plant)))

	got := svc.Recent(ctx, Query{Types: []string{domain.EventTypePlantPlanted, domain.EventTypePlantReady}})
	require.Len(t, got, 2)
	assert.Equal(t, event.Type(domain.EventTypePlantReady), got[0].Type)

	got = svc.Recent(ctx, Query{Limit: 1})
	require.Len(t, got, 1)
	assert.Equal(t, event.Type(domain.EventTypePlantReady), got[0].Type)
}

func TestJournal_CleanupOldEvents(t *testing.T) {
	ctx := context.Background()
	svc, bus, clock := newJournal(t, 10)

	require.NoError(t, bus.Publish(ctx, event.NewCropSelectedEvent(clock.Now(), "🌽")))
	clock.Advance(5 * time.Minute)
	require.NoError(t, bus.Publish(ctx, event.NewCropSelectedEvent(clock.Now(), "🍓")))

	assert.Equal(t, 1, svc.CleanupOldEvents(ctx, time.Minute))
	assert.Equal(t, 1, svc.Len())

	require.NoError(t, NewCleanupJob(svc, time.Minute).Process(ctx))
	assert.Equal(t, 1, svc.Len())
}

func TestNewService_DefaultSize(t *testing.T) {
	svc, err := NewService(0, nil)
	require.NoError(t, err)
	assert.Zero(t, svc.Len())
}
