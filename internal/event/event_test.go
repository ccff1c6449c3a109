package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MeoFarm_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType, Payload: "payload"})

	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	assert.Error(t, err)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody.listens"}))
}

func TestSubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]int{}
	SubscribeAll(bus, func(_ context.Context, e Event) error {
		seen[e.Type]++
		return nil
	})

	for _, et := range domain.AllEventTypes {
		require.NoError(t, bus.Publish(context.Background(), Event{Type: Type(et)}))
	}

	assert.Len(t, seen, len(domain.AllEventTypes))
}

func TestNewPlantHarvestedEvent(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	p := domain.Plant{ID: "plant-1", Emoji: "🌽"}

	evt := NewPlantHarvestedEvent(at, p, 10, 30, 3)

	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, Type(domain.EventTypePlantHarvested), evt.Type)
	assert.Equal(t, at, evt.OccurredAt)

	payload, err := DecodePayload[PlantHarvestedPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, 10, payload.Reward)
	assert.Equal(t, 30, payload.Coins)
	assert.Equal(t, "plant-1", payload.Plant.ID)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"tool": "water"}

	payload, err := DecodePayload[ToolSelectedPayloadV1](raw)

	require.NoError(t, err)
	assert.Equal(t, domain.ToolWater, payload.Tool)
}

func TestDecodePayload_PointerAndNil(t *testing.T) {
	payload, err := DecodePayload[CropSelectedPayloadV1](&CropSelectedPayloadV1{Crop: "🌽"})
	require.NoError(t, err)
	assert.Equal(t, "🌽", payload.Crop)

	_, err = DecodePayload[CropSelectedPayloadV1](nil)
	assert.ErrorIs(t, err, ErrNilPayload)

	_, err = DecodePayload[CropSelectedPayloadV1]((*CropSelectedPayloadV1)(nil))
	assert.ErrorIs(t, err, ErrNilPayload)

	_, err = DecodePayload[CropSelectedPayloadV1](map[string]interface{}{"crop": 7})
	assert.Error(t, err)
}
