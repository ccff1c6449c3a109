package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MeoFarm_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a farm change that subscribers can react to
type Event struct {
	ID         string      `json:"id"`
	Version    string      `json:"version"` // Event schema version (e.g., "1.0")
	Type       Type        `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
	Metadata   Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// New creates an event of the given type stamped with a fresh id
func New(eventType string, occurredAt time.Time, payload interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Version:    EventSchemaVersion,
		Type:       Type(eventType),
		OccurredAt: occurredAt,
		Payload:    payload,
	}
}

// Typed event payloads for type safety

// CharacterMovedPayloadV1 is the payload for farm.character.moved
type CharacterMovedPayloadV1 struct {
	Character domain.Character `json:"character"`
}

// ToolSelectedPayloadV1 is the payload for farm.tool.selected
type ToolSelectedPayloadV1 struct {
	Tool domain.Tool `json:"tool"`
}

// CropSelectedPayloadV1 is the payload for farm.crop.selected
type CropSelectedPayloadV1 struct {
	Crop string `json:"crop"`
}

// TilesReplacedPayloadV1 is the payload for farm.tiles.replaced
type TilesReplacedPayloadV1 struct {
	TileCount int `json:"tile_count"`
}

// TileUpdatedPayloadV1 is the payload for farm.tile.updated
type TileUpdatedPayloadV1 struct {
	TileID string            `json:"tile_id"`
	Status domain.TileStatus `json:"status"`
	// Tool is set when the change came from a proximity tool effect
	Tool domain.Tool `json:"tool,omitempty"`
}

// PlantPayloadV1 is the payload for plant lifecycle events
type PlantPayloadV1 struct {
	Plant domain.Plant `json:"plant"`
}

// PlantHarvestedPayloadV1 is the payload for farm.plant.harvested
type PlantHarvestedPayloadV1 struct {
	Plant     domain.Plant `json:"plant"`
	Reward    int          `json:"reward"`
	Coins     int          `json:"coins"`
	Harvested int          `json:"harvested"`
}

// Type-safe event constructors

// NewCharacterMovedEvent creates a farm.character.moved event
func NewCharacterMovedEvent(at time.Time, c domain.Character) Event {
	return New(domain.EventTypeCharacterMoved, at, CharacterMovedPayloadV1{Character: c})
}

// NewToolSelectedEvent creates a farm.tool.selected event
func NewToolSelectedEvent(at time.Time, tool domain.Tool) Event {
	return New(domain.EventTypeToolSelected, at, ToolSelectedPayloadV1{Tool: tool})
}

// NewCropSelectedEvent creates a farm.crop.selected event
func NewCropSelectedEvent(at time.Time, crop string) Event {
	return New(domain.EventTypeCropSelected, at, CropSelectedPayloadV1{Crop: crop})
}

// NewTilesReplacedEvent creates a farm.tiles.replaced event
func NewTilesReplacedEvent(at time.Time, count int) Event {
	return New(domain.EventTypeTilesReplaced, at, TilesReplacedPayloadV1{TileCount: count})
}

// NewTileUpdatedEvent creates a farm.tile.updated event
func NewTileUpdatedEvent(at time.Time, tileID string, status domain.TileStatus, tool domain.Tool) Event {
	return New(domain.EventTypeTileUpdated, at, TileUpdatedPayloadV1{TileID: tileID, Status: status, Tool: tool})
}

// NewPlantEvent creates a plant lifecycle event (planted, updated, ready)
func NewPlantEvent(eventType string, at time.Time, p domain.Plant) Event {
	return New(eventType, at, PlantPayloadV1{Plant: p})
}

// NewPlantHarvestedEvent creates a farm.plant.harvested event
func NewPlantHarvestedEvent(at time.Time, p domain.Plant, reward, coins, harvested int) Event {
	return New(domain.EventTypePlantHarvested, at, PlantHarvestedPayloadV1{
		Plant:     p,
		Reward:    reward,
		Coins:     coins,
		Harvested: harvested,
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously, in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes a handler to every farm event type
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range domain.AllEventTypes {
		bus.Subscribe(Type(t), handler)
	}
}
