package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/event"
)

// SnapshotSource provides the current farm state
type SnapshotSource interface {
	Snapshot() domain.Snapshot
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub   *Hub
	bus   event.Bus
	state SnapshotSource
}

// NewSubscriber creates a new SSE subscriber. state may be nil, in which case
// clients only receive the change itself.
func NewSubscriber(hub *Hub, bus event.Bus, state SnapshotSource) *Subscriber {
	return &Subscriber{
		hub:   hub,
		bus:   bus,
		state: state,
	}
}

// Subscribe registers handlers for every farm event type
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, s.handleFarmEvent)
	slog.Info(LogMsgSubscribed, "types", domain.AllEventTypes)
}

func (s *Subscriber) handleFarmEvent(_ context.Context, evt event.Event) error {
	payload := FarmChangePayload{Change: evt.Payload}
	if s.state != nil {
		snap := s.state.Snapshot()
		payload.Snapshot = &snap
	}

	if !s.hub.Broadcast(evt.ID, string(evt.Type), evt.OccurredAt, payload) {
		slog.Warn(LogMsgBroadcastDropped, "event_type", evt.Type)
		return nil
	}

	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "event_id", evt.ID)
	return nil
}
