package metrics

import (
	"context"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/event"
	"github.com/osse101/MeoFarm_Go/internal/logger"
)

// EventMetricsCollector subscribes to farm events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all farm events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	event.SubscribeAll(bus, e.HandleEvent)
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case domain.EventTypePlantPlanted:
		payload, err := event.DecodePayload[event.PlantPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		PlantsPlanted.WithLabelValues(payload.Plant.Emoji).Inc()

	case domain.EventTypePlantReady:
		PlantsReady.Inc()

	case domain.EventTypePlantHarvested:
		payload, err := event.DecodePayload[event.PlantHarvestedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		PlantsHarvested.WithLabelValues(payload.Plant.Emoji).Inc()
		CoinsEarned.Add(float64(payload.Reward))

	case domain.EventTypeTileUpdated:
		payload, err := event.DecodePayload[event.TileUpdatedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		// manual patches carry no tool
		if payload.Tool != "" {
			TileEffects.WithLabelValues(string(payload.Tool)).Inc()
		}
	}

	return nil
}
