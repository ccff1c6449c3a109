package bootstrap

import (
	"log/slog"

	"github.com/osse101/MeoFarm_Go/internal/event"
	"github.com/osse101/MeoFarm_Go/internal/eventlog"
	"github.com/osse101/MeoFarm_Go/internal/metrics"
	"github.com/osse101/MeoFarm_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Journal  eventlog.Service
	Hub      *sse.Hub
	State    sse.SnapshotSource
}

// RegisterEventHandlers sets up all event handlers and subscribers.
// This includes:
// - Metrics collector (for event-based metrics)
// - Event journal (recent history served by GET /events)
// - Stream subscriber (pushes changes to SSE clients)
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	deps.Journal.Subscribe(deps.EventBus)
	slog.Info(LogMsgEventJournalSubscribed)

	sse.NewSubscriber(deps.Hub, deps.EventBus, deps.State).Subscribe()
	slog.Info(LogMsgStreamSubscriberRegistered)
}
