package bootstrap

import (
	"log/slog"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus every farm change is published on
func InitializeEventSystem() *event.MemoryBus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized, "event_types", len(domain.AllEventTypes))
	return bus
}
