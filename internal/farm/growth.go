package farm

import (
	"context"
	"time"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/event"
	"github.com/osse101/MeoFarm_Go/internal/logger"
)

// AdvanceGrowth promotes every growing plant whose duration has elapsed at now to ready
// and returns the promoted ids. Calling it again at the same instant promotes nothing.
func (s *Store) AdvanceGrowth(ctx context.Context, now time.Time) []string {
	ready := domain.PlantStatusReady
	patch := domain.PlantPatch{Status: &ready}

	s.mu.Lock()
	var promoted []domain.Plant
	for i := range s.plants {
		p := s.plants[i]
		if p.Status != domain.PlantStatusGrowing || now.Sub(p.PlantedAt) < p.Duration {
			continue
		}
		if updated, changed, _ := s.updatePlantLocked(p.ID, patch); changed {
			promoted = append(promoted, updated)
		}
	}
	s.mu.Unlock()

	if len(promoted) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)
	ids := make([]string, len(promoted))
	events := make([]event.Event, len(promoted))
	for i, p := range promoted {
		ids[i] = p.ID
		events[i] = event.NewPlantEvent(domain.EventTypePlantReady, now, p)
		log.Info(LogMsgPlantReady, "plant_id", p.ID, "crop", p.Emoji)
	}
	s.publish(ctx, events...)
	return ids
}
