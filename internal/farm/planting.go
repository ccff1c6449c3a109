package farm

import (
	"context"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/event"
	"github.com/osse101/MeoFarm_Go/internal/grid"
	"github.com/osse101/MeoFarm_Go/internal/logger"
)

// Reasons a click did not plant
const (
	RefusedNoTile   = "no_tile"
	RefusedOccupied = "occupied"
)

// PlantAtPointer runs one proximity pass, then plants the selected crop on the tile under
// the pointer. Returns false when the pointer is over no tile or the tile already has a plant.
func (s *Store) PlantAtPointer(ctx context.Context, px, py, tileSize float64) (domain.Plant, bool) {
	s.mu.Lock()
	_, events, _ := s.applyProximityLocked()

	p, tileEvt, reason := s.plantOnTileLocked(px, py, tileSize)
	s.mu.Unlock()

	log := logger.FromContext(ctx)
	if reason != "" {
		s.publish(ctx, events...)
		log.Debug(LogMsgPlantRefused, "reason", reason, "x", px, "y", py)
		return domain.Plant{}, false
	}

	events = append(events, event.NewPlantEvent(domain.EventTypePlantPlanted, p.PlantedAt, p), tileEvt)
	log.Info(LogMsgPlantPlanted, "plant_id", p.ID, "crop", p.Emoji, "x", p.X, "y", p.Y)
	s.publish(ctx, events...)
	return p, true
}

func (s *Store) plantOnTileLocked(px, py, tileSize float64) (domain.Plant, event.Event, string) {
	i := s.tileAtLocked(px, py, tileSize)
	if i < 0 {
		return domain.Plant{}, event.Event{}, RefusedNoTile
	}
	t := s.tiles[i]
	if t.Status.HasPlant {
		return domain.Plant{}, event.Event{}, RefusedOccupied
	}

	p := s.plantAtLocked(t.CenterX-domain.PlantSpriteOffset, t.CenterY-domain.PlantSpriteOffset)

	// planting re-rolls the soil
	status := grid.RollStatus(s.rng)
	status.HasPlant = true
	s.tiles[i].Status = status
	return p, event.NewTileUpdatedEvent(s.clock.Now(), t.ID, status, ""), ""
}

// tileAtLocked returns the index of the first tile whose box contains the point, edges included
func (s *Store) tileAtLocked(px, py, tileSize float64) int {
	for i, t := range s.tiles {
		if px >= t.X && px <= t.X+tileSize && py >= t.Y && py <= t.Y+tileSize {
			return i
		}
	}
	return -1
}
