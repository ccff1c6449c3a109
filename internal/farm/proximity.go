package farm

import (
	"context"
	"math"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/event"
	"github.com/osse101/MeoFarm_Go/internal/logger"
)

// ProximityResult reports what one proximity pass changed
type ProximityResult struct {
	Tool         domain.Tool `json:"tool"`
	UpdatedTiles []string    `json:"updated_tiles"`
	Harvested    []string    `json:"harvested"`
}

// Changed reports whether the pass touched anything
func (r ProximityResult) Changed() bool {
	return len(r.UpdatedTiles) > 0 || len(r.Harvested) > 0
}

// ApplyProximity applies the selected tool to every tile and plant near the character.
// The whole pass runs under the store lock.
func (s *Store) ApplyProximity(ctx context.Context) ProximityResult {
	s.mu.Lock()
	result, events, bareHand := s.applyProximityLocked()
	s.mu.Unlock()

	log := logger.FromContext(ctx)
	for _, id := range bareHand {
		log.Debug(LogMsgBareHandClearedTile, "tile_id", id, "tool", result.Tool)
	}
	for _, id := range result.Harvested {
		log.Info(LogMsgPlantHarvested, "plant_id", id, "tool", result.Tool)
	}
	s.publish(ctx, events...)
	return result
}

func (s *Store) applyProximityLocked() (ProximityResult, []event.Event, []string) {
	c := s.character
	tool := s.tool
	result := ProximityResult{Tool: tool, UpdatedTiles: []string{}, Harvested: []string{}}
	var events []event.Event
	var bareHand []string

	for i := range s.tiles {
		t := s.tiles[i]
		if math.Hypot(t.CenterX-c.X, t.CenterY-c.Y) >= domain.ToolEffectRadius {
			continue
		}
		patch, ok := s.toolPatch(tool, t.Status)
		if !ok {
			continue
		}
		evt, _ := s.setTileStatusLocked(t.ID, patch, tool)
		if evt == nil {
			continue
		}
		events = append(events, *evt)
		result.UpdatedTiles = append(result.UpdatedTiles, t.ID)
		if patch.HasPlant != nil {
			bareHand = append(bareHand, t.ID)
		}
	}

	if tool != domain.ToolSickle {
		return result, events, bareHand
	}

	// iterate over a copy; harvesting shrinks s.plants
	plants := make([]domain.Plant, len(s.plants))
	copy(plants, s.plants)
	for _, p := range plants {
		if p.Status != domain.PlantStatusReady {
			continue
		}
		if math.Hypot(p.X-c.X, p.Y-c.Y) >= domain.HarvestRadius {
			continue
		}
		if _, evt, found := s.harvestLocked(p.ID); found {
			events = append(events, evt)
			result.Harvested = append(result.Harvested, p.ID)
		}
	}
	return result, events, bareHand
}

// toolPatch returns the status change tool makes to a tile in range, if any
func (s *Store) toolPatch(tool domain.Tool, status domain.TileStatus) (domain.TileStatusPatch, bool) {
	switch tool {
	case domain.ToolWater:
		if status.Dry {
			return domain.TileStatusPatch{Dry: domain.BoolPtr(false)}, true
		}
	case domain.ToolFertilizer:
		if status.NoFertilizer {
			return domain.TileStatusPatch{NoFertilizer: domain.BoolPtr(false)}, true
		}
	case domain.ToolWeedRemover:
		if status.Weedy {
			return domain.TileStatusPatch{Weedy: domain.BoolPtr(false)}, true
		}
	default:
		// sickle lands here too, so a harvested tile frees up in the same pass
		if s.bareHandClearsPlant && status.HasPlant {
			return domain.TileStatusPatch{HasPlant: domain.BoolPtr(false)}, true
		}
	}
	return domain.TileStatusPatch{}, false
}
