// Package farm holds the game state and the rules that change it.
package farm

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/event"
	"github.com/osse101/MeoFarm_Go/internal/grid"
	"github.com/osse101/MeoFarm_Go/internal/logger"
)

// Options configures a Store. Zero values fall back to production defaults.
type Options struct {
	Clock clockwork.Clock
	Rand  grid.Rand
	IDs   IDGenerator
	Bus   event.Bus

	// BareHandClearsPlant keeps the behavior where standing near a planted tile
	// with no tool (or an unknown one) clears its hasPlant flag.
	BareHandClearsPlant bool
}

// globalRand draws from math/rand/v2's concurrency-safe top-level source
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Store is the single farm state container. All mutations go through its methods,
// each of which runs entirely under one lock, so readers never see a half-applied command.
type Store struct {
	mu        sync.Mutex
	character domain.Character
	coins     int
	harvested int
	plants    []domain.Plant
	tiles     []domain.SoilTile
	tool      domain.Tool
	crop      string

	clock               clockwork.Clock
	rng                 grid.Rand
	ids                 IDGenerator
	bus                 event.Bus
	bareHandClearsPlant bool
}

// NewStore creates a store in the initial session state
func NewStore(opts Options) *Store {
	s := &Store{
		character:           domain.Character{X: domain.DefaultCharacterX, Y: domain.DefaultCharacterY},
		plants:              []domain.Plant{},
		tiles:               []domain.SoilTile{},
		tool:                domain.ToolNone,
		crop:                domain.DefaultCrop,
		clock:               opts.Clock,
		rng:                 opts.Rand,
		ids:                 opts.IDs,
		bus:                 opts.Bus,
		bareHandClearsPlant: opts.BareHandClearsPlant,
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.rng == nil {
		s.rng = globalRand{}
	}
	if s.ids == nil {
		s.ids = UUIDGenerator()
	}
	return s
}

// Clock returns the clock the store stamps plants with
func (s *Store) Clock() clockwork.Clock {
	return s.clock
}

// Snapshot returns a deep copy of the farm with plant progress computed at the current time
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	plants := make([]domain.PlantView, len(s.plants))
	for i, p := range s.plants {
		plants[i] = domain.PlantView{
			Plant:       p,
			RemainingMS: p.Remaining(now).Milliseconds(),
			Progress:    p.Progress(now),
		}
	}
	tiles := make([]domain.SoilTile, len(s.tiles))
	copy(tiles, s.tiles)

	return domain.Snapshot{
		Character: s.character,
		Coins:     s.coins,
		Harvested: s.harvested,
		Plants:    plants,
		Tiles:     tiles,
		Tool:      s.tool,
		Crop:      s.crop,
		TakenAt:   now,
	}
}

// Character returns the current character position
func (s *Store) Character() domain.Character {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.character
}

// TileCount returns how many soil tiles are in play
func (s *Store) TileCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tiles)
}

// MoveCharacter replaces the character position. Bounds are the caller's concern.
func (s *Store) MoveCharacter(ctx context.Context, x, y float64) {
	s.mu.Lock()
	moved := s.character.X != x || s.character.Y != y
	s.character = domain.Character{X: x, Y: y}
	c := s.character
	s.mu.Unlock()

	if moved {
		s.publish(ctx, event.NewCharacterMovedEvent(s.clock.Now(), c))
	}
}

// SelectTool replaces the active tool. Any value is accepted; unknown tools act as bare hands.
func (s *Store) SelectTool(ctx context.Context, tool domain.Tool) {
	s.mu.Lock()
	changed := s.tool != tool
	s.tool = tool
	s.mu.Unlock()

	if changed {
		s.publish(ctx, event.NewToolSelectedEvent(s.clock.Now(), tool))
	}
}

// SelectCrop replaces the crop used by subsequent plantings
func (s *Store) SelectCrop(ctx context.Context, crop string) {
	s.mu.Lock()
	changed := s.crop != crop
	s.crop = crop
	s.mu.Unlock()

	if changed {
		s.publish(ctx, event.NewCropSelectedEvent(s.clock.Now(), crop))
	}
}

// SetTiles replaces the whole tile collection
func (s *Store) SetTiles(ctx context.Context, tiles []domain.SoilTile) {
	s.mu.Lock()
	s.setTilesLocked(tiles)
	n := len(s.tiles)
	s.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgTilesReplaced, "tiles", n)
	s.publish(ctx, event.NewTilesReplacedEvent(s.clock.Now(), n))
}

// RegenerateTiles replaces the tile collection with a freshly generated grid
func (s *Store) RegenerateTiles(ctx context.Context, spec grid.Spec) []domain.SoilTile {
	s.mu.Lock()
	s.setTilesLocked(grid.Generate(spec, s.rng))
	tiles := make([]domain.SoilTile, len(s.tiles))
	copy(tiles, s.tiles)
	s.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgTilesReplaced, "tiles", len(tiles), "rows", spec.Rows, "cols", spec.Cols)
	s.publish(ctx, event.NewTilesReplacedEvent(s.clock.Now(), len(tiles)))
	return tiles
}

// SetTileStatus merges patch into the named tile's status.
// Returns false when no tile has that id.
func (s *Store) SetTileStatus(ctx context.Context, id string, patch domain.TileStatusPatch) bool {
	s.mu.Lock()
	evt, found := s.setTileStatusLocked(id, patch, "")
	s.mu.Unlock()

	if evt != nil {
		s.publish(ctx, *evt)
	}
	return found
}

// PlantAt plants the selected crop at x, y. It does not check what is already there.
func (s *Store) PlantAt(ctx context.Context, x, y float64) domain.Plant {
	s.mu.Lock()
	p := s.plantAtLocked(x, y)
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgPlantPlanted, "plant_id", p.ID, "crop", p.Emoji, "x", x, "y", y)
	s.publish(ctx, event.NewPlantEvent(domain.EventTypePlantPlanted, p.PlantedAt, p))
	return p
}

// UpdatePlant merges patch into the named plant. Returns false when no plant has that id.
func (s *Store) UpdatePlant(ctx context.Context, id string, patch domain.PlantPatch) bool {
	s.mu.Lock()
	p, changed, found := s.updatePlantLocked(id, patch)
	s.mu.Unlock()

	if changed {
		s.publish(ctx, event.NewPlantEvent(domain.EventTypePlantUpdated, s.clock.Now(), p))
	}
	return found
}

// Harvest removes the plant and pays the fixed coin reward. Unknown ids change nothing.
func (s *Store) Harvest(ctx context.Context, id string) (domain.Plant, bool) {
	s.mu.Lock()
	p, evt, found := s.harvestLocked(id)
	s.mu.Unlock()

	if !found {
		return domain.Plant{}, false
	}
	logger.FromContext(ctx).Info(LogMsgPlantHarvested, "plant_id", p.ID, "crop", p.Emoji)
	s.publish(ctx, evt)
	return p, true
}

func (s *Store) setTilesLocked(tiles []domain.SoilTile) {
	s.tiles = make([]domain.SoilTile, len(tiles))
	copy(s.tiles, tiles)
}

func (s *Store) tileIndexLocked(id string) int {
	for i := range s.tiles {
		if s.tiles[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) plantIndexLocked(id string) int {
	for i := range s.plants {
		if s.plants[i].ID == id {
			return i
		}
	}
	return -1
}

// setTileStatusLocked returns an event only when a flag actually changed
func (s *Store) setTileStatusLocked(id string, patch domain.TileStatusPatch, tool domain.Tool) (*event.Event, bool) {
	i := s.tileIndexLocked(id)
	if i < 0 {
		return nil, false
	}
	if !patch.Apply(&s.tiles[i].Status) {
		return nil, true
	}
	evt := event.NewTileUpdatedEvent(s.clock.Now(), id, s.tiles[i].Status, tool)
	return &evt, true
}

func (s *Store) plantAtLocked(x, y float64) domain.Plant {
	p := domain.Plant{
		ID:        s.ids(),
		Emoji:     s.crop,
		X:         x,
		Y:         y,
		PlantedAt: s.clock.Now(),
		Duration:  domain.PlantGrowthDuration,
		Yield:     domain.PlantYield,
		Status:    domain.PlantStatusGrowing,
	}
	s.plants = append(s.plants, p)
	return p
}

func (s *Store) updatePlantLocked(id string, patch domain.PlantPatch) (domain.Plant, bool, bool) {
	i := s.plantIndexLocked(id)
	if i < 0 {
		return domain.Plant{}, false, false
	}
	p := &s.plants[i]
	changed := false
	if patch.Status != nil && p.Status != *patch.Status {
		p.Status = *patch.Status
		changed = true
	}
	if patch.X != nil && p.X != *patch.X {
		p.X = *patch.X
		changed = true
	}
	if patch.Y != nil && p.Y != *patch.Y {
		p.Y = *patch.Y
		changed = true
	}
	return *p, changed, true
}

func (s *Store) harvestLocked(id string) (domain.Plant, event.Event, bool) {
	i := s.plantIndexLocked(id)
	if i < 0 {
		return domain.Plant{}, event.Event{}, false
	}
	p := s.plants[i]
	s.plants = append(s.plants[:i], s.plants[i+1:]...)
	s.coins += domain.HarvestCoinReward
	s.harvested++
	evt := event.NewPlantHarvestedEvent(s.clock.Now(), p, domain.HarvestCoinReward, s.coins, s.harvested)
	return p, evt, true
}

// publish delivers events after the lock is released so subscribers may read the store
func (s *Store) publish(ctx context.Context, events ...event.Event) {
	if s.bus == nil {
		return
	}
	for _, evt := range events {
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(event.LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}
}
