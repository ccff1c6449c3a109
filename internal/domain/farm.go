package domain

import (
	"encoding/json"
	"time"
)

// Character is the player-controlled cat, positioned in scene pixels
type Character struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TileStatus holds the independent environmental flags of a soil tile
type TileStatus struct {
	Dry          bool `json:"dry"`
	NoFertilizer bool `json:"no_fertilizer"`
	Weedy        bool `json:"weedy"`
	HasPlant     bool `json:"has_plant"`
}

// TileStatusPatch is a partial status update. Nil fields are left untouched.
type TileStatusPatch struct {
	Dry          *bool `json:"dry,omitempty"`
	NoFertilizer *bool `json:"no_fertilizer,omitempty"`
	Weedy        *bool `json:"weedy,omitempty"`
	HasPlant     *bool `json:"has_plant,omitempty"`
}

// Apply merges the patch into s and reports whether any flag changed
func (p TileStatusPatch) Apply(s *TileStatus) bool {
	changed := false
	set := func(dst *bool, src *bool) {
		if src != nil && *dst != *src {
			*dst = *src
			changed = true
		}
	}
	set(&s.Dry, p.Dry)
	set(&s.NoFertilizer, p.NoFertilizer)
	set(&s.Weedy, p.Weedy)
	set(&s.HasPlant, p.HasPlant)
	return changed
}

// IsEmpty reports whether the patch carries no flags
func (p TileStatusPatch) IsEmpty() bool {
	return p.Dry == nil && p.NoFertilizer == nil && p.Weedy == nil && p.HasPlant == nil
}

// SoilTile is one farmable grid cell. Geometry never changes after creation.
type SoilTile struct {
	ID      string     `json:"id"`
	X       float64    `json:"x"`
	Y       float64    `json:"y"`
	CenterX float64    `json:"center_x"`
	CenterY float64    `json:"center_y"`
	Status  TileStatus `json:"status"`
}

// Plant is a crop instance growing on the farm
type Plant struct {
	ID        string        `json:"id"`
	Emoji     string        `json:"emoji"`
	X         float64       `json:"x"`
	Y         float64       `json:"y"`
	PlantedAt time.Time     `json:"planted_at"`
	Duration  time.Duration `json:"-"`
	Yield     int           `json:"yield"`
	Status    PlantStatus   `json:"status"`
}

// MarshalJSON renders the growth duration in milliseconds
func (p Plant) MarshalJSON() ([]byte, error) {
	type plantAlias Plant
	return json.Marshal(struct {
		plantAlias
		DurationMS int64 `json:"duration_ms"`
	}{
		plantAlias: plantAlias(p),
		DurationMS: p.Duration.Milliseconds(),
	})
}

// Remaining returns how long the plant still has to grow at now
func (p Plant) Remaining(now time.Time) time.Duration {
	if p.Status != PlantStatusGrowing {
		return 0
	}
	left := p.Duration - now.Sub(p.PlantedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Progress returns growth completion in [0,1]; dead plants report 0
func (p Plant) Progress(now time.Time) float64 {
	switch p.Status {
	case PlantStatusReady:
		return 1
	case PlantStatusGrowing:
		if p.Duration <= 0 {
			return 1
		}
		return 1 - float64(p.Remaining(now))/float64(p.Duration)
	default:
		return 0
	}
}

// PlantPatch is a partial plant update. Emoji and duration are fixed at creation.
type PlantPatch struct {
	Status *PlantStatus `json:"status,omitempty"`
	X      *float64     `json:"x,omitempty"`
	Y      *float64     `json:"y,omitempty"`
}

// PlantView is a plant as rendered by clients, with growth progress at snapshot time
type PlantView struct {
	Plant
	RemainingMS int64   `json:"remaining_ms"`
	Progress    float64 `json:"progress"`
}

// MarshalJSON keeps the embedded plant's fields flat next to the progress fields
func (v PlantView) MarshalJSON() ([]byte, error) {
	type plantAlias Plant
	return json.Marshal(struct {
		plantAlias
		DurationMS  int64   `json:"duration_ms"`
		RemainingMS int64   `json:"remaining_ms"`
		Progress    float64 `json:"progress"`
	}{
		plantAlias:  plantAlias(v.Plant),
		DurationMS:  v.Duration.Milliseconds(),
		RemainingMS: v.RemainingMS,
		Progress:    v.Progress,
	})
}

// Snapshot is a read-only copy of the whole farm, consumed once per render frame
type Snapshot struct {
	Character Character   `json:"character"`
	Coins     int         `json:"coins"`
	Harvested int         `json:"harvested"`
	Plants    []PlantView `json:"plants"`
	Tiles     []SoilTile  `json:"tiles"`
	Tool      Tool        `json:"tool"`
	Crop      string      `json:"crop"`
	TakenAt   time.Time   `json:"taken_at"`
}

// FindPlant returns the plant with the given id from the snapshot
func (s Snapshot) FindPlant(id string) (PlantView, bool) {
	for _, p := range s.Plants {
		if p.ID == id {
			return p, true
		}
	}
	return PlantView{}, false
}

// FindTile returns the tile with the given id from the snapshot
func (s Snapshot) FindTile(id string) (SoilTile, bool) {
	for _, t := range s.Tiles {
		if t.ID == id {
			return t, true
		}
	}
	return SoilTile{}, false
}

// BoolPtr is a helper for building patches
func BoolPtr(b bool) *bool { return &b }
