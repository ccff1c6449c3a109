package domain

import "time"

// Crop lifecycle constants
const (
	PlantGrowthDuration = 10 * time.Second
	PlantYield          = 5
	HarvestCoinReward   = 10
)

// Proximity radii in scene pixels. Distances must be strictly less than the radius.
const (
	ToolEffectRadius = 40.0
	HarvestRadius    = 20.0
)

// SoilFlagProbability is the chance that each of dry, noFertilizer and weedy is set
// when a tile is generated or re-rolled after planting.
const SoilFlagProbability = 0.2

// PlantSpriteOffset shifts a planted crop from the tile center to the sprite's top-left corner.
const PlantSpriteOffset = 24.0

// Initial character position before any viewport is known
const (
	DefaultCharacterX = 100.0
	DefaultCharacterY = 300.0
)

// DefaultCrop is the crop selected when a session starts
const DefaultCrop = "🌳"

// CropPalette is the fixed set of plantable crops, in menu order
var CropPalette = []string{"🌳", "🪴", "🌾", "🌽", "🍓", "🍇", "🍄", "🌻", "🥕"}
