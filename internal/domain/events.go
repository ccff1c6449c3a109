package domain

// Event type constants used across the application for event bus subscriptions,
// SSE streaming and metrics tracking.
//
// Event types follow the pattern: farm.<entity>.<action> (e.g., "farm.plant.ready")
const (
	// EventTypeCharacterMoved is published when the cat changes position
	EventTypeCharacterMoved = "farm.character.moved"

	// EventTypeToolSelected is published when the active tool changes
	EventTypeToolSelected = "farm.tool.selected"

	// EventTypeCropSelected is published when the crop used for planting changes
	EventTypeCropSelected = "farm.crop.selected"

	// EventTypeTilesReplaced is published when the whole soil grid is replaced
	EventTypeTilesReplaced = "farm.tiles.replaced"

	// EventTypeTileUpdated is published when a tile's status flags change
	EventTypeTileUpdated = "farm.tile.updated"

	// EventTypePlantPlanted is published when a crop is planted
	EventTypePlantPlanted = "farm.plant.planted"

	// EventTypePlantUpdated is published when a plant is patched directly
	EventTypePlantUpdated = "farm.plant.updated"

	// EventTypePlantReady is published when the growth driver promotes a plant
	EventTypePlantReady = "farm.plant.ready"

	// EventTypePlantHarvested is published when a plant is harvested
	EventTypePlantHarvested = "farm.plant.harvested"
)

// AllEventTypes lists every farm event type, used for subscriptions
var AllEventTypes = []string{
	EventTypeCharacterMoved,
	EventTypeToolSelected,
	EventTypeCropSelected,
	EventTypeTilesReplaced,
	EventTypeTileUpdated,
	EventTypePlantPlanted,
	EventTypePlantUpdated,
	EventTypePlantReady,
	EventTypePlantHarvested,
}
