package farm

// PlantIDPrefix prefixes every plant id
const PlantIDPrefix = "plant-"

// Log messages
const (
	LogMsgPlantPlanted        = "Plant planted"
	LogMsgPlantReady          = "Plant ready for harvest"
	LogMsgPlantHarvested      = "Plant harvested"
	LogMsgTilesReplaced       = "Soil tiles replaced"
	LogMsgBareHandClearedTile = "Bare hand cleared planted flag"
	LogMsgPlantRefused        = "Click did not plant"
	LogMsgViewportChanged     = "Viewport changed, soil regenerated"
)
