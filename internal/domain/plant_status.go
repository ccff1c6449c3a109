package domain

import (
	"fmt"
	"strings"
)

// PlantStatus is the growth state of a crop
type PlantStatus string

// Plant statuses. Dead is reserved; no rule produces it yet.
const (
	PlantStatusGrowing PlantStatus = "growing"
	PlantStatusReady   PlantStatus = "ready"
	PlantStatusDead    PlantStatus = "dead"
)

// plantStatusAliasRipe is an older name for ready still sent by some clients
const plantStatusAliasRipe = "ripe"

// ParsePlantStatus converts user input to a PlantStatus, accepting "ripe" for ready
func ParsePlantStatus(s string) (PlantStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(PlantStatusGrowing):
		return PlantStatusGrowing, nil
	case string(PlantStatusReady), plantStatusAliasRipe:
		return PlantStatusReady, nil
	case string(PlantStatusDead):
		return PlantStatusDead, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlantStatus, s)
	}
}
