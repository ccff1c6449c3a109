// Package grid lays out the farm's soil tiles.
package grid

import (
	"fmt"

	"github.com/osse101/MeoFarm_Go/internal/domain"
)

// Spec describes the soil grid geometry in scene pixels
type Spec struct {
	Rows     int     `json:"rows" yaml:"rows"`
	Cols     int     `json:"cols" yaml:"cols"`
	TileSize float64 `json:"tile_size" yaml:"tile_size"`
	Padding  float64 `json:"padding" yaml:"padding"`
	OffsetX  float64 `json:"offset_x" yaml:"offset_x"`
	OffsetY  float64 `json:"offset_y" yaml:"offset_y"`
}

// Rand is the uniform random source used to roll soil flags
type Rand interface {
	Float64() float64
}

// TileID returns the stable id of the tile at row, col
func TileID(row, col int) string {
	return fmt.Sprintf("tile-%d-%d", row, col)
}

// Generate produces Rows*Cols tiles in row-major order. Dry, noFertilizer and weedy are
// rolled independently per tile; hasPlant starts unset. Non-positive dimensions yield no tiles.
func Generate(spec Spec, rng Rand) []domain.SoilTile {
	if spec.Rows <= 0 || spec.Cols <= 0 {
		return []domain.SoilTile{}
	}

	step := spec.TileSize + spec.Padding
	half := spec.TileSize / 2
	tiles := make([]domain.SoilTile, 0, spec.Rows*spec.Cols)
	for row := 0; row < spec.Rows; row++ {
		for col := 0; col < spec.Cols; col++ {
			x := float64(col)*step + spec.OffsetX
			y := float64(row)*step + spec.OffsetY
			tiles = append(tiles, domain.SoilTile{
				ID:      TileID(row, col),
				X:       x,
				Y:       y,
				CenterX: x + half,
				CenterY: y + half,
				Status:  RollStatus(rng),
			})
		}
	}
	return tiles
}

// RollStatus draws dry, noFertilizer and weedy, in that order
func RollStatus(rng Rand) domain.TileStatus {
	return domain.TileStatus{
		Dry:          rng.Float64() < domain.SoilFlagProbability,
		NoFertilizer: rng.Float64() < domain.SoilFlagProbability,
		Weedy:        rng.Float64() < domain.SoilFlagProbability,
	}
}
