package grid

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MeoFarm_Go/internal/domain"
)

// fixedRand replays values in order, wrapping around
type fixedRand struct {
	values []float64
	i      int
}

func (r *fixedRand) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

func TestGenerate_Geometry(t *testing.T) {
	spec := Spec{Rows: 2, Cols: 4, TileSize: 50, Padding: 8, OffsetX: 40, OffsetY: 380}
	tiles := Generate(spec, &fixedRand{values: []float64{0.9}})

	require.Len(t, tiles, 8)

	for i, tile := range tiles {
		row, col := i/spec.Cols, i%spec.Cols
		wantX := float64(col)*(spec.TileSize+spec.Padding) + spec.OffsetX
		wantY := float64(row)*(spec.TileSize+spec.Padding) + spec.OffsetY

		assert.Equal(t, TileID(row, col), tile.ID)
		assert.Equal(t, wantX, tile.X, "tile %s x", tile.ID)
		assert.Equal(t, wantY, tile.Y, "tile %s y", tile.ID)
		assert.Equal(t, wantX+25, tile.CenterX)
		assert.Equal(t, wantY+25, tile.CenterY)
		assert.False(t, tile.Status.HasPlant)
	}

	assert.Equal(t, "tile-1-3", tiles[7].ID)
	assert.Equal(t, 40+3*58.0, tiles[7].X)
	assert.Equal(t, 380+58.0, tiles[7].Y)
}

func TestGenerate_RowsTimesCols(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for rows := 1; rows <= 5; rows++ {
		for cols := 1; cols <= 5; cols++ {
			tiles := Generate(Spec{Rows: rows, Cols: cols, TileSize: 10}, rng)
			assert.Len(t, tiles, rows*cols)
		}
	}
}

func TestGenerate_DegenerateDimensions(t *testing.T) {
	rng := &fixedRand{values: []float64{0}}
	assert.Empty(t, Generate(Spec{Rows: 0, Cols: 4}, rng))
	assert.Empty(t, Generate(Spec{Rows: 3, Cols: -1}, rng))
}

func TestRollStatus_FlagOrder(t *testing.T) {
	// dry, noFertilizer, weedy are drawn in that order against a 0.2 threshold
	rng := &fixedRand{values: []float64{0.1, 0.5, 0.19999}}
	assert.Equal(t, domain.TileStatus{Dry: true, Weedy: true}, RollStatus(rng))

	rng = &fixedRand{values: []float64{0.2, 0.2, 0.2}}
	assert.Equal(t, domain.TileStatus{}, RollStatus(rng))
}

func TestRollStatus_Probability(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	const n = 20000
	var dry, noFert, weedy int
	for i := 0; i < n; i++ {
		s := RollStatus(rng)
		if s.Dry {
			dry++
		}
		if s.NoFertilizer {
			noFert++
		}
		if s.Weedy {
			weedy++
		}
	}

	assert.InDelta(t, 0.2, float64(dry)/n, 0.02)
	assert.InDelta(t, 0.2, float64(noFert)/n, 0.02)
	assert.InDelta(t, 0.2, float64(weedy)/n, 0.02)
}
