// Package scene derives the farm layout from the viewport and turns key presses into moves.
package scene

import (
	"fmt"
	"strings"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/grid"
)

// SoilConfig is the soil grid geometry. The vertical offset comes from the layout.
type SoilConfig struct {
	Rows     int     `yaml:"rows" json:"rows"`
	Cols     int     `yaml:"cols" json:"cols"`
	TileSize float64 `yaml:"tile_size" json:"tile_size"`
	Padding  float64 `yaml:"padding" json:"padding"`
	OffsetX  float64 `yaml:"offset_x" json:"offset_x"`
}

// CharacterConfig sizes and paces the cat
type CharacterConfig struct {
	Size   float64 `yaml:"size" json:"size"`
	Speed  float64 `yaml:"speed" json:"speed"`
	StartX float64 `yaml:"start_x" json:"start_x"`
}

// Config is the static scene description loaded from configs/farm.yaml
type Config struct {
	SkyRatio   float64           `yaml:"sky_ratio" json:"sky_ratio"`
	GrassRatio float64           `yaml:"grass_ratio" json:"grass_ratio"`
	Soil       SoilConfig        `yaml:"soil" json:"soil"`
	Character  CharacterConfig   `yaml:"character" json:"character"`
	Crops      []string          `yaml:"crops" json:"crops"`
	Tools      []domain.ToolInfo `yaml:"tools" json:"tools"`
}

// DefaultConfig returns the built-in scene
func DefaultConfig() Config {
	crops := make([]string, len(domain.CropPalette))
	copy(crops, domain.CropPalette)
	tools := make([]domain.ToolInfo, len(domain.Tools))
	copy(tools, domain.Tools)

	return Config{
		SkyRatio:   DefaultSkyRatio,
		GrassRatio: DefaultGrassRatio,
		Soil: SoilConfig{
			Rows:     DefaultSoilRows,
			Cols:     DefaultSoilCols,
			TileSize: DefaultTileSize,
			Padding:  DefaultTilePadding,
			OffsetX:  DefaultSoilOffsetX,
		},
		Character: CharacterConfig{
			Size:   DefaultCharacterSize,
			Speed:  DefaultCharacterSpeed,
			StartX: domain.DefaultCharacterX,
		},
		Crops: crops,
		Tools: tools,
	}
}

// Layout is the scene geometry for one viewport size
type Layout struct {
	Width        float64          `json:"width"`
	Height       float64          `json:"height"`
	SkyHeight    float64          `json:"sky_height"`
	GrassHeight  float64          `json:"grass_height"`
	GroundHeight float64          `json:"ground_height"`
	Soil         grid.Spec        `json:"soil"`
	Start        domain.Character `json:"start"`

	characterSize float64
	speed         float64
}

// NewLayout computes the layout for a width x height viewport
func NewLayout(cfg Config, width, height float64) (Layout, error) {
	if width <= 0 || height <= 0 {
		return Layout{}, fmt.Errorf("%w: %vx%v", domain.ErrInvalidViewport, width, height)
	}

	sky := height * cfg.SkyRatio
	grass := height * cfg.GrassRatio
	return Layout{
		Width:        width,
		Height:       height,
		SkyHeight:    sky,
		GrassHeight:  grass,
		GroundHeight: height - sky - grass,
		Soil: grid.Spec{
			Rows:     cfg.Soil.Rows,
			Cols:     cfg.Soil.Cols,
			TileSize: cfg.Soil.TileSize,
			Padding:  cfg.Soil.Padding,
			OffsetX:  cfg.Soil.OffsetX,
			OffsetY:  height - sky + grass/9,
		},
		Start:         domain.Character{X: cfg.Character.StartX, Y: height - sky},
		characterSize: cfg.Character.Size,
		speed:         cfg.Character.Speed,
	}, nil
}

// Bounds returns the area the character may walk in
func (l Layout) Bounds() (minX, maxX, minY, maxY float64) {
	return 0, l.Width - l.characterSize, l.SkyHeight, l.SkyHeight + l.GrassHeight - l.characterSize
}

// Step moves c one step in the direction of key. Only the axis being moved is clamped.
func (l Layout) Step(c domain.Character, key string) (domain.Character, error) {
	minX, maxX, minY, maxY := l.Bounds()
	switch strings.ToLower(strings.TrimSpace(key)) {
	case KeyArrowLeft, KeyA:
		c.X = max(minX, c.X-l.speed)
	case KeyArrowRight, KeyD:
		c.X = min(maxX, c.X+l.speed)
	case KeyArrowUp, KeyW:
		c.Y = max(minY, c.Y-l.speed)
	case KeyArrowDown, KeyS:
		c.Y = min(maxY, c.Y+l.speed)
	default:
		return c, fmt.Errorf("%w: %q", domain.ErrUnknownKey, key)
	}
	return c, nil
}
