package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/scene"
)

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "farm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadScene_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadScene(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, scene.DefaultConfig(), cfg)
}

func TestLoadScene_OverridesOnlyGivenKeys(t *testing.T) {
	path := writeScene(t, `
soil:
  rows: 3
  cols: 5
  tile_size: 40
  padding: 4
  offset_x: 20
crops: ["🌽", "🥕"]
`)

	cfg, err := LoadScene(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Soil.Rows)
	assert.Equal(t, 5, cfg.Soil.Cols)
	assert.Equal(t, 40.0, cfg.Soil.TileSize)
	assert.Equal(t, []string{"🌽", "🥕"}, cfg.Crops)
	assert.Equal(t, scene.DefaultSkyRatio, cfg.SkyRatio)
	assert.Equal(t, scene.DefaultCharacterSpeed, cfg.Character.Speed)
	assert.Len(t, cfg.Tools, len(domain.Tools))
}

func TestLoadScene_RepoFile(t *testing.T) {
	cfg, err := LoadScene(filepath.Join("..", "..", ConfigPathFarm))
	require.NoError(t, err)
	assert.Equal(t, scene.DefaultConfig(), cfg)
}

func TestLoadScene_Errors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadScene(writeScene(t, "soil: [not, a, map"))
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("invalid geometry", func(t *testing.T) {
		_, err := LoadScene(writeScene(t, "soil:\n  rows: 0\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidScene)
	})

	t.Run("misspelled key", func(t *testing.T) {
		_, err := LoadScene(writeScene(t, "grass_ration: 0.2\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidScene)
		assert.ErrorContains(t, err, "additionalProperties")
	})

	t.Run("ratios overflow", func(t *testing.T) {
		_, err := LoadScene(writeScene(t, "sky_ratio: 0.9\ngrass_ratio: 0.9\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidScene)
		assert.ErrorContains(t, err, "sky_ratio")
	})
}

func TestValidateScene(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*scene.Config)
		want   string
	}{
		{name: "ratios overflow", mutate: func(c *scene.Config) { c.SkyRatio = 0.8 }, want: "sky_ratio"},
		{name: "no tile size", mutate: func(c *scene.Config) { c.Soil.TileSize = 0 }, want: "tile_size"},
		{name: "negative padding", mutate: func(c *scene.Config) { c.Soil.Padding = -1 }, want: "padding"},
		{name: "frozen cat", mutate: func(c *scene.Config) { c.Character.Speed = 0 }, want: "speed"},
		{name: "no crops", mutate: func(c *scene.Config) { c.Crops = nil }, want: "crop"},
		{name: "unknown tool", mutate: func(c *scene.Config) {
			c.Tools = append(c.Tools, domain.ToolInfo{ID: "hoe"})
		}, want: `"hoe"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := scene.DefaultConfig()
			tt.mutate(&cfg)
			err := ValidateScene(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidScene)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	assert.NoError(t, ValidateScene(scene.DefaultConfig()))
}
