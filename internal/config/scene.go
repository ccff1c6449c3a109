package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/MeoFarm_Go/internal/domain"
	"github.com/osse101/MeoFarm_Go/internal/scene"
	"github.com/osse101/MeoFarm_Go/internal/validation"
)

// LoadScene reads the scene description at path. A missing file yields the built-in scene;
// keys absent from the file keep their built-in values.
func LoadScene(path string) (scene.Config, error) {
	cfg := scene.DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return scene.Config{}, fmt.Errorf("failed to read scene config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return scene.Config{}, fmt.Errorf("failed to parse scene config %s: %w", path, err)
	}

	// shape and typos first, cross-field geometry in ValidateScene
	if err := validation.NewSchemaValidator().ValidateYAML(data, validation.SchemaScene); err != nil {
		return scene.Config{}, fmt.Errorf("%w: %s: %w", domain.ErrInvalidScene, path, err)
	}

	for i, crop := range cfg.Crops {
		cfg.Crops[i] = domain.NormalizeCrop(crop)
	}

	if err := ValidateScene(cfg); err != nil {
		return scene.Config{}, err
	}
	return cfg, nil
}

// ValidateScene rejects geometry that cannot produce a usable farm
func ValidateScene(cfg scene.Config) error {
	var problems []error

	if cfg.SkyRatio <= 0 || cfg.GrassRatio <= 0 || cfg.SkyRatio+cfg.GrassRatio > 1 {
		problems = append(problems, fmt.Errorf("sky_ratio and grass_ratio must be positive and sum to at most 1"))
	}
	if cfg.Soil.Rows <= 0 || cfg.Soil.Cols <= 0 {
		problems = append(problems, fmt.Errorf("soil rows and cols must be positive"))
	}
	if cfg.Soil.TileSize <= 0 {
		problems = append(problems, fmt.Errorf("soil tile_size must be positive"))
	}
	if cfg.Soil.Padding < 0 {
		problems = append(problems, fmt.Errorf("soil padding must not be negative"))
	}
	if cfg.Character.Size <= 0 || cfg.Character.Speed <= 0 {
		problems = append(problems, fmt.Errorf("character size and speed must be positive"))
	}
	if len(cfg.Crops) == 0 {
		problems = append(problems, fmt.Errorf("at least one crop is required"))
	}
	for _, tool := range cfg.Tools {
		if !tool.ID.IsKnown() {
			problems = append(problems, fmt.Errorf("unknown tool %q in catalog", tool.ID))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidScene, errors.Join(problems...))
	}
	return nil
}
