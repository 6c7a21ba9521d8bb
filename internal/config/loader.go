package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads the Tetris configuration and validates it.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func Load(customPath string) (TetrisConfig, error) {
	var cfg TetrisConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "tetris.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid
// files are skipped so the next location in the search order is used.
func tryLoad(path string) (TetrisConfig, bool) {
	var cfg TetrisConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// Validate checks the configuration for values the engine cannot run with.
func (c TetrisConfig) Validate() error {
	b := c.Board
	switch {
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, b.Width, b.Height)
	case b.Visible <= 0 || b.Visible > b.Height:
		return fmt.Errorf("%w: visible rows %d must be in [1, %d]", ErrInvalidConfig, b.Visible, b.Height)
	case b.Buffer < 0:
		return fmt.Errorf("%w: buffer must not be negative, got %d", ErrInvalidConfig, b.Buffer)
	// Spawned pieces reach one column left, two right and one row up.
	case b.SpawnX < 1 || b.SpawnX > b.Width-3:
		return fmt.Errorf("%w: spawn column %d outside [1, %d]", ErrInvalidConfig, b.SpawnX, b.Width-3)
	case b.SpawnY < 0 || b.SpawnY > b.Height+b.Buffer-2:
		return fmt.Errorf("%w: spawn row %d outside [0, %d]", ErrInvalidConfig, b.SpawnY, b.Height+b.Buffer-2)
	}

	r := c.Rules
	if r.WinLines <= 0 {
		return fmt.Errorf("%w: win_lines must be positive, got %d", ErrInvalidConfig, r.WinLines)
	}
	if r.Rounds <= 0 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, r.Rounds)
	}
	if len(r.Points) != 5 {
		return fmt.Errorf("%w: points needs 5 entries (0-4 rows), got %d", ErrInvalidConfig, len(r.Points))
	}
	if r.Points[0] < 0 || !slices.IsSorted(r.Points) {
		return fmt.Errorf("%w: points must be non-negative and non-decreasing: %v", ErrInvalidConfig, r.Points)
	}
	if len(r.StageDelaysMS) == 0 {
		return fmt.Errorf("%w: stage_delays_ms must list at least one stage", ErrInvalidConfig)
	}
	for i, d := range r.StageDelaysMS {
		if d <= 0 {
			return fmt.Errorf("%w: stage %d delay must be positive, got %d", ErrInvalidConfig, i+1, d)
		}
		if i > 0 && d >= r.StageDelaysMS[i-1] {
			return fmt.Errorf("%w: stage delays must strictly decrease (stage %d: %d >= %d)",
				ErrInvalidConfig, i+1, d, r.StageDelaysMS[i-1])
		}
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c TetrisConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
