// Package config provides YAML-based game configuration loading and
// speed preset handling for the Tetris engine.
package config

// TetrisConfig contains all configuration for a Tetris session.
type TetrisConfig struct {
	Board BoardConfig `yaml:"board"`
	Rules RulesConfig `yaml:"rules"`
}

// BoardConfig defines the playfield geometry.
type BoardConfig struct {
	Width   int `yaml:"width"`   // Columns
	Height  int `yaml:"height"`  // Stored rows, including the hidden rows above the visible area
	Visible int `yaml:"visible"` // Rows drawn on screen, counted from the bottom
	Buffer  int `yaml:"buffer"`  // Empty headroom above the stored rows
	SpawnX  int `yaml:"spawn_x"` // Anchor column of a newly spawned piece
	SpawnY  int `yaml:"spawn_y"` // Anchor row of a newly spawned piece
}

// RulesConfig defines scoring and progression.
type RulesConfig struct {
	WinLines      int   `yaml:"win_lines"`       // Lines needed to complete a stage
	Rounds        int   `yaml:"rounds"`          // Rounds in a full game
	Points        []int `yaml:"points"`          // Score indexed by rows cleared at once
	StageDelaysMS []int `yaml:"stage_delays_ms"` // Gravity period per stage
}

// Stages returns the number of stages in a round.
func (r RulesConfig) Stages() int {
	return len(r.StageDelaysMS)
}

// SpeedPreset represents a named gravity speed.
type SpeedPreset string

const (
	PresetEasy   SpeedPreset = "easy"
	PresetNormal SpeedPreset = "normal"
	PresetHard   SpeedPreset = "hard"
)

// delayScaleForPreset returns the factor applied to every stage delay.
func delayScaleForPreset(preset SpeedPreset) float64 {
	switch preset {
	case PresetEasy:
		return 1.25
	case PresetHard:
		return 0.75
	default:
		return 1.0
	}
}
