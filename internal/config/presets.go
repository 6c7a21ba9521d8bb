package config

import (
	"fmt"
	"slices"
)

// ParsePreset converts a CLI value to a SpeedPreset.
// An empty string selects the normal preset.
func ParsePreset(s string) (SpeedPreset, error) {
	switch p := SpeedPreset(s); p {
	case "":
		return PresetNormal, nil
	case PresetEasy, PresetNormal, PresetHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown preset %q (want easy, normal or hard)", ErrInvalidConfig, s)
	}
}

// ApplyPreset scales the gravity table of cfg according to preset.
// Delays keep their strict ordering; a table too short in milliseconds to
// stay strictly decreasing after scaling is rejected and cfg is left as is.
func ApplyPreset(cfg *TetrisConfig, preset SpeedPreset) error {
	scale := delayScaleForPreset(preset)
	if scale == 1.0 {
		return nil
	}

	orig := cfg.Rules.StageDelaysMS
	delays := slices.Clone(orig)
	for i, d := range delays {
		scaled := max(1, int(float64(d)*scale))
		// Rounding must not collapse two neighbouring stages. An already
		// unordered table is left for Validate to report.
		if i > 0 && scaled >= delays[i-1] && d < orig[i-1] {
			if delays[i-1] <= 1 {
				return fmt.Errorf("%w: preset %q cannot keep stage %d faster than stage %d (%dms)",
					ErrInvalidConfig, preset, i+1, i, delays[i-1])
			}
			scaled = delays[i-1] - 1
		}
		delays[i] = scaled
	}
	cfg.Rules.StageDelaysMS = delays
	return nil
}
