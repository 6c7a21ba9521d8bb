package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Loads the configuration the same way "play" does and prints it.

Search order:
  1. --config path
  2. ~/.tetris/configs/tetris.yaml
  3. ./configs/tetris.yaml
  4. Built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// loadConfig loads, validates and applies the speed preset.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	if err := config.ApplyPreset(&cfg, preset); err != nil {
		return config.TetrisConfig{}, err
	}
	return cfg, cfg.Validate()
}
