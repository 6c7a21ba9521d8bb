package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game session.

Controls:
  Left/Right     - Move
  Down           - Soft drop
  Space          - Hard drop
  Up/X           - Rotate clockwise
  Z              - Rotate counterclockwise
  C              - Hold
  Enter          - Start / continue
  S              - Stop
  P/Esc          - Pause
  ?              - Toggle help
  Q/Ctrl+C       - Quit

Speed presets:
  easy   - Every stage 25% slower
  normal - Configured speeds
  hard   - Every stage 25% faster

Examples:
  tetris play
  tetris play --preset easy
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	game := tetris.New(cfg,
		tetris.WithSeed(rt.Seed),
		tetris.WithObserver(tui.NewCueLogger(logger)),
	)
	logger.Info("session start", "seed", game.Seed(), "preset", flagPreset, "screen", fmt.Sprintf("%dx%d", width, height))

	if minW, minH := game.MinScreenSize(); width < minW || height < minH+1 {
		logger.Warn("terminal smaller than the board", "need", fmt.Sprintf("%dx%d", minW, minH+1))
	}

	if err := tui.Run(game, rt); err != nil {
		logger.Error("session failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("session end", "score", game.Score(), "stage", game.Stage(), "round", game.Round())
	return nil
}
