package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Show the gravity period of every stage",
	Long:  `Prints each stage with its gravity period, after the speed preset is applied.`,
	Args:  cobra.NoArgs,
	RunE:  runStages,
}

func runStages(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rules := tetris.NewRules(cfg.Rules)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d stages per round, %d rounds, %d lines per stage\n\n", rules.Stages(), rules.Rounds, rules.WinLines)
	fmt.Fprintf(out, "  %-5s  %-8s  %s\n", "Stage", "Period", "BPM")
	fmt.Fprintf(out, "  %-5s  %-8s  %s\n", "-----", "------", "---")
	for stage := 1; stage <= rules.Stages(); stage++ {
		period := rules.Period(stage)
		fmt.Fprintf(out, "  %-5d  %-8s  %d\n", stage, period.Round(time.Millisecond), tui.BPM(period))
	}
	return nil
}
