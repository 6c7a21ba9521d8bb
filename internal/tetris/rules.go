package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Outcome describes how a stage attempt ended successfully.
type Outcome string

const (
	OutcomeNone          Outcome = ""
	OutcomeStageComplete Outcome = "stage_complete"
	OutcomeRoundComplete Outcome = "round_complete"
	OutcomeGameComplete  Outcome = "game_complete"
)

// Text returns the banner shown for the outcome.
func (o Outcome) Text() string {
	switch o {
	case OutcomeStageComplete:
		return "STAGE COMPLETE!"
	case OutcomeRoundComplete:
		return "ROUND COMPLETE!"
	case OutcomeGameComplete:
		return "GAME COMPLETE!"
	default:
		return ""
	}
}

// GameOverText is the banner shown once the game is lost.
const GameOverText = "GAME OVER"

// Rules holds scoring and progression tables.
type Rules struct {
	Points   [5]int
	Delays   []time.Duration
	WinLines int
	Rounds   int
}

// NewRules converts validated configuration into Rules.
func NewRules(cfg config.RulesConfig) Rules {
	r := Rules{
		WinLines: cfg.WinLines,
		Rounds:   cfg.Rounds,
		Delays:   make([]time.Duration, len(cfg.StageDelaysMS)),
	}
	copy(r.Points[:], cfg.Points)
	for i, ms := range cfg.StageDelaysMS {
		r.Delays[i] = time.Duration(ms) * time.Millisecond
	}
	return r
}

// Stages returns the number of stages in a round.
func (r Rules) Stages() int {
	return len(r.Delays)
}

// Score returns the points for a lock that cleared the given number of rows
// after a hard drop of drop rows.
func (r Rules) Score(cleared, drop int) int {
	cleared = min(max(cleared, 0), len(r.Points)-1)
	return r.Points[cleared] + max(drop, 0)
}

// Period returns the gravity period of a 1-based stage. Stages past the end
// of the table use the fastest period.
func (r Rules) Period(stage int) time.Duration {
	i := min(max(stage, 1), len(r.Delays)) - 1
	return r.Delays[i]
}

// StageComplete reports whether lines is enough to finish a stage.
func (r Rules) StageComplete(lines int) bool {
	return lines >= r.WinLines
}

// Outcome classifies the completion of the given stage and round.
func (r Rules) Outcome(stage, round int) Outcome {
	switch {
	case stage < r.Stages():
		return OutcomeStageComplete
	case round < r.Rounds:
		return OutcomeRoundComplete
	default:
		return OutcomeGameComplete
	}
}

// Advance returns the stage and round that follow a completed stage.
// Completing the last stage of the last round wraps back to the first.
func (r Rules) Advance(stage, round int) (int, int) {
	switch r.Outcome(stage, round) {
	case OutcomeStageComplete:
		return stage + 1, round
	case OutcomeRoundComplete:
		return 1, round + 1
	default:
		return 1, 1
	}
}
