package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// State represents the current game state.
type State string

const (
	StateStart   State = "start"
	StateRunning State = "running"
	StateLost    State = "lost"
	StateSuccess State = "success"
	StateWin     State = "win"
)

// ActivePiece describes the piece in play for rendering.
type ActivePiece struct {
	Kind     Kind
	Rotation Rotation
	Cells    [4]core.Point // Absolute board cells
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	State   State
	Outcome Outcome
	Message string
	Paused  bool
	Epoch   uint64

	Score    int
	Lines    int
	WinLines int
	Stage    int
	Stages   int
	Round    int
	Rounds   int
	Period   time.Duration

	Width int
	Board [][]Cell // Visible rows, bottom row first

	Active  *ActivePiece // nil when no piece is in play
	Held    Kind
	HasHeld bool
	CanHold bool
	Next    Kind
	HasNext bool

	Stats [NumKinds]int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:    g.state,
		Outcome:  g.outcome,
		Message:  g.Message(),
		Paused:   g.paused,
		Epoch:    g.epoch,
		Score:    g.score,
		Lines:    g.lines,
		WinLines: g.rules.WinLines,
		Stage:    g.stage,
		Stages:   g.rules.Stages(),
		Round:    g.round,
		Rounds:   g.rules.Rounds,
		Period:   g.rules.Period(g.stage),
		Width:    g.board.Width(),
		Board:    g.board.Rows(g.visible),
		Held:     g.held,
		HasHeld:  g.hasHeld,
		CanHold:  g.canHold,
		Stats:    g.stats.Counts(),
	}

	if g.state == StateLost {
		for _, row := range s.Board {
			for x, c := range row {
				if c == CellEmpty {
					row[x] = CellMarked
				}
			}
		}
	}

	if g.state == StateRunning || g.state == StateLost {
		s.Active = &ActivePiece{
			Kind:     g.active.Kind,
			Rotation: g.active.Rot,
			Cells:    g.active.Cells(),
		}
		s.Next = g.bag.Peek()
		s.HasNext = true
	}
	return s
}

// Message returns the banner text for the current state, or "".
func (g *Game) Message() string {
	switch g.state {
	case StateLost:
		return GameOverText
	case StateSuccess, StateWin:
		return g.outcome.Text()
	default:
		return ""
	}
}
