package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// CueLogger follows the background music cue of a game: it starts when the
// game enters Running, stops when it leaves, and follows the stage tempo.
// There is no audio output; the cue changes are written to the log.
type CueLogger struct {
	logger  *log.Logger
	playing bool
	stage   int
	tempo   time.Duration
}

// NewCueLogger creates a cue observer writing to logger.
func NewCueLogger(logger *log.Logger) *CueLogger {
	return &CueLogger{logger: logger}
}

// Notify implements tetris.Observer.
func (c *CueLogger) Notify(e tetris.Event) {
	switch e := e.(type) {
	case tetris.StateChanged:
		c.logger.Debug("state", "from", e.From, "to", e.To, "stage", e.Stage, "round", e.Round)
		switch {
		case e.To == tetris.StateRunning:
			c.play(e.Stage, e.Period)
		case e.From == tetris.StateRunning:
			c.stop(string(e.To))
			if e.Outcome != tetris.OutcomeNone {
				c.logger.Info("stage finished", "outcome", e.Outcome, "stage", e.Stage, "round", e.Round)
			}
		}

	case tetris.PauseToggled:
		if e.Paused {
			c.stop("paused")
		} else {
			c.play(c.stage, c.tempo)
		}

	case tetris.LinesCleared:
		c.logger.Debug("lines cleared", "count", e.Count, "points", e.Points, "lines", e.Lines)
	}
}

func (c *CueLogger) play(stage int, period time.Duration) {
	if c.playing && c.stage == stage && c.tempo == period {
		return
	}
	c.playing = true
	c.stage = stage
	c.tempo = period
	c.logger.Info("cue start", "stage", stage, "bpm", BPM(period))
}

func (c *CueLogger) stop(reason string) {
	if !c.playing {
		return
	}
	c.playing = false
	c.logger.Info("cue stop", "reason", reason)
}

// Playing reports whether the cue is running.
func (c *CueLogger) Playing() bool { return c.playing }

// Tempo returns the gravity period the cue last followed.
func (c *CueLogger) Tempo() time.Duration { return c.tempo }

// BPM converts a gravity period to beats per minute, one beat per fall.
func BPM(period time.Duration) int {
	if period <= 0 {
		return 0
	}
	return int(time.Minute / period)
}
