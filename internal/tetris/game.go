package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Tick asks the driver to call Gravity(Epoch) after the given delay.
// The zero Tick means nothing needs to be scheduled.
type Tick struct {
	Epoch uint64
	After time.Duration
}

// IsZero reports whether the tick requests nothing.
func (t Tick) IsZero() bool {
	return t.After <= 0
}

// Game is a single Tetris session.
//
// Game is not safe for concurrent use. The driver must serialize calls to
// Handle and Gravity; a gravity tick carries the epoch it was scheduled
// under and is ignored once the game has left that epoch.
type Game struct {
	board   *Board
	rules   Rules
	spawn   core.Point
	visible int

	seed      int64
	rng       *rand.Rand
	bag       *Bag
	stats     *Stats
	observers []Observer

	state   State
	outcome Outcome
	paused  bool
	epoch   uint64

	active  Piece
	held    Kind
	hasHeld bool
	canHold bool

	score int
	lines int
	stage int
	round int
}

// Option configures a Game.
type Option func(*Game)

// WithSeed fixes the randomizer seed. Zero selects a time-based seed.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// WithObserver registers an observer for game events.
func WithObserver(o Observer) Option {
	return func(g *Game) { g.observers = append(g.observers, o) }
}

// New creates a game in the Start state. cfg must have passed Validate.
func New(cfg config.TetrisConfig, opts ...Option) *Game {
	g := &Game{
		board:   NewBoard(cfg.Board.Width, cfg.Board.Height, cfg.Board.Buffer),
		rules:   NewRules(cfg.Rules),
		spawn:   core.Point{X: cfg.Board.SpawnX, Y: cfg.Board.SpawnY},
		visible: cfg.Board.Visible,
		stats:   NewStats(),
		state:   StateStart,
		stage:   1,
		round:   1,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	g.bag = NewBag(g.rng)
	return g
}

// Handle applies a player command and returns the gravity tick to schedule,
// if any. Commands that are not valid in the current state are ignored.
func (g *Game) Handle(a core.Action) Tick {
	switch a {
	case core.ActionStart:
		return g.start()
	case core.ActionStop:
		g.stop()
		return Tick{}
	case core.ActionPause:
		return g.togglePause()
	}

	if g.state != StateRunning || g.paused {
		return Tick{}
	}

	switch a {
	case core.ActionMoveLeft:
		g.shift(-1)
	case core.ActionMoveRight:
		g.shift(1)
	case core.ActionSoftDrop:
		g.softDrop()
	case core.ActionHardDrop:
		g.hardDrop()
	case core.ActionRotateCW:
		g.rotate(g.active.Rot.CW())
	case core.ActionRotateCCW:
		g.rotate(g.active.Rot.CCW())
	case core.ActionHold:
		g.hold()
	}
	return Tick{}
}

// Gravity advances the active piece by one row, locking it if it cannot
// fall. Ticks from an older epoch are ignored. The returned Tick schedules
// the next fall while the game keeps running.
func (g *Game) Gravity(epoch uint64) Tick {
	if epoch != g.epoch || g.state != StateRunning || g.paused {
		return Tick{}
	}
	g.fall()
	if g.state != StateRunning {
		return Tick{}
	}
	return g.nextTick()
}

func (g *Game) nextTick() Tick {
	return Tick{Epoch: g.epoch, After: g.rules.Period(g.stage)}
}

// start begins a stage attempt. Restarting after a completed stage moves on
// to the next stage; every other restart is a fresh game.
func (g *Game) start() Tick {
	switch g.state {
	case StateRunning:
		return Tick{}
	case StateSuccess:
		g.stage, g.round = g.rules.Advance(g.stage, g.round)
	default:
		g.stage, g.round, g.score = 1, 1, 0
	}

	g.beginAttempt()
	if !g.board.Fits(g.active) {
		g.setState(StateLost, OutcomeNone)
		return Tick{}
	}
	g.setState(StateRunning, OutcomeNone)
	return g.nextTick()
}

// beginAttempt clears the board and the piece queue for a new attempt.
func (g *Game) beginAttempt() {
	g.lines = 0
	g.paused = false
	g.board.Clear()
	g.bag.Reset()
	g.stats.Reset()
	g.held, g.hasHeld = 0, false
	g.canHold = true
	g.active = g.spawnPiece(g.bag.Pop())
}

func (g *Game) stop() {
	if g.state != StateRunning {
		return
	}
	g.paused = false
	g.stage, g.round, g.score, g.lines = 1, 1, 0, 0
	g.board.Clear()
	g.held, g.hasHeld = 0, false
	g.setState(StateStart, OutcomeNone)
}

func (g *Game) togglePause() Tick {
	if g.state != StateRunning {
		return Tick{}
	}
	g.paused = !g.paused
	g.notify(PauseToggled{Paused: g.paused})
	if g.paused {
		g.epoch++
		return Tick{}
	}
	return g.nextTick()
}

// setState records a transition. Leaving Running invalidates pending ticks.
func (g *Game) setState(to State, outcome Outcome) {
	from := g.state
	if from == StateRunning && to != StateRunning {
		g.epoch++
	}
	g.state = to
	g.outcome = outcome
	g.notify(StateChanged{
		From:    from,
		To:      to,
		Outcome: outcome,
		Stage:   g.stage,
		Round:   g.round,
		Period:  g.rules.Period(g.stage),
	})
}

func (g *Game) notify(e Event) {
	for _, o := range g.observers {
		o.Notify(e)
	}
}

func (g *Game) spawnPiece(k Kind) Piece {
	g.stats.Record(k)
	return Piece{Kind: k, Pos: g.spawn}
}

func (g *Game) shift(dx int) {
	if p := g.active.Moved(dx, 0); g.board.Fits(p) {
		g.active = p
	}
}

func (g *Game) softDrop() {
	g.fall()
}

// fall moves the active piece down one row, or locks it where it is.
func (g *Game) fall() {
	if p := g.active.Moved(0, -1); g.board.Fits(p) {
		g.active = p
		return
	}
	g.lock(0)
}

func (g *Game) hardDrop() {
	dist := 0
	for {
		p := g.active.Moved(0, -1)
		if !g.board.Fits(p) {
			break
		}
		g.active = p
		dist++
	}
	g.lock(dist)
}

// rotate tries each kick offset in order and keeps the first legal
// placement. If none fits the piece stays as it was.
func (g *Game) rotate(to Rotation) {
	for _, k := range Kicks(g.active.Kind, g.active.Rot, to) {
		p := Piece{Kind: g.active.Kind, Rot: to, Pos: g.active.Pos.Add(k)}
		if g.board.Fits(p) {
			g.active = p
			return
		}
	}
}

// hold swaps the active piece with the held one, or with the next piece
// when nothing is held yet. The incoming piece restarts at the spawn point.
func (g *Game) hold() {
	if !g.canHold {
		return
	}

	incoming := g.held
	if !g.hasHeld {
		incoming = g.bag.Peek()
	}
	p := Piece{Kind: incoming, Pos: g.spawn}
	if !g.board.Fits(p) {
		return
	}

	if g.hasHeld {
		g.held = g.active.Kind
		g.active = p
	} else {
		g.held = g.active.Kind
		g.hasHeld = true
		g.active = g.spawnPiece(g.bag.Pop())
	}
	g.canHold = false
}

// lock stamps the active piece, clears rows, scores, and spawns the next
// piece. drop is the number of rows covered by a hard drop.
func (g *Game) lock(drop int) {
	g.board.Stamp(g.active)
	cleared := g.board.ClearFullRows()
	points := g.rules.Score(cleared, drop)
	g.lines += cleared
	g.score += points
	if cleared > 0 {
		g.notify(LinesCleared{Count: cleared, Points: points, Lines: g.lines})
	}

	g.active = g.spawnPiece(g.bag.Pop())
	g.canHold = true

	switch {
	case !g.board.Fits(g.active):
		g.setState(StateLost, OutcomeNone)
	case g.rules.StageComplete(g.lines):
		outcome := g.rules.Outcome(g.stage, g.round)
		if outcome == OutcomeGameComplete {
			g.setState(StateWin, outcome)
		} else {
			g.setState(StateSuccess, outcome)
		}
	}
}

// State returns the current state.
func (g *Game) State() State { return g.state }

// Outcome returns how the last completed stage ended.
func (g *Game) Outcome() Outcome { return g.outcome }

// Paused reports whether gravity and movement are suspended.
func (g *Game) Paused() bool { return g.paused }

// Epoch returns the current gravity epoch.
func (g *Game) Epoch() uint64 { return g.epoch }

// Seed returns the randomizer seed in use.
func (g *Game) Seed() int64 { return g.seed }

// Score returns the total score.
func (g *Game) Score() int { return g.score }

// Lines returns the lines cleared in the current attempt.
func (g *Game) Lines() int { return g.lines }

// Stage returns the 1-based stage.
func (g *Game) Stage() int { return g.stage }

// Round returns the 1-based round.
func (g *Game) Round() int { return g.round }

// Active returns the piece in play.
func (g *Game) Active() Piece { return g.active }

// Held returns the held kind, if any.
func (g *Game) Held() (Kind, bool) { return g.held, g.hasHeld }

// CanHold reports whether a hold is still available for the active piece.
func (g *Game) CanHold() bool { return g.canHold }

// Next returns the kind that will spawn after the active piece.
func (g *Game) Next() Kind { return g.bag.Peek() }

// Rules returns the scoring and progression tables.
func (g *Game) Rules() Rules { return g.rules }
