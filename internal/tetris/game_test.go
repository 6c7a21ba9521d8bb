package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// recorder collects every event the game emits.
type recorder struct {
	events []Event
}

func (r *recorder) Notify(e Event) { r.events = append(r.events, e) }

func (r *recorder) transitions() []StateChanged {
	var out []StateChanged
	for _, e := range r.events {
		if sc, ok := e.(StateChanged); ok {
			out = append(out, sc)
		}
	}
	return out
}

func newRunningGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithSeed(1)}, opts...)
	g := New(config.DefaultTetrisConfig(), opts...)
	tick := g.Handle(core.ActionStart)
	require.Equal(t, StateRunning, g.State())
	require.False(t, tick.IsZero())
	return g
}

// fillRow occupies every column of row y except the listed gaps.
func fillRow(b *Board, y int, gaps ...int) {
	for x := range b.Width() {
		b.Set(x, y, CellOf(O))
	}
	for _, x := range gaps {
		b.Set(x, y, CellEmpty)
	}
}

func TestNewGameStartsIdle(t *testing.T) {
	g := New(config.DefaultTetrisConfig(), WithSeed(1))
	assert.Equal(t, StateStart, g.State())
	assert.Equal(t, 1, g.Stage())
	assert.Equal(t, 1, g.Round())
	assert.Equal(t, int64(1), g.Seed())

	// Movement before start is ignored.
	assert.True(t, g.Handle(core.ActionHardDrop).IsZero())
	assert.True(t, g.Gravity(g.Epoch()).IsZero())
	assert.Equal(t, StateStart, g.State())
	assert.Nil(t, g.Snapshot().Active)
}

func TestStartSpawnsAtSpawnPoint(t *testing.T) {
	rec := &recorder{}
	g := newRunningGame(t, WithObserver(rec))

	p := g.Active()
	assert.Equal(t, core.Point{X: 4, Y: 20}, p.Pos)
	assert.Equal(t, Rotation(0), p.Rot)
	assert.True(t, g.CanHold())
	_, held := g.Held()
	assert.False(t, held)
	assert.Equal(t, 1, g.stats.Total())

	require.Len(t, rec.transitions(), 1)
	sc := rec.transitions()[0]
	assert.Equal(t, StateStart, sc.From)
	assert.Equal(t, StateRunning, sc.To)
	assert.Equal(t, g.Rules().Period(1), sc.Period)
}

func TestStartWhileRunningIsIgnored(t *testing.T) {
	g := newRunningGame(t)
	before := g.Active()
	epoch := g.Epoch()
	assert.True(t, g.Handle(core.ActionStart).IsZero())
	assert.Equal(t, before, g.Active())
	assert.Equal(t, epoch, g.Epoch())
}

func TestMoveRejectedAtWall(t *testing.T) {
	g := newRunningGame(t)
	for range 20 {
		g.Handle(core.ActionMoveLeft)
	}
	left := g.Active().Pos
	g.Handle(core.ActionMoveLeft)
	assert.Equal(t, left, g.Active().Pos)
	assert.True(t, g.board.Fits(g.Active()))

	g.Handle(core.ActionMoveRight)
	assert.Equal(t, left.X+1, g.Active().Pos.X)
}

func TestGravityMovesDownAndReschedules(t *testing.T) {
	g := newRunningGame(t)
	y := g.Active().Pos.Y
	tick := g.Gravity(g.Epoch())
	assert.Equal(t, y-1, g.Active().Pos.Y)
	assert.Equal(t, g.Epoch(), tick.Epoch)
	assert.Equal(t, g.Rules().Period(1), tick.After)
}

func TestStaleGravityTickIsIgnored(t *testing.T) {
	g := newRunningGame(t)
	stale := g.Epoch()

	g.Handle(core.ActionStop)
	assert.Equal(t, StateStart, g.State())
	g.Handle(core.ActionStart)
	require.NotEqual(t, stale, g.Epoch())

	y := g.Active().Pos.Y
	assert.True(t, g.Gravity(stale).IsZero())
	assert.Equal(t, y, g.Active().Pos.Y)
}

func TestPause(t *testing.T) {
	rec := &recorder{}
	g := newRunningGame(t, WithObserver(rec))
	epoch := g.Epoch()

	assert.True(t, g.Handle(core.ActionPause).IsZero())
	assert.True(t, g.Paused())
	assert.NotEqual(t, epoch, g.Epoch())

	pos := g.Active().Pos
	g.Handle(core.ActionMoveLeft)
	g.Handle(core.ActionHardDrop)
	assert.True(t, g.Gravity(g.Epoch()).IsZero())
	assert.Equal(t, pos, g.Active().Pos)

	tick := g.Handle(core.ActionPause)
	assert.False(t, g.Paused())
	assert.Equal(t, g.Epoch(), tick.Epoch)
	assert.False(t, tick.IsZero())

	assert.Contains(t, rec.events, PauseToggled{Paused: true})
	assert.Contains(t, rec.events, PauseToggled{Paused: false})
}

func TestHardDropScoresDistance(t *testing.T) {
	g := newRunningGame(t)
	g.active = Piece{Kind: O, Pos: core.Point{X: 0, Y: 10}}

	g.Handle(core.ActionHardDrop)

	assert.Equal(t, 10, g.Score())
	assert.True(t, g.board.At(0, 0).Occupied())
	assert.True(t, g.board.At(1, 1).Occupied())
	assert.Equal(t, core.Point{X: 4, Y: 20}, g.Active().Pos)
	assert.Equal(t, StateRunning, g.State())
}

func TestSoftDropLocksWithoutBonus(t *testing.T) {
	g := newRunningGame(t)
	g.active = Piece{Kind: O, Pos: core.Point{X: 0, Y: 0}}

	g.Handle(core.ActionSoftDrop)

	assert.Equal(t, 0, g.Score())
	assert.True(t, g.board.At(0, 0).Occupied())
}

func TestRotationUsesKicks(t *testing.T) {
	g := newRunningGame(t)
	// Against the left wall a vertical I turning to flat must be kicked right.
	g.active = Piece{Kind: I, Rot: 3, Pos: core.Point{X: 0, Y: 10}}
	require.True(t, g.board.Fits(g.active))
	require.False(t, g.board.IsLegal(I, 0, g.active.Pos))

	g.Handle(core.ActionRotateCW)

	assert.Equal(t, Rotation(0), g.Active().Rot)
	assert.True(t, g.board.Fits(g.Active()))
	assert.Equal(t, core.Point{X: 1, Y: 10}, g.Active().Pos)
}

func TestFailedRotationLeavesPieceUnchanged(t *testing.T) {
	g := newRunningGame(t)
	piece := Piece{Kind: T, Pos: core.Point{X: 4, Y: 5}}

	// Fill every stored cell except the ones the piece occupies.
	for y := range g.board.Height() {
		fillRow(g.board, y)
	}
	for _, c := range piece.Cells() {
		g.board.Set(c.X, c.Y, CellEmpty)
	}
	g.active = piece

	g.Handle(core.ActionRotateCW)
	assert.Equal(t, piece, g.Active())
	g.Handle(core.ActionRotateCCW)
	assert.Equal(t, piece, g.Active())
}

func TestHoldSingleUse(t *testing.T) {
	g := newRunningGame(t)
	first := g.Active().Kind
	next := g.Next()

	g.Handle(core.ActionHold)
	held, ok := g.Held()
	require.True(t, ok)
	assert.Equal(t, first, held)
	assert.Equal(t, next, g.Active().Kind)
	assert.False(t, g.CanHold())

	// A second hold before the next lock is a no-op.
	active := g.Active()
	g.Handle(core.ActionHold)
	assert.Equal(t, active, g.Active())
	held, _ = g.Held()
	assert.Equal(t, first, held)

	// After a lock, exactly one more hold is accepted and it swaps.
	g.Handle(core.ActionHardDrop)
	require.True(t, g.CanHold())
	spawned := g.Active().Kind
	g.Handle(core.ActionHold)
	assert.Equal(t, first, g.Active().Kind)
	held, _ = g.Held()
	assert.Equal(t, spawned, held)
	assert.False(t, g.CanHold())
}

func TestHoldRestartsAtSpawn(t *testing.T) {
	g := newRunningGame(t)
	g.Handle(core.ActionMoveLeft)
	g.Handle(core.ActionSoftDrop)
	g.Handle(core.ActionHold)
	assert.Equal(t, core.Point{X: 4, Y: 20}, g.Active().Pos)
	assert.Equal(t, Rotation(0), g.Active().Rot)
}

func TestSingleLineClear(t *testing.T) {
	rec := &recorder{}
	g := newRunningGame(t, WithObserver(rec))
	fillRow(g.board, 0, 9)
	// Vertical I resting in the gap: cells (9,0)..(9,3).
	g.active = Piece{Kind: I, Rot: 1, Pos: core.Point{X: 8, Y: 2}}
	require.True(t, g.board.Fits(g.active))

	g.Gravity(g.Epoch())

	assert.Equal(t, 1, g.Lines())
	assert.Equal(t, 40, g.Score())
	for y := range 3 {
		assert.True(t, g.board.At(9, y).Occupied(), "row %d", y)
		assert.False(t, g.board.At(0, y).Occupied(), "row %d", y)
	}
	assert.False(t, g.board.At(9, 3).Occupied())
	assert.Contains(t, rec.events, LinesCleared{Count: 1, Points: 40, Lines: 1})
}

func TestTetrisClear(t *testing.T) {
	g := newRunningGame(t)
	for y := range 4 {
		fillRow(g.board, y, 9)
	}
	fillRow(g.board, 4, 0, 9)
	g.active = Piece{Kind: I, Rot: 1, Pos: core.Point{X: 8, Y: 12}}

	g.Handle(core.ActionHardDrop)

	assert.Equal(t, 4, g.Lines())
	assert.Equal(t, 1200+10, g.Score())
	// The partial row dropped to the floor.
	assert.False(t, g.board.At(0, 0).Occupied())
	assert.True(t, g.board.At(1, 0).Occupied())
	assert.False(t, g.board.At(1, 1).Occupied())
}

func TestLossOnBlockedSpawn(t *testing.T) {
	rec := &recorder{}
	g := newRunningGame(t, WithObserver(rec))
	for x := 3; x <= 6; x++ {
		g.board.Set(x, 20, CellOf(Z))
		g.board.Set(x, 21, CellOf(Z))
	}
	g.active = Piece{Kind: O, Pos: core.Point{X: 0, Y: 5}}
	epoch := g.Epoch()

	tick := g.Handle(core.ActionHardDrop)

	assert.True(t, tick.IsZero())
	assert.Equal(t, StateLost, g.State())
	assert.Equal(t, 5, g.Score())
	assert.Equal(t, 0, g.Lines())
	assert.NotEqual(t, epoch, g.Epoch())
	assert.True(t, g.Gravity(epoch).IsZero())
	assert.Equal(t, GameOverText, g.Message())

	last := rec.transitions()[len(rec.transitions())-1]
	assert.Equal(t, StateRunning, last.From)
	assert.Equal(t, StateLost, last.To)

	// Commands other than start are ignored; start is a fresh game.
	g.Handle(core.ActionMoveLeft)
	assert.Equal(t, StateLost, g.State())
	g.Handle(core.ActionStart)
	assert.Equal(t, StateRunning, g.State())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 1, g.Stage())
	assert.False(t, g.board.At(3, 20).Occupied())
}

func TestLostSnapshotMarksEmptyCells(t *testing.T) {
	g := newRunningGame(t)
	for x := 3; x <= 6; x++ {
		g.board.Set(x, 20, CellOf(Z))
		g.board.Set(x, 21, CellOf(Z))
	}
	g.active = Piece{Kind: O, Pos: core.Point{X: 0, Y: 0}}
	g.Handle(core.ActionSoftDrop)
	require.Equal(t, StateLost, g.State())

	snap := g.Snapshot()
	assert.Equal(t, CellMarked, snap.Board[5][5])
	assert.Equal(t, CellOf(O), snap.Board[0][0])
	assert.NotNil(t, snap.Active)
}

func TestStageCompletion(t *testing.T) {
	rec := &recorder{}
	g := newRunningGame(t, WithObserver(rec))
	g.lines = 24
	fillRow(g.board, 0, 9)
	g.active = Piece{Kind: I, Rot: 1, Pos: core.Point{X: 8, Y: 2}}
	epoch := g.Epoch()

	tick := g.Gravity(epoch)

	assert.True(t, tick.IsZero())
	assert.Equal(t, StateSuccess, g.State())
	assert.Equal(t, OutcomeStageComplete, g.Outcome())
	assert.Equal(t, "STAGE COMPLETE!", g.Message())
	assert.Equal(t, 25, g.Lines())
	score := g.Score()

	tick = g.Handle(core.ActionStart)
	assert.Equal(t, StateRunning, g.State())
	assert.Equal(t, 2, g.Stage())
	assert.Equal(t, 1, g.Round())
	assert.Equal(t, 0, g.Lines())
	assert.Equal(t, score, g.Score())
	assert.Equal(t, g.Rules().Period(2), tick.After)
	_, held := g.Held()
	assert.False(t, held)

	last := rec.transitions()[len(rec.transitions())-1]
	assert.Equal(t, 2, last.Stage)
	assert.Equal(t, g.Rules().Period(2), last.Period)
}

func TestRoundAndGameCompletion(t *testing.T) {
	g := newRunningGame(t)
	stages := g.Rules().Stages()

	clearOne := func() {
		t.Helper()
		g.lines = g.Rules().WinLines - 1
		g.board.Clear()
		fillRow(g.board, 0, 9)
		g.active = Piece{Kind: I, Rot: 1, Pos: core.Point{X: 8, Y: 2}}
		g.Gravity(g.Epoch())
	}

	g.stage = stages
	clearOne()
	require.Equal(t, StateSuccess, g.State())
	assert.Equal(t, OutcomeRoundComplete, g.Outcome())
	g.Handle(core.ActionStart)
	assert.Equal(t, 1, g.Stage())
	assert.Equal(t, 2, g.Round())

	g.stage, g.round = stages, g.Rules().Rounds
	clearOne()
	require.Equal(t, StateWin, g.State())
	assert.Equal(t, OutcomeGameComplete, g.Outcome())
	assert.Equal(t, "GAME COMPLETE!", g.Message())
	assert.Positive(t, g.Score())

	g.Handle(core.ActionStart)
	assert.Equal(t, 1, g.Stage())
	assert.Equal(t, 1, g.Round())
	assert.Equal(t, 0, g.Score())
}

func TestStopResets(t *testing.T) {
	g := newRunningGame(t)
	g.Handle(core.ActionHardDrop)
	require.Positive(t, g.Score())

	g.Handle(core.ActionStop)
	assert.Equal(t, StateStart, g.State())
	assert.Equal(t, 0, g.Score())
	assert.Nil(t, g.Snapshot().Active)
	for _, row := range g.Snapshot().Board {
		for _, c := range row {
			assert.Equal(t, CellEmpty, c)
		}
	}

	// Stop outside Running is ignored.
	epoch := g.Epoch()
	g.Handle(core.ActionStop)
	assert.Equal(t, epoch, g.Epoch())
}

func TestSameSeedSameGame(t *testing.T) {
	a := newRunningGame(t, WithSeed(99))
	b := newRunningGame(t, WithSeed(99))
	for range 30 {
		require.Equal(t, a.Active().Kind, b.Active().Kind)
		a.Handle(core.ActionHardDrop)
		b.Handle(core.ActionHardDrop)
		if a.State() != StateRunning {
			break
		}
	}
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestSnapshotCounters(t *testing.T) {
	g := newRunningGame(t)
	snap := g.Snapshot()
	cfg := config.DefaultTetrisConfig()

	assert.Equal(t, StateRunning, snap.State)
	assert.Len(t, snap.Board, cfg.Board.Visible)
	assert.Len(t, snap.Board[0], cfg.Board.Width)
	assert.Equal(t, cfg.Rules.WinLines, snap.WinLines)
	assert.Equal(t, cfg.Rules.Stages(), snap.Stages)
	assert.True(t, snap.HasNext)
	assert.Equal(t, g.Next(), snap.Next)
	assert.Equal(t, 1, snap.Stats[g.Active().Kind])
	require.NotNil(t, snap.Active)
	assert.Equal(t, g.Active().Cells(), snap.Active.Cells)
}
