// Package tetris implements the falling-block game rules: the shape table,
// rotation kicks, the 7-bag randomizer, the board, and the game state machine.
// It has no terminal or timer dependencies; the platform drives it through
// Handle and Gravity and draws it through Snapshot or Render.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	I Kind = iota
	O
	J
	L
	S
	Z
	T
)

// NumKinds is the number of distinct piece kinds.
const NumKinds = 7

var kindNames = [NumKinds]string{"I", "O", "J", "L", "S", "Z", "T"}

// Guideline colors, in Kind order.
var kindColors = [NumKinds]core.Color{
	core.ColorCyan,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorOrange,
	core.ColorGreen,
	core.ColorRed,
	core.ColorPurple,
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if int(k) >= NumKinds {
		return "?"
	}
	return kindNames[k]
}

// Color returns the display color of the kind.
func (k Kind) Color() core.Color {
	if int(k) >= NumKinds {
		return core.ColorDefault
	}
	return kindColors[k]
}

// Rotation is one of the four orientation states, 0 being the spawn state.
// Each step up is a clockwise quarter turn.
type Rotation uint8

// NumRotations is the number of orientation states.
const NumRotations = 4

// CW returns the state after a clockwise quarter turn.
func (r Rotation) CW() Rotation {
	return (r + 1) % NumRotations
}

// CCW returns the state after a counterclockwise quarter turn.
func (r Rotation) CCW() Rotation {
	return (r + NumRotations - 1) % NumRotations
}

// Cells in rotation 0, relative to the piece anchor. y grows upward.
//
//	 0 1 2        (-1,1) (0,1) (1,1)
//	3 4 5 6       (-1,0) (0,0) (1,0) (2,0)
var baseCells = [NumKinds][4]core.Point{
	I: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	O: {{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}},
	J: {{X: -1, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}},
	L: {{X: 1, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}},
	S: {{X: 0, Y: 1}, {X: 1, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: 0}},
	Z: {{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}},
	T: {{X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}},
}

// Rotation centers in half cells. I and O turn about a cell corner.
var pivots = [NumKinds]core.Point{
	I: {X: 1, Y: -1},
	O: {X: 1, Y: 1},
}

// shapes[kind][rotation] is filled in once from baseCells and pivots.
var shapes [NumKinds][NumRotations][4]core.Point

func init() {
	for k := range NumKinds {
		cells := baseCells[k]
		for r := range NumRotations {
			shapes[k][r] = cells
			cells = rotateQuarter(cells, pivots[k])
		}
	}
}

// rotateQuarter rotates cells a quarter turn clockwise about a half-unit pivot p:
// (x, y) -> (y - py + px, -x + px + py).
func rotateQuarter(cells [4]core.Point, p core.Point) [4]core.Point {
	sx := (p.X - p.Y) / 2
	sy := (p.X + p.Y) / 2
	var out [4]core.Point
	for i, c := range cells {
		out[i] = core.Point{X: c.Y + sx, Y: -c.X + sy}
	}
	return out
}

// Occupancy returns the cells a kind fills in the given rotation state,
// relative to the piece anchor.
func Occupancy(k Kind, r Rotation) [4]core.Point {
	return shapes[k][r%NumRotations]
}

// Pivot returns the rotation center of a kind relative to the anchor.
func Pivot(k Kind) (x, y float64) {
	p := pivots[k]
	return float64(p.X) / 2, float64(p.Y) / 2
}

// Piece is a kind placed on the board at an anchor position and rotation.
type Piece struct {
	Kind Kind
	Rot  Rotation
	Pos  core.Point
}

// Cells returns the absolute board cells covered by the piece.
func (p Piece) Cells() [4]core.Point {
	cells := Occupancy(p.Kind, p.Rot)
	for i := range cells {
		cells[i] = cells[i].Add(p.Pos)
	}
	return cells
}

// Moved returns a copy of the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Pos = p.Pos.Add(core.Point{X: dx, Y: dy})
	return p
}
