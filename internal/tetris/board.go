package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Cell is the content of one board square.
type Cell uint8

const (
	// CellEmpty is an unoccupied square.
	CellEmpty Cell = 0
	// CellMarked is only produced by snapshots, for empty squares of a
	// board whose game has been lost.
	CellMarked Cell = NumKinds + 1
)

// CellOf returns the cell value left behind by a locked piece of kind k.
func CellOf(k Kind) Cell {
	return Cell(k) + 1
}

// Kind returns the piece kind that filled the cell, if any.
func (c Cell) Kind() (Kind, bool) {
	if c == CellEmpty || c == CellMarked {
		return 0, false
	}
	return Kind(c - 1), true
}

// Occupied reports whether a locked piece fills the cell.
func (c Cell) Occupied() bool {
	_, ok := c.Kind()
	return ok
}

// Board is the grid of locked cells. Row 0 is the bottom row.
//
// Only the bottom height rows are stored. The buffer rows above them are
// headroom where pieces may exist but are never kept once locked.
type Board struct {
	width  int
	height int
	buffer int
	cells  []Cell
}

// NewBoard creates an empty board.
func NewBoard(width, height, buffer int) *Board {
	return &Board{
		width:  width,
		height: height,
		buffer: buffer,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of stored rows.
func (b *Board) Height() int { return b.height }

// Buffer returns the number of headroom rows above the stored rows.
func (b *Board) Buffer() int { return b.buffer }

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y). Anything outside the stored rows reads
// as empty.
func (b *Board) At(x, y int) Cell {
	if !b.inside(x, y) {
		return CellEmpty
	}
	return b.cells[y*b.width+x]
}

// Set stores c at (x, y). Writes outside the stored rows are dropped.
func (b *Board) Set(x, y int, c Cell) {
	if !b.inside(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// Clear empties every stored cell.
func (b *Board) Clear() {
	clear(b.cells)
}

// IsLegal reports whether a piece of kind k in rotation r anchored at pos
// fits: every cell must lie within the columns, below the headroom ceiling,
// and on an empty stored square. Headroom cells are always passable.
func (b *Board) IsLegal(k Kind, r Rotation, pos core.Point) bool {
	for _, off := range Occupancy(k, r) {
		x, y := pos.X+off.X, pos.Y+off.Y
		if x < 0 || x >= b.width {
			return false
		}
		if y < 0 || y >= b.height+b.buffer {
			return false
		}
		if y < b.height && b.cells[y*b.width+x] != CellEmpty {
			return false
		}
	}
	return true
}

// Fits is IsLegal for a placed piece.
func (b *Board) Fits(p Piece) bool {
	return b.IsLegal(p.Kind, p.Rot, p.Pos)
}

// Stamp writes the cells of p into the board. Cells in the headroom are lost.
func (b *Board) Stamp(p Piece) {
	c := CellOf(p.Kind)
	for _, pt := range p.Cells() {
		b.Set(pt.X, pt.Y, c)
	}
}

// RowFull reports whether every column of stored row y is occupied.
func (b *Board) RowFull(y int) bool {
	row := b.cells[y*b.width : (y+1)*b.width]
	for _, c := range row {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, moves the rows above down to close
// the gaps, and empties the rows vacated at the top. It returns the number
// of rows removed.
func (b *Board) ClearFullRows() int {
	w := 0
	for r := range b.height {
		if b.RowFull(r) {
			continue
		}
		if w != r {
			copy(b.cells[w*b.width:(w+1)*b.width], b.cells[r*b.width:(r+1)*b.width])
		}
		w++
	}
	clear(b.cells[w*b.width:])
	return b.height - w
}

// Rows returns a copy of the bottom n stored rows, row 0 first.
func (b *Board) Rows(n int) [][]Cell {
	n = min(max(n, 0), b.height)
	rows := make([][]Cell, n)
	for y := range n {
		rows[y] = make([]Cell, b.width)
		copy(rows[y], b.cells[y*b.width:(y+1)*b.width])
	}
	return rows
}
