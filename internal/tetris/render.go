package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout constants for Render.
const (
	cellWidth = 2  // Screen columns per board column
	hudWidth  = 20 // Columns reserved right of the board
	boardLeft = 1
	boardTop  = 1
)

// MinScreenSize returns the smallest screen Render can draw the game on.
func (g *Game) MinScreenSize() (w, h int) {
	return boardLeft + g.board.Width()*cellWidth + 2 + hudWidth, boardTop + g.visible + 2
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d", minW, minH))
		return
	}

	snap := g.Snapshot()
	g.renderBoard(dst, snap)
	g.renderHUD(dst, snap, boardLeft+snap.Width*cellWidth+4)
	g.renderBanner(dst, snap)
}

// boardToScreen maps a board cell to the screen position of its left half.
func (g *Game) boardToScreen(x, y int) (int, int) {
	return boardLeft + 1 + x*cellWidth, boardTop + g.visible - y
}

func (g *Game) renderBoard(dst *core.Screen, snap Snapshot) {
	frame := core.NewRect(boardLeft, boardTop, snap.Width*cellWidth+2, g.visible+2)
	dst.DrawBox(frame, core.ColorGray)

	for y, row := range snap.Board {
		for x, c := range row {
			sx, sy := g.boardToScreen(x, y)
			drawCell(dst, sx, sy, c)
		}
	}

	if snap.Active == nil {
		return
	}
	c := CellOf(snap.Active.Kind)
	for _, pt := range snap.Active.Cells {
		if pt.Y < 0 || pt.Y >= g.visible {
			continue
		}
		sx, sy := g.boardToScreen(pt.X, pt.Y)
		drawCell(dst, sx, sy, c)
	}
}

func drawCell(dst *core.Screen, sx, sy int, c Cell) {
	switch k, ok := c.Kind(); {
	case ok:
		dst.DrawTextColored(sx, sy, "[]", k.Color())
	case c == CellMarked:
		dst.DrawTextColored(sx, sy, "░░", core.ColorGray)
	default:
		dst.DrawTextColored(sx, sy, " .", core.ColorGray)
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot, hx int) {
	y := boardTop
	dst.DrawTextColored(hx, y, "T E T R I S", core.ColorPink)
	y += 2

	dst.DrawText(hx, y, fmt.Sprintf("Score  %d", snap.Score))
	dst.DrawText(hx, y+1, fmt.Sprintf("Lines  %d/%d", snap.Lines, snap.WinLines))
	dst.DrawText(hx, y+2, fmt.Sprintf("Stage  %d/%d", snap.Stage, snap.Stages))
	dst.DrawText(hx, y+3, fmt.Sprintf("Round  %d/%d", snap.Round, snap.Rounds))
	y += 5

	dst.DrawText(hx, y, "Next")
	if snap.HasNext {
		drawPreview(dst, hx, y+1, snap.Next, snap.Next.Color())
	}
	y += 4

	dst.DrawText(hx, y, "Hold")
	if snap.HasHeld {
		color := snap.Held.Color()
		if !snap.CanHold {
			color = core.ColorGray
		}
		drawPreview(dst, hx, y+1, snap.Held, color)
	}
	y += 4

	if snap.State != StateStart {
		dst.DrawTextColored(hx, y, fmt.Sprintf("Pieces %d", g.stats.Total()), core.ColorGray)
	}
	y += 2

	switch {
	case snap.Paused:
		dst.DrawTextColored(hx, y, "PAUSED", core.ColorYellow)
	case snap.State == StateStart:
		dst.DrawText(hx, y, "Press Enter")
	case snap.State != StateRunning:
		dst.DrawText(hx, y, "Enter to continue")
	}
}

// drawPreview draws kind k in its spawn rotation inside a 4x2 cell area.
func drawPreview(dst *core.Screen, x, y int, k Kind, color core.Color) {
	for _, off := range Occupancy(k, 0) {
		dst.DrawTextColored(x+(off.X+1)*cellWidth, y+1-off.Y, "[]", color)
	}
}

// renderBanner centers the end-of-attempt message over the board.
func (g *Game) renderBanner(dst *core.Screen, snap Snapshot) {
	if snap.Message == "" {
		return
	}
	inner := snap.Width * cellWidth
	text := " " + snap.Message + " "
	x := boardLeft + 1 + (inner-len([]rune(text)))/2
	y := boardTop + 1 + g.visible/2
	dst.DrawTextColored(max(x, boardLeft+1), y, text, core.ColorWhite)
}
