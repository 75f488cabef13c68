package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	EmptyChar = '·'
)

// Each well cell is drawn two terminal columns wide so blocks look square.
const cellWidth = 2

// Board layout in well cells. The side panel shares the well's coordinate
// system so the preview anchor lands where the rules place it.
const (
	panelCol = Columns + 2
	boardW   = PreviewColumns*cellWidth + 2
	boardH   = Rows + 2
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < boardW || dst.Height() < boardH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH))
		return
	}

	ox := (dst.Width() - boardW) / 2
	oy := (dst.Height() - boardH) / 2

	snap := g.engine.Snapshot()

	dst.DrawBox(core.NewRect(ox, oy, Columns*cellWidth+2, boardH))
	renderGrid(dst, ox, oy, &snap.Grid)
	renderPiece(dst, ox, oy, snap.Active)
	renderPiece(dst, ox, oy, snap.Next)

	g.renderPanel(dst, ox, oy, snap)

	// Draw overlays
	switch {
	case g.gameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  Lines: %d  R to restart", g.finalScore, g.finalRows))
	case g.paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderGrid draws landed blocks and empty cells inside the well border.
func renderGrid(dst *core.Screen, ox, oy int, grid *Grid) {
	for row := range Rows {
		for col := range Columns {
			x, y := cellOrigin(ox, oy, col, row)
			if colour, ok := grid.CellAt(row, col); ok {
				dst.SetColored(x, y, BlockChar, colour)
				dst.SetColored(x+1, y, BlockChar, colour)
			} else {
				dst.SetColored(x, y, ' ', core.ColorDefault)
				dst.SetColored(x+1, y, EmptyChar, core.ColorGray)
			}
		}
	}
}

// renderPiece draws a piece. Blocks above the well are not drawn.
func renderPiece(dst *core.Screen, ox, oy int, p Piece) {
	colour := p.Colour()
	for _, b := range p.Blocks {
		if b.Y < 0 {
			continue
		}
		x, y := cellOrigin(ox, oy, b.X, b.Y)
		dst.SetColored(x, y, BlockChar, colour)
		dst.SetColored(x+1, y, BlockChar, colour)
	}
}

// renderPanel draws the counters beside the well.
func (g *Game) renderPanel(dst *core.Screen, ox, oy int, snap Snapshot) {
	x, _ := cellOrigin(ox, oy, panelCol, 0)
	line := func(row int, text string, c core.Color) {
		_, y := cellOrigin(ox, oy, 0, row)
		dst.DrawTextColored(x, y, text, c)
	}

	line(0, g.title, core.ColorBrightWhite)
	line(2, "SCORE", core.ColorGray)
	line(3, fmt.Sprintf("%d", snap.Score), core.ColorBrightYellow)
	line(4, "LEVEL", core.ColorGray)
	line(5, fmt.Sprintf("%d", snap.Level), core.ColorBrightYellow)
	line(6, "LINES", core.ColorGray)
	line(7, fmt.Sprintf("%d", snap.Rows), core.ColorBrightYellow)
	line(11, "NEXT", core.ColorGray)

	if g.controller != nil {
		line(8, "BEST", core.ColorGray)
		line(9, fmt.Sprintf("%d", g.BestScore()), core.ColorBrightYellow)
		line(Rows-1, "KEYS "+sampleString(g.lastSample), core.ColorCyan)
	}
}

// cellOrigin converts well coordinates to the screen position of the cell's
// left column.
func cellOrigin(ox, oy, col, row int) (int, int) {
	return ox + 1 + col*cellWidth, oy + 1 + row
}

// sampleString shows which buttons are held, in Button order.
func sampleString(s Sample) string {
	glyphs := [ButtonCount]rune{'↓', '←', '→', '↻', '↺'}
	out := make([]rune, 0, ButtonCount)
	for b := Button(0); b < ButtonCount; b++ {
		if s.Pressed(b) {
			out = append(out, glyphs[b])
		} else {
			out = append(out, '·')
		}
	}
	return string(out)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := min(maxLen+4, dst.Width())
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
