package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Well dimensions.
const (
	Rows    = 18
	Columns = 10
)

// Cell is one position in the well. The zero value is empty.
type Cell struct {
	Filled bool
	Colour core.Color
}

// Grid is the well of landed blocks. It is a plain array so copies are
// independent and two grids compare with ==.
type Grid struct {
	cells [Rows][Columns]Cell
}

// CellAt returns the colour at (row, col) and whether the cell is occupied.
// Positions outside the well report empty.
func (g *Grid) CellAt(row, col int) (core.Color, bool) {
	if !inWell(row, col) {
		return core.ColorDefault, false
	}
	c := g.cells[row][col]
	return c.Colour, c.Filled
}

// Occupied reports whether (row, col) holds a landed block.
func (g *Grid) Occupied(row, col int) bool {
	_, filled := g.CellAt(row, col)
	return filled
}

// Set writes a colour into (row, col). Out-of-well positions are ignored.
func (g *Grid) Set(row, col int, colour core.Color) {
	if !inWell(row, col) {
		return
	}
	g.cells[row][col] = Cell{Filled: true, Colour: colour}
}

// Merge writes the tetrimino's colour into the four cells it covers.
// The caller guarantees the piece is in the well (it has just been moved
// back to its last non-colliding position).
func (g *Grid) Merge(t *Tetrimino) {
	colour := t.Type().Colour()
	for _, b := range t.Blocks() {
		g.Set(b.Y, b.X, colour)
	}
}

// RemoveCompletedRows deletes every fully occupied row, moves the remaining
// rows down keeping their order, and refills the top with empty rows.
// It returns the number of rows removed.
func (g *Grid) RemoveCompletedRows() int {
	var kept [Rows][Columns]Cell
	insert := Rows - 1
	removed := 0

	for row := Rows - 1; row >= 0; row-- {
		if g.rowComplete(row) {
			removed++
			continue
		}
		kept[insert] = g.cells[row]
		insert--
	}

	if removed > 0 {
		g.cells = kept
	}
	return removed
}

// Clear empties every cell.
func (g *Grid) Clear() {
	g.cells = [Rows][Columns]Cell{}
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	n := 0
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col].Filled {
				n++
			}
		}
	}
	return n
}

// RowMask returns the occupancy of a row as a bitmask, bit n set for column n.
func (g *Grid) RowMask(row int) uint16 {
	var mask uint16
	for col := 0; col < Columns; col++ {
		if g.Occupied(row, col) {
			mask |= 1 << col
		}
	}
	return mask
}

func (g *Grid) rowComplete(row int) bool {
	for col := 0; col < Columns; col++ {
		if !g.cells[row][col].Filled {
			return false
		}
	}
	return true
}

func inWell(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}
