package tetris

import (
	"errors"
	"fmt"
)

// Preview blocks are drawn in the side panel: right of the well's border
// column and left of PreviewColumns.
const (
	previewMinX    = Columns + 1
	PreviewColumns = 18
)

// Rules holds the tunable constants of a game. DefaultRules returns the
// classic values; config presets adjust StartLevel and Progression.
type Rules struct {
	BaseDropTicks int // ticks between gravity drops at level 1
	DropStepTicks int // ticks removed from the drop interval per level
	MinDropTicks  int // fastest drop interval
	RowsPerLevel  int
	RowScore      int // points per cleared row, multiplied by level
	StartLevel    int
	Progression   bool // false keeps the level at StartLevel
	Repeat        RepeatPolicy
	Spawn         Coordinates // top-left anchor of a newly drawn piece
	Preview       Coordinates // top-left anchor of the next-piece preview
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		BaseDropTicks: 120,
		DropStepTicks: 5,
		MinDropTicks:  10,
		RowsPerLevel:  10,
		RowScore:      100,
		StartLevel:    1,
		Progression:   true,
		Repeat:        DefaultRepeatPolicy(),
		Spawn:         Coordinates{X: 4, Y: 0},
		Preview:       Coordinates{X: 15, Y: 13},
	}
}

// DropInterval returns how many ticks a piece waits between gravity drops.
func (r Rules) DropInterval(level int) int {
	return max(r.MinDropTicks, r.BaseDropTicks-r.DropStepTicks*(level-1))
}

// LevelFor derives the difficulty level from the total rows cleared.
func (r Rules) LevelFor(totalRows int) int {
	if !r.Progression || r.RowsPerLevel <= 0 {
		return r.StartLevel
	}
	return totalRows/r.RowsPerLevel + r.StartLevel
}

// Validate checks the layout anchors against every shape. Each piece must
// spawn wholly inside the well, or a merge could drop blocks, and the preview
// must fit the side panel.
func (r Rules) Validate() error {
	var errs []error
	for _, t := range Types {
		for _, b := range BlocksAt(t, r.Spawn) {
			if !inWell(b.Y, b.X) {
				errs = append(errs, fmt.Errorf("spawn anchor %v puts a %s block at %v, outside the well", r.Spawn, t, b))
				break
			}
		}
		for _, b := range BlocksAt(t, r.Preview) {
			if b.X < previewMinX || b.X >= PreviewColumns || b.Y < 0 || b.Y >= Rows {
				errs = append(errs, fmt.Errorf("preview anchor %v puts a %s block at %v, outside the panel", r.Preview, t, b))
				break
			}
		}
	}
	return errors.Join(errs...)
}
