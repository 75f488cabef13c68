package tetris

import "math"

// Rotation is a quarter turn direction.
type Rotation uint8

const (
	Clockwise Rotation = iota
	AntiClockwise
)

// Opposite returns the rotation that undoes r.
func (r Rotation) Opposite() Rotation {
	if r == Clockwise {
		return AntiClockwise
	}
	return Clockwise
}

// kickAttempts is how many horizontal corrections are tried after a
// colliding rotation. The piece ends up -1, +1, -2, +2 columns from where
// the rotation left it.
const kickAttempts = 4

// Tetrimino is the falling piece.
type Tetrimino struct {
	typ    Type
	blocks Blocks
	centre Centre
}

// NewTetrimino places a piece of the given type with its top-left anchor at anchor.
func NewTetrimino(t Type, anchor Coordinates) Tetrimino {
	offset := t.CentreOffset()
	return Tetrimino{
		typ:    t,
		blocks: BlocksAt(t, anchor),
		centre: Centre{X: float64(anchor.X) + offset.X, Y: float64(anchor.Y) + offset.Y},
	}
}

// Type returns the piece's shape.
func (t Tetrimino) Type() Type { return t.typ }

// Blocks returns the four occupied cells.
func (t Tetrimino) Blocks() Blocks { return t.blocks }

// Centre returns the rotation pivot.
func (t Tetrimino) Centre() Centre { return t.centre }

// Shift moves every block and the centre by d. It does no validation; the
// caller checks Collides and shifts back by d.Neg() if needed.
func (t *Tetrimino) Shift(d Coordinates) {
	for i := range t.blocks {
		t.blocks[i] = t.blocks[i].Add(d)
	}
	t.centre = t.centre.Shift(d)
}

// Rotate turns every block a quarter turn about the centre. Each block is
// rotated by its own centre point and floored back onto the grid; the centre
// itself never moves. Floor, not truncation, keeps negative intermediates
// on the right cell.
func (t *Tetrimino) Rotate(r Rotation) {
	c := t.centre
	for i, b := range t.blocks {
		bx := float64(b.X) + 0.5
		by := float64(b.Y) + 0.5

		var x, y float64
		if r == Clockwise {
			x = -by + c.X + c.Y
			y = bx - c.X + c.Y
		} else {
			x = by + c.X - c.Y
			y = -bx + c.X + c.Y
		}

		t.blocks[i] = Coordinates{X: int(math.Floor(x)), Y: int(math.Floor(y))}
	}
}

// Collides reports whether any block is outside the walls, below the floor,
// or on an occupied cell. Blocks above the top row never collide.
func (t *Tetrimino) Collides(g *Grid) bool {
	for _, b := range t.blocks {
		if b.X < 0 || b.X >= Columns || b.Y >= Rows {
			return true
		}
		if b.Y >= 0 && g.Occupied(b.Y, b.X) {
			return true
		}
	}
	return false
}

// ResolveRotationCollision tries to move a piece that collides after a
// rotation sideways into a free position. Shifts accumulate: attempt n moves
// the piece by (n even ? +n : -n) from where the previous attempt left it.
// On failure the piece is restored and false is returned; undoing the
// rotation is the caller's job.
func (t *Tetrimino) ResolveRotationCollision(g *Grid) bool {
	initial := *t

	for attempt := 1; attempt <= kickAttempts; attempt++ {
		dir := -1
		if attempt%2 == 0 {
			dir = 1
		}
		t.Shift(Coordinates{X: dir * attempt})
		if !t.Collides(g) {
			return true
		}
	}

	*t = initial
	return false
}

// Update runs one tick of piece movement: sideways moves, the timed or
// player-requested drop, then rotation. It reports whether the piece has
// landed and must be merged, and the new drop counter.
func (t *Tetrimino) Update(g *Grid, in *InputHistory, rules Rules, level, sinceDrop int) (merge bool, updatesSinceDrop int) {
	if in.Actionable(ButtonLeft) {
		t.tryShift(g, Coordinates{X: -1})
	}
	if in.Actionable(ButtonRight) {
		t.tryShift(g, Coordinates{X: 1})
	}

	drop := in.Actionable(ButtonDown) || sinceDrop >= rules.DropInterval(level)
	if drop {
		if !t.tryShift(g, Coordinates{Y: 1}) {
			merge = true
		}
		sinceDrop = 0
	}

	if merge {
		return true, sinceDrop
	}

	if in.Actionable(ButtonRotateClockwise) {
		t.tryRotate(g, Clockwise)
	}
	if in.Actionable(ButtonRotateAntiClockwise) {
		t.tryRotate(g, AntiClockwise)
	}

	return false, sinceDrop
}

// tryShift moves the piece by d and reverts the move if it collides.
func (t *Tetrimino) tryShift(g *Grid, d Coordinates) bool {
	t.Shift(d)
	if t.Collides(g) {
		t.Shift(d.Neg())
		return false
	}
	return true
}

// tryRotate rotates the piece, kicking it sideways if needed, and fully
// reverts the rotation when no kick fits.
func (t *Tetrimino) tryRotate(g *Grid, r Rotation) bool {
	t.Rotate(r)
	if t.Collides(g) && !t.ResolveRotationCollision(g) {
		t.Rotate(r.Opposite())
		return false
	}
	return true
}
