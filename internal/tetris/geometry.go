// Package tetris implements the Tetris rules engine: the well, the seven
// tetriminoes, rotation about a continuous centre, wall kicks, input repeat
// timing and the fixed-timestep update loop that drives them.
//
// The package has no knowledge of terminals or Bubble Tea. The platform feeds
// it a clock and a five-button sample per frame and reads back snapshots.
package tetris

// Coordinates is an integer grid position. X is the column and Y is the row;
// the origin is the top-left corner of the well and Y grows downward.
type Coordinates struct {
	X, Y int
}

// Add returns the component-wise sum of two coordinates.
func (c Coordinates) Add(o Coordinates) Coordinates {
	return Coordinates{X: c.X + o.X, Y: c.Y + o.Y}
}

// Neg returns the coordinates with both components negated.
func (c Coordinates) Neg() Coordinates {
	return Coordinates{X: -c.X, Y: -c.Y}
}

// Centre is the floating point pivot a tetrimino rotates about. It usually
// sits on a half-integer so that rotated block centres land on cell centres.
type Centre struct {
	X, Y float64
}

// Shift translates the centre by an integer offset.
func (c Centre) Shift(d Coordinates) Centre {
	return Centre{X: c.X + float64(d.X), Y: c.Y + float64(d.Y)}
}
