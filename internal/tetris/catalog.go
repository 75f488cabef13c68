package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Type identifies one of the seven tetrimino shapes.
type Type uint8

const (
	TypeT Type = iota
	TypeL
	TypeReverseL
	TypeS
	TypeZ
	TypeSquare
	TypeLong

	// TypeCount is the number of shapes; not a valid Type.
	TypeCount
)

// Types lists every shape in catalog order.
var Types = [TypeCount]Type{TypeT, TypeL, TypeReverseL, TypeS, TypeZ, TypeSquare, TypeLong}

// Blocks holds the four cells a tetrimino occupies.
type Blocks [4]Coordinates

// The catalog tables are arrays sized by TypeCount, so adding a shape without
// filling every table is a compile error.

var typeNames = [TypeCount]string{
	TypeT:        "T",
	TypeL:        "L",
	TypeReverseL: "ReverseL",
	TypeS:        "S",
	TypeZ:        "Z",
	TypeSquare:   "Square",
	TypeLong:     "Long",
}

var typeColours = [TypeCount]core.Color{
	TypeT:        core.ColorMagenta,
	TypeL:        core.ColorCyan,
	TypeReverseL: core.ColorGreen,
	TypeS:        core.ColorRed,
	TypeZ:        core.ColorBlue,
	TypeSquare:   core.ColorYellow,
	TypeLong:     core.ColorBrightWhite,
}

// Offsets are relative to the spawn top-left anchor.
var blockOffsets = [TypeCount]Blocks{
	TypeT:        {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
	TypeL:        {{0, 0}, {0, 1}, {0, 2}, {1, 2}},
	TypeReverseL: {{1, 0}, {1, 1}, {1, 2}, {0, 2}},
	TypeS:        {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	TypeZ:        {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	TypeSquare:   {{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	TypeLong:     {{0, 0}, {0, 1}, {0, 2}, {0, 3}},
}

var centreOffsets = [TypeCount]Centre{
	TypeT:        {1.5, 1.5},
	TypeL:        {0.5, 1.5},
	TypeReverseL: {1.5, 1.5},
	TypeS:        {1.5, 1.5},
	TypeZ:        {1.5, 1.5},
	TypeSquare:   {1.0, 1.0},
	TypeLong:     {0.0, 2.0},
}

// String returns the shape name.
func (t Type) String() string {
	if t >= TypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// Colour returns the display colour of the shape.
func (t Type) Colour() core.Color {
	return typeColours[t]
}

// BlockOffsets returns the four block offsets from the spawn top-left anchor.
func (t Type) BlockOffsets() Blocks {
	return blockOffsets[t]
}

// CentreOffset returns the rotation centre relative to the spawn top-left anchor.
func (t Type) CentreOffset() Centre {
	return centreOffsets[t]
}

// BlocksAt returns the shape's blocks with its top-left anchor placed at anchor.
// Used both for spawning and for drawing the next-piece preview.
func BlocksAt(t Type, anchor Coordinates) Blocks {
	blocks := t.BlockOffsets()
	for i := range blocks {
		blocks[i] = blocks[i].Add(anchor)
	}
	return blocks
}
