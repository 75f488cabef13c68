package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func pressed(buttons ...Button) Sample {
	var s Sample
	for _, b := range buttons {
		s[b] = true
	}
	return s
}

// historyWith returns a history whose last update pressed the given buttons.
func historyWith(buttons ...Button) *InputHistory {
	h := NewInputHistory(DefaultRepeatPolicy())
	h.Update(pressed(buttons...))
	return h
}

func TestShiftMovesBlocksAndCentre(t *testing.T) {
	piece := NewTetrimino(TypeT, Coordinates{})
	piece.Shift(Coordinates{X: 2, Y: 3})

	assert.Equal(t, Blocks{{3, 3}, {2, 4}, {3, 4}, {4, 4}}, piece.Blocks())
	assert.Equal(t, Centre{3.5, 4.5}, piece.Centre())

	piece.Shift(Coordinates{X: 2, Y: 3}.Neg())
	assert.Equal(t, NewTetrimino(TypeT, Coordinates{}), piece)
}

func TestSquareRotationIsPeriodic(t *testing.T) {
	piece := NewTetrimino(TypeSquare, Coordinates{X: 4, Y: 6})
	start := piece.Blocks()

	piece.Rotate(Clockwise)
	rotated := piece.Blocks()
	assert.ElementsMatch(t, start[:], rotated[:])

	for range 3 {
		piece.Rotate(Clockwise)
	}
	assert.Equal(t, start, piece.Blocks())
	assert.Equal(t, Centre{5, 7}, piece.Centre())
}

func TestRotateT(t *testing.T) {
	piece := NewTetrimino(TypeT, Coordinates{})

	piece.Rotate(Clockwise)
	assert.Equal(t, Blocks{{2, 1}, {1, 0}, {1, 1}, {1, 2}}, piece.Blocks())

	piece.Rotate(AntiClockwise)
	assert.Equal(t, NewTetrimino(TypeT, Coordinates{}).Blocks(), piece.Blocks())
}

func TestRotateFloorsNegativeCoordinates(t *testing.T) {
	// Truncation toward zero would map -0.5 to 0 and stack two blocks.
	piece := NewTetrimino(TypeLong, Coordinates{})
	piece.Rotate(Clockwise)

	assert.Equal(t, Blocks{{1, 2}, {0, 2}, {-1, 2}, {-2, 2}}, piece.Blocks())
	assert.Equal(t, Centre{0, 2}, piece.Centre())
}

func TestRotateEveryTypeRoundTrips(t *testing.T) {
	for _, typ := range Types {
		for _, r := range []Rotation{Clockwise, AntiClockwise} {
			piece := NewTetrimino(typ, Coordinates{X: 4, Y: 4})
			piece.Rotate(r)
			piece.Rotate(r.Opposite())
			assert.Equal(t, NewTetrimino(typ, Coordinates{X: 4, Y: 4}), piece, "%s", typ)
		}
	}
}

func TestCollides(t *testing.T) {
	var empty Grid
	var occupied Grid
	occupied.Set(2, 0, core.ColorRed)

	tests := []struct {
		name   string
		anchor Coordinates
		grid   *Grid
		want   bool
	}{
		{"inside", Coordinates{X: 4, Y: 0}, &empty, false},
		{"left wall", Coordinates{X: -1, Y: 0}, &empty, true},
		{"right edge", Coordinates{X: Columns - 1, Y: 0}, &empty, false},
		{"right wall", Coordinates{X: Columns, Y: 0}, &empty, true},
		{"on floor", Coordinates{X: 0, Y: Rows - 4}, &empty, false},
		{"below floor", Coordinates{X: 0, Y: Rows - 3}, &empty, true},
		{"above top", Coordinates{X: 0, Y: -3}, &empty, false},
		{"occupied cell", Coordinates{X: 0, Y: 0}, &occupied, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			piece := NewTetrimino(TypeLong, tt.anchor)
			assert.Equal(t, tt.want, piece.Collides(tt.grid))
		})
	}
}

func TestResolveRotationCollisionKicks(t *testing.T) {
	var g Grid
	piece := NewTetrimino(TypeLong, Coordinates{})
	piece.Rotate(Clockwise)
	assert.True(t, piece.Collides(&g))

	assert.True(t, piece.ResolveRotationCollision(&g))
	assert.Equal(t, Blocks{{3, 2}, {2, 2}, {1, 2}, {0, 2}}, piece.Blocks())
	assert.Equal(t, Centre{2, 2}, piece.Centre())
}

func TestResolveRotationCollisionRestoresOnFailure(t *testing.T) {
	var g Grid
	g.Set(2, 3, core.ColorRed)

	piece := NewTetrimino(TypeLong, Coordinates{})
	piece.Rotate(Clockwise)
	rotated := piece

	assert.False(t, piece.ResolveRotationCollision(&g))
	assert.Equal(t, rotated, piece)
}

func TestUpdateShiftsAndRevertsAtWalls(t *testing.T) {
	var g Grid
	rules := DefaultRules()

	piece := NewTetrimino(TypeLong, Coordinates{X: 0, Y: 5})
	piece.Update(&g, historyWith(ButtonLeft), rules, 1, 0)
	assert.Equal(t, NewTetrimino(TypeLong, Coordinates{X: 0, Y: 5}), piece)

	piece.Update(&g, historyWith(ButtonRight), rules, 1, 0)
	assert.Equal(t, NewTetrimino(TypeLong, Coordinates{X: 1, Y: 5}), piece)
}

func TestUpdateTimedDrop(t *testing.T) {
	var g Grid
	rules := DefaultRules()
	idle := historyWith()

	piece := NewTetrimino(TypeT, Coordinates{X: 4, Y: 0})
	merge, since := piece.Update(&g, idle, rules, 1, 119)
	assert.False(t, merge)
	assert.Equal(t, 119, since)
	assert.Equal(t, NewTetrimino(TypeT, Coordinates{X: 4, Y: 0}), piece)

	merge, since = piece.Update(&g, idle, rules, 1, 120)
	assert.False(t, merge)
	assert.Zero(t, since)
	assert.Equal(t, NewTetrimino(TypeT, Coordinates{X: 4, Y: 1}), piece)
}

func TestUpdateDownKeyDrops(t *testing.T) {
	var g Grid
	piece := NewTetrimino(TypeT, Coordinates{X: 4, Y: 0})

	merge, since := piece.Update(&g, historyWith(ButtonDown), DefaultRules(), 1, 7)
	assert.False(t, merge)
	assert.Zero(t, since)
	assert.Equal(t, NewTetrimino(TypeT, Coordinates{X: 4, Y: 1}), piece)
}

func TestUpdateRequestsMergeAndSkipsRotation(t *testing.T) {
	var g Grid
	landed := NewTetrimino(TypeLong, Coordinates{X: 4, Y: Rows - 4})
	piece := landed

	merge, since := piece.Update(&g, historyWith(ButtonDown, ButtonRotateClockwise), DefaultRules(), 1, 0)
	assert.True(t, merge)
	assert.Zero(t, since)
	assert.Equal(t, landed, piece)
}

func TestUpdateRotationRevertsWhenNoKickFits(t *testing.T) {
	var g Grid
	g.Set(2, 3, core.ColorRed)

	start := NewTetrimino(TypeLong, Coordinates{})
	piece := start
	merge, _ := piece.Update(&g, historyWith(ButtonRotateClockwise), DefaultRules(), 1, 0)

	assert.False(t, merge)
	assert.Equal(t, start, piece)
}

func TestUpdateRotatesAgainstWall(t *testing.T) {
	var g Grid
	piece := NewTetrimino(TypeLong, Coordinates{})
	piece.Update(&g, historyWith(ButtonRotateClockwise), DefaultRules(), 1, 0)

	assert.Equal(t, Blocks{{3, 2}, {2, 2}, {1, 2}, {0, 2}}, piece.Blocks())
}

func TestDropInterval(t *testing.T) {
	rules := DefaultRules()
	assert.Equal(t, 120, rules.DropInterval(1))
	assert.Equal(t, 115, rules.DropInterval(2))
	assert.Equal(t, 15, rules.DropInterval(22))
	assert.Equal(t, 10, rules.DropInterval(23))
	assert.Equal(t, 10, rules.DropInterval(40))
}

func TestLevelFor(t *testing.T) {
	rules := DefaultRules()
	assert.Equal(t, 1, rules.LevelFor(0))
	assert.Equal(t, 1, rules.LevelFor(9))
	assert.Equal(t, 2, rules.LevelFor(10))
	assert.Equal(t, 4, rules.LevelFor(35))

	rules.Progression = false
	rules.StartLevel = 6
	assert.Equal(t, 6, rules.LevelFor(35))
}
