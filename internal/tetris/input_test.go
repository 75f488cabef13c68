package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJustPressedIsActionable(t *testing.T) {
	h := NewInputHistory(DefaultRepeatPolicy())
	h.Update(pressed(ButtonLeft))

	assert.True(t, h.Actionable(ButtonLeft))
	assert.False(t, h.Actionable(ButtonRight))
	assert.Zero(t, h.HeldTicks(ButtonLeft))
}

func TestReleaseResetsHeldCount(t *testing.T) {
	h := NewInputHistory(DefaultRepeatPolicy())
	for range 10 {
		h.Update(pressed(ButtonDown))
	}
	assert.Equal(t, 9, h.HeldTicks(ButtonDown))

	h.Update(Sample{})
	assert.Zero(t, h.HeldTicks(ButtonDown))
	assert.False(t, h.Actionable(ButtonDown))

	h.Update(pressed(ButtonDown))
	assert.True(t, h.Actionable(ButtonDown))
}

func TestHeldRepeatBoundary(t *testing.T) {
	h := NewInputHistory(DefaultRepeatPolicy())

	h.Update(pressed(ButtonRight))
	assert.True(t, h.Actionable(ButtonRight))

	actionableAt := map[int]bool{}
	for h.HeldTicks(ButtonRight) < 45 {
		h.Update(pressed(ButtonRight))
		actionableAt[h.HeldTicks(ButtonRight)] = h.Actionable(ButtonRight)
	}

	for held := 1; held <= 32; held++ {
		assert.False(t, actionableAt[held], "held %d", held)
	}
	assert.True(t, actionableAt[33])
	assert.False(t, actionableAt[34])
	assert.False(t, actionableAt[35])
	assert.True(t, actionableAt[36])
	assert.True(t, actionableAt[39])
	assert.True(t, actionableAt[42])
	assert.True(t, actionableAt[45])
}

func TestCustomRepeatPolicy(t *testing.T) {
	h := NewInputHistory(RepeatPolicy{Delay: 2, Interval: 0})
	var fired []int
	for tick := 1; tick <= 6; tick++ {
		h.Update(pressed(ButtonRotateClockwise))
		if h.Actionable(ButtonRotateClockwise) {
			fired = append(fired, tick)
		}
	}
	// Interval 0 is treated as 1: repeat every tick once held > 2.
	assert.Equal(t, []int{1, 4, 5, 6}, fired)
}

func TestSampleMaskRoundTrip(t *testing.T) {
	s := pressed(ButtonDown, ButtonRotateAntiClockwise)
	assert.Equal(t, uint16(1|1<<4), s.Mask())
	assert.Equal(t, s, SampleFromMask(s.Mask()))
}

func TestCurrentAndReset(t *testing.T) {
	h := NewInputHistory(DefaultRepeatPolicy())
	h.Update(pressed(ButtonLeft, ButtonDown))
	assert.Equal(t, pressed(ButtonLeft, ButtonDown), h.Current())

	h.Reset()
	assert.Equal(t, Sample{}, h.Current())
	assert.False(t, h.Actionable(ButtonLeft))
}
