package tetris

// Button is one of the five logical controls the engine reacts to.
type Button uint8

const (
	ButtonDown Button = iota
	ButtonLeft
	ButtonRight
	ButtonRotateClockwise
	ButtonRotateAntiClockwise

	// ButtonCount is the number of buttons; not a valid Button.
	ButtonCount
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonRotateClockwise:
		return "rotate-cw"
	case ButtonRotateAntiClockwise:
		return "rotate-ccw"
	default:
		return "unknown"
	}
}

// Sample is the raw pressed state of every button at one instant.
type Sample [ButtonCount]bool

// Pressed reports whether b is down in this sample.
func (s Sample) Pressed(b Button) bool {
	return s[b]
}

// Mask packs the sample into bits in Button order.
func (s Sample) Mask() uint16 {
	var m uint16
	for b := Button(0); b < ButtonCount; b++ {
		if s[b] {
			m |= 1 << b
		}
	}
	return m
}

// SampleFromMask is the inverse of Sample.Mask.
func SampleFromMask(m uint16) Sample {
	var s Sample
	for b := Button(0); b < ButtonCount; b++ {
		s[b] = m&(1<<b) != 0
	}
	return s
}

// RepeatPolicy controls auto-repeat of a held button. A held button first
// repeats once it has been held for more than Delay ticks, and then on every
// tick whose held count is a multiple of Interval.
type RepeatPolicy struct {
	Delay    int
	Interval int
}

// DefaultRepeatPolicy waits half a second at 60 Hz, then repeats 20 times per second.
func DefaultRepeatPolicy() RepeatPolicy {
	return RepeatPolicy{Delay: 30, Interval: 3}
}

type buttonHistory struct {
	current  bool
	previous bool
	held     int
}

// InputHistory tracks, per button, the current and previous pressed state and
// for how many consecutive ticks the button has stayed pressed.
type InputHistory struct {
	policy  RepeatPolicy
	buttons [ButtonCount]buttonHistory
}

// NewInputHistory creates an empty history using the given repeat policy.
func NewInputHistory(policy RepeatPolicy) *InputHistory {
	if policy.Interval <= 0 {
		policy.Interval = 1
	}
	return &InputHistory{policy: policy}
}

// Update shifts the current state into the previous state and records the
// new sample. The held count grows only while a button stays pressed and
// drops to zero on any tick it was not pressed on both sides.
func (h *InputHistory) Update(s Sample) {
	for b := range h.buttons {
		bh := &h.buttons[b]
		bh.previous = bh.current
		bh.current = s[b]
		if bh.current && bh.previous {
			bh.held++
		} else {
			bh.held = 0
		}
	}
}

// Actionable reports whether b should take effect this tick: it was just
// pressed, or it has been held past the repeat delay and this is a repeat tick.
func (h *InputHistory) Actionable(b Button) bool {
	bh := h.buttons[b]
	justPressed := bh.current && !bh.previous
	repeat := bh.current && bh.previous &&
		bh.held > h.policy.Delay && bh.held%h.policy.Interval == 0
	return justPressed || repeat
}

// HeldTicks returns the consecutive held count of b.
func (h *InputHistory) HeldTicks(b Button) int {
	return h.buttons[b].held
}

// Current returns the most recent sample recorded.
func (h *InputHistory) Current() Sample {
	var s Sample
	for b := range h.buttons {
		s[b] = h.buttons[b].current
	}
	return s
}

// Reset forgets all button state.
func (h *InputHistory) Reset() {
	h.buttons = [ButtonCount]buttonHistory{}
}
