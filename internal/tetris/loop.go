package tetris

import "time"

// Delta is the duration of one logical tick.
const Delta = time.Second / 60

// DefaultMaxFrame caps how much wall-clock time one frame may feed into the
// accumulator. After a stall the game slows down instead of bursting.
const DefaultMaxFrame = 250 * time.Millisecond

// Clock supplies a monotonic duration since an arbitrary epoch.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock whose epoch is the moment of the call.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// Loop turns wall-clock time into a whole number of fixed logical ticks.
type Loop struct {
	clock    Clock
	delta    time.Duration
	maxFrame time.Duration

	last        time.Duration
	accumulated time.Duration
}

// NewLoop creates a loop over clock. A non-positive delta selects Delta and
// a non-positive maxFrame disables the catch-up cap.
func NewLoop(clock Clock, delta, maxFrame time.Duration) *Loop {
	if delta <= 0 {
		delta = Delta
	}
	return &Loop{
		clock:    clock,
		delta:    delta,
		maxFrame: maxFrame,
		last:     clock.Now(),
	}
}

// Advance reads the clock once, adds the elapsed time to the accumulator and
// calls tick once per whole delta drained. It returns the number of ticks run.
func (l *Loop) Advance(tick func()) int {
	now := l.clock.Now()
	frame := now - l.last
	l.last = now

	if frame < 0 {
		frame = 0
	}
	if l.maxFrame > 0 && frame > l.maxFrame {
		frame = l.maxFrame
	}

	l.accumulated += frame
	n := 0
	for l.accumulated >= l.delta {
		tick()
		l.accumulated -= l.delta
		n++
	}
	return n
}

// Resync drops any accumulated time and moves the baseline to now, so time
// spent paused is not replayed.
func (l *Loop) Resync() {
	l.last = l.clock.Now()
	l.accumulated = 0
}

// Accumulated returns the time carried over to the next frame.
func (l *Loop) Accumulated() time.Duration {
	return l.accumulated
}

// TickDuration returns the loop's logical tick length.
func (l *Loop) TickDuration() time.Duration {
	return l.delta
}
