package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "k", "w", "up":
		return core.ActionRotateClockwise, false
	case "j", "z":
		return core.ActionRotateAntiClockwise, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b":
		return core.ActionBack, false
	case "enter":
		return core.ActionConfirm, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// heldActions are the actions the engine samples every tick.
var heldActions = []core.Action{
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
	core.ActionRotateClockwise,
	core.ActionRotateAntiClockwise,
}

func isHeld(a core.Action) bool {
	for _, h := range heldActions {
		if h == a {
			return true
		}
	}
	return false
}

// DefaultKeyRelease is used until the game supplies its own setting.
const DefaultKeyRelease = 120 * time.Millisecond

// FirstRepeatGrace is how long a fresh press counts as held while the
// terminal's auto-repeat has not started yet.
const FirstRepeatGrace = 500 * time.Millisecond

// keyHold is one held key: when the hold began and the latest press.
type keyHold struct {
	since time.Time
	last  time.Time
}

func (h keyHold) active(now time.Time, releaseAfter time.Duration) bool {
	if now.Sub(h.last) < releaseAfter {
		return true
	}
	return h.last.Equal(h.since) && now.Sub(h.since) < FirstRepeatGrace
}

// KeyTracker rebuilds held-key state from key-press messages. Terminals
// report no releases, only the press and its auto-repeats, so a movement
// key counts as held until releaseAfter passes without another press. The
// gap before the first auto-repeat is longer, so a fresh press is held for
// FirstRepeatGrace. Other actions fire on the next frame only.
type KeyTracker struct {
	releaseAfter time.Duration
	held         map[core.Action]keyHold
	edges        []core.Action
}

// NewKeyTracker creates a tracker. A non-positive releaseAfter selects
// DefaultKeyRelease.
func NewKeyTracker(releaseAfter time.Duration) *KeyTracker {
	k := &KeyTracker{held: make(map[core.Action]keyHold)}
	k.SetReleaseAfter(releaseAfter)
	return k
}

// SetReleaseAfter changes the release timeout.
func (k *KeyTracker) SetReleaseAfter(d time.Duration) {
	if d <= 0 {
		d = DefaultKeyRelease
	}
	k.releaseAfter = d
}

// Press records a key press at now.
func (k *KeyTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !isHeld(a) {
		k.edges = append(k.edges, a)
		return
	}
	h, ok := k.held[a]
	if !ok || !h.active(now, k.releaseAfter) {
		h.since = now
	}
	h.last = now
	k.held[a] = h
}

// Frame returns the actions held at now plus any one-shot actions pressed
// since the previous call.
func (k *KeyTracker) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, h := range k.held {
		if h.active(now, k.releaseAfter) {
			frame.Set(a)
		} else {
			delete(k.held, a)
		}
	}
	for _, a := range k.edges {
		frame.Set(a)
	}
	k.edges = k.edges[:0]
	return frame
}

// Reset releases every key.
func (k *KeyTracker) Reset() {
	clear(k.held)
	k.edges = k.edges[:0]
}
