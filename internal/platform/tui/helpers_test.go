package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// keyMsg builds the key message a terminal would deliver for s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	frames  []core.InputFrame
	finish  []core.GameResult
	state   core.GameState
	resets  int
	release time.Duration
}

func (g *fakeGame) ID() string    { return "tetris" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	res := core.StepResult{State: g.state, Finished: g.finish}
	g.finish = nil
	return res
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) KeyRelease() time.Duration { return g.release }

func (g *fakeGame) lastFrame(t *testing.T) core.InputFrame {
	t.Helper()
	if len(g.frames) == 0 {
		t.Fatal("game was never stepped")
	}
	return g.frames[len(g.frames)-1]
}

// manualClock is a settable time source for the key tracker.
type manualClock struct {
	t time.Time
}

func (c *manualClock) now() time.Time { return c.t }

func (c *manualClock) advance(d time.Duration) { c.t = c.t.Add(d) }
