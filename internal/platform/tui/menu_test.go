package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/tui-tetris/internal/ai" // registers tetris and tetris_ai

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func pressMenu(t *testing.T, m MenuModel, keys ...string) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(MenuModel)
	}
	return m
}

func TestMenuItems(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	var labels []string
	for _, it := range m.items {
		labels = append(labels, it.Label)
	}
	if got := strings.Join(labels, ","); got != "Play,Watch AI,High Scores,Quit" {
		t.Errorf("items = %s", got)
	}
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		keys   []string
		choice MenuChoice
		gameID string
	}{
		{[]string{"enter"}, ChoicePlay, "tetris"},
		{[]string{"down", "enter"}, ChoiceWatchAI, "tetris_ai"},
		{[]string{"j", "j", " "}, ChoiceScores, ""},
		{[]string{"up", "down", "down", "down", "down", "up", "enter"}, ChoiceScores, ""},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.keys, "-"), func(t *testing.T) {
			m := pressMenu(t, NewMenuModel(nil, core.DefaultConfig()), tt.keys...)
			sel := m.Selected()
			if sel == nil {
				t.Fatal("nothing selected")
			}
			if sel.Choice != tt.choice || sel.GameID != tt.gameID {
				t.Errorf("selected %+v", *sel)
			}
		})
	}
}

func TestMenuQuit(t *testing.T) {
	m := pressMenu(t, NewMenuModel(nil, core.DefaultConfig()), "down", "down", "down", "enter")
	if !m.IsQuitting() || m.Selected() != nil {
		t.Error("Quit entry should quit without a selection")
	}

	m = pressMenu(t, NewMenuModel(nil, core.DefaultConfig()), "q")
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %+v", cfg)
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	view := m.View()
	for _, want := range []string{"T E T R I S", "Play", "Watch AI", "High Scores"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
