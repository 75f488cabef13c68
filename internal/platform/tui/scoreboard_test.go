package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func openBoardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func pressBoard(t *testing.T, m ScoreboardModel, keys ...string) ScoreboardModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(ScoreboardModel)
	}
	return m
}

func TestScoreboardPages(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	var titles []string
	for _, p := range m.pages {
		titles = append(titles, p.title)
	}
	if got := strings.Join(titles, ","); got != "Tetris,Tetris (AI),Training" {
		t.Errorf("pages = %q", got)
	}
	if !m.pages[2].training() {
		t.Error("last page should be the training page")
	}
}

func TestScoreboardShowsScores(t *testing.T) {
	store := openBoardStore(t)
	if _, err := store.SaveScore("tetris", 1234, 7); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 100, 30)
	view := ansi.Strip(m.View())
	for _, want := range []string{"HIGH SCORES", "1234", "Games: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = pressBoard(t, m, "tab")
	if m.page != 1 {
		t.Fatalf("page = %d, want 1", m.page)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "No scores recorded yet") {
		t.Error("AI page should be empty")
	}
}

func TestScoreboardTrainingPage(t *testing.T) {
	store := openBoardStore(t)
	if err := store.SaveNetwork("default", []byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveRecords("s1", [][]byte{{1}, {2}}); err != nil {
		t.Fatal(err)
	}

	// left from the first page wraps to the last
	m := pressBoard(t, NewScoreboardModel(store, 100, 30), "left")
	if !m.current().training() {
		t.Fatalf("page = %d, want training", m.page)
	}

	view := ansi.Strip(m.View())
	for _, want := range []string{"Recorded frames: 2  Networks: 1", "default"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = pressBoard(t, m, "right")
	if m.page != 0 {
		t.Errorf("page = %d, want wrap to 0", m.page)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := pressBoard(t, NewScoreboardModel(nil, 80, 24), "b")
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("b should go back")
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}

	m = pressBoard(t, NewScoreboardModel(nil, 80, 24), "q")
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardResize(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(ScoreboardModel)
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
}
