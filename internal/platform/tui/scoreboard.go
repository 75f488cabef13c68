package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

const maxScores = 100 // Max scores to load per page

// boardPage is one tab of the scoreboard. Pages without a game ID show the
// training data instead of scores.
type boardPage struct {
	title  string
	gameID string
}

func (p boardPage) training() bool { return p.gameID == "" }

// scoreboardPages returns one page per registered game and the training page.
func scoreboardPages() []boardPage {
	games := registry.List()
	pages := make([]boardPage, 0, len(games)+1)
	for _, g := range games {
		pages = append(pages, boardPage{title: g.Title, gameID: g.ID})
	}
	return append(pages, boardPage{title: "Training"})
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev page"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best scores of each game variant and the stored
// networks with the amount of recorded play available for training.
type ScoreboardModel struct {
	pages []boardPage
	page  int
	store *storage.Store

	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	networks []storage.NetworkInfo
	frames   int

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a new scoreboard model. store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		pages:  scoreboardPages(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	return m
}

func (m ScoreboardModel) current() boardPage {
	return m.pages[m.page]
}

// load reads the current page's data and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.scores = nil
	m.stats = nil
	m.networks = nil
	m.frames = 0

	p := m.current()
	if m.store != nil {
		if p.training() {
			if nets, err := m.store.ListNetworks(); err == nil {
				m.networks = nets
			}
			if n, err := m.store.CountRecords(); err == nil {
				m.frames = n
			}
		} else {
			if scores, err := m.store.TopScores(p.gameID, maxScores); err == nil {
				m.scores = scores
			}
			if stats, err := m.store.GetGameStats(p.gameID); err == nil {
				m.stats = stats
			}
		}
	}
	m.table = m.createTable()
}

// createTable builds the table for the current page from loaded data.
func (m ScoreboardModel) createTable() table.Model {
	var (
		columns []table.Column
		rows    []table.Row
	)

	if m.current().training() {
		columns = []table.Column{
			{Title: "Network", Width: 20},
			{Title: "Bytes", Width: 10},
			{Title: "Updated", Width: 16},
		}
		for _, n := range m.networks {
			rows = append(rows, table.Row{
				n.Name,
				fmt.Sprintf("%d", n.Size),
				n.UpdatedAt.Format("Jan 02 15:04"),
			})
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Lines", Width: 6},
			{Title: "Date", Width: 16},
		}
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				fmt.Sprintf("%d", s.Lines),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, tabs, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.page = (m.page + 1) % len(m.pages)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.page = (m.page + len(m.pages) - 1) % len(m.pages)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.tabLine(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.summaryLine(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.content()), m.width))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// tabLine renders the page titles with the current one highlighted.
func (m ScoreboardModel) tabLine() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := tabStyle.
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	tabs := make([]string, len(m.pages))
	for i, p := range m.pages {
		if i == m.page {
			tabs[i] = activeTabStyle.Render(p.title)
		} else {
			tabs[i] = tabStyle.Render(p.title)
		}
	}
	return strings.Join(tabs, " ")
}

// summaryLine describes the current page in one line.
func (m ScoreboardModel) summaryLine() string {
	if m.current().training() {
		return fmt.Sprintf("Recorded frames: %d  Networks: %d", m.frames, len(m.networks))
	}
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Games: %d  Best: %d  Avg: %.0f  Most lines: %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.MostLines)
}

// content renders the table or a hint when the page is empty.
func (m ScoreboardModel) content() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.current().training() && len(m.networks) == 0:
		return emptyStyle.Render("No trained networks.\nRecord with 'tetris play --record', then run 'tetris train'.")
	case !m.current().training() && len(m.scores) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as a standalone program.
// Returns true if user pressed back, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
