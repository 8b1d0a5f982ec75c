package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/leaderboard"
)

// Number of leading ranks marked as medal places.
const podiumSize = 3

var (
	goldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Italic(true).
			Padding(2, 4)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// scoresChangedMsg reports that the leaderboard store changed on disk.
type scoresChangedMsg struct{}

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
type ScoreboardModel struct {
	board   *leaderboard.Leaderboard
	changes <-chan struct{}
	entries []leaderboard.Entry
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	width   int
	height  int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a leaderboard screen. changes may be nil; when
// set, the table reloads every time it fires.
func NewScoreboardModel(board *leaderboard.Leaderboard, changes <-chan struct{}, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		board:   board,
		changes: changes,
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.loadScores()
	return m
}

// createTable creates a table sized for a full leaderboard.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: leaderboard.MaxNameLength},
		{Title: "Score", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(min(m.board.Capacity(), max(3, m.height-10))),
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

// loadScores reads the leaderboard into the table.
func (m *ScoreboardModel) loadScores() {
	m.entries = m.board.TopScores(0)

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rank := fmt.Sprintf("%2d.", i+1)
		if i < podiumSize {
			rank += " ★"
		}
		rows[i] = table.Row{rank, e.Name, fmt.Sprintf("%5d", e.Score)}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// waitForChange blocks on the change channel inside a command.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return scoresChangedMsg{}
	}
}

// Init starts listening for store changes.
func (m ScoreboardModel) Init() tea.Cmd {
	return waitForChange(m.changes)
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

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case scoresChangedMsg:
		m.loadScores()
		return m, waitForChange(m.changes)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadScores()
		m.help.Width = msg.Width
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
	b.WriteString("\n")
	b.WriteString(centerText(goldStyle.Render("═══ LEADERBOARD ═══"), m.width))
	b.WriteString("\n\n")

	var content string
	if len(m.entries) == 0 {
		content = emptyStyle.Render("No scores yet!")
	} else {
		content = m.table.View()
	}
	for _, line := range strings.Split(boxStyle.Render(content), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the leaderboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(board *leaderboard.Leaderboard, changes <-chan struct{}, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(board, changes, width, height),
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
