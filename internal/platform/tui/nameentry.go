package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/leaderboard"
)

var (
	nameTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	namePromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	nameHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NameEntryModel asks for the player's name after a high score.
type NameEntryModel struct {
	input  textinput.Model
	keys   NameEntryKeyMap
	help   help.Model
	score  int
	width  int
	height int
	done   bool
}

// NewNameEntryModel creates the prompt for a score.
func NewNameEntryModel(score, width, height int) NameEntryModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = leaderboard.DefaultName
	ti.CharLimit = leaderboard.MaxNameLength
	ti.Width = leaderboard.MaxNameLength + 1
	ti.Focus()

	return NameEntryModel{
		input:  ti,
		keys:   DefaultNameEntryKeyMap(),
		help:   help.New(),
		score:  score,
		width:  width,
		height: height,
	}
}

// Init starts the cursor blinking.
func (m NameEntryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m NameEntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Skip):
			m.input.SetValue("")
			m.done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m NameEntryModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", max(1, m.height/2-4)))
	b.WriteString(centerText(nameTitleStyle.Render("NEW HIGH SCORE!"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(namePromptStyle.Render(fmt.Sprintf("Score: %d", m.score)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(namePromptStyle.Render("Enter your name: ")+m.input.View(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(nameHelpStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// Name returns the entered name, normalized for the leaderboard.
func (m NameEntryModel) Name() string {
	return leaderboard.NormalizeName(m.input.Value())
}

// RunNameEntry asks for a name and returns it. Blank input gives the
// default name.
func RunNameEntry(score, width, height int) (string, error) {
	p := tea.NewProgram(
		NewNameEntryModel(score, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return leaderboard.DefaultName, err
	}

	m, ok := finalModel.(NameEntryModel)
	if !ok {
		return leaderboard.DefaultName, nil
	}
	return m.Name(), nil
}
