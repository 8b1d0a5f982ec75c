package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuNewGame MenuChoice = iota
	MenuLeaderboard
	MenuQuit
)

var menuOptions = []string{"New Game", "Leaderboard", "Quit"}

var menuTitle = []string{
	" ███████╗███╗   ██╗ █████╗ ██╗  ██╗███████╗",
	" ██╔════╝████╗  ██║██╔══██╗██║ ██╔╝██╔════╝",
	" ███████╗██╔██╗ ██║███████║█████╔╝ █████╗  ",
	" ╚════██║██║╚██╗██║██╔══██║██╔═██╗ ██╔══╝  ",
	" ███████║██║ ╚████║██║  ██║██║  ██╗███████╗",
	" ╚══════╝╚═╝  ╚═══╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝",
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	menuSelectedStyle = menuItemStyle.Bold(true)
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	chosen    bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation. The cursor wraps.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.cursor = int(MenuQuit)
		m.chosen = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = core.FloorMod(m.cursor-1, len(menuOptions))

	case MenuActionDown:
		m.cursor = core.FloorMod(m.cursor+1, len(menuOptions))

	case MenuActionSelect:
		m.chosen = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.chosen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")
	for _, line := range menuTitle {
		b.WriteString(centerText(menuTitleStyle.Render(line), m.config.ScreenW))
		b.WriteString("\n")
	}
	b.WriteString("\n\n")

	for i, option := range menuOptions {
		line := "  " + option
		style := menuItemStyle
		if i == m.cursor {
			line = "► " + option
			style = menuSelectedStyle
		}
		b.WriteString(centerText(style.Render(line), m.config.ScreenW))
		b.WriteString("\n\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Use ↑↓ to select, ENTER to confirm"), m.config.ScreenW))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected entry. Quitting the menu counts as MenuQuit.
func (m MenuModel) Choice() MenuChoice {
	if !m.chosen {
		return MenuQuit
	}
	return MenuChoice(m.cursor)
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: MenuQuit, Config: cfg}, nil
	}

	return MenuResult{Choice: m.Choice(), Config: m.Config()}, nil
}
