package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
)

// KeyMapper translates Bubble Tea key messages to game commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an in-game command.
// Unmapped keys give CmdNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Command {
	switch msg.String() {
	case "ctrl+c", "q", "Q", "esc":
		return core.CmdQuit
	case "up", "w", "k":
		return core.CmdUp
	case "down", "s", "j":
		return core.CmdDown
	case "left", "a", "h":
		return core.CmdLeft
	case "right", "d", "l":
		return core.CmdRight
	}
	return core.CmdNone
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
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// ScoreboardKeyMap defines the key bindings for the leaderboard screen.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("enter", "esc", "b"),
			key.WithHelp("enter", "return"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NameEntryKeyMap defines the key bindings for the high score prompt.
type NameEntryKeyMap struct {
	Submit key.Binding
	Skip   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k NameEntryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Skip}
}

// FullHelp returns key bindings for the full help view.
func (k NameEntryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Skip}}
}

// DefaultNameEntryKeyMap returns default key bindings.
func DefaultNameEntryKeyMap() NameEntryKeyMap {
	return NameEntryKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Skip: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "save as "+leaderboard.DefaultName),
		),
	}
}
