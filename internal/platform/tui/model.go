package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// GameResult is how a game session ended.
type GameResult struct {
	Score int
	Won   bool
	Quit  bool // ended by the player, not by the game
}

// Model is the Bubble Tea model for a single snake game.
type Model struct {
	game      *snake.Game
	input     *core.InputQueue
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	logger    *log.Logger
	snap      snake.Snapshot

	showingOver bool // game-over box is up, waiting for Enter
	quitting    bool
	done        bool
}

// NewModel creates a new Bubble Tea model around game.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:      game,
		input:     core.NewInputQueue(core.DefaultInputDepth),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		logger:    logger,
		snap:      game.Snapshot(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.FramePeriod())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game input, or dismisses the game-over box.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.showingOver {
		switch msg.String() {
		case "enter", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	}

	// ctrl+c must work even when the window is too small to tick
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	m.input.Push(m.keyMapper.MapKey(msg))
	return m, nil
}

// handleTick polls one command and advances the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.showingOver || m.done || m.quitting {
		return m, nil
	}

	cmd := m.input.Poll()
	if cmd == core.CmdQuit {
		m.logger.Info("game quit", "score", m.snap.Score, "ticks", m.snap.Tick)
		m.quitting = true
		return m, tea.Quit
	}

	// Paused until the window is big enough again
	if !snake.Fits(m.screen.Width(), m.screen.Height(), m.game.Board()) {
		return m, tickCmd(m.game.FramePeriod())
	}

	prevPeriod := m.snap.FramePeriod
	m.snap = m.game.Tick(cmd)
	if m.snap.FramePeriod != prevPeriod {
		m.logger.Debug("speed changed", "period", m.snap.FramePeriod, "score", m.snap.Score)
	}

	if m.snap.State == snake.StateOver {
		m.logger.Info("game over", "score", m.snap.Score, "won", m.snap.Won, "length", len(m.snap.Body))
		m.logger.Debug("final state\n" + m.game.DebugState())
		if m.snap.Score > 0 {
			m.showingOver = true
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}

	return m, tickCmd(m.snap.FramePeriod)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "path", dir, "error", err)
		return
	}

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the current frame into the screen buffer.
func (m Model) draw() {
	snake.Render(m.screen, m.snap)
	if m.showingOver {
		snake.RenderGameOver(m.screen, m.snap.Score, m.snap.Won)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.done {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Result returns how the session ended.
func (m Model) Result() GameResult {
	return GameResult{
		Score: m.snap.Score,
		Won:   m.snap.Won,
		Quit:  m.quitting,
	}
}

// Run plays one game and returns how it ended.
func Run(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) (GameResult, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{Quit: true}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return GameResult{Quit: true}, nil
	}
	return m.Result(), nil
}
