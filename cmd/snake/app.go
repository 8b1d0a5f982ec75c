package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// app holds everything a command needs once flags are resolved.
type app struct {
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	board   *leaderboard.Leaderboard
	backend leaderboard.Backend

	scoresPath string
	store      string
	closers    []io.Closer
}

// overrides are the command-line values that beat the config file.
// Zero or empty means "not set".
type overrides struct {
	width, height, speed int
	store, scores        string
}

// applyOverrides copies set flag values into cfg.
func applyOverrides(cfg *config.SnakeConfig, o overrides) {
	if o.width != 0 {
		cfg.Board.Width = o.width
	}
	if o.height != 0 {
		cfg.Board.Height = o.height
	}
	if o.speed != 0 {
		cfg.Speed.InitialMS = o.speed
	}
	if o.store != "" {
		cfg.Leaderboard.Backend = o.store
		// The default path names a JSON file; give SQLite its own
		if o.store == leaderboard.BackendSQLite && o.scores == "" &&
			cfg.Leaderboard.Path == config.DefaultSnakeConfig().Leaderboard.Path {
			cfg.Leaderboard.Path = strings.TrimSuffix(cfg.Leaderboard.Path, filepath.Ext(cfg.Leaderboard.Path)) + ".db"
		}
	}
	if o.scores != "" {
		cfg.Leaderboard.Path = o.scores
	}
}

// loadConfig resolves the configuration from file, preset and flags.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return cfg, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	config.ApplySnakePreset(&cfg, preset)

	var o overrides
	flags := cmd.Flags()
	if flags.Changed("width") {
		o.width = flagWidth
	}
	if flags.Changed("height") {
		o.height = flagHeight
	}
	if flags.Changed("speed") {
		o.speed = flagSpeed
	}
	if flags.Changed("store") {
		o.store = flagStore
	}
	if flags.Changed("scores") {
		o.scores = flagScores
	}
	applyOverrides(&cfg, o)

	return cfg, cfg.Validate()
}

// newLogger opens the log file. The TUI owns the terminal, so logs never go
// to stderr while a screen is up.
func newLogger(path string, debug bool) (*log.Logger, io.Closer, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return cfg.ScreenW, cfg.ScreenH
}

// newApp resolves flags, opens the log and the leaderboard.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}

	logger, logFile, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = log.New(io.Discard)
	} else {
		a.closers = append(a.closers, logFile)
	}
	a.logger = logger

	a.scoresPath, err = config.ExpandHome(cfg.Leaderboard.Path)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.store = cfg.Leaderboard.Backend

	backend, closer, err := leaderboard.OpenBackend(a.store, a.scoresPath)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.closers = append(a.closers, closer)
	a.backend = backend
	a.board = leaderboard.New(backend,
		leaderboard.WithCapacity(cfg.Leaderboard.Capacity),
		leaderboard.WithLogger(logger),
	)

	w, h := terminalSize()
	a.runtime = core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: flagSeed}

	logger.Debug("configured",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"speed", cfg.Speed.Initial(),
		"store", a.store,
		"scores", a.scoresPath,
	)
	return a, nil
}

// Close releases the leaderboard and the log file, newest first.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i].Close()
	}
	a.closers = nil
}

// playOnce runs a single game and, for a natural game over with a
// qualifying score, the name prompt and save.
func (a *app) playOnce() error {
	seed := a.runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := snake.New(a.cfg, snake.WithSeed(seed))
	a.logger.Info("game started", "seed", seed, "width", a.cfg.Board.Width, "height", a.cfg.Board.Height)

	result, err := tui.Run(game, a.runtime, a.logger)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if result.Quit || result.Score <= 0 {
		return nil
	}
	if !a.board.IsHighScore(result.Score) {
		a.logger.Debug("score did not place", "score", result.Score)
		return nil
	}

	name, err := tui.RunNameEntry(result.Score, a.runtime.ScreenW, a.runtime.ScreenH)
	if err != nil {
		a.logger.Warn("name prompt failed", "error", err)
	}
	if _, err := a.board.Save(name, result.Score); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save score: %v\n", err)
		a.logger.Error("could not save score", "path", a.scoresPath, "error", err)
		return nil
	}
	a.logger.Info("high score saved", "name", name, "score", result.Score)
	return nil
}

// showLeaderboard runs the leaderboard screen. Returns false when the user
// quit from it.
func (a *app) showLeaderboard() (bool, error) {
	var changes <-chan struct{}
	if a.store != leaderboard.BackendSQLite {
		w, err := leaderboard.Watch(a.scoresPath, a.logger)
		if err != nil {
			a.logger.Warn("live leaderboard updates disabled", "error", err)
		} else {
			defer w.Close()
			changes = w.Changes()
		}
	}
	return tui.RunScoreboard(a.board, changes, a.runtime.ScreenW, a.runtime.ScreenH)
}
