// Package snake implements the wrap-around Snake game: the snake, regular
// and bonus food, scoring, the speed curve and win/loss detection.
// It is driven one tick at a time and knows nothing about the terminal.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game owns one snake, one food and one bonus food for a single session.
type Game struct {
	cfg   config.SnakeConfig
	board core.Board
	rng   *rand.Rand
	clock core.Clock

	snake *Snake
	food  *Food
	bonus *BonusFood

	tick        uint64
	score       int
	foodEaten   int
	framePeriod time.Duration
	state       State
	won         bool
}

// Option configures a Game.
type Option func(*Game)

// WithSeed seeds food placement.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithClock sets the time source for the bonus timer.
func WithClock(clock core.Clock) Option {
	return func(g *Game) {
		g.clock = clock
	}
}

// New creates a running game on the configured board.
func New(cfg config.SnakeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		board: core.Board{Width: cfg.Board.Width, Height: cfg.Board.Height},
		clock: core.SystemClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.Reset()
	return g
}

// Reset starts a new game with a centered snake and fresh food.
func (g *Game) Reset() {
	g.snake = NewSnake(g.board, MinLength)
	g.food = NewFood(g.rng)
	g.bonus = NewBonusFood(g.rng, g.clock, g.cfg.Bonus.Duration(), g.cfg.Bonus.MaxScore, g.cfg.Bonus.MinScore)
	g.food.Spawn(g.snake.Occupied(g.board), g.board.Width, g.board.Height, nil)

	g.tick = 0
	g.score = 0
	g.foodEaten = 0
	g.framePeriod = g.cfg.Speed.Initial()
	g.state = StateRunning
	g.won = false
}

// Tick applies one input command and advances the game by one step.
// Quit and None only advance; quitting is the driver's decision.
// Ticking a finished game returns its final snapshot unchanged.
func (g *Game) Tick(cmd core.Command) Snapshot {
	if g.state == StateOver {
		return g.Snapshot()
	}
	g.tick++

	if d, ok := cmd.Direction(); ok {
		g.snake.ChangeDirection(d)
	}
	g.update()
	return g.Snapshot()
}

// update runs the per-tick rules in their fixed order.
func (g *Game) update() {
	g.snake.Move(g.board.Width, g.board.Height)

	if g.snake.CheckSelfCollision() {
		g.state = StateOver
		return
	}

	if g.bonus.IsExpired() {
		g.bonus.Despawn()
	}

	head := g.snake.Head()

	if g.bonus.IsEaten(head) {
		g.score += g.bonus.Score()
		g.snake.Grow()
		g.bonus.Despawn()
	}

	if g.food.IsEaten(head) {
		g.eatFood()
	}
}

// eatFood scores regular food, maybe spawns a bonus, respawns the food and
// checks for a full board.
func (g *Game) eatFood() {
	g.score += g.cfg.Scoring.Food
	g.snake.Grow()
	g.foodEaten++

	occupied := g.snake.Occupied(g.board)

	if g.foodEaten%g.cfg.Bonus.Interval == 0 && !g.bonus.Active() {
		excluded := core.NewCellSet(g.board)
		if pos, ok := g.food.Position(); ok {
			excluded.Add(pos)
		}
		g.bonus.Spawn(occupied, g.board.Width, g.board.Height, excluded)
	}

	respawned := g.food.Spawn(occupied, g.board.Width, g.board.Height, core.NewCellSet(g.board, g.bonus.AllPositions()...))
	g.framePeriod = g.cfg.Speed.FramePeriod(g.score)

	if !respawned {
		g.score += g.cfg.Scoring.WinBonus
		g.won = true
		g.state = StateOver
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// FramePeriod returns the current time between ticks.
func (g *Game) FramePeriod() time.Duration {
	return g.framePeriod
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.state == StateOver
}

// Won reports whether the game ended by filling the board.
func (g *Game) Won() bool {
	return g.won
}

// Board returns the board dimensions.
func (g *Game) Board() core.Board {
	return g.board
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Food eaten: %d, Period: %s\n", g.tick, g.score, g.foodEaten, g.framePeriod)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Head: (%d, %d)\n", g.snake.Len(), g.snake.Direction(), g.snake.Head().X, g.snake.Head().Y)
	if pos, ok := g.food.Position(); ok {
		fmt.Fprintf(&b, "Food: (%d, %d)\n", pos.X, pos.Y)
	}
	if g.bonus.Active() {
		fmt.Fprintf(&b, "Bonus: %v, remaining %s, worth %d\n", g.bonus.AllPositions()[0], g.bonus.TimeRemaining(), g.bonus.Score())
	}
	fmt.Fprintf(&b, "State: %s, Won: %v\n", g.state, g.won)
	return b.String()
}
