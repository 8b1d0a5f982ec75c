package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the game's lifecycle state.
type State string

const (
	StateRunning State = "running"
	StateOver    State = "game_over"
)

// BonusSnapshot is the bonus food as seen by a renderer.
type BonusSnapshot struct {
	Active    bool
	Cells     []core.Position
	Remaining time.Duration
	Value     int // score if eaten now
}

// Snapshot captures everything a renderer needs to draw a frame, and is
// also used for determinism checks in tests.
type Snapshot struct {
	Tick        uint64
	Board       core.Board
	Body        []core.Position // head first
	Direction   core.Direction
	Food        core.Position
	HasFood     bool
	Bonus       BonusSnapshot
	Score       int
	FoodEaten   int
	FramePeriod time.Duration
	State       State
	Won         bool
}

// Head returns the head position from the snapshot body.
func (s Snapshot) Head() core.Position {
	if len(s.Body) == 0 {
		return core.Position{}
	}
	return s.Body[0]
}

// Snapshot returns the current render-ready state.
func (g *Game) Snapshot() Snapshot {
	food, hasFood := g.food.Position()

	return Snapshot{
		Tick:      g.tick,
		Board:     g.board,
		Body:      g.snake.Body(),
		Direction: g.snake.Direction(),
		Food:      food,
		HasFood:   hasFood,
		Bonus: BonusSnapshot{
			Active:    g.bonus.Active(),
			Cells:     g.bonus.AllPositions(),
			Remaining: g.bonus.TimeRemaining(),
			Value:     g.bonus.Score(),
		},
		Score:       g.score,
		FoodEaten:   g.foodEaten,
		FramePeriod: g.framePeriod,
		State:       g.state,
		Won:         g.won,
	}
}
