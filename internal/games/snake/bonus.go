package snake

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// BonusSize is the side length of the bonus food footprint.
const BonusSize = 2

// BonusFood is a transient 2x2 collectible whose value decays linearly from
// maxScore to minScore over its lifetime.
type BonusFood struct {
	rng      *rand.Rand
	clock    core.Clock
	duration time.Duration
	maxScore int
	minScore int

	pos       core.Position // top-left cell
	spawnedAt time.Time
	active    bool
}

// NewBonusFood creates an inactive bonus food.
func NewBonusFood(rng *rand.Rand, clock core.Clock, duration time.Duration, maxScore, minScore int) *BonusFood {
	return &BonusFood{
		rng:      rng,
		clock:    clock,
		duration: duration,
		maxScore: maxScore,
		minScore: minScore,
	}
}

// footprint returns the cells covered with top-left at p.
func footprint(p core.Position) []core.Position {
	return []core.Position{
		p,
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X + 1, Y: p.Y + 1},
	}
}

// Spawn places the bonus on a random top-left cell whose whole footprint
// fits on the board without touching occupied or excluded cells. The
// footprint never wraps. On failure the bonus is cleared and inactive.
func (b *BonusFood) Spawn(occupied *core.CellSet, width, height int, excluded *core.CellSet) bool {
	var candidates []core.Position
	for y := 0; y <= height-BonusSize; y++ {
		for x := 0; x <= width-BonusSize; x++ {
			p := core.Position{X: x, Y: y}
			free := true
			for _, c := range footprint(p) {
				if occupied.Has(c) || excluded.Has(c) {
					free = false
					break
				}
			}
			if free {
				candidates = append(candidates, p)
			}
		}
	}

	if len(candidates) == 0 {
		b.Despawn()
		return false
	}

	b.pos = candidates[b.rng.Intn(len(candidates))]
	b.spawnedAt = b.clock.Now()
	b.active = true
	return true
}

// Active reports whether the bonus is on the board.
func (b *BonusFood) Active() bool {
	return b.active
}

// AllPositions returns the four covered cells, or nil when inactive.
func (b *BonusFood) AllPositions() []core.Position {
	if !b.active {
		return nil
	}
	return footprint(b.pos)
}

// IsEaten reports whether the head is inside the active footprint.
func (b *BonusFood) IsEaten(head core.Position) bool {
	if !b.active {
		return false
	}
	for _, c := range footprint(b.pos) {
		if c == head {
			return true
		}
	}
	return false
}

func (b *BonusFood) elapsed() time.Duration {
	return b.clock.Now().Sub(b.spawnedAt)
}

// IsExpired reports whether an active bonus has outlived its duration.
func (b *BonusFood) IsExpired() bool {
	return b.active && b.elapsed() > b.duration
}

// TimeRemaining returns how long the bonus has left, 0 when inactive.
func (b *BonusFood) TimeRemaining() time.Duration {
	if !b.active {
		return 0
	}
	return max(0, b.duration-b.elapsed())
}

// Score returns the value of eating the bonus right now: maxScore at spawn,
// falling linearly to minScore at the end of the duration. 0 when inactive.
func (b *BonusFood) Score() int {
	if !b.active {
		return 0
	}
	remaining := 0.0
	if b.duration > 0 {
		remaining = 1 - float64(b.elapsed())/float64(b.duration)
	}
	remaining = core.ClampF(remaining, 0, 1)
	return int(math.Round(float64(b.minScore) + float64(b.maxScore-b.minScore)*remaining))
}

// Despawn removes the bonus from the board. Safe to call when inactive.
func (b *BonusFood) Despawn() {
	b.pos = core.Position{}
	b.spawnedAt = time.Time{}
	b.active = false
}
