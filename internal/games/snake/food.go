package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is a single-cell collectible. An absent food means the board had no
// free cell left at the last spawn.
type Food struct {
	rng     *rand.Rand
	pos     core.Position
	present bool
}

// NewFood creates an absent food that draws positions from rng.
func NewFood(rng *rand.Rand) *Food {
	return &Food{rng: rng}
}

// Spawn places the food on a uniformly chosen cell that is neither occupied
// nor excluded. Candidates are enumerated row by row before the draw.
// Returns false and leaves the food absent when no cell is free.
func (f *Food) Spawn(occupied *core.CellSet, width, height int, excluded *core.CellSet) bool {
	var candidates []core.Position
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := core.Position{X: x, Y: y}
			if occupied.Has(p) || excluded.Has(p) {
				continue
			}
			candidates = append(candidates, p)
		}
	}

	if len(candidates) == 0 {
		f.pos = core.Position{}
		f.present = false
		return false
	}

	f.pos = candidates[f.rng.Intn(len(candidates))]
	f.present = true
	return true
}

// Position returns the food cell; ok is false when the food is absent.
func (f *Food) Position() (pos core.Position, ok bool) {
	return f.pos, f.present
}

// IsEaten reports whether the head is on the food.
func (f *Food) IsEaten(head core.Position) bool {
	return f.present && f.pos == head
}
