package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestFoodSpawnValidity(t *testing.T) {
	board := core.Board{Width: 12, Height: 10}
	occupied := core.NewCellSet(board)
	for x := 0; x < 12; x++ {
		occupied.Add(core.Position{X: x, Y: 3})
	}
	excluded := core.NewCellSet(board, core.Position{X: 0, Y: 0}, core.Position{X: 11, Y: 9})

	for seed := int64(0); seed < 200; seed++ {
		f := NewFood(rand.New(rand.NewSource(seed)))
		if !f.Spawn(occupied, board.Width, board.Height, excluded) {
			t.Fatalf("seed %d: spawn failed on a board with free cells", seed)
		}
		pos, ok := f.Position()
		if !ok {
			t.Fatalf("seed %d: food should be present", seed)
		}
		if occupied.Has(pos) {
			t.Errorf("seed %d: food spawned on occupied cell %v", seed, pos)
		}
		if excluded.Has(pos) {
			t.Errorf("seed %d: food spawned on excluded cell %v", seed, pos)
		}
		if !board.Contains(pos) {
			t.Errorf("seed %d: food spawned off board at %v", seed, pos)
		}
	}
}

func TestFoodSpawnLastFreeCell(t *testing.T) {
	board := core.Board{Width: 3, Height: 3}
	occupied := core.NewCellSet(board)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x != 2 || y != 1 {
				occupied.Add(core.Position{X: x, Y: y})
			}
		}
	}

	f := NewFood(rand.New(rand.NewSource(7)))
	f.Spawn(occupied, 3, 3, nil)

	pos, ok := f.Position()
	if !ok || pos != (core.Position{X: 2, Y: 1}) {
		t.Errorf("Expected food on the only free cell (2, 1), got %v (present=%v)", pos, ok)
	}
}

func TestFoodSpawnFullBoard(t *testing.T) {
	board := core.Board{Width: 2, Height: 2}
	occupied := core.NewCellSet(board, core.Position{X: 0, Y: 0}, core.Position{X: 1, Y: 0})
	excluded := core.NewCellSet(board, core.Position{X: 0, Y: 1}, core.Position{X: 1, Y: 1})

	f := NewFood(rand.New(rand.NewSource(1)))
	f.Spawn(core.NewCellSet(board), 2, 2, nil)

	if f.Spawn(occupied, 2, 2, excluded) {
		t.Error("Spawn should fail when every cell is occupied or excluded")
	}
	if _, ok := f.Position(); ok {
		t.Error("Food should be absent on a full board")
	}
	if f.IsEaten(core.Position{X: 0, Y: 0}) {
		t.Error("Absent food can never be eaten")
	}
}

func TestFoodSpawnDeterministic(t *testing.T) {
	board := core.Board{Width: 20, Height: 20}
	occupied := core.NewCellSet(board, core.Position{X: 10, Y: 10})

	a := NewFood(rand.New(rand.NewSource(99)))
	b := NewFood(rand.New(rand.NewSource(99)))
	for i := 0; i < 20; i++ {
		a.Spawn(occupied, 20, 20, nil)
		b.Spawn(occupied, 20, 20, nil)
		pa, _ := a.Position()
		pb, _ := b.Position()
		if pa != pb {
			t.Fatalf("Same seed diverged at spawn %d: %v vs %v", i, pa, pb)
		}
	}
}

func TestFoodIsEaten(t *testing.T) {
	f := NewFood(rand.New(rand.NewSource(1)))
	board := core.Board{Width: 1, Height: 1}
	f.Spawn(core.NewCellSet(board), 1, 1, nil)

	if !f.IsEaten(core.Position{X: 0, Y: 0}) {
		t.Error("Food at (0, 0) should be eaten by a head at (0, 0)")
	}
	if f.IsEaten(core.Position{X: 1, Y: 0}) {
		t.Error("Food should not be eaten from another cell")
	}
}
