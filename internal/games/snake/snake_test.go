package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewSnakeCentered(t *testing.T) {
	s := NewSnake(core.Board{Width: 10, Height: 10}, MinLength)

	expected := []core.Position{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	body := s.Body()
	if len(body) != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), len(body))
	}
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("Segment %d = %v, expected %v", i, body[i], expected[i])
		}
	}
	if s.Direction() != core.DirRight {
		t.Errorf("Expected initial direction right, got %s", s.Direction())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	for _, start := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		for _, next := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
			s := NewSnake(core.Board{Width: 10, Height: 10}, MinLength)
			s.direction = start
			s.ChangeDirection(next)

			want := next
			if next == start.Opposite() {
				want = start
			}
			if s.Direction() != want {
				t.Errorf("from %s, ChangeDirection(%s) gave %s, expected %s", start, next, s.Direction(), want)
			}
		}
	}
}

func TestMovePreservesLength(t *testing.T) {
	s := NewSnake(core.Board{Width: 10, Height: 10}, MinLength)

	for i := 0; i < 25; i++ {
		s.Move(10, 10)
		if s.Len() != MinLength {
			t.Fatalf("Move %d changed length to %d", i, s.Len())
		}
	}
}

func TestGrowAddsExactlyOne(t *testing.T) {
	s := NewSnake(core.Board{Width: 10, Height: 10}, MinLength)
	tail := s.Body()[s.Len()-1]

	s.Grow()
	s.Move(10, 10)
	if s.Len() != MinLength+1 {
		t.Fatalf("Expected length %d after growing, got %d", MinLength+1, s.Len())
	}
	if s.Body()[s.Len()-1] != tail {
		t.Error("Growing move should keep the old tail")
	}
	if s.GrowPending() {
		t.Error("Growth flag should be cleared by the move")
	}

	s.Move(10, 10)
	if s.Len() != MinLength+1 {
		t.Errorf("Growth should apply once, got length %d", s.Len())
	}
}

func TestMoveWrapsAllEdges(t *testing.T) {
	tests := []struct {
		name     string
		head     core.Position
		dir      core.Direction
		expected core.Position
	}{
		{"right", core.Position{X: 9, Y: 4}, core.DirRight, core.Position{X: 0, Y: 4}},
		{"left", core.Position{X: 0, Y: 4}, core.DirLeft, core.Position{X: 9, Y: 4}},
		{"up", core.Position{X: 4, Y: 0}, core.DirUp, core.Position{X: 4, Y: 9}},
		{"down", core.Position{X: 4, Y: 9}, core.DirDown, core.Position{X: 4, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			back := core.Board{Width: 10, Height: 10}.Wrap(tc.head.Add(tc.dir.Opposite()))
			s := &Snake{body: []core.Position{tc.head, back}, direction: tc.dir}
			s.Move(10, 10)
			if s.Head() != tc.expected {
				t.Errorf("Head after move = %v, expected %v", s.Head(), tc.expected)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	// Turning right puts the head on (6, 5), still occupied after the tail moves
	s := &Snake{
		body: []core.Position{
			{X: 5, Y: 5},
			{X: 5, Y: 6},
			{X: 6, Y: 6},
			{X: 6, Y: 5},
			{X: 6, Y: 4},
		},
		direction: core.DirRight,
	}
	s.Move(10, 10)

	if !s.CheckSelfCollision() {
		t.Error("Expected self collision")
	}
}

func TestChasingTailIsSafe(t *testing.T) {
	// The tail leaves (6, 5) in the same move the head enters it
	s := &Snake{
		body: []core.Position{
			{X: 5, Y: 5},
			{X: 5, Y: 6},
			{X: 6, Y: 6},
			{X: 6, Y: 5},
		},
		direction: core.DirRight,
	}
	s.Move(10, 10)

	if s.CheckSelfCollision() {
		t.Error("Moving into the vacated tail cell should not collide")
	}
}

func TestCollisionOnlyAtIndexOneOrMore(t *testing.T) {
	s := NewSnake(core.Board{Width: 10, Height: 10}, MinLength)
	for i := 0; i < 30; i++ {
		s.Move(10, 10)
		if s.CheckSelfCollision() {
			t.Fatalf("Straight-line snake collided at move %d: %v", i, s.Body())
		}
	}
}
