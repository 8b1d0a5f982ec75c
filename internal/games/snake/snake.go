package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// MinLength is the body length of a freshly created snake.
const MinLength = 3

// Snake is the player's body, head at index 0.
type Snake struct {
	body        []core.Position
	direction   core.Direction
	growPending bool
}

// NewSnake creates a snake of the given length with its head at the board
// center, body trailing to the left, moving right.
func NewSnake(board core.Board, length int) *Snake {
	length = max(length, MinLength)
	head := core.Position{X: board.Width / 2, Y: board.Height / 2}

	body := make([]core.Position, 0, length+1)
	for i := 0; i < length; i++ {
		body = append(body, board.Wrap(core.Position{X: head.X - i, Y: head.Y}))
	}

	return &Snake{
		body:      body,
		direction: core.DirRight,
	}
}

// Head returns the head position.
func (s *Snake) Head() core.Position {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Position {
	out := make([]core.Position, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// GrowPending reports whether the next move keeps the tail.
func (s *Snake) GrowPending() bool {
	return s.growPending
}

// ChangeDirection turns the snake unless d would reverse it onto itself.
func (s *Snake) ChangeDirection(d core.Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// Move advances the head one cell, wrapping at the board edges, and drops
// the tail unless growth is pending.
func (s *Snake) Move(width, height int) {
	board := core.Board{Width: width, Height: height}
	head := board.Wrap(s.Head().Add(s.direction))

	s.body = append(s.body, core.Position{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	if s.growPending {
		s.growPending = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// Grow makes the next Move keep the tail.
func (s *Snake) Grow() {
	s.growPending = true
}

// CheckSelfCollision reports whether the head overlaps any other segment.
func (s *Snake) CheckSelfCollision() bool {
	head := s.Head()
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Occupied returns the body as a cell set.
func (s *Snake) Occupied(board core.Board) *core.CellSet {
	return core.NewCellSet(board, s.body...)
}
