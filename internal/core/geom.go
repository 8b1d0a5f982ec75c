// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies on the terminal (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Position is a cell coordinate on the board, 0-indexed.
type Position struct {
	X, Y int
}

// Add returns the position offset by the given direction's unit vector.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction is one of the four movement directions.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit step for the direction. Y grows downward.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Board is a rectangular wrap-around grid.
type Board struct {
	Width  int
	Height int
}

// Cells returns the number of cells on the board.
func (b Board) Cells() int {
	return b.Width * b.Height
}

// Wrap reduces p into the board, re-entering from the opposite edge.
func (b Board) Wrap(p Position) Position {
	return Position{X: FloorMod(p.X, b.Width), Y: FloorMod(p.Y, b.Height)}
}

// Contains reports whether p lies on the board without wrapping.
func (b Board) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Index maps an on-board position to its row-major cell index.
func (b Board) Index(p Position) int {
	return p.Y*b.Width + p.X
}

// FloorMod returns a mod n with the sign of n, so negative values wrap
// to the top of the range instead of staying negative.
func FloorMod(a, n int) int {
	if n <= 0 {
		return a
	}
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
