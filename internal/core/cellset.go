package core

import "github.com/kamstrup/intmap"

// CellSet is a set of board positions keyed by their row-major cell index.
// Off-board positions are never members.
type CellSet struct {
	board Board
	cells *intmap.Map[int, struct{}]
}

// NewCellSet creates a set on the given board holding the given positions.
func NewCellSet(board Board, positions ...Position) *CellSet {
	s := &CellSet{
		board: board,
		cells: intmap.New[int, struct{}](len(positions) + 4),
	}
	s.AddAll(positions...)
	return s
}

// Add inserts p into the set. Off-board positions are ignored.
func (s *CellSet) Add(p Position) {
	if !s.board.Contains(p) {
		return
	}
	s.cells.Put(s.board.Index(p), struct{}{})
}

// AddAll inserts every given position.
func (s *CellSet) AddAll(positions ...Position) {
	for _, p := range positions {
		s.Add(p)
	}
}

// Has reports whether p is in the set.
func (s *CellSet) Has(p Position) bool {
	if s == nil || !s.board.Contains(p) {
		return false
	}
	_, ok := s.cells.Get(s.board.Index(p))
	return ok
}

// Len returns the number of positions in the set.
func (s *CellSet) Len() int {
	if s == nil {
		return 0
	}
	return s.cells.Len()
}
