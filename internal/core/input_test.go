package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInputQueueOrder(t *testing.T) {
	q := NewInputQueue(3)

	assert.Equal(t, CmdNone, q.Poll(), "empty queue polls None")

	q.Push(CmdUp)
	q.Push(CmdLeft)
	assert.Equal(t, CmdUp, q.Poll())
	assert.Equal(t, CmdLeft, q.Poll())
	assert.Equal(t, CmdNone, q.Poll())
}

func TestInputQueueDepth(t *testing.T) {
	q := NewInputQueue(2)

	q.Push(CmdUp)
	q.Push(CmdLeft)
	q.Push(CmdDown) // dropped

	assert.Equal(t, CmdUp, q.Poll())
	assert.Equal(t, CmdLeft, q.Poll())
	assert.Equal(t, CmdNone, q.Poll())
}

func TestInputQueueQuitJumpsQueue(t *testing.T) {
	q := NewInputQueue(3)

	q.Push(CmdUp)
	q.Push(CmdQuit)

	assert.Equal(t, CmdQuit, q.Poll())
	assert.Equal(t, CmdQuit, q.Poll(), "quit is sticky until cleared")

	q.Clear()
	assert.Equal(t, CmdNone, q.Poll())
}

func TestCommandDirection(t *testing.T) {
	tests := []struct {
		cmd Command
		dir Direction
		ok  bool
	}{
		{CmdUp, DirUp, true},
		{CmdDown, DirDown, true},
		{CmdLeft, DirLeft, true},
		{CmdRight, DirRight, true},
		{CmdNone, 0, false},
		{CmdQuit, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.cmd.String(), func(t *testing.T) {
			d, ok := tc.cmd.Direction()
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.dir, d)
			}
		})
	}
}

func TestCellSet(t *testing.T) {
	b := Board{Width: 4, Height: 3}
	s := NewCellSet(b, Position{X: 0, Y: 0}, Position{X: 3, Y: 2})

	assert.True(t, s.Has(Position{X: 0, Y: 0}))
	assert.True(t, s.Has(Position{X: 3, Y: 2}))
	assert.False(t, s.Has(Position{X: 1, Y: 0}))

	s.Add(Position{X: 9, Y: 9}) // off-board, ignored
	s.Add(Position{X: 0, Y: 0}) // duplicate
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Has(Position{X: -1, Y: 0}))

	var nilSet *CellSet
	assert.False(t, nilSet.Has(Position{}))
	assert.Equal(t, 0, nilSet.Len())
}

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	assert.Equal(t, start, c.Now())
	c.Advance(1500 * time.Millisecond)
	assert.Equal(t, start.Add(1500*time.Millisecond), c.Now())
}
