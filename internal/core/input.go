package core

// Command is a semantic input command, abstracted from physical key presses.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdQuit
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdUp:
		return "Up"
	case CmdDown:
		return "Down"
	case CmdLeft:
		return "Left"
	case CmdRight:
		return "Right"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction maps a directional command to its direction.
// ok is false for None and Quit.
func (c Command) Direction() (d Direction, ok bool) {
	switch c {
	case CmdUp:
		return DirUp, true
	case CmdDown:
		return DirDown, true
	case CmdLeft:
		return DirLeft, true
	case CmdRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// InputSource is a non-blocking poll for the next command.
// CmdNone means nothing was pressed since the last poll.
type InputSource interface {
	Poll() Command
}

// DefaultInputDepth is how many directional presses are buffered between frames.
const DefaultInputDepth = 3

// InputQueue buffers commands between frames and hands them out one per poll.
// A quit request jumps the queue.
type InputQueue struct {
	pending []Command
	depth   int
	quit    bool
}

// NewInputQueue creates a queue holding at most depth directional commands.
func NewInputQueue(depth int) *InputQueue {
	if depth <= 0 {
		depth = DefaultInputDepth
	}
	return &InputQueue{
		pending: make([]Command, 0, depth),
		depth:   depth,
	}
}

// Push records a command. Directional commands beyond the depth are dropped.
func (q *InputQueue) Push(c Command) {
	switch c {
	case CmdNone:
		return
	case CmdQuit:
		q.quit = true
		return
	}
	if len(q.pending) >= q.depth {
		return
	}
	q.pending = append(q.pending, c)
}

// Poll returns the next command, or CmdNone when the queue is empty.
func (q *InputQueue) Poll() Command {
	if q.quit {
		return CmdQuit
	}
	if len(q.pending) == 0 {
		return CmdNone
	}
	c := q.pending[0]
	q.pending = q.pending[1:]
	return c
}

// Ensure InputQueue implements InputSource
var _ InputSource = (*InputQueue)(nil)

// Clear drops all buffered commands, including a pending quit.
func (q *InputQueue) Clear() {
	q.pending = q.pending[:0]
	q.quit = false
}
