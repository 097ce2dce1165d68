// Package snake holds the snake session model and its pure update rules.
// Nothing here performs I/O; the game loop drives it tick by tick.
package snake

import "fmt"

// Phase is the coarse game state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseEnd:
		return "end"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// TickResult is the outcome of a single AdvanceTick call.
type TickResult int

const (
	TickContinue TickResult = iota
	TickLoss
)

func (r TickResult) String() string {
	if r == TickLoss {
		return "loss"
	}
	return "continue"
}

// LossCause records why the last tick ended the game.
type LossCause int

const (
	CauseNone LossCause = iota
	CauseWall
	CauseSelf
)

func (c LossCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// Session is the state of one game. It is owned by a single game loop and
// must not be shared between goroutines.
type Session struct {
	Phase     Phase
	Points    int
	Head      Position
	Direction Direction
	Grid      *Grid
	Ticks     uint64
	Cause     LossCause
}

// NewSession creates a session in PhaseStart with an empty width x height grid.
// Call Reset before the first tick.
func NewSession(width, height int) *Session {
	return &Session{
		Phase:     PhaseStart,
		Direction: DirRight,
		Grid:      NewGrid(width, height),
	}
}

// Reset starts a fresh game: zero points, heading right, a single snake
// segment at the center of a cleared grid. Phase is left to the caller.
func (s *Session) Reset() {
	s.Points = 0
	s.Ticks = 0
	s.Cause = CauseNone
	s.Direction = DirRight
	s.Head = Position{X: s.Grid.Width() / 2, Y: s.Grid.Height() / 2}
	s.Grid.Clear()
	s.Grid.Set(s.Head, CellSnake)
}

// ApplyInput turns the snake toward d unless d is the direct reverse of the
// current heading. It reports whether d was accepted.
func (s *Session) ApplyInput(d Direction) bool {
	if d == s.Direction.Opposite() {
		return false
	}
	s.Direction = d
	return true
}

// AdvanceTick moves the head one cell along the current heading.
//
// Leaving the board or running into a snake cell is a loss and leaves the
// session untouched apart from Cause. Otherwise the old head cell is cleared,
// the new one is marked and a point is awarded.
func (s *Session) AdvanceTick() TickResult {
	next := s.Head.Step(s.Direction)

	cell, ok := s.Grid.At(next)
	switch {
	case !ok:
		s.Cause = CauseWall
		return TickLoss
	case cell == CellSnake:
		s.Cause = CauseSelf
		return TickLoss
	}

	s.Grid.Set(s.Head, CellEmpty)
	s.Grid.Set(next, CellSnake)
	s.Head = next
	s.Points++
	s.Ticks++
	return TickContinue
}
