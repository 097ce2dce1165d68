package snake

// Snapshot captures the observable session state for logging and tests.
type Snapshot struct {
	Phase      Phase
	Points     int
	Ticks      uint64
	HeadX      int
	HeadY      int
	Dir        Direction
	SnakeCells int
	Cause      LossCause
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:      s.Phase,
		Points:     s.Points,
		Ticks:      s.Ticks,
		HeadX:      s.Head.X,
		HeadY:      s.Head.Y,
		Dir:        s.Direction,
		SnakeCells: s.Grid.Count(CellSnake),
		Cause:      s.Cause,
	}
}
