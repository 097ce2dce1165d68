package snake

import "testing"

func newPlaying(t *testing.T) *Session {
	t.Helper()
	s := NewSession(32, 16)
	s.Reset()
	s.Phase = PhasePlaying
	return s
}

func TestResetPlacesSnakeAtCenter(t *testing.T) {
	s := newPlaying(t)

	if s.Head != (Position{X: 16, Y: 8}) {
		t.Errorf("Head = %v, expected (16,8)", s.Head)
	}
	if s.Direction != DirRight {
		t.Errorf("Direction = %v, expected right", s.Direction)
	}
	if s.Points != 0 {
		t.Errorf("Points = %d, expected 0", s.Points)
	}
	if c, _ := s.Grid.At(s.Head); c != CellSnake {
		t.Errorf("head cell = %v, expected snake", c)
	}
	if n := s.Grid.Count(CellSnake); n != 1 {
		t.Errorf("snake cells = %d, expected 1", n)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s := newPlaying(t)
	for range 5 {
		s.AdvanceTick()
	}
	s.ApplyInput(DirDown)

	s.Reset()
	first := s.Snapshot()
	firstGrid := s.Grid.Clone()

	s.Reset()
	second := s.Snapshot()

	if first != second {
		t.Errorf("Reset not idempotent: %+v vs %+v", first, second)
	}
	for y := 0; y < s.Grid.Height(); y++ {
		for x := 0; x < s.Grid.Width(); x++ {
			p := Position{X: x, Y: y}
			a, _ := firstGrid.At(p)
			b, _ := s.Grid.At(p)
			if a != b {
				t.Fatalf("grid differs at %v: %v vs %v", p, a, b)
			}
		}
	}
}

func TestApplyInputRejectsReverse(t *testing.T) {
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			s := newPlaying(t)
			s.Direction = d

			if s.ApplyInput(d.Opposite()) {
				t.Errorf("reverse %v accepted while heading %v", d.Opposite(), d)
			}
			if s.Direction != d {
				t.Errorf("Direction = %v, expected %v", s.Direction, d)
			}

			for _, other := range Directions {
				if other == d.Opposite() {
					continue
				}
				s.Direction = d
				if !s.ApplyInput(other) {
					t.Errorf("%v rejected while heading %v", other, d)
				}
				if s.Direction != other {
					t.Errorf("Direction = %v, expected %v", s.Direction, other)
				}
			}
		})
	}
}

func TestAdvanceTickOffBoardIsLoss(t *testing.T) {
	tests := []struct {
		name string
		head Position
		dir  Direction
	}{
		{"left edge", Position{X: 0, Y: 5}, DirLeft},
		{"right edge", Position{X: 31, Y: 5}, DirRight},
		{"top edge", Position{X: 7, Y: 0}, DirUp},
		{"bottom edge", Position{X: 7, Y: 15}, DirDown},
		{"corner", Position{X: 0, Y: 0}, DirUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newPlaying(t)
			s.Grid.Clear()
			s.Head = tc.head
			s.Grid.Set(tc.head, CellSnake)
			s.Direction = tc.dir
			s.Points = 7

			if r := s.AdvanceTick(); r != TickLoss {
				t.Fatalf("AdvanceTick() = %v, expected loss", r)
			}
			if s.Points != 7 {
				t.Errorf("Points = %d, expected unchanged 7", s.Points)
			}
			if s.Head != tc.head {
				t.Errorf("Head moved to %v", s.Head)
			}
			if s.Cause != CauseWall {
				t.Errorf("Cause = %v, expected wall", s.Cause)
			}
		})
	}
}

func TestAdvanceTickIntoSnakeIsLoss(t *testing.T) {
	s := newPlaying(t)
	s.Grid.Set(s.Head.Step(DirRight), CellSnake)

	if r := s.AdvanceTick(); r != TickLoss {
		t.Fatalf("AdvanceTick() = %v, expected loss", r)
	}
	if s.Cause != CauseSelf {
		t.Errorf("Cause = %v, expected self", s.Cause)
	}
	if s.Points != 0 {
		t.Errorf("Points = %d, expected 0", s.Points)
	}
}

func TestAdvanceTickMovesHead(t *testing.T) {
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			s := newPlaying(t)
			s.Direction = d
			old := s.Head

			if r := s.AdvanceTick(); r != TickContinue {
				t.Fatalf("AdvanceTick() = %v, expected continue", r)
			}

			dx, dy := d.Delta()
			if s.Head != (Position{X: old.X + dx, Y: old.Y + dy}) {
				t.Errorf("Head = %v, expected one step %v from %v", s.Head, d, old)
			}
			if s.Points != 1 {
				t.Errorf("Points = %d, expected 1", s.Points)
			}
			if c, _ := s.Grid.At(old); c != CellEmpty {
				t.Errorf("old head cell = %v, expected empty", c)
			}
			if c, _ := s.Grid.At(s.Head); c != CellSnake {
				t.Errorf("new head cell = %v, expected snake", c)
			}
		})
	}
}

func TestSingleSnakeCellThroughoutPlay(t *testing.T) {
	s := newPlaying(t)
	// A lap that stays on the board: right, down, left, up.
	moves := []Direction{DirRight, DirDown, DirLeft, DirUp}
	for i := 0; i < 40; i++ {
		s.ApplyInput(moves[(i/5)%len(moves)])
		if r := s.AdvanceTick(); r != TickContinue {
			t.Fatalf("tick %d: unexpected loss at %v", i, s.Head)
		}
		if n := s.Grid.Count(CellSnake); n != 1 {
			t.Fatalf("tick %d: snake cells = %d, expected 1", i, n)
		}
	}
	if s.Points != 40 {
		t.Errorf("Points = %d, expected 40", s.Points)
	}
}

func TestRunIntoRightWall(t *testing.T) {
	s := newPlaying(t)

	if r := s.AdvanceTick(); r != TickContinue {
		t.Fatalf("first tick = %v", r)
	}
	if s.Head != (Position{X: 17, Y: 8}) || s.Points != 1 {
		t.Fatalf("after first tick head=%v points=%d", s.Head, s.Points)
	}

	s.ApplyInput(DirLeft)
	if s.Direction != DirRight {
		t.Fatalf("reverse input changed direction to %v", s.Direction)
	}

	for i := 0; i < 14; i++ {
		if r := s.AdvanceTick(); r != TickContinue {
			t.Fatalf("tick %d: unexpected loss at %v", i+2, s.Head)
		}
	}
	if s.Head.X != 31 {
		t.Fatalf("Head.X = %d, expected 31", s.Head.X)
	}

	// 16th tick would put the head at x=32.
	if r := s.AdvanceTick(); r != TickLoss {
		t.Fatalf("16th tick = %v, expected loss", r)
	}
	if s.Points != 15 {
		t.Errorf("Points = %d, expected 15", s.Points)
	}
}
