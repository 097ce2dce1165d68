// Package surface holds the backend-independent half of a snake Display:
// the minimum terminal footprint, painting frames into a core.Screen and a
// key queue that implements the timed PollKey contract.
package surface

import "fmt"

// Layout rows above and around the board.
const (
	hudRows     = 1 // score line
	borderCells = 2 // one cell on each side
)

// Footprint returns the terminal size needed to show a gridW x gridH board:
// the grid plus its border plus the score line.
func Footprint(gridW, gridH int) (w, h int) {
	return gridW + borderCells, gridH + borderCells + hudRows
}

// SizeError reports a terminal too small for the board.
type SizeError struct {
	RequiredW, RequiredH int
	ActualW, ActualH     int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("terminal too small: need %dx%d, have %dx%d",
		e.RequiredW, e.RequiredH, e.ActualW, e.ActualH)
}

// CheckSize returns a *SizeError when a termW x termH terminal cannot hold
// a gridW x gridH board.
func CheckSize(gridW, gridH, termW, termH int) error {
	w, h := Footprint(gridW, gridH)
	if termW < w || termH < h {
		return &SizeError{
			RequiredW: w,
			RequiredH: h,
			ActualW:   termW,
			ActualH:   termH,
		}
	}
	return nil
}
