// Package game runs the snake phase machine: it polls keys from a Display,
// advances the session on a fixed tick and asks the Display to redraw.
package game

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrDisplayClosed is returned by a Display once it has been shut down.
var ErrDisplayClosed = errors.New("game: display closed")

// Key is a key name as reported by the terminal backend ("up", "q", "enter").
type Key string

// Frame is everything a Display needs to draw one screen.
type Frame struct {
	Phase   snake.Phase
	Grid    *snake.Grid // private copy, safe to keep
	Score   string
	Overlay []string // centered lines, empty when nothing is overlaid
}

// Display is the terminal surface the loop draws on.
//
// PollKey blocks until a key arrives when timeout is nil. With a timeout it
// waits at most that long and returns ok=false on expiry.
type Display interface {
	PollKey(ctx context.Context, timeout *time.Duration) (key Key, ok bool, err error)
	Render(f Frame) error
}
