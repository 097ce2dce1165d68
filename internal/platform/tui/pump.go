// Package tui runs the snake game over a Bubble Tea program, either on the
// local terminal or per SSH session through wish.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// frameMsg carries a frame rendered by the game loop into the program.
type frameMsg game.Frame

// closedMsg is delivered once the display has been shut down.
type closedMsg struct{}

// waitForFrame blocks until the loop renders the next frame.
func waitForFrame(frames <-chan game.Frame, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-frames:
			return frameMsg(f)
		case <-done:
			return closedMsg{}
		}
	}
}
