package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// interrupt shuts the display down from any phase.
var interrupt = key.NewBinding(key.WithKeys("ctrl+c"))

// keyName translates a Bubble Tea key message into the name the game loop
// classifies. Names match the tcell backend: "up", "enter", "esc", "q".
func keyName(msg tea.KeyMsg) (game.Key, bool) {
	if msg.Paste {
		return "", false
	}
	s := msg.String()
	if s == "" {
		return "", false
	}
	return game.Key(s), true
}
