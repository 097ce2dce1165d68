package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/surface"
)

// Display is a game.Display fed by a Bubble Tea program. The game loop
// renders frames into it and polls keys out of it; the program obtained
// from Model forwards terminal input in and paints the latest frame.
type Display struct {
	keys    *surface.KeyQueue
	frames  chan game.Frame
	painter *surface.Painter
}

// NewDisplay creates a display painting with p. A nil painter uses the
// default glyphs.
func NewDisplay(p *surface.Painter) *Display {
	if p == nil {
		p = surface.NewPainter(surface.DefaultGlyphs())
	}
	return &Display{
		keys:    surface.NewKeyQueue(surface.DefaultQueueSize),
		frames:  make(chan game.Frame, 1),
		painter: p,
	}
}

// PollKey implements game.Display.
func (d *Display) PollKey(ctx context.Context, timeout *time.Duration) (game.Key, bool, error) {
	return d.keys.PollKey(ctx, timeout)
}

// Render implements game.Display. It never blocks: a frame the program has
// not picked up yet is replaced by f.
func (d *Display) Render(f game.Frame) error {
	for {
		select {
		case <-d.keys.Done():
			return game.ErrDisplayClosed
		default:
		}

		select {
		case d.frames <- f:
			return nil
		default:
		}

		select {
		case <-d.frames:
		default:
		}
	}
}

// Close shuts the display down. Pending and future PollKey and Render calls
// return game.ErrDisplayClosed, and the program quits.
func (d *Display) Close() {
	d.keys.Close()
}

// Done is closed once the display has been shut down.
func (d *Display) Done() <-chan struct{} {
	return d.keys.Done()
}

// Model returns the Bubble Tea model bound to d.
func (d *Display) Model() Model {
	return Model{display: d}
}

// Model is the Bubble Tea side of a Display.
type Model struct {
	display  *Display
	screen   *core.Screen
	width    int
	height   int
	quitting bool
}

// Init starts listening for frames.
func (m Model) Init() tea.Cmd {
	return m.next()
}

func (m Model) next() tea.Cmd {
	return waitForFrame(m.display.frames, m.display.keys.Done())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.screen = m.display.painter.Paint(game.Frame(msg))
		return m, m.next()

	case closedMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, interrupt) {
			m.display.Close()
			m.quitting = true
			return m, tea.Quit
		}
		if name, ok := keyName(msg); ok {
			m.display.keys.Push(name)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

// View renders the latest frame centered in the window.
func (m Model) View() string {
	if m.quitting || m.screen == nil {
		return ""
	}
	board := RenderScreen(m.screen)
	if m.width <= 0 || m.height <= 0 {
		return board
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, board)
}
