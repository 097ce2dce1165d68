// Package tcellui is a game.Display drawing directly on the terminal with
// tcell. A goroutine pumps tcell events into a key queue; Render paints a
// frame and shows it centered on the screen.
package tcellui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/surface"
)

var styles = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorGreen:       tcell.StyleDefault.Foreground(tcell.PaletteColor(2)),
	core.ColorBrightGreen: tcell.StyleDefault.Foreground(tcell.PaletteColor(10)).Bold(true),
	core.ColorRed:         tcell.StyleDefault.Foreground(tcell.PaletteColor(1)),
	core.ColorYellow:      tcell.StyleDefault.Foreground(tcell.PaletteColor(3)),
	core.ColorBrightWhite: tcell.StyleDefault.Foreground(tcell.PaletteColor(15)).Bold(true),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.PaletteColor(245)),
}

func styleFor(c core.Color) tcell.Style {
	if s, ok := styles[c]; ok {
		return s
	}
	return tcell.StyleDefault
}

// Display owns a tcell screen for the duration of a game.
type Display struct {
	screen  tcell.Screen
	keys    *surface.KeyQueue
	painter *surface.Painter

	mu   sync.Mutex
	last *core.Screen

	finiOnce sync.Once
}

// New initializes the terminal and starts reading its events.
func New(p *surface.Painter) (*Display, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellui: new screen: %w", err)
	}
	return NewWithScreen(s, p)
}

// NewWithScreen wraps an uninitialized screen. A nil painter uses the
// default glyphs.
func NewWithScreen(s tcell.Screen, p *surface.Painter) (*Display, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("tcellui: init screen: %w", err)
	}
	if p == nil {
		p = surface.NewPainter(surface.DefaultGlyphs())
	}
	s.HideCursor()
	s.Clear()

	d := &Display{
		screen:  s,
		keys:    surface.NewKeyQueue(surface.DefaultQueueSize),
		painter: p,
	}
	go d.pump()
	return d, nil
}

// Size returns the terminal size in cells.
func (d *Display) Size() (w, h int) {
	return d.screen.Size()
}

// pump forwards events until the screen is finalized.
func (d *Display) pump() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				d.keys.Close()
				continue
			}
			if name, ok := keyName(ev); ok {
				d.keys.Push(name)
			}
		case *tcell.EventResize:
			d.mu.Lock()
			d.screen.Sync()
			if d.last != nil {
				d.draw(d.last)
			}
			d.mu.Unlock()
		}
	}
}

// keyName maps a tcell key event to the names the Bubble Tea backend uses.
func keyName(ev *tcell.EventKey) (game.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up", true
	case tcell.KeyDown:
		return "down", true
	case tcell.KeyLeft:
		return "left", true
	case tcell.KeyRight:
		return "right", true
	case tcell.KeyEnter:
		return "enter", true
	case tcell.KeyEscape:
		return "esc", true
	case tcell.KeyTab:
		return "tab", true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace", true
	case tcell.KeyRune:
		return game.Key(string(ev.Rune())), true
	}
	return "", false
}

// PollKey implements game.Display.
func (d *Display) PollKey(ctx context.Context, timeout *time.Duration) (game.Key, bool, error) {
	return d.keys.PollKey(ctx, timeout)
}

// Render implements game.Display.
func (d *Display) Render(f game.Frame) error {
	select {
	case <-d.keys.Done():
		return game.ErrDisplayClosed
	default:
	}

	scr := d.painter.Paint(f)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last = scr
	d.draw(scr)
	return nil
}

// draw blits scr centered on the terminal. Callers hold d.mu.
func (d *Display) draw(scr *core.Screen) {
	d.screen.Clear()
	w, h := d.screen.Size()
	ox := max((w-scr.Width())/2, 0)
	oy := max((h-scr.Height())/2, 0)

	for y := range scr.Height() {
		for x := range scr.Width() {
			c := scr.GetCell(x, y)
			d.screen.SetContent(ox+x, oy+y, c.Rune, nil, styleFor(c.Color))
		}
	}
	d.screen.Show()
}

// Close restores the terminal. It is safe to call more than once.
func (d *Display) Close() {
	d.keys.Close()
	d.finiOnce.Do(func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.screen.Fini()
	})
}

// Done is closed once the display has been shut down.
func (d *Display) Done() <-chan struct{} {
	return d.keys.Done()
}

// Run plays loop on d and restores the terminal when it returns.
func Run(ctx context.Context, d *Display, loop *game.Loop) error {
	defer d.Close()
	return loop.Run(ctx)
}
