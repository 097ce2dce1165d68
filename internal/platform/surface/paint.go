package surface

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Glyphs maps cell kinds to runes.
type Glyphs struct {
	Empty rune
	Snake rune
	Food  rune
}

// DefaultGlyphs returns the classic blank / # / O table.
func DefaultGlyphs() Glyphs {
	return Glyphs{Empty: ' ', Snake: '#', Food: 'O'}
}

// For returns the rune and color drawn for c.
func (g Glyphs) For(c snake.Cell) (rune, core.Color) {
	switch c {
	case snake.CellSnake:
		return g.Snake, core.ColorBrightGreen
	case snake.CellFood:
		return g.Food, core.ColorRed
	default:
		return g.Empty, core.ColorDefault
	}
}

// Painter draws frames into screen buffers.
type Painter struct {
	glyphs Glyphs
}

// NewPainter creates a painter using the given glyph table.
func NewPainter(g Glyphs) *Painter {
	return &Painter{glyphs: g}
}

// Paint renders f into a new screen sized to the board footprint.
//
// Row 0 holds the score; the bordered board follows. Overlay lines are boxed
// and centered on the board when the box fits inside it.
func (p *Painter) Paint(f game.Frame) *core.Screen {
	gw, gh := 0, 0
	if f.Grid != nil {
		gw, gh = f.Grid.Width(), f.Grid.Height()
	}
	w, h := Footprint(gw, gh)
	dst := core.NewScreen(w, h)

	dst.DrawText(1, 0, f.Score, core.ColorYellow)

	board := core.NewRect(0, hudRows, w, h-hudRows)
	dst.DrawBox(board, core.ColorGray)

	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			cell, _ := f.Grid.At(snake.Position{X: x, Y: y})
			r, c := p.glyphs.For(cell)
			dst.SetColored(board.X+1+x, board.Y+1+y, r, c)
		}
	}

	if len(f.Overlay) > 0 {
		inner := core.NewRect(board.X+1, board.Y+1, gw, gh)
		drawOverlay(dst, inner, f.Overlay)
	}
	return dst
}

// drawOverlay centers lines inside area, boxed when there is room.
func drawOverlay(dst *core.Screen, area core.Rect, lines []string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}

	boxW, boxH := maxLen+4, len(lines)+2
	_, cy := area.Center()
	top := cy - len(lines)/2

	if boxW <= area.W && boxH <= area.H {
		box := core.NewRect(area.X+(area.W-boxW)/2, core.Clamp(top-1, area.Y, area.Bottom()-boxH), boxW, boxH)
		for y := box.Y; y < box.Bottom(); y++ {
			for x := box.X; x < box.Right(); x++ {
				dst.Set(x, y, ' ')
			}
		}
		dst.DrawBox(box, core.ColorBrightWhite)
		top = box.Y + 1
	}

	for i, l := range lines {
		dst.DrawTextCentered(area, top+i, l, core.ColorBrightWhite)
	}
}
