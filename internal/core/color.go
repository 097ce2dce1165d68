package core

// Color is the foreground color of a screen cell.
// Values map onto ANSI 256-color codes in the platform backends.
type Color uint8

// Colors used by the board painter.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorRed
	ColorYellow
	ColorBrightWhite
	ColorGray
)
