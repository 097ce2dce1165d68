package snake

import "fmt"

// Cell is the occupancy state of one grid position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellSnake
	// CellFood is part of the board vocabulary but nothing places it yet:
	// the snake never grows and points are awarded per tick.
	CellFood
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellSnake:
		return "snake"
	case CellFood:
		return "food"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Position is a grid coordinate. X grows to the right, Y grows downward.
type Position struct {
	X, Y int
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is the snake's heading.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists every heading, in declaration order.
var Directions = []Direction{DirRight, DirDown, DirLeft, DirUp}

// Delta returns the unit vector for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the direct reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
