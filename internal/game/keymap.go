package game

import "github.com/vovakirdan/tui-snake/internal/games/snake"

// Action is what a key press means while playing.
type Action int

const (
	ActionUnrecognized Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionQuitToEnd
)

func (a Action) String() string {
	switch a {
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionQuitToEnd:
		return "QuitToEnd"
	default:
		return "Unrecognized"
	}
}

// Direction returns the heading for a move action.
func (a Action) Direction() (snake.Direction, bool) {
	switch a {
	case ActionMoveUp:
		return snake.DirUp, true
	case ActionMoveDown:
		return snake.DirDown, true
	case ActionMoveLeft:
		return snake.DirLeft, true
	case ActionMoveRight:
		return snake.DirRight, true
	}
	return 0, false
}

// Bindings lists the keys bound to each action.
type Bindings struct {
	Up    []string
	Down  []string
	Left  []string
	Right []string
	Quit  []string
}

// DefaultBindings are the arrow keys plus q for quitting to the end screen.
func DefaultBindings() Bindings {
	return Bindings{
		Up:    []string{"up"},
		Down:  []string{"down"},
		Left:  []string{"left"},
		Right: []string{"right"},
		Quit:  []string{"q"},
	}
}

// KeyMap classifies raw keys into actions.
type KeyMap struct {
	actions map[Key]Action
}

// NewKeyMap builds a KeyMap from bindings. Later actions win on duplicate keys.
func NewKeyMap(b Bindings) *KeyMap {
	km := &KeyMap{actions: make(map[Key]Action)}
	bind := func(keys []string, a Action) {
		for _, k := range keys {
			km.actions[Key(k)] = a
		}
	}
	bind(b.Up, ActionMoveUp)
	bind(b.Down, ActionMoveDown)
	bind(b.Left, ActionMoveLeft)
	bind(b.Right, ActionMoveRight)
	bind(b.Quit, ActionQuitToEnd)
	return km
}

// Classify maps k to an action. Unbound keys are ActionUnrecognized.
func (km *KeyMap) Classify(k Key) Action {
	if a, ok := km.actions[k]; ok {
		return a
	}
	return ActionUnrecognized
}
