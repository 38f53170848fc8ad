package terminal

import "github.com/gdamore/tcell/v2"

// Action is a semantic key binding
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionFire
	ActionPause
	ActionMute
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{"none", "left", "right", "up", "down", "fire", "pause", "mute", "quit"}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// isHeld reports whether the action feeds continuous intent rather than a one-shot command
func (a Action) isHeld() bool {
	return a >= ActionLeft && a <= ActionFire
}

var specialKeys = map[tcell.Key]Action{
	tcell.KeyLeft:   ActionLeft,
	tcell.KeyRight:  ActionRight,
	tcell.KeyUp:     ActionUp,
	tcell.KeyDown:   ActionDown,
	tcell.KeyEscape: ActionQuit,
	tcell.KeyCtrlC:  ActionQuit,
}

var runeKeys = map[rune]Action{
	'a': ActionLeft,
	'h': ActionLeft,
	'd': ActionRight,
	'l': ActionRight,
	'w': ActionUp,
	'k': ActionUp,
	's': ActionDown,
	'j': ActionDown,
	' ': ActionFire,
	'p': ActionPause,
	'm': ActionMute,
	'q': ActionQuit,
}

// ActionForKey maps a tcell key event to its binding
func ActionForKey(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return runeKeys[r]
	}
	return specialKeys[ev.Key()]
}
