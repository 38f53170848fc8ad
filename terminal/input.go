package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/MarcinKacperek/space-ships/parameter"
)

// KeyboardInput turns key presses into held intent
// Terminals report no key-up, so a key counts as held for a short window after its last repeat
// Implements engine.InputSource; safe for a pump goroutine writing and the frame loop reading
type KeyboardInput struct {
	mu       sync.Mutex
	lastSeen [actionCount]time.Time
	window   time.Duration
	now      func() time.Time
}

// NewKeyboardInput creates an input with the default hold window
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{
		window: parameter.InputHoldWindow,
		now:    time.Now,
	}
}

// HandleKey records a press and returns its action so the caller can handle commands
func (ki *KeyboardInput) HandleKey(ev *tcell.EventKey) Action {
	action := ActionForKey(ev)
	if !action.isHeld() {
		return action
	}

	ki.mu.Lock()
	ki.lastSeen[action] = ki.now()
	ki.mu.Unlock()
	return action
}

// Release drops all held keys, used on pause and focus loss
func (ki *KeyboardInput) Release() {
	ki.mu.Lock()
	ki.lastSeen = [actionCount]time.Time{}
	ki.mu.Unlock()
}

// Axes returns horizontal and vertical intent in [-1, 1], up is positive
func (ki *KeyboardInput) Axes() (x, y float64) {
	ki.mu.Lock()
	defer ki.mu.Unlock()

	now := ki.now()
	if ki.heldLocked(ActionRight, now) {
		x++
	}
	if ki.heldLocked(ActionLeft, now) {
		x--
	}
	if ki.heldLocked(ActionUp, now) {
		y++
	}
	if ki.heldLocked(ActionDown, now) {
		y--
	}
	return x, y
}

// Fire reports whether the fire key is held
func (ki *KeyboardInput) Fire() bool {
	ki.mu.Lock()
	defer ki.mu.Unlock()
	return ki.heldLocked(ActionFire, ki.now())
}

func (ki *KeyboardInput) heldLocked(a Action, now time.Time) bool {
	t := ki.lastSeen[a]
	return !t.IsZero() && now.Sub(t) < ki.window
}
