package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/MarcinKacperek/space-ships/parameter"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestInput() (*KeyboardInput, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	ki := NewKeyboardInput()
	ki.now = clock.now
	return ki, clock
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionRight},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionDown},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{key(' '), ActionFire},
		{key('W'), ActionUp},
		{key('p'), ActionPause},
		{key('m'), ActionMute},
		{key('z'), ActionNone},
		{nil, ActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ActionForKey(tt.ev))
	}
}

func TestKeyboardInputHoldWindow(t *testing.T) {
	ki, clock := newTestInput()

	x, y := ki.Axes()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.False(t, ki.Fire())

	ki.HandleKey(key('d'))
	ki.HandleKey(key('w'))
	ki.HandleKey(key(' '))

	x, y = ki.Axes()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 1.0, y)
	assert.True(t, ki.Fire())

	clock.advance(parameter.InputHoldWindow / 2)
	x, _ = ki.Axes()
	assert.Equal(t, 1.0, x, "still held inside the window")

	clock.advance(parameter.InputHoldWindow)
	x, y = ki.Axes()
	assert.Zero(t, x, "released after the window")
	assert.Zero(t, y)
	assert.False(t, ki.Fire())
}

func TestKeyboardInputOpposingKeysCancel(t *testing.T) {
	ki, _ := newTestInput()
	ki.HandleKey(key('a'))
	ki.HandleKey(key('d'))
	ki.HandleKey(key('s'))

	x, y := ki.Axes()
	assert.Zero(t, x)
	assert.Equal(t, -1.0, y)
}

func TestKeyboardInputCommandsNotHeld(t *testing.T) {
	ki, _ := newTestInput()
	assert.Equal(t, ActionPause, ki.HandleKey(key('p')))
	assert.Equal(t, ActionQuit, ki.HandleKey(key('q')))
	x, y := ki.Axes()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestKeyboardInputRelease(t *testing.T) {
	ki, _ := newTestInput()
	ki.HandleKey(key(' '))
	ki.Release()
	assert.False(t, ki.Fire())
}
