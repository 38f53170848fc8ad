package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Open creates and initializes the terminal screen
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// Pump polls screen events until ctx is done or the screen is finalized
// Held keys feed input, one-shot actions are sent to commands
func Pump(ctx context.Context, screen tcell.Screen, input *KeyboardInput, commands chan<- Action) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			// Wake PollEvent
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			action := input.HandleKey(ev)
			if action == ActionNone || action.isHeld() {
				continue
			}
			select {
			case commands <- action:
			case <-ctx.Done():
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventFocus:
			if !ev.Focused {
				input.Release()
			}
		}
	}
}
