package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single frame delta after a stall
	MaxFrameDelta = 100 * time.Millisecond

	// InputHoldWindow is how long a key counts as held after its last repeat
	InputHoldWindow = 150 * time.Millisecond
)
