package parameter

// Arena dimensions in world units, origin bottom-left, Y up
const (
	ArenaWidth  = 750.0
	ArenaHeight = 900.0
)
