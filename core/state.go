package core

// GameState is a session-level transition request consumed by the scene controller
type GameState uint8

const (
	StateNone GameState = iota
	StateRunning
	StatePaused
	StateFinished
)

func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	default:
		return "none"
	}
}
