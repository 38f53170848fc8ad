package engine

import "time"

// PausableClock converts wall-clock frame deltas into simulation seconds
// Pause is a time scale of zero: systems still run but see no elapsed time
type PausableClock struct {
	// Simulation time in seconds since the world started
	now float64

	// Real elapsed time, unaffected by scale
	realElapsed time.Duration

	scale      float64
	savedScale float64
	isPaused   bool
}

// NewPausableClock creates a clock at time zero running at scale 1
func NewPausableClock() *PausableClock {
	return &PausableClock{
		scale:      1,
		savedScale: 1,
	}
}

// Advance scales a real delta and moves simulation time, returns the simulation delta in seconds
func (pc *PausableClock) Advance(realDt time.Duration) float64 {
	if realDt < 0 {
		realDt = 0
	}
	pc.realElapsed += realDt

	dt := realDt.Seconds() * pc.scale
	pc.now += dt
	return dt
}

// Now returns current simulation time in seconds
func (pc *PausableClock) Now() float64 {
	return pc.now
}

// RealElapsed returns total wall-clock time fed to the clock
func (pc *PausableClock) RealElapsed() time.Duration {
	return pc.realElapsed
}

// Scale returns the effective time scale, zero while paused
func (pc *PausableClock) Scale() float64 {
	return pc.scale
}

// SetScale changes the time scale, negative values are treated as zero
// While paused the value is stored and applied on Resume
func (pc *PausableClock) SetScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	if pc.isPaused {
		pc.savedScale = scale
		return
	}
	pc.scale = scale
}

// Pause stops simulation time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused {
		return
	}
	pc.isPaused = true
	pc.savedScale = pc.scale
	pc.scale = 0
}

// Resume restores the scale active before Pause
func (pc *PausableClock) Resume() {
	if !pc.isPaused {
		return
	}
	pc.isPaused = false
	pc.scale = pc.savedScale
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused
}
