package parameter

// Health bar widget geometry in world units
const (
	HealthBarHeight      = 10.0
	HealthBarOffset      = 10.0 // Gap above the owner's top edge
	HealthSegmentSpacing = 2.0
)

// Display text formats
const (
	ScoreTextFormat = "Score: %d"
	LifeTextFormat  = "Lives: %d"
)
