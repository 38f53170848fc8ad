package component

import "github.com/MarcinKacperek/space-ships/core"

// HealthBarComponent is the display state of a segmented health bar
// LastHealth caches the value the segments were colored for
type HealthBarComponent struct {
	Owner      core.Entity
	LastHealth int
	Segments   []core.Entity
}

// HealthSegmentComponent is one bar cell, Filled renders green, otherwise red
type HealthSegmentComponent struct {
	Index  int
	Filled bool
}
