package component

import "github.com/MarcinKacperek/space-ships/core"

// ParentComponent links a child (weapon mount, health bar segment) to its owner
// Used for cascade cleanup and relative positioning only
type ParentComponent struct {
	Entity core.Entity
}
