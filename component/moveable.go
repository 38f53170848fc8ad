package component

import "github.com/MarcinKacperek/space-ships/vmath"

// MoveableComponent is movement intent: unit (or zero) direction scaled by speed per second
type MoveableComponent struct {
	Direction vmath.Vec2F
	Speed     float64
}
