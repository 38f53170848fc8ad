package component

import "github.com/MarcinKacperek/space-ships/vmath"

// TransformComponent is the world-space center of an entity in arena units
type TransformComponent struct {
	X, Y  float64
	Scale float64
}

// Pos returns the center as a vector
func (t TransformComponent) Pos() vmath.Vec2F {
	return vmath.Vec2F{X: t.X, Y: t.Y}
}
