package component

import "github.com/MarcinKacperek/space-ships/vmath"

// RectComponent holds AABB extents used for collision and arena checks
// Immutable after creation
type RectComponent struct {
	Width, Height float64
}

// Bounds combines extents with a center position
func (r RectComponent) Bounds(t TransformComponent) vmath.AABB {
	return vmath.AABB{CenterX: t.X, CenterY: t.Y, Width: r.Width, Height: r.Height}
}
