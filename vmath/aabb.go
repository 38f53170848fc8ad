package vmath

// AABB is an axis-aligned box described by its center and full extents
type AABB struct {
	CenterX, CenterY float64
	Width, Height    float64
}

func (b AABB) Left() float64   { return b.CenterX - b.Width/2 }
func (b AABB) Right() float64  { return b.Left() + b.Width }
func (b AABB) Bottom() float64 { return b.CenterY - b.Height/2 }
func (b AABB) Top() float64    { return b.Bottom() + b.Height }

// Collide reports overlap of two boxes, touching edges count as colliding
func Collide(a, b AABB) bool {
	return a.Left() <= b.Right() &&
		a.Right() >= b.Left() &&
		a.Bottom() <= b.Top() &&
		a.Top() >= b.Bottom()
}
