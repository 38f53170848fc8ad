package component

// SpriteComponent is an opaque sprite index for the external renderer
type SpriteComponent struct {
	Index int
}
