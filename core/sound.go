package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot      SoundType = iota // Player cannon fired
	SoundHit                        // Missile or ram impact
	SoundExplosion                  // Ship destroyed
	SoundPickup                     // Health pickup collected
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundHit:
		return "hit"
	case SoundExplosion:
		return "explosion"
	case SoundPickup:
		return "pickup"
	default:
		return "unknown"
	}
}
