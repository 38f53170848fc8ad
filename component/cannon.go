package component

// CannonComponent is one weapon mount, a child entity of its ship
// Cooldown and LastFire are absolute simulation seconds
type CannonComponent struct {
	OffsetX, OffsetY float64

	Cooldown float64
	LastFire float64

	MissileWidth  float64
	MissileHeight float64
	MissileSpeed  float64
	MissileDamage int
	MissileSprite int
}

// Ready reports whether the cooldown elapsed at simulation time now
func (c CannonComponent) Ready(now float64) bool {
	return now-c.LastFire >= c.Cooldown
}
