package parameter

// Player ship defaults
const (
	PlayerWidth    = 50.0
	PlayerHeight   = 40.0
	PlayerSpeed    = 250.0
	PlayerHealth   = 3
	PlayerCooldown = 0.5
	PlayerSprite   = 0
)

// Player cannon missile defaults
const (
	MissileWidth  = 6.0
	MissileHeight = 16.0
	MissileSpeed  = 500.0
	MissileDamage = 1
	MissileSprite = 5
)
