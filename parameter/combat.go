package parameter

// RamDamage is dealt to the player by a body collision with an enemy
const RamDamage = 1

// Health pickup dropped by enemies flagged to drop one
const (
	PickupTTL    = 5.0 // seconds of simulation time
	PickupWidth  = 32.0
	PickupHeight = 30.0
	PickupSprite = 18
	PickupHeal   = 1
)
