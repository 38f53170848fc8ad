package component

// MissileComponent is a projectile; PlayerOwned selects which faction it can harm
type MissileComponent struct {
	Damage      int
	PlayerOwned bool
}
