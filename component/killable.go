package component

import "github.com/MarcinKacperek/space-ships/core"

// KillableComponent tracks health of a damageable entity
// Health stays within [0, MaxHealth]; mutate only through DealDamage and GainHealth
type KillableComponent struct {
	Health    int
	MaxHealth int

	// Points awarded to the session score when a non-player entity dies
	Points int

	DropsPickup bool

	// HealthBar is the display entity built lazily by the UI system, null until then
	HealthBar core.Entity
}

// NewKillable creates a full-health component
func NewKillable(maxHealth, points int, dropsPickup bool) KillableComponent {
	return KillableComponent{
		Health:      maxHealth,
		MaxHealth:   maxHealth,
		Points:      points,
		DropsPickup: dropsPickup,
	}
}

// DealDamage lowers health, non-positive damage is ignored
func (k *KillableComponent) DealDamage(damage int) {
	if damage <= 0 {
		return
	}
	k.Health -= damage
	if k.Health < 0 {
		k.Health = 0
	}
}

// GainHealth raises health up to MaxHealth, non-positive amounts are ignored
func (k *KillableComponent) GainHealth(amount int) {
	if amount <= 0 {
		return
	}
	k.Health += amount
	if k.Health > k.MaxHealth {
		k.Health = k.MaxHealth
	}
}

func (k *KillableComponent) IsAlive() bool {
	return k.Health > 0
}
