package component

import "github.com/MarcinKacperek/space-ships/core"

// SpaceShipComponent carries fire intent and the ship's weapon mount entities
type SpaceShipComponent struct {
	IsAttacking bool
	Cannons     []core.Entity
}
