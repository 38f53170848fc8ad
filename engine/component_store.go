package engine

import (
	"github.com/MarcinKacperek/space-ships/component"
	"github.com/MarcinKacperek/space-ships/core"
)

// ComponentStore holds every typed component store of a world
// Pointers stay valid for the world's lifetime
type ComponentStore struct {
	// Spatial
	Transform *Store[component.TransformComponent]
	Rect      *Store[component.RectComponent]
	Moveable  *Store[component.MoveableComponent]

	// Combat
	Killable *Store[component.KillableComponent]
	Ship     *Store[component.SpaceShipComponent]
	Cannon   *Store[component.CannonComponent]
	Missile  *Store[component.MissileComponent]

	// Tags
	Player            *Store[component.PlayerTag]
	Enemy             *Store[component.EnemyTag]
	BoundInArena      *Store[component.BoundInArenaTag]
	DestroyOutOfArena *Store[component.DestroyOutOfArenaTag]
	HealthPickup      *Store[component.HealthPickupTag]

	// Hierarchy and presentation
	Parent        *Store[component.ParentComponent]
	HealthBar     *Store[component.HealthBarComponent]
	HealthSegment *Store[component.HealthSegmentComponent]
	Sprite        *Store[component.SpriteComponent]
	Text          *Store[component.TextComponent]

	// Lifecycle
	Death  *Store[component.DeathComponent]
	Expire *Store[component.ExpireComponent]
}

// newStore creates a store bound to the world registry and tracks it for lifecycle operations
func newStore[T any](w *World) *Store[T] {
	s := NewStore[T](w.registry)
	w.allStores = append(w.allStores, s)
	return s
}

// initComponentStores creates every typed store
// Called once from NewWorld
func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Transform: newStore[component.TransformComponent](w),
		Rect:      newStore[component.RectComponent](w),
		Moveable:  newStore[component.MoveableComponent](w),

		Killable: newStore[component.KillableComponent](w),
		Ship:     newStore[component.SpaceShipComponent](w),
		Cannon:   newStore[component.CannonComponent](w),
		Missile:  newStore[component.MissileComponent](w),

		Player:            newStore[component.PlayerTag](w),
		Enemy:             newStore[component.EnemyTag](w),
		BoundInArena:      newStore[component.BoundInArenaTag](w),
		DestroyOutOfArena: newStore[component.DestroyOutOfArenaTag](w),
		HealthPickup:      newStore[component.HealthPickupTag](w),

		Parent:        newStore[component.ParentComponent](w),
		HealthBar:     newStore[component.HealthBarComponent](w),
		HealthSegment: newStore[component.HealthSegmentComponent](w),
		Sprite:        newStore[component.SpriteComponent](w),
		Text:          newStore[component.TextComponent](w),

		Death:  newStore[component.DeathComponent](w),
		Expire: newStore[component.ExpireComponent](w),
	}
}

// removeFromAllStores removes entity from every registered store
func (w *World) removeFromAllStores(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// clearAllStores removes all components from every store
func (w *World) clearAllStores() {
	for _, store := range w.allStores {
		store.Clear()
	}
}
