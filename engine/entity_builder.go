package engine

import "github.com/MarcinKacperek/space-ships/core"

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components
//
// Example usage:
//
//	entity := engine.With(
//	    engine.With(world.NewEntity(), world.Components.Transform, component.TransformComponent{X: 10, Y: 5, Scale: 1}),
//	    world.Components.Rect, component.RectComponent{Width: 4, Height: 4},
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates a new EntityBuilder around a freshly allocated entity
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Set(eb.entity, component)
	return eb
}

// Entity returns the handle being built, usable for child links before Build()
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build finalizes entity construction and returns the entity handle
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
