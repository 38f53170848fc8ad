package engine

import "github.com/MarcinKacperek/space-ships/core"

// Store is a generic container for a specific component type T
// Uses sparse set pattern: dense entity/value arrays plus an index map
type Store[T any] struct {
	registry *EntityRegistry
	sparse   map[core.Entity]int
	entities []core.Entity
	values   []T
}

// NewStore creates a new component store for type T validated against registry
func NewStore[T any](registry *EntityRegistry) *Store[T] {
	return &Store[T]{
		registry: registry,
		sparse:   make(map[core.Entity]int),
		entities: make([]core.Entity, 0, 64),
		values:   make([]T, 0, 64),
	}
}

// Add attaches a component, fails with ErrInvalidEntity for dead or unknown entities
func (s *Store[T]) Add(e core.Entity, val T) error {
	if s.registry != nil && !s.registry.IsAlive(e) {
		return invalidEntity(e)
	}
	s.put(e, val)
	return nil
}

// Set inserts or updates a component for an entity
// A dead entity here means the deferred removal discipline broke, so it panics
func (s *Store[T]) Set(e core.Entity, val T) {
	if s.registry != nil && !s.registry.IsAlive(e) {
		panic(invalidEntity(e))
	}
	s.put(e, val)
}

func (s *Store[T]) put(e core.Entity, val T) {
	if idx, ok := s.sparse[e]; ok {
		s.values[idx] = val
		return
	}
	s.sparse[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	idx, ok := s.sparse[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[idx], true
}

// Remove deletes the entity's component, swapping the last element into its slot
func (s *Store[T]) Remove(e core.Entity) {
	idx, ok := s.sparse[e]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if idx != last {
		moved := s.entities[last]
		s.entities[idx] = moved
		s.values[idx] = s.values[last]
		s.sparse[moved] = idx
	}
	var zero T
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	delete(s.sparse, e)
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.sparse[e]
	return ok
}

// All returns a snapshot of entities with this component type
// Safe to mutate stores while ranging over the result
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.sparse = make(map[core.Entity]int)
	s.entities = s.entities[:0]
	s.values = s.values[:0]
}
