package engine

import (
	"sort"

	"github.com/MarcinKacperek/space-ships/core"
)

// QueryBuilder provides a fluent interface for querying entities based on component intersection
// The query optimizes by starting with the smallest store and filtering through larger ones
type QueryBuilder struct {
	world    *World
	with     []QueryableStore
	without  []AnyStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder for finding entities with specific component combinations
//
// Example:
//
//	entities := world.Query().
//	    With(world.Components.Missile, world.Components.Transform).
//	    Without(world.Components.Death).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world: w,
		with:  make([]QueryableStore, 0, 4),
	}
}

// With adds component stores the result entities must all be present in
// Panics if called after Execute()
func (qb *QueryBuilder) With(stores ...QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.with = append(qb.with, stores...)
	return qb
}

// Without adds component stores the result entities must be absent from
// Panics if called after Execute()
func (qb *QueryBuilder) Without(stores ...AnyStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.without = append(qb.without, stores...)
	return qb
}

// Execute runs the query and returns a snapshot of matching entities
// Calling Execute() multiple times returns the cached result
//
// Returns:
//   - Empty slice if no With stores were specified
//   - Slice of entities present in every With store and absent from every Without store
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.with) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	// Starting with the smallest store minimizes the number of Has() checks
	sort.SliceStable(qb.with, func(i, j int) bool {
		return qb.with[i].Count() < qb.with[j].Count()
	})

	// All() returns a copy, filtering in place is safe
	candidates := qb.with[0].All()

	for i := 1; i < len(qb.with) && len(candidates) > 0; i++ {
		store := qb.with[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
	}

	if len(qb.without) > 0 {
		filtered := candidates[:0]
	next:
		for _, e := range candidates {
			for _, store := range qb.without {
				if store.Has(e) {
					continue next
				}
			}
			filtered = append(filtered, e)
		}
		candidates = filtered
	}

	qb.results = candidates
	return qb.results
}
