package engine

import "github.com/MarcinKacperek/space-ships/core"

// EntityRegistry issues generational handles and recycles destroyed slots
// A destroyed slot's generation is bumped so stale handles never alias new entities
type EntityRegistry struct {
	generations []uint32
	alive       []bool
	free        []uint32
	count       int
}

func NewEntityRegistry() *EntityRegistry {
	return &EntityRegistry{
		generations: make([]uint32, 0, 256),
		alive:       make([]bool, 0, 256),
	}
}

// Create issues a new handle, reusing a free slot when one exists
func (r *EntityRegistry) Create() core.Entity {
	var index uint32
	if n := len(r.free); n > 0 {
		index = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		index = uint32(len(r.generations))
		r.generations = append(r.generations, 1)
		r.alive = append(r.alive, false)
	}

	r.alive[index] = true
	r.count++
	return core.NewEntity(index, r.generations[index])
}

// Destroy releases the handle, returns false for null, stale or unknown handles
func (r *EntityRegistry) Destroy(e core.Entity) bool {
	if !r.IsAlive(e) {
		return false
	}

	index := e.Index()
	r.alive[index] = false
	r.generations[index]++
	if r.generations[index] == 0 {
		// Generation 0 is reserved for the null handle
		r.generations[index] = 1
	}
	r.free = append(r.free, index)
	r.count--
	return true
}

// IsAlive reports whether the handle refers to a currently allocated entity
func (r *EntityRegistry) IsAlive(e core.Entity) bool {
	if e.IsNull() {
		return false
	}
	index := e.Index()
	if int(index) >= len(r.generations) {
		return false
	}
	return r.alive[index] && r.generations[index] == e.Generation()
}

// Count returns the number of live entities
func (r *EntityRegistry) Count() int {
	return r.count
}

// Reset releases every handle, bumping generations of live slots
func (r *EntityRegistry) Reset() {
	r.free = r.free[:0]
	for i := range r.generations {
		if r.alive[i] {
			r.alive[i] = false
			r.generations[i]++
			if r.generations[i] == 0 {
				r.generations[i] = 1
			}
		}
		r.free = append(r.free, uint32(i))
	}
	r.count = 0
}
