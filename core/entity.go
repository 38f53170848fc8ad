package core

import "fmt"

// Entity is a generational handle: low 32 bits slot index, high 32 bits generation
// Zero is the null entity, live handles always carry generation >= 1
type Entity uint64

// NewEntity packs a slot index and generation into a handle
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the backing slot index
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation the handle was issued for
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsNull reports whether the handle is the zero value
func (e Entity) IsNull() bool {
	return e == 0
}

func (e Entity) String() string {
	if e.IsNull() {
		return "Entity(null)"
	}
	return fmt.Sprintf("Entity(%d:%d)", e.Index(), e.Generation())
}
