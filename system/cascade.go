package system

import (
	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
)

// CascadeSystem propagates removal markers from owners to their children
// Child lists (health bar, segments, cannons) and Parent links are both walked until nothing new is marked
type CascadeSystem struct {
	engine.SystemBase
}

func NewCascadeSystem(world *engine.World) engine.System {
	return &CascadeSystem{SystemBase: engine.NewSystemBase(world, "cascade")}
}

func (s *CascadeSystem) Name() string {
	return "cascade"
}

func (s *CascadeSystem) Priority() int {
	return parameter.PriorityCascade
}

func (s *CascadeSystem) Update() {
	c := s.Component
	pending := c.Death.All()

	for len(pending) > 0 {
		for len(pending) > 0 {
			e := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			pending = s.markChildren(e, pending)
		}

		// Parent links catch children missing from their owner's lists
		for _, child := range s.World.Query().With(c.Parent).Without(c.Death).Execute() {
			p, _ := c.Parent.Get(child)
			if s.World.IsMarked(p.Entity) || !s.World.IsAlive(p.Entity) {
				s.World.MarkForDeath(child)
				pending = append(pending, child)
			}
		}
	}
}

// markChildren marks the listed children of e and queues the newly marked ones
func (s *CascadeSystem) markChildren(e core.Entity, pending []core.Entity) []core.Entity {
	c := s.Component
	mark := func(child core.Entity) {
		if child.IsNull() || !s.World.IsAlive(child) || s.World.IsMarked(child) {
			return
		}
		s.World.MarkForDeath(child)
		pending = append(pending, child)
	}

	if k, ok := c.Killable.Get(e); ok {
		mark(k.HealthBar)
	}
	if bar, ok := c.HealthBar.Get(e); ok {
		for _, seg := range bar.Segments {
			mark(seg)
		}
	}
	if ship, ok := c.Ship.Get(e); ok {
		for _, cannon := range ship.Cannons {
			mark(cannon)
		}
	}
	return pending
}
