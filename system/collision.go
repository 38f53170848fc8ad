package system

import (
	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
	"github.com/MarcinKacperek/space-ships/vmath"
)

// CollisionSystem resolves player-enemy body overlap
// A ram costs the player RamDamage and destroys the enemy outright without scoring
type CollisionSystem struct {
	engine.SystemBase
}

func NewCollisionSystem(world *engine.World) engine.System {
	return &CollisionSystem{SystemBase: engine.NewSystemBase(world, "collision")}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update() {
	c := s.Component
	players := s.World.Query().With(c.Player, c.Killable, c.Transform, c.Rect).Without(c.Death).Execute()
	if len(players) == 0 {
		return
	}
	enemies := s.World.Query().With(c.Enemy, c.Killable, c.Transform, c.Rect).Execute()

	for _, p := range players {
		if pk, _ := c.Killable.Get(p); !pk.IsAlive() {
			continue
		}
		tr, _ := c.Transform.Get(p)
		rect, _ := c.Rect.Get(p)
		box := rect.Bounds(tr)

		for _, e := range enemies {
			if s.World.IsMarked(e) {
				continue
			}
			ek, _ := c.Killable.Get(e)
			if !ek.IsAlive() {
				continue
			}
			etr, _ := c.Transform.Get(e)
			erect, _ := c.Rect.Get(e)
			if !vmath.Collide(box, erect.Bounds(etr)) {
				continue
			}

			pk, _ := c.Killable.Get(p)
			pk.DealDamage(s.Resource.Config.RamDamage)
			c.Killable.Set(p, pk)
			s.World.MarkForDeath(e)
			s.Resource.Audio.Play(core.SoundHit)
			if !pk.IsAlive() {
				break
			}
		}
	}
}
