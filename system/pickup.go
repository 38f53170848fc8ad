package system

import (
	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
	"github.com/MarcinKacperek/space-ships/vmath"
)

// PickupSystem lets a living player collect overlapping health pickups
type PickupSystem struct {
	engine.SystemBase
}

func NewPickupSystem(world *engine.World) engine.System {
	return &PickupSystem{SystemBase: engine.NewSystemBase(world, "pickup")}
}

func (s *PickupSystem) Name() string {
	return "pickup"
}

func (s *PickupSystem) Priority() int {
	return parameter.PriorityPickup
}

func (s *PickupSystem) Update() {
	c := s.Component
	pickups := s.World.Query().With(c.HealthPickup, c.Transform, c.Rect).Without(c.Death).Execute()
	if len(pickups) == 0 {
		return
	}
	players := s.World.Query().With(c.Player, c.Killable, c.Transform, c.Rect).Without(c.Death).Execute()

	for _, p := range players {
		tr, _ := c.Transform.Get(p)
		rect, _ := c.Rect.Get(p)
		box := rect.Bounds(tr)

		for _, item := range pickups {
			k, _ := c.Killable.Get(p)
			if !k.IsAlive() {
				break
			}
			if s.World.IsMarked(item) {
				continue
			}
			itr, _ := c.Transform.Get(item)
			irect, _ := c.Rect.Get(item)
			if !vmath.Collide(box, irect.Bounds(itr)) {
				continue
			}

			k.GainHealth(s.Resource.Config.PickupHeal)
			c.Killable.Set(p, k)
			s.World.MarkForDeath(item)
			s.Resource.Audio.Play(core.SoundPickup)
		}
	}
}
