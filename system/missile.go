package system

import (
	"go.uber.org/zap"

	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
	"github.com/MarcinKacperek/space-ships/vmath"
)

// MissileSystem resolves projectile hits against the opposing faction
// A missile damages at most one target per frame and is marked on its first hit
type MissileSystem struct {
	engine.SystemBase
}

func NewMissileSystem(world *engine.World) engine.System {
	return &MissileSystem{SystemBase: engine.NewSystemBase(world, "missile")}
}

func (s *MissileSystem) Name() string {
	return "missile"
}

func (s *MissileSystem) Priority() int {
	return parameter.PriorityMissile
}

func (s *MissileSystem) Update() {
	c := s.Component
	missiles := s.World.Query().With(c.Missile, c.Transform, c.Rect).Without(c.Death).Execute()
	if len(missiles) == 0 {
		return
	}

	enemies := s.World.Query().With(c.Enemy, c.Killable, c.Transform, c.Rect).Execute()
	players := s.World.Query().With(c.Player, c.Killable, c.Transform, c.Rect).Execute()

	for _, m := range missiles {
		missile, _ := c.Missile.Get(m)
		tr, _ := c.Transform.Get(m)
		rect, _ := c.Rect.Get(m)
		box := rect.Bounds(tr)

		targets := players
		if missile.PlayerOwned {
			targets = enemies
		}
		s.resolve(m, box, missile.Damage, targets)
	}
}

// resolve applies damage to the first overlapping live target and marks the missile
func (s *MissileSystem) resolve(m core.Entity, box vmath.AABB, damage int, targets []core.Entity) {
	c := s.Component
	for _, target := range targets {
		if s.World.IsMarked(m) {
			return
		}
		if s.World.IsMarked(target) {
			continue
		}
		k, _ := c.Killable.Get(target)
		if !k.IsAlive() {
			continue
		}
		tr, _ := c.Transform.Get(target)
		rect, _ := c.Rect.Get(target)
		if !vmath.Collide(box, rect.Bounds(tr)) {
			continue
		}

		k.DealDamage(damage)
		c.Killable.Set(target, k)
		s.World.MarkForDeath(m)
		s.Resource.Audio.Play(core.SoundHit)

		if ce := s.Log.Check(zap.DebugLevel, "missile hit"); ce != nil {
			ce.Write(zap.Stringer("missile", m), zap.Stringer("target", target), zap.Int("health", k.Health))
		}
		return
	}
}
