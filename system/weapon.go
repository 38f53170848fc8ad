package system

import (
	"go.uber.org/zap"

	"github.com/MarcinKacperek/space-ships/component"
	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
	"github.com/MarcinKacperek/space-ships/vmath"
)

// WeaponSystem fires every ready cannon of an attacking ship
// A zero time scale suspends firing, so a cannon ready at pause time waits for resume
type WeaponSystem struct {
	engine.SystemBase
}

func NewWeaponSystem(world *engine.World) engine.System {
	return &WeaponSystem{SystemBase: engine.NewSystemBase(world, "weapon")}
}

func (s *WeaponSystem) Name() string {
	return "weapon"
}

func (s *WeaponSystem) Priority() int {
	return parameter.PriorityWeapon
}

func (s *WeaponSystem) Update() {
	if s.Resource.Time.Scale == 0 {
		return
	}
	now := s.Resource.Time.Now
	c := s.Component

	for _, e := range s.World.Query().With(c.Cannon, c.Parent).Without(c.Death).Execute() {
		parent, _ := c.Parent.Get(e)
		ship := parent.Entity
		if !s.World.IsAlive(ship) || s.World.IsMarked(ship) {
			continue
		}
		intent, ok := c.Ship.Get(ship)
		if !ok || !intent.IsAttacking {
			continue
		}
		pos, ok := c.Transform.Get(ship)
		if !ok {
			continue
		}

		cannon, _ := c.Cannon.Get(e)
		if !cannon.Ready(now) {
			continue
		}

		playerOwned := c.Player.Has(ship)
		s.spawnMissile(cannon, pos, playerOwned)

		cannon.LastFire = now
		c.Cannon.Set(e, cannon)

		if playerOwned {
			s.Resource.Audio.Play(core.SoundShot)
		}
	}
}

func (s *WeaponSystem) spawnMissile(cannon component.CannonComponent, pos component.TransformComponent, playerOwned bool) core.Entity {
	c := s.Component
	dirY := -1.0
	if playerOwned {
		dirY = 1.0
	}

	missile := engine.With(
		engine.With(
			engine.With(
				engine.With(
					engine.With(
						engine.With(s.World.NewEntity(), c.Transform, component.TransformComponent{
							X:     pos.X + cannon.OffsetX,
							Y:     pos.Y + cannon.OffsetY,
							Scale: 1,
						}),
						c.Rect, component.RectComponent{Width: cannon.MissileWidth, Height: cannon.MissileHeight},
					),
					c.Moveable, component.MoveableComponent{Direction: vmath.Vec2F{Y: dirY}, Speed: cannon.MissileSpeed},
				),
				c.Missile, component.MissileComponent{Damage: cannon.MissileDamage, PlayerOwned: playerOwned},
			),
			c.DestroyOutOfArena, component.DestroyOutOfArenaTag{},
		),
		c.Sprite, component.SpriteComponent{Index: cannon.MissileSprite},
	).Build()

	if ce := s.Log.Check(zap.DebugLevel, "missile fired"); ce != nil {
		ce.Write(zap.Stringer("missile", missile), zap.Bool("player", playerOwned))
	}
	return missile
}
