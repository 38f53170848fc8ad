package prefab

import (
	"math/rand/v2"

	"github.com/MarcinKacperek/space-ships/component"
	"github.com/MarcinKacperek/space-ships/config"
	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/vmath"
)

// Instantiate spawns an enemy ship of archetype a centered at (x, y), with its weapon mounts
func Instantiate(w *engine.World, a *Archetype, x, y float64, rng *rand.Rand) core.Entity {
	c := &w.Components

	speed := a.SpeedMin
	if a.SpeedMax > a.SpeedMin {
		speed += rng.Float64() * (a.SpeedMax - a.SpeedMin)
	}

	eb := w.NewEntity()
	engine.With(eb, c.Transform, component.TransformComponent{X: x, Y: y, Scale: 1})
	engine.With(eb, c.Rect, component.RectComponent{Width: a.Width, Height: a.Height})
	engine.With(eb, c.Moveable, component.MoveableComponent{Direction: vmath.Vec2F{X: 0, Y: -1}, Speed: speed})
	engine.With(eb, c.Killable, component.NewKillable(a.Health, a.KillPoints(), a.DropsPickup))
	engine.With(eb, c.Enemy, component.EnemyTag{})
	engine.With(eb, c.DestroyOutOfArena, component.DestroyOutOfArenaTag{})
	engine.With(eb, c.Sprite, component.SpriteComponent{Index: a.Sprite})
	ship := eb.Entity()

	var cannons []core.Entity
	switch a.Kind {
	case KindGunship:
		cooldown := *a.AttackCooldown
		cannons = make([]core.Entity, 0, len(a.Cannons))
		for _, def := range a.Cannons {
			cannons = append(cannons, spawnCannon(w, ship, component.CannonComponent{
				OffsetX:       def.OffsetX,
				OffsetY:       def.OffsetY,
				Cooldown:      cooldown,
				MissileWidth:  def.MissileWidth,
				MissileHeight: def.MissileHeight,
				MissileSpeed:  def.MissileSpeed,
				MissileDamage: def.MissileDamage,
				MissileSprite: def.MissileSprite,
			}))
		}
	case KindDrone:
	}

	engine.With(eb, c.Ship, component.SpaceShipComponent{IsAttacking: true, Cannons: cannons})
	return eb.Build()
}

// SpawnPlayer spawns the player ship at the bottom center of the arena with one forward cannon
func SpawnPlayer(w *engine.World, cfg config.PlayerConfig) core.Entity {
	c := &w.Components
	x := w.Resource.Config.ArenaWidth / 2
	y := cfg.Height / 2

	eb := w.NewEntity()
	engine.With(eb, c.Transform, component.TransformComponent{X: x, Y: y, Scale: 1})
	engine.With(eb, c.Rect, component.RectComponent{Width: cfg.Width, Height: cfg.Height})
	engine.With(eb, c.Moveable, component.MoveableComponent{Speed: cfg.Speed})
	engine.With(eb, c.Killable, component.NewKillable(cfg.Health, 0, false))
	engine.With(eb, c.Player, component.PlayerTag{})
	engine.With(eb, c.BoundInArena, component.BoundInArenaTag{})
	engine.With(eb, c.Sprite, component.SpriteComponent{Index: cfg.Sprite})
	ship := eb.Entity()

	cannon := spawnCannon(w, ship, component.CannonComponent{
		OffsetY:       cfg.Height / 2,
		Cooldown:      cfg.Cooldown,
		MissileWidth:  cfg.MissileWidth,
		MissileHeight: cfg.MissileHeight,
		MissileSpeed:  cfg.MissileSpeed,
		MissileDamage: cfg.MissileDamage,
		MissileSprite: cfg.MissileSprite,
	})

	engine.With(eb, c.Ship, component.SpaceShipComponent{Cannons: []core.Entity{cannon}})
	return eb.Build()
}

func spawnCannon(w *engine.World, ship core.Entity, cannon component.CannonComponent) core.Entity {
	return engine.With(
		engine.With(w.NewEntity(), w.Components.Cannon, cannon),
		w.Components.Parent, component.ParentComponent{Entity: ship},
	).Build()
}
