package system

import (
	"time"

	"github.com/MarcinKacperek/space-ships/component"
	"github.com/MarcinKacperek/space-ships/config"
	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/prefab"
	"github.com/MarcinKacperek/space-ships/vmath"
)

const frame = 16 * time.Millisecond

func spawnPlayer(w *engine.World) core.Entity {
	return prefab.SpawnPlayer(w, config.Default().Player)
}

func spawnEnemy(w *engine.World, x, y, width, height float64, health int) core.Entity {
	c := &w.Components
	eb := w.NewEntity()
	engine.With(eb, c.Transform, component.TransformComponent{X: x, Y: y, Scale: 1})
	engine.With(eb, c.Rect, component.RectComponent{Width: width, Height: height})
	engine.With(eb, c.Killable, component.NewKillable(health, health, false))
	engine.With(eb, c.Enemy, component.EnemyTag{})
	engine.With(eb, c.Ship, component.SpaceShipComponent{IsAttacking: true})
	return eb.Build()
}

func spawnMissile(w *engine.World, x, y float64, playerOwned bool) core.Entity {
	c := &w.Components
	eb := w.NewEntity()
	engine.With(eb, c.Transform, component.TransformComponent{X: x, Y: y, Scale: 1})
	engine.With(eb, c.Rect, component.RectComponent{Width: 4, Height: 10})
	engine.With(eb, c.Missile, component.MissileComponent{Damage: 1, PlayerOwned: playerOwned})
	engine.With(eb, c.Moveable, component.MoveableComponent{Direction: vmath.Vec2F{Y: 1}, Speed: 500})
	engine.With(eb, c.DestroyOutOfArena, component.DestroyOutOfArenaTag{})
	return eb.Build()
}

func attachCannon(w *engine.World, ship core.Entity, cannon component.CannonComponent) core.Entity {
	c := &w.Components
	e := engine.With(
		engine.With(w.NewEntity(), c.Cannon, cannon),
		c.Parent, component.ParentComponent{Entity: ship},
	).Build()
	s, _ := c.Ship.Get(ship)
	s.Cannons = append(s.Cannons, e)
	c.Ship.Set(ship, s)
	return e
}

func health(w *engine.World, e core.Entity) int {
	k, _ := w.Components.Killable.Get(e)
	return k.Health
}

func position(w *engine.World, e core.Entity) (float64, float64) {
	tr, _ := w.Components.Transform.Get(e)
	return tr.X, tr.Y
}
