package system

import (
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
	"github.com/MarcinKacperek/space-ships/vmath"
)

// BoundInArenaSystem clamps tagged entities so their rect stays inside the arena
type BoundInArenaSystem struct {
	engine.SystemBase
}

func NewBoundInArenaSystem(world *engine.World) engine.System {
	return &BoundInArenaSystem{SystemBase: engine.NewSystemBase(world, "bound")}
}

func (s *BoundInArenaSystem) Name() string {
	return "bound"
}

func (s *BoundInArenaSystem) Priority() int {
	return parameter.PriorityBoundInArena
}

func (s *BoundInArenaSystem) Update() {
	c := s.Component
	cfg := s.Resource.Config

	for _, e := range s.World.Query().With(c.BoundInArena, c.Transform, c.Rect).Execute() {
		tr, _ := c.Transform.Get(e)
		rect, _ := c.Rect.Get(e)

		x, y := ClampToArena(tr.X, tr.Y, rect.Width, rect.Height, cfg.ArenaWidth, cfg.ArenaHeight)
		if x != tr.X || y != tr.Y {
			tr.X, tr.Y = x, y
			c.Transform.Set(e, tr)
		}
	}
}

// ClampToArena clamps a center so a w×h rect lies within [0, arenaW]×[0, arenaH]
func ClampToArena(x, y, w, h, arenaW, arenaH float64) (float64, float64) {
	return vmath.ClampF(x, w/2, arenaW-w/2), vmath.ClampF(y, h/2, arenaH-h/2)
}

// DestroyOutOfArenaSystem marks tagged entities a full body length past the arena
type DestroyOutOfArenaSystem struct {
	engine.SystemBase
}

func NewDestroyOutOfArenaSystem(world *engine.World) engine.System {
	return &DestroyOutOfArenaSystem{SystemBase: engine.NewSystemBase(world, "out_of_arena")}
}

func (s *DestroyOutOfArenaSystem) Name() string {
	return "out_of_arena"
}

func (s *DestroyOutOfArenaSystem) Priority() int {
	return parameter.PriorityDestroyOutOfArena
}

func (s *DestroyOutOfArenaSystem) Update() {
	c := s.Component
	cfg := s.Resource.Config

	for _, e := range s.World.Query().With(c.DestroyOutOfArena, c.Transform, c.Rect).Without(c.Death).Execute() {
		tr, _ := c.Transform.Get(e)
		rect, _ := c.Rect.Get(e)
		if OutOfArena(tr.X, tr.Y, rect.Width, rect.Height, cfg.ArenaWidth, cfg.ArenaHeight) {
			s.World.MarkForDeath(e)
		}
	}
}

// OutOfArena reports whether a center lies more than one rect dimension outside the arena
func OutOfArena(x, y, w, h, arenaW, arenaH float64) bool {
	return x < -w || x > arenaW+w || y < -h || y > arenaH+h
}
