package system

import (
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
	"github.com/MarcinKacperek/space-ships/vmath"
)

// MovementSystem integrates position += direction * speed * dt
type MovementSystem struct {
	engine.SystemBase
}

func NewMovementSystem(world *engine.World) engine.System {
	return &MovementSystem{SystemBase: engine.NewSystemBase(world, "movement")}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) Update() {
	dt := s.Resource.Time.Delta
	if dt == 0 {
		return
	}

	c := s.Component
	for _, e := range s.World.Query().With(c.Transform, c.Moveable).Execute() {
		mv, _ := c.Moveable.Get(e)
		tr, _ := c.Transform.Get(e)

		pos := vmath.V2FAdd(tr.Pos(), vmath.V2FScale(mv.Direction, mv.Speed*dt))
		tr.X, tr.Y = pos.X, pos.Y
		c.Transform.Set(e, tr)
	}
}
