package system

import (
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
	"github.com/MarcinKacperek/space-ships/vmath"
)

// InputSystem writes device intent onto the player ship
// Axes are clamped to [-1, 1] and the direction normalized, a missing source reads as no input
type InputSystem struct {
	engine.SystemBase
}

func NewInputSystem(world *engine.World) engine.System {
	return &InputSystem{SystemBase: engine.NewSystemBase(world, "input")}
}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) Update() {
	var x, y float64
	fire := false
	if in := s.Resource.Input; in != nil && in.Source != nil {
		x, y = in.Source.Axes()
		fire = in.Source.Fire()
	}
	dir := vmath.V2FNormalize(vmath.Vec2F{
		X: vmath.ClampF(x, -1, 1),
		Y: vmath.ClampF(y, -1, 1),
	})

	c := s.Component
	for _, e := range s.World.Query().With(c.Player, c.Moveable).Execute() {
		mv, _ := c.Moveable.Get(e)
		mv.Direction = dir
		c.Moveable.Set(e, mv)

		if ship, ok := c.Ship.Get(e); ok {
			ship.IsAttacking = fire
			c.Ship.Set(e, ship)
		}
	}
}
