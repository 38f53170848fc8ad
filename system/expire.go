package system

import (
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
)

// ExpireSystem marks entities whose simulation-time deadline passed
type ExpireSystem struct {
	engine.SystemBase
}

func NewExpireSystem(world *engine.World) engine.System {
	return &ExpireSystem{SystemBase: engine.NewSystemBase(world, "expire")}
}

func (s *ExpireSystem) Name() string {
	return "expire"
}

func (s *ExpireSystem) Priority() int {
	return parameter.PriorityExpire
}

func (s *ExpireSystem) Update() {
	c := s.Component
	now := s.Resource.Time.Now
	for _, e := range s.World.Query().With(c.Expire).Without(c.Death).Execute() {
		if exp, _ := c.Expire.Get(e); exp.IsExpired(now) {
			s.World.MarkForDeath(e)
		}
	}
}
