package system

import (
	"go.uber.org/zap"

	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
)

// CullSystem destroys entities marked for death
// It runs after every gameplay stage so they can still read the marked state
type CullSystem struct {
	engine.SystemBase
}

func NewCullSystem(world *engine.World) engine.System {
	return &CullSystem{SystemBase: engine.NewSystemBase(world, "cull")}
}

func (s *CullSystem) Name() string {
	return "cull"
}

func (s *CullSystem) Priority() int {
	return parameter.PriorityCull
}

func (s *CullSystem) Update() {
	entities := s.Component.Death.All()
	for _, entity := range entities {
		s.World.DestroyEntity(entity)
	}

	if len(entities) > 0 {
		if ce := s.Log.Check(zap.DebugLevel, "culled"); ce != nil {
			ce.Write(zap.Int("count", len(entities)), zap.Int("alive", s.World.EntityCount()))
		}
	}
}
