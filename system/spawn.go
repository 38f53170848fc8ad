package system

import (
	"go.uber.org/zap"

	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
	"github.com/MarcinKacperek/space-ships/prefab"
)

// SpawnSystem instantiates a random enemy archetype above the arena on a randomized timer
// The first spawn happens on the first frame
type SpawnSystem struct {
	engine.SystemBase

	table *prefab.Table

	// nextSpawn is the absolute simulation time of the next spawn
	nextSpawn float64
	lastDelay float64
	spawned   int
}

// NewSpawnSystem creates a spawner over a validated archetype table
func NewSpawnSystem(world *engine.World, table *prefab.Table) engine.System {
	return &SpawnSystem{
		SystemBase: engine.NewSystemBase(world, "spawn"),
		table:      table,
	}
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// NextSpawn returns the absolute simulation time of the next spawn
func (s *SpawnSystem) NextSpawn() float64 {
	return s.nextSpawn
}

// LastDelay returns the most recently drawn spawn delay
func (s *SpawnSystem) LastDelay() float64 {
	return s.lastDelay
}

// Spawned returns the number of enemies spawned
func (s *SpawnSystem) Spawned() int {
	return s.spawned
}

func (s *SpawnSystem) Update() {
	now := s.Resource.Time.Now
	if s.nextSpawn > now {
		return
	}

	e, a := s.spawn()
	s.spawned++

	s.lastDelay = s.drawDelay()
	s.nextSpawn = now + s.lastDelay

	if ce := s.Log.Check(zap.DebugLevel, "enemy spawned"); ce != nil {
		ce.Write(
			zap.Stringer("entity", e),
			zap.String("archetype", a.Name),
			zap.Stringer("tier", a.Tier),
			zap.Float64("next", s.nextSpawn),
		)
	}
}

func (s *SpawnSystem) spawn() (core.Entity, *prefab.Archetype) {
	cfg := s.Resource.Config
	rng := s.Resource.Rand

	a := s.table.Pick(rng)

	x := cfg.ArenaWidth / 2
	if span := cfg.ArenaWidth - a.Width; span > 0 {
		x = a.Width/2 + rng.Float64()*span
	}
	// One unit inside the out-of-arena margin
	y := cfg.ArenaHeight + a.Height - 1

	return prefab.Instantiate(s.World, a, x, y, rng), a
}

// drawDelay returns a uniform delay in [SpawnMinDelay, SpawnMaxDelay)
func (s *SpawnSystem) drawDelay() float64 {
	cfg := s.Resource.Config
	span := cfg.SpawnMaxDelay - cfg.SpawnMinDelay
	if span <= 0 {
		return cfg.SpawnMinDelay
	}
	return cfg.SpawnMinDelay + s.Resource.Rand.Float64()*span
}
