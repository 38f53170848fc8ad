package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
)

// Diagnostics is one telemetry sample of the world
type Diagnostics struct {
	Frame int64

	// Store counts
	Enemies   int
	Missiles  int
	Pickups   int
	Cannons   int
	Bars      int
	Segments  int
	Marked    int
	LiveTotal int

	// Consistency checks, all zero in a healthy world
	OrphanChildren int // Parent points at a dead entity and the child is unmarked
	OrphanBars     int // Bar owner dead and the bar unmarked
	DeadPlayers    int // Players left at zero health without a death mark

	// Entity lifecycle
	Created   int64
	Destroyed int64
	Kills     int // Non-player deaths resolved by the death system

	RealElapsed time.Duration
}

// DiagnosticsSystem samples store counts and parent links for leak detection
// Read-only; the sample is logged at debug level
type DiagnosticsSystem struct {
	engine.SystemBase

	interval    int64
	tickCounter int64
	last        Diagnostics
}

func NewDiagnosticsSystem(world *engine.World) engine.System {
	return &DiagnosticsSystem{
		SystemBase: engine.NewSystemBase(world, "diagnostics"),
		interval:   parameter.DiagnosticsSampleInterval,
	}
}

func (s *DiagnosticsSystem) Name() string {
	return "diagnostics"
}

func (s *DiagnosticsSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

// Last returns the most recent sample
func (s *DiagnosticsSystem) Last() Diagnostics {
	return s.last
}

func (s *DiagnosticsSystem) Update() {
	s.tickCounter++
	if s.tickCounter%s.interval != 0 {
		return
	}
	s.last = s.Sample()

	d := s.last
	s.Log.Debug("sample",
		zap.Int64("frame", d.Frame),
		zap.Int("live", d.LiveTotal),
		zap.Int("enemies", d.Enemies),
		zap.Int("missiles", d.Missiles),
		zap.Int("pickups", d.Pickups),
		zap.Int("bars", d.Bars),
		zap.Int64("created", d.Created),
		zap.Int64("destroyed", d.Destroyed),
		zap.Int("kills", d.Kills),
		zap.Duration("real_elapsed", d.RealElapsed),
	)
	if d.OrphanChildren > 0 || d.OrphanBars > 0 || d.DeadPlayers > 0 {
		s.Log.Warn("inconsistent world",
			zap.Int("orphan_children", d.OrphanChildren),
			zap.Int("orphan_bars", d.OrphanBars),
			zap.Int("dead_players", d.DeadPlayers),
		)
	}
}

// Sample collects a telemetry snapshot immediately
func (s *DiagnosticsSystem) Sample() Diagnostics {
	w := s.World
	c := s.Component

	d := Diagnostics{
		Frame:     w.FrameNumber(),
		Enemies:   c.Enemy.Count(),
		Missiles:  c.Missile.Count(),
		Pickups:   c.HealthPickup.Count(),
		Cannons:   c.Cannon.Count(),
		Bars:      c.HealthBar.Count(),
		Segments:  c.HealthSegment.Count(),
		Marked:    c.Death.Count(),
		LiveTotal: w.EntityCount(),
		Created:   w.CreatedCount(),
		Destroyed: w.DestroyedCount(),

		RealElapsed: w.RealElapsed(),
	}

	for _, sys := range w.Systems() {
		if ds, ok := sys.(*DeathSystem); ok {
			d.Kills = ds.Killed()
		}
	}

	for _, e := range c.Parent.All() {
		p, ok := c.Parent.Get(e)
		if !ok {
			continue
		}
		if !w.IsAlive(p.Entity) && !w.IsMarked(e) {
			d.OrphanChildren++
		}
	}

	for _, e := range c.HealthBar.All() {
		bar, ok := c.HealthBar.Get(e)
		if !ok {
			continue
		}
		if !w.IsAlive(bar.Owner) && !w.IsMarked(e) {
			d.OrphanBars++
		}
	}

	for _, e := range w.Query().With(c.Player, c.Killable).Execute() {
		k, _ := c.Killable.Get(e)
		if k.Health <= 0 && !w.IsMarked(e) {
			d.DeadPlayers++
		}
	}

	return d
}
