package engine

import (
	"math/rand/v2"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/MarcinKacperek/space-ships/component"
	"github.com/MarcinKacperek/space-ships/core"
)

// World contains all entities, their components, shared resources and the system pipeline
// A world is driven by a single goroutine, one frame at a time
type World struct {
	registry  *EntityRegistry
	allStores []AnyStore

	Components ComponentStore
	Resource   Resource

	clock       *PausableClock
	frameNumber int64

	// Lifecycle totals since creation, kept across Clear
	created   int64
	destroyed int64

	systems []System

	Log *zap.Logger
}

// Option configures a World at construction
type Option func(*World)

// WithLogger injects a logger, defaults to zap.NewNop()
func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		if log != nil {
			w.Log = log
		}
	}
}

// WithConfig replaces the default tuning
func WithConfig(cfg *ConfigResource) Option {
	return func(w *World) {
		if cfg != nil {
			w.Resource.Config = cfg
		}
	}
}

// WithRand replaces the session-derived random source
func WithRand(r *rand.Rand) Option {
	return func(w *World) {
		if r != nil {
			w.Resource.Rand = r
		}
	}
}

// WithInput bridges an input collaborator
func WithInput(src InputSource) Option {
	return func(w *World) {
		w.Resource.Input = &InputResource{Source: src}
	}
}

// WithAudio bridges an audio collaborator
func WithAudio(player AudioPlayer) Option {
	return func(w *World) {
		w.Resource.Audio = &AudioResource{Player: player}
	}
}

// NewWorld creates a world with every store, a fresh session and default tuning
func NewWorld(opts ...Option) *World {
	w := &World{
		registry: NewEntityRegistry(),
		clock:    NewPausableClock(),
		systems:  make([]System, 0, 16),
		Log:      zap.NewNop(),
	}
	initComponentStores(w)

	session := NewSessionResource()
	w.Resource = Resource{
		Time:    &TimeResource{Scale: 1},
		Config:  DefaultConfigResource(),
		Session: session,
		UI:      &UIResource{},
		Input:   &InputResource{},
		Audio:   &AudioResource{},
		Rand:    rand.New(rand.NewPCG(session.StreamSeed("world"))),
	}

	for _, opt := range opts {
		opt(w)
	}

	w.Log.Debug("world created", zap.Stringer("session", session.ID))
	return w
}

// CreateEntity allocates a new entity handle
func (w *World) CreateEntity() core.Entity {
	w.created++
	return w.registry.Create()
}

// IsAlive reports whether the handle refers to a live entity of this world
func (w *World) IsAlive(e core.Entity) bool {
	return w.registry.IsAlive(e)
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.registry.Count()
}

// MarkForDeath schedules the entity for removal at the end of the frame
// Idempotent; dead handles are ignored
func (w *World) MarkForDeath(e core.Entity) {
	if !w.registry.IsAlive(e) || w.Components.Death.Has(e) {
		return
	}
	w.Components.Death.Set(e, component.DeathComponent{})
}

// IsMarked reports whether the entity is scheduled for removal
func (w *World) IsMarked(e core.Entity) bool {
	return w.Components.Death.Has(e)
}

// DestroyEntity removes all components and releases the handle
// Reserved for the removal stage and scene teardown
func (w *World) DestroyEntity(e core.Entity) {
	if !w.registry.IsAlive(e) {
		return
	}
	w.removeFromAllStores(e)
	w.registry.Destroy(e)
	w.destroyed++
}

// CreatedCount returns the number of entities ever created
func (w *World) CreatedCount() int64 {
	return w.created
}

// DestroyedCount returns the number of entities destroyed one by one, Clear is not counted
func (w *World) DestroyedCount() int64 {
	return w.destroyed
}

// Clear destroys every entity, systems and resources are kept
func (w *World) Clear() {
	w.clearAllStores()
	w.registry.Reset()
	w.Resource.UI.ScoreText = 0
	w.Resource.UI.LifeText = 0
	w.Log.Debug("world cleared")
}

// AddSystem adds a system and keeps the pipeline stable-sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of the pipeline in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunFrame advances simulation time by the scaled real delta and runs every system once
func (w *World) RunFrame(realDt time.Duration) {
	dt := w.clock.Advance(realDt)
	w.frameNumber++
	w.Resource.Time.Update(w.clock.Now(), dt, w.clock.Scale(), w.frameNumber)

	for _, system := range w.systems {
		system.Update()
	}
}

// FrameNumber returns the number of frames run
func (w *World) FrameNumber() int64 {
	return w.frameNumber
}

// Now returns simulation time in seconds
func (w *World) Now() float64 {
	return w.clock.Now()
}

// RealElapsed returns wall-clock time fed to RunFrame, paused frames included
func (w *World) RealElapsed() time.Duration {
	return w.clock.RealElapsed()
}

// SetTimeScale changes the simulation time scale
func (w *World) SetTimeScale(scale float64) {
	w.clock.SetScale(scale)
	w.Log.Debug("time scale changed", zap.Float64("scale", scale))
}

// Pause freezes simulation time; systems keep running with zero delta
func (w *World) Pause() {
	w.clock.Pause()
}

// Resume restores the time scale active before Pause
func (w *World) Resume() {
	w.clock.Resume()
}

// IsPaused returns current pause state
func (w *World) IsPaused() bool {
	return w.clock.IsPaused()
}
