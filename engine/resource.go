package engine

import (
	"math/rand/v2"

	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/parameter"
)

// Resource holds singleton simulation resources, accessed via World.Resource
type Resource struct {
	Time    *TimeResource
	Config  *ConfigResource
	Session *SessionResource
	UI      *UIResource

	// Bridged collaborators, nil-safe
	Input *InputResource
	Audio *AudioResource

	// Rand drives every gameplay random draw
	Rand *rand.Rand
}

// === World Resources ===

// TimeResource is the frame's time data, updated by World.RunFrame before any system runs
type TimeResource struct {
	// Now is simulation time in seconds, frozen while paused
	Now float64

	// Delta is the scaled simulation delta in seconds
	Delta float64

	// Scale is the time scale applied this frame
	Scale float64

	FrameNumber int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(now, delta, scale float64, frameNumber int64) {
	tr.Now = now
	tr.Delta = delta
	tr.Scale = scale
	tr.FrameNumber = frameNumber
}

// ConfigResource holds arena and gameplay tuning read by systems
type ConfigResource struct {
	ArenaWidth  float64
	ArenaHeight float64

	SpawnMinDelay float64
	SpawnMaxDelay float64

	PickupTTL    float64
	PickupWidth  float64
	PickupHeight float64
	PickupSprite int
	PickupHeal   int

	RamDamage int

	HealthBarHeight float64
	HealthBarOffset float64
	SegmentSpacing  float64
}

// DefaultConfigResource returns tuning from parameter constants
func DefaultConfigResource() *ConfigResource {
	return &ConfigResource{
		ArenaWidth:      parameter.ArenaWidth,
		ArenaHeight:     parameter.ArenaHeight,
		SpawnMinDelay:   parameter.SpawnMinDelay,
		SpawnMaxDelay:   parameter.SpawnMaxDelay,
		PickupTTL:       parameter.PickupTTL,
		PickupWidth:     parameter.PickupWidth,
		PickupHeight:    parameter.PickupHeight,
		PickupSprite:    parameter.PickupSprite,
		PickupHeal:      parameter.PickupHeal,
		RamDamage:       parameter.RamDamage,
		HealthBarHeight: parameter.HealthBarHeight,
		HealthBarOffset: parameter.HealthBarOffset,
		SegmentSpacing:  parameter.HealthSegmentSpacing,
	}
}

// UIResource holds the two externally-owned display text entities
type UIResource struct {
	ScoreText core.Entity
	LifeText  core.Entity
}

// === Bridged Resources ===

// InputSource is the device polling collaborator, queried once per frame
type InputSource interface {
	// Axes returns held movement axes, each expected in [-1, 1]
	Axes() (x, y float64)
	Fire() bool
}

// InputResource wraps the input source
type InputResource struct {
	Source InputSource
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}

// Play forwards to the player when one is bridged
func (ar *AudioResource) Play(sound core.SoundType) bool {
	if ar == nil || ar.Player == nil {
		return false
	}
	return ar.Player.Play(sound)
}
