package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive plays of the same cue
	MinSoundGap = 50 * time.Millisecond

	AudioMasterVolume = 0.6
)

// Shot Sound
const (
	ShotSoundDuration = 90 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 60 * time.Millisecond
	ShotStartFreq     = 1400.0 // Hz
	ShotEndFreq       = 500.0  // Hz
)

// Hit Sound
const (
	HitSoundDuration = 80 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 20 * time.Millisecond
)

// Explosion Sound
const (
	ExplosionSoundDuration = 450 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 400 * time.Millisecond
)

// Pickup Sound
const (
	PickupSoundNote1Duration = 80 * time.Millisecond
	PickupSoundNote2Duration = 200 * time.Millisecond
	PickupSoundAttack        = 5 * time.Millisecond
	PickupSoundNote1Release  = 40 * time.Millisecond
	PickupSoundNote2Release  = 150 * time.Millisecond
)
