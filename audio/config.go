package audio

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/parameter"
)

// AudioConfig holds cue synthesis and mixing settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [core.SoundTypeCount]float64
}

// DefaultAudioConfig returns settings from parameter constants
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
	}
	cfg.EffectVolumes[core.SoundShot] = 0.35
	cfg.EffectVolumes[core.SoundHit] = 0.6
	cfg.EffectVolumes[core.SoundExplosion] = 0.8
	cfg.EffectVolumes[core.SoundPickup] = 0.7
	return cfg
}

// LoadAudioConfig loads audio configuration overrides from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("SPACE_SHIPS_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("SPACE_SHIPS_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Per-cue volumes as a flow mapping, e.g. {shot: 0.2, explosion: 1}
	if effectVols := os.Getenv("SPACE_SHIPS_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := yaml.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
				if v, ok := volumes[s.String()]; ok {
					cfg.EffectVolumes[s] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("SPACE_SHIPS_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
