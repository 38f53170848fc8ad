package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/parameter"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, parameter.AudioSampleRate, cfg.SampleRate)
	assert.Equal(t, parameter.AudioMasterVolume, cfg.MasterVolume)
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		assert.Greater(t, cfg.EffectVolumes[s], 0.0, s.String())
	}
}

func TestLoadAudioConfigEnv(t *testing.T) {
	t.Setenv("SPACE_SHIPS_AUDIO_ENABLED", "false")
	t.Setenv("SPACE_SHIPS_MASTER_VOLUME", "150")
	t.Setenv("SPACE_SHIPS_SFX_VOLUMES", "{shot: 0.1, explosion: 0.9}")
	t.Setenv("SPACE_SHIPS_SAMPLE_RATE", "48000")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 1.0, cfg.MasterVolume, "clamped")
	assert.Equal(t, 48000, cfg.SampleRate)
	assert.Equal(t, 0.1, cfg.EffectVolumes[core.SoundShot])
	assert.Equal(t, 0.9, cfg.EffectVolumes[core.SoundExplosion])
	assert.Equal(t, def.EffectVolumes[core.SoundHit], cfg.EffectVolumes[core.SoundHit])
}

func TestLoadAudioConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("SPACE_SHIPS_AUDIO_ENABLED", "maybe")
	t.Setenv("SPACE_SHIPS_MASTER_VOLUME", "loud")
	t.Setenv("SPACE_SHIPS_SFX_VOLUMES", "[not a map")
	t.Setenv("SPACE_SHIPS_SAMPLE_RATE", "-5")

	assert.Equal(t, DefaultAudioConfig(), LoadAudioConfig())
}
