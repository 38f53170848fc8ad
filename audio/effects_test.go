package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/parameter"
)

// drain streams s to completion and returns the sample count and the peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			v := buf[j][0]
			if v < 0 {
				v = -v
			}
			peak = max(peak, v)
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer did not terminate")
	return 0, 0
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)
		require.True(t, ok)
		require.Equal(t, 100, n)
		for i := 0; i < n; i++ {
			assert.GreaterOrEqual(t, samples[i][0], -1.0)
			assert.LessOrEqual(t, samples[i][0], 1.0)
			assert.Equal(t, samples[i][0], samples[i][1], "mono signal on both channels")
		}
		assert.NoError(t, osc.Err())
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	n, _ := drain(t, NewSweep(1000, 200, 100*time.Millisecond, WaveSine, rate))
	assert.Equal(t, rate.N(100*time.Millisecond), n)
}

func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	require.Equal(t, 100, n)

	// square at phase 0 stays at +1 for a zero frequency
	assert.InDelta(t, 0.0, samples[0][0], 1e-9, "attack starts silent")
	assert.InDelta(t, 1.0, samples[50][0], 1e-9, "sustain is full level")
	assert.Less(t, samples[99][0], 0.2, "release fades out")
}

func TestVolumeZeroIsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	_, peak := drain(t, newVolume(NewOscillator(440, 20*time.Millisecond, WaveSquare, rate), 0))
	assert.Zero(t, peak)
}

func TestSoundEffectsTerminate(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	expected := map[core.SoundType]time.Duration{
		core.SoundShot:      parameter.ShotSoundDuration,
		core.SoundHit:       parameter.HitSoundDuration,
		core.SoundExplosion: parameter.ExplosionSoundDuration,
		core.SoundPickup:    parameter.PickupSoundNote1Duration + parameter.PickupSoundNote2Duration,
	}

	for sound, d := range expected {
		t.Run(sound.String(), func(t *testing.T) {
			s := GetSoundEffect(sound, cfg)
			require.NotNil(t, s)
			n, peak := drain(t, s)
			assert.InDelta(t, rate.N(d), n, 2)
			assert.Greater(t, peak, 0.0)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestSoundEffectUnknown(t *testing.T) {
	assert.Nil(t, GetSoundEffect(core.SoundTypeCount, DefaultAudioConfig()))
}

func TestSoundEffectMutedVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.EffectVolumes[core.SoundHit] = 0
	_, peak := drain(t, GetSoundEffect(core.SoundHit, cfg))
	assert.Zero(t, peak)
}
