package audio

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/parameter"
)

// ErrAudioDisabled is returned by Initialize when audio is turned off in config
var ErrAudioDisabled = errors.New("audio disabled")

// SoundPlayer mixes one-shot cues into the speaker output
// Implements engine.AudioPlayer
type SoundPlayer struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	lastPlayed  [core.SoundTypeCount]time.Time
	initialized bool
	muted       bool
	log         *zap.Logger

	// now is swappable for throttle tests
	now func() time.Time
}

// NewSoundPlayer creates a player; speaker output starts on Initialize
func NewSoundPlayer(cfg *AudioConfig, log *zap.Logger) *SoundPlayer {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	mixer := &beep.Mixer{}
	return &SoundPlayer{
		config: cfg,
		mixer:  mixer,
		ctrl:   &beep.Ctrl{Streamer: mixer},
		muted:  !cfg.Enabled,
		log:    log.Named("audio"),
		now:    time.Now,
	}
}

// Initialize sets up the speaker and attaches the mixer
func (sp *SoundPlayer) Initialize() error {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.initialized {
		return nil
	}
	if !sp.config.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sp.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		sp.log.Warn("speaker init failed, running silent", zap.Error(err))
		return err
	}

	speaker.Play(sp.ctrl)
	sp.initialized = true
	sp.log.Info("audio started", zap.Int("sample_rate", sp.config.SampleRate))
	return nil
}

// Play queues a cue; returns false when silent, muted, throttled or unknown
func (sp *SoundPlayer) Play(sound core.SoundType) bool {
	if sound < 0 || sound >= core.SoundTypeCount {
		return false
	}

	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.initialized || sp.muted {
		return false
	}

	now := sp.now()
	if last := sp.lastPlayed[sound]; !last.IsZero() && now.Sub(last) < parameter.MinSoundGap {
		return false
	}

	streamer := GetSoundEffect(sound, sp.config)
	if streamer == nil {
		return false
	}
	sp.lastPlayed[sound] = now

	speaker.Lock()
	sp.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// ToggleMute flips the mute state and returns the new value
func (sp *SoundPlayer) ToggleMute() bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	sp.muted = !sp.muted
	if sp.initialized {
		speaker.Lock()
		sp.ctrl.Paused = sp.muted
		if sp.muted {
			sp.mixer.Clear()
		}
		speaker.Unlock()
	}
	return sp.muted
}

// IsMuted reports the mute state
func (sp *SoundPlayer) IsMuted() bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.muted
}

// IsInitialized reports whether speaker output is live
func (sp *SoundPlayer) IsInitialized() bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.initialized
}

// Close stops playback and releases the speaker
func (sp *SoundPlayer) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sp.initialized = false
}
