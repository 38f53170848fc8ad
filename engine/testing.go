package engine

import (
	"math/rand/v2"

	"github.com/MarcinKacperek/space-ships/core"
)

// NewTestWorld creates a world with a fixed random seed and stub collaborators for tests
func NewTestWorld(seed uint64) (*World, *StubInput, *RecordingAudio) {
	input := &StubInput{}
	audio := &RecordingAudio{}
	w := NewWorld(
		WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))),
		WithInput(input),
		WithAudio(audio),
	)
	return w, input, audio
}

// StubInput is a settable InputSource
type StubInput struct {
	X, Y   float64
	Firing bool
}

func (s *StubInput) Axes() (float64, float64) {
	return s.X, s.Y
}

func (s *StubInput) Fire() bool {
	return s.Firing
}

// RecordingAudio records every cue played
type RecordingAudio struct {
	Played []core.SoundType
}

func (r *RecordingAudio) Play(sound core.SoundType) bool {
	r.Played = append(r.Played, sound)
	return true
}

// Count returns how many times a cue was played
func (r *RecordingAudio) Count(sound core.SoundType) int {
	n := 0
	for _, s := range r.Played {
		if s == sound {
			n++
		}
	}
	return n
}
