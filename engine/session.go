package engine

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/MarcinKacperek/space-ships/core"
)

// SessionResource is the per-session score and pending state transition
type SessionResource struct {
	ID    uuid.UUID
	score int
	next  core.GameState
}

// NewSessionResource starts a session with a fresh random id
func NewSessionResource() *SessionResource {
	return &SessionResource{ID: uuid.New()}
}

// Score returns the running score
func (s *SessionResource) Score() int {
	return s.score
}

// AddScore adds points, negative values are ignored so the score never decreases
func (s *SessionResource) AddScore(points int) {
	if points > 0 {
		s.score += points
	}
}

// RequestState records a pending transition; Finished is sticky until consumed
func (s *SessionResource) RequestState(state core.GameState) {
	if s.next == core.StateFinished {
		return
	}
	s.next = state
}

// PendingState returns the request without consuming it
func (s *SessionResource) PendingState() core.GameState {
	return s.next
}

// TakeNextState returns and clears the pending transition
func (s *SessionResource) TakeNextState() core.GameState {
	next := s.next
	s.next = core.StateNone
	return next
}

// StreamSeed derives a PCG seed pair for a named random stream of this session
func (s *SessionResource) StreamSeed(stream string) (uint64, uint64) {
	return SeedFromID(s.ID, stream)
}

// SeedFromID hashes an id and a stream name into a PCG seed pair
func SeedFromID(id uuid.UUID, stream string) (uint64, uint64) {
	hi := xxhash.Sum64(id[:])
	d := xxhash.New()
	_, _ = d.WriteString(stream)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], hi)
	_, _ = d.Write(buf[:])
	return hi, d.Sum64()
}

// SeedFromUint64 expands a numeric seed into a PCG seed pair
func SeedFromUint64(seed uint64, stream string) (uint64, uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	return xxhash.Sum64(buf[:]), xxhash.Sum64String(stream) ^ seed
}
