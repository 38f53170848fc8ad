package prefab

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/MarcinKacperek/space-ships/parameter"
)

var (
	// ErrInvalidArchetype wraps every archetype validation failure
	ErrInvalidArchetype = errors.New("invalid archetype")

	// ErrEmptyTable is returned when no tier holds an archetype
	ErrEmptyTable = errors.New("archetype table is empty")
)

// Table is the read-only enemy archetype set grouped by tier
type Table struct {
	tiers [TierCount][]Archetype
}

// NewTable groups archetypes by their Tier and validates the result
func NewTable(archetypes ...Archetype) (*Table, error) {
	t := &Table{}
	for _, a := range archetypes {
		a.normalize()
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", a.Name, err)
		}
		t.tiers[a.Tier] = append(t.tiers[a.Tier], a)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate fails when every tier is empty
func (t *Table) Validate() error {
	if t.Len() == 0 {
		return ErrEmptyTable
	}
	return nil
}

// Len returns the total number of archetypes
func (t *Table) Len() int {
	n := 0
	for _, list := range t.tiers {
		n += len(list)
	}
	return n
}

// Tier returns the archetypes of one tier
func (t *Table) Tier(tier Tier) []Archetype {
	if tier >= TierCount {
		return nil
	}
	return t.tiers[tier]
}

// DrawTier maps a uniform r in [0,1) to a tier: ~10% large, ~30% medium, ~60% small
func DrawTier(r float64) Tier {
	switch {
	case r < parameter.SpawnLargeThreshold:
		return TierLarge
	case r < parameter.SpawnMediumThreshold:
		return TierMedium
	default:
		return TierSmall
	}
}

// fallbackOrder is tried when the drawn tier is empty
var fallbackOrder = [TierCount]Tier{TierSmall, TierMedium, TierLarge}

// Pick draws a tier, falls back to the first non-empty tier, then picks uniformly within it
// Panics on an empty table, which Validate rejects at load
func (t *Table) Pick(rng *rand.Rand) *Archetype {
	tier := DrawTier(rng.Float64())
	list := t.tiers[tier]
	if len(list) == 0 {
		for _, fb := range fallbackOrder {
			if len(t.tiers[fb]) > 0 {
				list = t.tiers[fb]
				break
			}
		}
	}
	if len(list) == 0 {
		panic(ErrEmptyTable)
	}
	return &list[rng.IntN(len(list))]
}
