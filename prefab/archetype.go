package prefab

import (
	"fmt"
	"strings"
)

// Tier is the spawn weight class of an archetype, taken from its file-name prefix
type Tier uint8

const (
	TierSmall Tier = iota
	TierMedium
	TierLarge
	TierCount
)

func (t Tier) String() string {
	switch t {
	case TierSmall:
		return "small"
	case TierMedium:
		return "medium"
	case TierLarge:
		return "large"
	default:
		return "unknown"
	}
}

// tierPrefixes maps file-name prefixes to tiers
var tierPrefixes = map[string]Tier{
	"sm_": TierSmall,
	"md_": TierMedium,
	"lg_": TierLarge,
}

// TierFromName derives the tier from a file name such as "md_gunship.yaml"
func TierFromName(name string) (Tier, error) {
	for prefix, tier := range tierPrefixes {
		if strings.HasPrefix(name, prefix) {
			return tier, nil
		}
	}
	return 0, fmt.Errorf("%w: %q has no sm_/md_/lg_ prefix", ErrInvalidArchetype, name)
}

// Kind is the closed set of archetype variants
type Kind uint8

const (
	// KindDrone has no weapon mounts
	KindDrone Kind = iota
	// KindGunship carries one or more cannons sharing a base cooldown
	KindGunship
)

func (k Kind) String() string {
	switch k {
	case KindDrone:
		return "drone"
	case KindGunship:
		return "gunship"
	default:
		return "unknown"
	}
}

// CannonDef describes one weapon mount of a gunship
type CannonDef struct {
	OffsetX       float64 `yaml:"x_offset"`
	OffsetY       float64 `yaml:"y_offset"`
	MissileWidth  float64 `yaml:"missile_width"`
	MissileHeight float64 `yaml:"missile_height"`
	MissileSpeed  float64 `yaml:"missile_speed"`
	MissileDamage int     `yaml:"missile_damage"`
	MissileSprite int     `yaml:"missile_sprite"`
}

// Archetype is one spawnable enemy variant
// Name, Tier and Kind are derived at load, the rest is decoded
type Archetype struct {
	Name string `yaml:"-"`
	Tier Tier   `yaml:"-"`
	Kind Kind   `yaml:"-"`

	Sprite      int     `yaml:"sprite"`
	SpeedMin    float64 `yaml:"speed_min"`
	SpeedMax    float64 `yaml:"speed_max"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Health      int     `yaml:"health"`
	Points      int     `yaml:"points"`
	DropsPickup bool    `yaml:"drops_pickup"`

	AttackCooldown *float64    `yaml:"attack_cooldown"`
	Cannons        []CannonDef `yaml:"cannons"`
}

// KillPoints returns the score for destroying this archetype, defaulting to its health
func (a *Archetype) KillPoints() int {
	if a.Points > 0 {
		return a.Points
	}
	return a.Health
}

// normalize derives Kind and fills per-cannon defaults
func (a *Archetype) normalize() {
	if len(a.Cannons) > 0 {
		a.Kind = KindGunship
	} else {
		a.Kind = KindDrone
	}
	for i := range a.Cannons {
		if a.Cannons[i].MissileDamage == 0 {
			a.Cannons[i].MissileDamage = 1
		}
	}
}

// Validate reports inconsistent definitions
func (a *Archetype) Validate() error {
	switch {
	case a.Width <= 0 || a.Height <= 0:
		return fmt.Errorf("%w: size %vx%v must be positive", ErrInvalidArchetype, a.Width, a.Height)
	case a.Health <= 0:
		return fmt.Errorf("%w: health %d must be positive", ErrInvalidArchetype, a.Health)
	case a.Points < 0:
		return fmt.Errorf("%w: points %d is negative", ErrInvalidArchetype, a.Points)
	case a.SpeedMin < 0 || a.SpeedMin > a.SpeedMax:
		return fmt.Errorf("%w: speed range [%v, %v] is invalid", ErrInvalidArchetype, a.SpeedMin, a.SpeedMax)
	}

	if a.Kind == KindGunship {
		if a.AttackCooldown == nil {
			return fmt.Errorf("%w: attack_cooldown is required when cannons are set", ErrInvalidArchetype)
		}
		if *a.AttackCooldown < 0 {
			return fmt.Errorf("%w: attack_cooldown %v is negative", ErrInvalidArchetype, *a.AttackCooldown)
		}
		for i, c := range a.Cannons {
			if c.MissileWidth <= 0 || c.MissileHeight <= 0 || c.MissileSpeed <= 0 || c.MissileDamage < 0 {
				return fmt.Errorf("%w: cannon %d has non-positive missile parameters", ErrInvalidArchetype, i)
			}
		}
	}
	return nil
}
