package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the game configuration decoded from YAML
// Missing fields keep their defaults
type Config struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Spawner SpawnerConfig `yaml:"spawner"`
	Player  PlayerConfig  `yaml:"player"`
	Pickup  PickupConfig  `yaml:"pickup"`

	// FrameInterval is the target wall-clock time per frame
	FrameInterval time.Duration `yaml:"frame_interval"`

	Debug        bool   `yaml:"debug"`
	Audio        bool   `yaml:"audio"`
	ArchetypeDir string `yaml:"archetype_dir"`
}

type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpawnerConfig struct {
	MinDelay float64 `yaml:"min_delay"`
	MaxDelay float64 `yaml:"max_delay"`
}

// PlayerConfig describes the player ship and its single cannon mount
type PlayerConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	Health   int     `yaml:"health"`
	Cooldown float64 `yaml:"cooldown"`
	Sprite   int     `yaml:"sprite"`

	MissileWidth  float64 `yaml:"missile_width"`
	MissileHeight float64 `yaml:"missile_height"`
	MissileSpeed  float64 `yaml:"missile_speed"`
	MissileDamage int     `yaml:"missile_damage"`
	MissileSprite int     `yaml:"missile_sprite"`
}

type PickupConfig struct {
	TTL    float64 `yaml:"ttl"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Sprite int     `yaml:"sprite"`
	Heal   int     `yaml:"heal"`
}

// Default returns the configuration built from parameter constants
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:  parameter.ArenaWidth,
			Height: parameter.ArenaHeight,
		},
		Spawner: SpawnerConfig{
			MinDelay: parameter.SpawnMinDelay,
			MaxDelay: parameter.SpawnMaxDelay,
		},
		Player: PlayerConfig{
			Width:         parameter.PlayerWidth,
			Height:        parameter.PlayerHeight,
			Speed:         parameter.PlayerSpeed,
			Health:        parameter.PlayerHealth,
			Cooldown:      parameter.PlayerCooldown,
			Sprite:        parameter.PlayerSprite,
			MissileWidth:  parameter.MissileWidth,
			MissileHeight: parameter.MissileHeight,
			MissileSpeed:  parameter.MissileSpeed,
			MissileDamage: parameter.MissileDamage,
			MissileSprite: parameter.MissileSprite,
		},
		Pickup: PickupConfig{
			TTL:    parameter.PickupTTL,
			Width:  parameter.PickupWidth,
			Height: parameter.PickupHeight,
			Sprite: parameter.PickupSprite,
			Heal:   parameter.PickupHeal,
		},
		FrameInterval: parameter.FrameUpdateInterval,
		Audio:         true,
		ArchetypeDir:  parameter.ArchetypeDir,
	}
}

// LoadYAML decodes configuration over the defaults and validates it
func LoadYAML(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a YAML file, an empty path yields the validated defaults
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first inconsistent setting
func (c *Config) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena size %vx%v must be positive", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case c.Spawner.MinDelay < 0:
		return fmt.Errorf("%w: spawner min_delay %v is negative", ErrInvalidConfig, c.Spawner.MinDelay)
	case c.Spawner.MinDelay > c.Spawner.MaxDelay:
		return fmt.Errorf("%w: spawner min_delay %v exceeds max_delay %v", ErrInvalidConfig, c.Spawner.MinDelay, c.Spawner.MaxDelay)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.Width > c.Arena.Width || c.Player.Height > c.Arena.Height:
		return fmt.Errorf("%w: player does not fit the arena", ErrInvalidConfig)
	case c.Player.Health <= 0:
		return fmt.Errorf("%w: player health %d must be positive", ErrInvalidConfig, c.Player.Health)
	case c.Player.Speed < 0 || c.Player.Cooldown < 0:
		return fmt.Errorf("%w: player speed and cooldown must not be negative", ErrInvalidConfig)
	case c.Player.MissileWidth <= 0 || c.Player.MissileHeight <= 0:
		return fmt.Errorf("%w: missile size must be positive", ErrInvalidConfig)
	case c.Player.MissileDamage <= 0:
		return fmt.Errorf("%w: missile damage %d must be positive", ErrInvalidConfig, c.Player.MissileDamage)
	case c.Pickup.TTL <= 0:
		return fmt.Errorf("%w: pickup ttl %v must be positive", ErrInvalidConfig, c.Pickup.TTL)
	case c.Pickup.Width <= 0 || c.Pickup.Height <= 0:
		return fmt.Errorf("%w: pickup size must be positive", ErrInvalidConfig)
	case c.FrameInterval <= 0:
		return fmt.Errorf("%w: frame_interval %v must be positive", ErrInvalidConfig, c.FrameInterval)
	case c.ArchetypeDir == "":
		return fmt.Errorf("%w: archetype_dir is empty", ErrInvalidConfig)
	}
	return nil
}

// ConfigResource maps the gameplay tuning onto the world resource
func (c *Config) ConfigResource() *engine.ConfigResource {
	res := engine.DefaultConfigResource()
	res.ArenaWidth = c.Arena.Width
	res.ArenaHeight = c.Arena.Height
	res.SpawnMinDelay = c.Spawner.MinDelay
	res.SpawnMaxDelay = c.Spawner.MaxDelay
	res.PickupTTL = c.Pickup.TTL
	res.PickupWidth = c.Pickup.Width
	res.PickupHeight = c.Pickup.Height
	res.PickupSprite = c.Pickup.Sprite
	res.PickupHeal = c.Pickup.Heal
	return res
}
