package asset

import "embed"

// Archetypes holds the bundled enemy archetype definitions under "archetypes"
//
//go:embed archetypes/*.yaml
var Archetypes embed.FS

// ArchetypeDir is the directory of Archetypes holding the definitions
const ArchetypeDir = "archetypes"

// DefaultGameConfig returns the default game YAML configuration
const DefaultGameConfig = `
# === Arena, world units ===
arena:
  width: 750
  height: 900

# === Enemy spawner, seconds ===
spawner:
  min_delay: 0.5
  max_delay: 2.0

# === Player ship ===
player:
  width: 50
  height: 40
  speed: 250
  health: 3
  cooldown: 0.5
  sprite: 0
  missile_width: 6
  missile_height: 16
  missile_speed: 500
  missile_damage: 1
  missile_sprite: 5

# === Health pickup ===
pickup:
  ttl: 5
  width: 32
  height: 30
  sprite: 18
  heal: 1

frame_interval: 16ms
debug: false
audio: true
archetype_dir: asset/archetypes
`
