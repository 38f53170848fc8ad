package parameter

// Enemy spawner delay range in seconds
const (
	SpawnMinDelay = 0.5
	SpawnMaxDelay = 2.0
)

// Tier draw thresholds over a uniform [0,1) value
const (
	SpawnLargeThreshold  = 0.1 // r < 0.1 large
	SpawnMediumThreshold = 0.4 // r < 0.4 medium, else small
)

// ArchetypeDir is the default enemy archetype directory
const ArchetypeDir = "asset/archetypes"
