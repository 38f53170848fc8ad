package component

// PlayerTag marks the single player ship
type PlayerTag struct{}

// EnemyTag marks enemy ships
type EnemyTag struct{}

// BoundInArenaTag clamps the entity inside the arena
type BoundInArenaTag struct{}

// DestroyOutOfArenaTag removes the entity once it travels a body length past the arena
type DestroyOutOfArenaTag struct{}

// HealthPickupTag marks a collectible that restores one health point
type HealthPickupTag struct{}
