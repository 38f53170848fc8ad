package system

import (
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/prefab"
)

// RegisterPipeline adds every gameplay stage to the world in dependency order
func RegisterPipeline(world *engine.World, table *prefab.Table) {
	world.AddSystem(NewInputSystem(world))
	world.AddSystem(NewMovementSystem(world))
	world.AddSystem(NewWeaponSystem(world))
	world.AddSystem(NewMissileSystem(world))
	world.AddSystem(NewCollisionSystem(world))
	world.AddSystem(NewPickupSystem(world))
	world.AddSystem(NewBoundInArenaSystem(world))
	world.AddSystem(NewDestroyOutOfArenaSystem(world))
	world.AddSystem(NewExpireSystem(world))
	world.AddSystem(NewDeathSystem(world))
	if table != nil {
		world.AddSystem(NewSpawnSystem(world, table))
	}
	world.AddSystem(NewCascadeSystem(world))
	world.AddSystem(NewCullSystem(world))
	world.AddSystem(NewUISystem(world))
	world.AddSystem(NewDiagnosticsSystem(world))
}
