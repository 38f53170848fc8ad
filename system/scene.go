package system

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/MarcinKacperek/space-ships/component"
	"github.com/MarcinKacperek/space-ships/config"
	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
	"github.com/MarcinKacperek/space-ships/prefab"
)

// SetupScene spawns the player ship and the two display texts bound into the UI resource
// Returns the player entity
func SetupScene(world *engine.World, player config.PlayerConfig) core.Entity {
	c := world.Components
	ui := world.Resource.UI

	ui.ScoreText = engine.With(world.NewEntity(), c.Text,
		component.TextComponent{Value: fmt.Sprintf(parameter.ScoreTextFormat, 0)}).Build()
	ui.LifeText = engine.With(world.NewEntity(), c.Text,
		component.TextComponent{Value: fmt.Sprintf(parameter.LifeTextFormat, player.Health)}).Build()

	p := prefab.SpawnPlayer(world, player)
	world.Log.Info("scene ready",
		zap.Uint64("player", uint64(p)),
		zap.Int("health", player.Health),
	)
	return p
}
