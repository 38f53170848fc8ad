package system

import (
	"go.uber.org/zap"

	"github.com/MarcinKacperek/space-ships/component"
	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
)

// DeathSystem marks every unmarked entity whose health reached zero
// Enemy deaths score and may drop a pickup; player death requests the finished state
type DeathSystem struct {
	engine.SystemBase

	killed int
}

func NewDeathSystem(world *engine.World) engine.System {
	return &DeathSystem{SystemBase: engine.NewSystemBase(world, "death")}
}

func (s *DeathSystem) Name() string {
	return "death"
}

func (s *DeathSystem) Priority() int {
	return parameter.PriorityDeath
}

// Killed returns the number of non-player deaths processed
func (s *DeathSystem) Killed() int {
	return s.killed
}

func (s *DeathSystem) Update() {
	c := s.Component
	session := s.Resource.Session

	for _, e := range s.World.Query().With(c.Killable).Without(c.Death).Execute() {
		k, _ := c.Killable.Get(e)
		if k.IsAlive() {
			continue
		}
		s.World.MarkForDeath(e)
		s.Resource.Audio.Play(core.SoundExplosion)

		if c.Player.Has(e) {
			session.RequestState(core.StateFinished)
			s.Log.Info("player destroyed", zap.Int("score", session.Score()))
			continue
		}

		s.killed++
		session.AddScore(k.Points)
		if k.DropsPickup {
			if tr, ok := c.Transform.Get(e); ok {
				s.dropPickup(tr.X, tr.Y)
			}
		}
	}
}

func (s *DeathSystem) dropPickup(x, y float64) core.Entity {
	c := s.Component
	cfg := s.Resource.Config

	eb := s.World.NewEntity()
	engine.With(eb, c.Transform, component.TransformComponent{X: x, Y: y, Scale: 1})
	engine.With(eb, c.Rect, component.RectComponent{Width: cfg.PickupWidth, Height: cfg.PickupHeight})
	engine.With(eb, c.HealthPickup, component.HealthPickupTag{})
	engine.With(eb, c.Sprite, component.SpriteComponent{Index: cfg.PickupSprite})
	engine.With(eb, c.Expire, component.ExpireComponent{Deadline: s.Resource.Time.Now + cfg.PickupTTL})
	return eb.Build()
}
