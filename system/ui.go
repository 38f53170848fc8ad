package system

import (
	"fmt"

	"github.com/MarcinKacperek/space-ships/component"
	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
)

// UISystem pushes score and player health into the display texts and maintains enemy health bars
// It never changes gameplay state
type UISystem struct {
	engine.SystemBase
}

func NewUISystem(world *engine.World) engine.System {
	return &UISystem{SystemBase: engine.NewSystemBase(world, "ui")}
}

func (s *UISystem) Name() string {
	return "ui"
}

func (s *UISystem) Priority() int {
	return parameter.PriorityUI
}

func (s *UISystem) Update() {
	s.updateTexts()
	s.updateHealthBars()
}

func (s *UISystem) updateTexts() {
	c := s.Component
	ui := s.Resource.UI

	s.setText(ui.ScoreText, fmt.Sprintf(parameter.ScoreTextFormat, s.Resource.Session.Score()))

	lives := 0
	for _, p := range s.World.Query().With(c.Player, c.Killable).Execute() {
		k, _ := c.Killable.Get(p)
		lives = k.Health
		break
	}
	s.setText(ui.LifeText, fmt.Sprintf(parameter.LifeTextFormat, lives))
}

func (s *UISystem) setText(e core.Entity, value string) {
	if !s.World.IsAlive(e) {
		return
	}
	if t, ok := s.Component.Text.Get(e); ok && t.Value == value {
		return
	}
	s.Component.Text.Set(e, component.TextComponent{Value: value})
}

func (s *UISystem) updateHealthBars() {
	c := s.Component
	owners := s.World.Query().With(c.Killable, c.Transform, c.Rect).Without(c.Player, c.Death).Execute()

	for _, owner := range owners {
		k, _ := c.Killable.Get(owner)
		tr, _ := c.Transform.Get(owner)
		rect, _ := c.Rect.Get(owner)

		barX, barY := tr.X, tr.Y+rect.Height/2+s.Resource.Config.HealthBarOffset

		if !s.World.IsAlive(k.HealthBar) {
			k.HealthBar = s.buildHealthBar(owner, k, rect.Width)
			c.Killable.Set(owner, k)
		}

		bar, ok := c.HealthBar.Get(k.HealthBar)
		if !ok {
			continue
		}
		s.layoutBar(k.HealthBar, bar, barX, barY, rect.Width)

		if bar.LastHealth != k.Health {
			for i, seg := range bar.Segments {
				hs, ok := c.HealthSegment.Get(seg)
				if !ok {
					continue
				}
				hs.Filled = i < k.Health
				c.HealthSegment.Set(seg, hs)
			}
			bar.LastHealth = k.Health
			c.HealthBar.Set(k.HealthBar, bar)
		}
	}
}

// segmentWidth splits the bar into maxHealth cells separated by the configured spacing
func (s *UISystem) segmentWidth(barWidth float64, maxHealth int) float64 {
	spacing := s.Resource.Config.SegmentSpacing
	w := (barWidth - spacing - spacing*float64(maxHealth)) / float64(maxHealth)
	if w < 1 {
		w = 1
	}
	return w
}

func (s *UISystem) buildHealthBar(owner core.Entity, k component.KillableComponent, width float64) core.Entity {
	c := s.Component
	height := s.Resource.Config.HealthBarHeight

	bar := s.World.NewEntity()
	engine.With(bar, c.Transform, component.TransformComponent{Scale: 1})
	engine.With(bar, c.Rect, component.RectComponent{Width: width, Height: height})
	engine.With(bar, c.Parent, component.ParentComponent{Entity: owner})
	barEntity := bar.Entity()

	segW := s.segmentWidth(width, k.MaxHealth)
	segments := make([]core.Entity, 0, k.MaxHealth)
	for i := 0; i < k.MaxHealth; i++ {
		seg := engine.With(
			engine.With(
				engine.With(
					engine.With(s.World.NewEntity(), c.Transform, component.TransformComponent{Scale: 1}),
					c.Rect, component.RectComponent{Width: segW, Height: height - 2},
				),
				c.HealthSegment, component.HealthSegmentComponent{Index: i, Filled: i < k.Health},
			),
			c.Parent, component.ParentComponent{Entity: barEntity},
		).Build()
		segments = append(segments, seg)
	}

	engine.With(bar, c.HealthBar, component.HealthBarComponent{
		Owner:      owner,
		LastHealth: k.Health,
		Segments:   segments,
	})
	return bar.Build()
}

// layoutBar moves the bar and its segments, left to right from the bar's left edge
func (s *UISystem) layoutBar(barEntity core.Entity, bar component.HealthBarComponent, x, y, width float64) {
	c := s.Component
	spacing := s.Resource.Config.SegmentSpacing

	c.Transform.Set(barEntity, component.TransformComponent{X: x, Y: y, Scale: 1})

	if len(bar.Segments) == 0 {
		return
	}
	segW := s.segmentWidth(width, len(bar.Segments))
	left := x - width/2 + spacing + segW/2
	for i, seg := range bar.Segments {
		if !s.World.IsAlive(seg) {
			continue
		}
		c.Transform.Set(seg, component.TransformComponent{
			X:     left + float64(i)*(segW+spacing),
			Y:     y,
			Scale: 1,
		})
	}
}
