package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcinKacperek/space-ships/component"
	"github.com/MarcinKacperek/space-ships/core"
)

func TestRegistryGenerationalReuse(t *testing.T) {
	r := NewEntityRegistry()

	a := r.Create()
	require.True(t, r.IsAlive(a))
	require.True(t, r.Destroy(a))
	assert.False(t, r.IsAlive(a))
	assert.False(t, r.Destroy(a), "double destroy")

	b := r.Create()
	assert.Equal(t, a.Index(), b.Index(), "slot reused")
	assert.NotEqual(t, a.Generation(), b.Generation())
	assert.False(t, r.IsAlive(a), "stale handle must not alias")
	assert.True(t, r.IsAlive(b))
	assert.False(t, r.IsAlive(core.Entity(0)))
	assert.Equal(t, 1, r.Count())
}

func TestStoreAddRejectsDeadEntity(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.DestroyEntity(e)

	err := w.Components.Transform.Add(e, component.TransformComponent{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEntity))

	err = w.Components.Transform.Add(core.Entity(12345), component.TransformComponent{})
	assert.ErrorIs(t, err, ErrInvalidEntity)
}

func TestStoreSetPanicsOnDeadEntity(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.DestroyEntity(e)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrInvalidEntity)
	}()
	w.Components.Rect.Set(e, component.RectComponent{Width: 1, Height: 1})
}

func TestStoreRemoveKeepsOthers(t *testing.T) {
	w := NewWorld()
	s := w.Components.Sprite
	var es []core.Entity
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		require.NoError(t, s.Add(e, component.SpriteComponent{Index: i}))
		es = append(es, e)
	}

	s.Remove(es[1])
	s.Remove(es[1])
	assert.Equal(t, 4, s.Count())
	assert.False(t, s.Has(es[1]))

	for i, e := range es {
		if i == 1 {
			continue
		}
		v, ok := s.Get(e)
		require.True(t, ok)
		assert.Equal(t, i, v.Index)
	}

	s.Set(es[4], component.SpriteComponent{Index: 40})
	v, _ := s.Get(es[4])
	assert.Equal(t, 40, v.Index)
	assert.Equal(t, 4, s.Count())
}

func TestQueryWithWithout(t *testing.T) {
	w := NewWorld()
	c := w.Components

	both := w.CreateEntity()
	c.Transform.Set(both, component.TransformComponent{})
	c.Rect.Set(both, component.RectComponent{})

	marked := w.CreateEntity()
	c.Transform.Set(marked, component.TransformComponent{})
	c.Rect.Set(marked, component.RectComponent{})
	w.MarkForDeath(marked)

	onlyTransform := w.CreateEntity()
	c.Transform.Set(onlyTransform, component.TransformComponent{})

	got := w.Query().With(c.Transform, c.Rect).Execute()
	assert.ElementsMatch(t, []core.Entity{both, marked}, got)

	got = w.Query().With(c.Transform).With(c.Rect).Without(c.Death).Execute()
	assert.Equal(t, []core.Entity{both}, got)

	assert.Empty(t, w.Query().With(c.Missile).Execute())
	assert.Empty(t, w.Query().Execute())
}

func TestMarkForDeathDeferred(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Components.Transform.Set(e, component.TransformComponent{X: 3})

	w.MarkForDeath(e)
	w.MarkForDeath(e)
	assert.True(t, w.IsMarked(e))
	assert.True(t, w.IsAlive(e))
	tr, ok := w.Components.Transform.Get(e)
	require.True(t, ok)
	assert.Equal(t, 3.0, tr.X)
	assert.Equal(t, 1, w.Components.Death.Count())

	w.DestroyEntity(e)
	assert.False(t, w.IsAlive(e))
	assert.False(t, w.Components.Transform.Has(e))
	assert.False(t, w.Components.Death.Has(e))

	// Dead handles are ignored
	w.MarkForDeath(e)
	assert.Equal(t, 0, w.Components.Death.Count())
}

func TestEntityBuilder(t *testing.T) {
	w := NewWorld()
	e := With(
		With(w.NewEntity(), w.Components.Transform, component.TransformComponent{X: 1, Y: 2, Scale: 1}),
		w.Components.Enemy, component.EnemyTag{},
	).Build()

	assert.True(t, w.IsAlive(e))
	assert.True(t, w.Components.Enemy.Has(e))

	b := w.NewEntity()
	b.Build()
	assert.Panics(t, func() { With(b, w.Components.Player, component.PlayerTag{}) })
}

type recordSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *recordSystem) Name() string  { return s.name }
func (s *recordSystem) Priority() int { return s.priority }
func (s *recordSystem) Update()       { *s.log = append(*s.log, s.name) }

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(&recordSystem{name: "cull", priority: 120, log: &log})
	w.AddSystem(&recordSystem{name: "input", priority: 10, log: &log})
	w.AddSystem(&recordSystem{name: "move-a", priority: 20, log: &log})
	w.AddSystem(&recordSystem{name: "move-b", priority: 20, log: &log})

	w.RunFrame(16 * time.Millisecond)
	assert.Equal(t, []string{"input", "move-a", "move-b", "cull"}, log)
	assert.Equal(t, int64(1), w.FrameNumber())
}

func TestRunFrameTimeScale(t *testing.T) {
	w := NewWorld()

	w.RunFrame(500 * time.Millisecond)
	assert.InDelta(t, 0.5, w.Resource.Time.Now, 1e-9)
	assert.InDelta(t, 0.5, w.Resource.Time.Delta, 1e-9)

	w.Pause()
	w.RunFrame(time.Second)
	assert.InDelta(t, 0.5, w.Resource.Time.Now, 1e-9)
	assert.Zero(t, w.Resource.Time.Delta)
	assert.True(t, w.IsPaused())

	w.SetTimeScale(2)
	w.Resume()
	w.RunFrame(250 * time.Millisecond)
	assert.InDelta(t, 1.0, w.Now(), 1e-9)
	assert.Equal(t, 2.0, w.Resource.Time.Scale)
	assert.Equal(t, 1750*time.Millisecond, w.RealElapsed(), "wall clock ignores scale and pause")
}

func TestClearDestroysEverything(t *testing.T) {
	w := NewWorld()
	var es []core.Entity
	for i := 0; i < 10; i++ {
		e := w.CreateEntity()
		w.Components.Transform.Set(e, component.TransformComponent{})
		es = append(es, e)
	}
	w.Clear()

	assert.Zero(t, w.EntityCount())
	assert.Zero(t, w.Components.Transform.Count())
	for _, e := range es {
		assert.False(t, w.IsAlive(e))
	}
}

func TestSessionScoreAndState(t *testing.T) {
	s := NewSessionResource()
	s.AddScore(3)
	s.AddScore(-10)
	s.AddScore(0)
	assert.Equal(t, 3, s.Score())

	s.RequestState(core.StateFinished)
	s.RequestState(core.StatePaused)
	assert.Equal(t, core.StateFinished, s.TakeNextState())
	assert.Equal(t, core.StateNone, s.TakeNextState())

	hi1, lo1 := s.StreamSeed("spawn")
	hi2, lo2 := s.StreamSeed("spawn")
	_, lo3 := s.StreamSeed("other")
	assert.Equal(t, hi1, hi2)
	assert.Equal(t, lo1, lo2)
	assert.NotEqual(t, lo1, lo3)
}

func TestAudioResourceNilSafe(t *testing.T) {
	var ar *AudioResource
	assert.False(t, ar.Play(core.SoundShot))
	assert.False(t, (&AudioResource{}).Play(core.SoundShot))

	rec := &RecordingAudio{}
	assert.True(t, (&AudioResource{Player: rec}).Play(core.SoundHit))
	assert.Equal(t, 1, rec.Count(core.SoundHit))
}
