package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcinKacperek/space-ships/config"
	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/system"
	"github.com/MarcinKacperek/space-ships/terminal"
)

type stubMuter struct {
	muted bool
}

func (m *stubMuter) ToggleMute() bool {
	m.muted = !m.muted
	return m.muted
}

func newTestGame(t *testing.T) (*game, *stubMuter) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(75, 91)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	w := engine.NewWorld(engine.WithConfig(cfg.ConfigResource()))
	table, err := loadArchetypes("")
	require.NoError(t, err)
	system.RegisterPipeline(w, table)
	system.SetupScene(w, cfg.Player)

	m := &stubMuter{}
	g := newGame(w, terminal.NewKeyboardInput(), terminal.NewRenderer(screen, w), m, 0)
	return g, m
}

func TestGamePauseToggle(t *testing.T) {
	g, _ := newTestGame(t)

	g.step(16 * time.Millisecond)
	assert.False(t, g.world.IsPaused())

	assert.False(t, g.handleCommand(terminal.ActionPause))
	g.step(16 * time.Millisecond)
	assert.True(t, g.world.IsPaused())

	before := g.world.Now()
	g.step(16 * time.Millisecond)
	assert.Equal(t, before, g.world.Now(), "sim time frozen while paused")

	g.handleCommand(terminal.ActionPause)
	g.step(16 * time.Millisecond)
	assert.False(t, g.world.IsPaused())
}

func TestGameFinishedShowsGameOver(t *testing.T) {
	g, _ := newTestGame(t)

	g.world.Resource.Session.RequestState(core.StateFinished)
	g.step(16 * time.Millisecond)

	assert.True(t, g.over)
	assert.True(t, g.world.IsPaused())

	g.handleCommand(terminal.ActionPause)
	g.step(16 * time.Millisecond)
	assert.True(t, g.world.IsPaused(), "pause key ignored after game over")
}

func TestGameCommands(t *testing.T) {
	g, m := newTestGame(t)

	assert.False(t, g.handleCommand(terminal.ActionMute))
	assert.True(t, m.muted)
	assert.True(t, g.handleCommand(terminal.ActionQuit))
}

func TestGameLoopStopsOnQuit(t *testing.T) {
	g, _ := newTestGame(t)

	done := make(chan error, 1)
	go func() { done <- g.loop(context.Background()) }()
	g.commands <- terminal.ActionQuit

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit")
	}
}

func TestLoadArchetypesFallsBackToEmbedded(t *testing.T) {
	table, err := loadArchetypes("does/not/exist")
	require.NoError(t, err)
	assert.Positive(t, table.Len())
}
