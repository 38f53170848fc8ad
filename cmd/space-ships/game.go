package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/parameter"
	"github.com/MarcinKacperek/space-ships/terminal"
)

const pausedBanner = " PAUSED (p to resume) "

// muter is the slice of the sound player the loop drives
type muter interface {
	ToggleMute() bool
}

// game owns the frame loop; only its goroutine touches the world
type game struct {
	world    *engine.World
	input    *terminal.KeyboardInput
	renderer *terminal.Renderer
	sound    muter
	commands chan terminal.Action
	interval time.Duration
	over     bool
	log      *zap.Logger
}

func newGame(world *engine.World, input *terminal.KeyboardInput, renderer *terminal.Renderer, sound muter, interval time.Duration) *game {
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	return &game{
		world:    world,
		input:    input,
		renderer: renderer,
		sound:    sound,
		commands: make(chan terminal.Action, 16),
		interval: interval,
		log:      world.Log.Named("game"),
	}
}

// loop ticks frames until quit or ctx is done
func (g *game) loop(ctx context.Context) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	last := time.Now()
	g.renderer.Draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case action := <-g.commands:
			if g.handleCommand(action) {
				return nil
			}
		case now := <-ticker.C:
			dt := min(now.Sub(last), parameter.MaxFrameDelta)
			last = now
			g.step(dt)
		}
	}
}

// step runs one world frame, applies the requested transition, then draws
func (g *game) step(dt time.Duration) {
	g.world.RunFrame(dt)
	g.applyState()
	g.renderer.Draw()
}

// handleCommand reacts to one-shot keys and reports whether the session should exit
func (g *game) handleCommand(action terminal.Action) bool {
	session := g.world.Resource.Session
	switch action {
	case terminal.ActionQuit:
		g.log.Info("quit requested", zap.Int("score", session.Score()))
		return true
	case terminal.ActionPause:
		if g.over {
			return false
		}
		if g.world.IsPaused() {
			session.RequestState(core.StateRunning)
		} else {
			session.RequestState(core.StatePaused)
		}
	case terminal.ActionMute:
		if g.sound != nil {
			muted := g.sound.ToggleMute()
			g.log.Debug("mute toggled", zap.Bool("muted", muted))
		}
	}
	return false
}

// applyState consumes the session transition request
func (g *game) applyState() {
	session := g.world.Resource.Session
	switch next := session.TakeNextState(); next {
	case core.StatePaused:
		g.world.Pause()
		g.input.Release()
		g.renderer.SetBanner(pausedBanner)
	case core.StateRunning:
		g.world.Resume()
		g.renderer.SetBanner("")
	case core.StateFinished:
		g.over = true
		g.world.Pause()
		g.input.Release()
		g.renderer.SetBanner(fmt.Sprintf(" GAME OVER  Score: %d  (q to quit) ", session.Score()))
		g.log.Info("session finished",
			zap.Int("score", session.Score()),
			zap.Int64("frames", g.world.FrameNumber()),
		)
	}
}
