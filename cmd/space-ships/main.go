package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/MarcinKacperek/space-ships/asset"
	"github.com/MarcinKacperek/space-ships/audio"
	"github.com/MarcinKacperek/space-ships/config"
	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/engine"
	"github.com/MarcinKacperek/space-ships/prefab"
	"github.com/MarcinKacperek/space-ships/system"
	"github.com/MarcinKacperek/space-ships/terminal"
)

var (
	configPath = flag.String("config", "", "path to a YAML game config")
	debugFlag  = flag.Bool("debug", false, "write debug logs to logs/space-ships.log")
	seedFlag   = flag.Uint64("seed", 0, "fixed random seed, 0 derives one from the session id")
)

func main() {
	flag.Parse()

	score, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "space-ships: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Final score: %d\n", score)
}

func run() (int, error) {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return 0, err
	}
	if *debugFlag {
		cfg.Debug = true
	}

	log, logFile, err := setupLogging(cfg.Debug)
	if err != nil {
		return 0, err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer log.Sync()

	table, err := loadArchetypes(cfg.ArchetypeDir)
	if err != nil {
		log.Error("archetypes", zap.Error(err))
		return 0, err
	}

	screen, err := terminal.Open()
	if err != nil {
		return 0, err
	}
	core.SetCrashReset(screen.Fini)
	defer screen.Fini()

	audioCfg := audio.LoadAudioConfig()
	audioCfg.Enabled = audioCfg.Enabled && cfg.Audio
	sound := audio.NewSoundPlayer(audioCfg, log)
	if err := sound.Initialize(); err != nil && !errors.Is(err, audio.ErrAudioDisabled) {
		log.Warn("continuing without audio", zap.Error(err))
	}
	defer sound.Close()

	input := terminal.NewKeyboardInput()
	opts := []engine.Option{
		engine.WithLogger(log),
		engine.WithConfig(cfg.ConfigResource()),
		engine.WithInput(input),
		engine.WithAudio(sound),
	}
	if *seedFlag != 0 {
		opts = append(opts, engine.WithRand(rand.New(rand.NewPCG(engine.SeedFromUint64(*seedFlag, "world")))))
	}
	world := engine.NewWorld(opts...)

	system.RegisterPipeline(world, table)
	system.SetupScene(world, cfg.Player)

	log.Info("session start",
		zap.Stringer("session", world.Resource.Session.ID),
		zap.Uint64("seed", *seedFlag),
		zap.Int("archetypes", table.Len()),
	)

	g := newGame(world, input, terminal.NewRenderer(screen, world), sound, cfg.FrameInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer recoverCrash()
		return terminal.Pump(ctx, screen, input, g.commands)
	})
	eg.Go(func() error {
		defer cancel()
		defer recoverCrash()
		return g.loop(ctx)
	})

	err = eg.Wait()
	return world.Resource.Session.Score(), err
}

// recoverCrash routes a goroutine panic through the crash handler so the terminal is restored
func recoverCrash() {
	if r := recover(); r != nil {
		core.HandleCrash(r)
	}
}

// loadArchetypes prefers an on-disk directory and falls back to the embedded set
func loadArchetypes(dir string) (*prefab.Table, error) {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return prefab.LoadDir(os.DirFS(dir), ".")
		}
	}
	return prefab.LoadDir(asset.Archetypes, asset.ArchetypeDir)
}
