package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"cubescene/config"
	"cubescene/core"
	"cubescene/interaction"
	"cubescene/simulation"
)

func main() {
	runtime.LockOSThread()

	// Parse command line flags
	var (
		configPath  = flag.String("config", "settings.json", "Settings file (.json or .toml); empty to skip")
		backendName = flag.String("backend", "", "Renderer backend (opengl, raylib)")
		width       = flag.Int("width", 0, "Window width")
		height      = flag.Int("height", 0, "Window height")
		seed        = flag.Uint64("seed", 0, "Random seed for pulse phases and particles (0 = clock)")
		logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	log := newLogger(*logLevel)

	settings, err := config.Load(*configPath, log)
	if err != nil {
		fatal(log, "invalid settings", err)
	}

	// Flags win over the settings file and environment
	var overrides config.Overrides
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			overrides.Backend = backendName
		case "width":
			overrides.Width = width
		case "height":
			overrides.Height = height
		case "seed":
			overrides.Seed = seed
		}
	})
	settings.Apply(overrides)
	if err := settings.Validate(); err != nil {
		fatal(log, "invalid settings", err)
	}

	fmt.Println("=== cubescene ===")
	fmt.Printf("Backend: %s\n", settings.Window.Backend)
	fmt.Printf("Grid: %d³ cubes, %d particles\n", settings.Scene.GridSize, settings.Scene.ParticleCount)
	fmt.Printf("Window: %dx%d\n", settings.Window.Width, settings.Window.Height)

	r, err := openBackend(settings, log)
	if err != nil {
		fatal(log, "failed to create renderer", err)
	}
	defer r.Close()

	// The window may have been scaled to the monitor
	cfg := settings.SceneConfig()
	cfg.Width, cfg.Height = r.WindowSize()
	scene := core.NewScene(cfg, core.NewRandom(settings.Scene.Seed))

	router := interaction.NewRouter(scene, r, r, log.With("component", "input"))
	r.SetInputHandler(router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	updates := make(chan func(*core.Scene), 4)
	if *configPath != "" {
		go watchSettings(ctx, *configPath, settings, overrides, updates, log.With("component", "settings"))
	}

	fmt.Println("\nControls:")
	fmt.Println("  Mouse: Hover to highlight, click to select")
	fmt.Println("  Scroll: Zoom in/out")
	fmt.Println("  Space: Pause/resume")
	fmt.Println("  ESC: Exit")

	loop := simulation.NewLoop(scene, r, nil, log.With("component", "loop")).WithUpdates(updates)
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("render loop failed", "err", err)
	}

	fmt.Println("\nShutting down...")
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "err", err)
	os.Exit(1)
}

// watchSettings forwards live-tunable changes to the render loop and warns
// about the ones that need a restart
func watchSettings(ctx context.Context, path string, current config.Settings, overrides config.Overrides, updates chan<- func(*core.Scene), log *slog.Logger) {
	err := config.Watch(ctx, path, log, func(s config.Settings) {
		s.Apply(overrides)
		if sections := config.RestartRequired(current, s); len(sections) > 0 {
			log.Warn("settings changed that need a restart", "sections", sections)
		}
		current = s

		tunables, fog := s.Tunables(), s.FogConfig()
		apply := func(scene *core.Scene) {
			scene.Tunables = tunables
			scene.Fog = fog
		}
		select {
		case updates <- apply:
			log.Info("settings reloaded", "orbit_radius", tunables.OrbitRadius, "fog_near", fog.Near, "fog_far", fog.Far)
		case <-ctx.Done():
		}
	})
	if err != nil {
		log.Warn("settings reload disabled", "err", err)
	}
}
