package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"courtbounce/internal/config"
	"courtbounce/internal/game"
	"courtbounce/internal/physics"
	"courtbounce/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	maxTicks := flag.Int("max-ticks", -1, "stop after N ticks (0 runs until the window closes, -1 uses the config)")
	noHUD := flag.Bool("no-hud", false, "hide the status bar")
	flag.Parse()

	// Resolve assets next to the binary, except under "go run" which builds
	// into a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if err := os.Chdir(execDir); err != nil {
				log.Printf("Game: staying in working directory: %v", err)
			}
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Game: %v", err)
	}
	if *maxTicks >= 0 {
		cfg.Simulation.MaxTicks = *maxTicks
	}
	if *noHUD {
		cfg.HUD = false
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Game: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	win, err := game.OpenWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer win.Close()

	width, height := win.Size()
	renderer := world.NewRenderer(cfg.Shaders, width, height)
	defer renderer.Unload()

	g := cfg.Simulation.Gravity
	sim := physics.NewWorld(rl.Vector3{X: g[0], Y: g[1], Z: g[2]})

	gm, err := game.New(cfg, sim, win, renderer)
	if err != nil {
		return err
	}
	if cfg.HUD {
		renderer.Overlay = game.NewHUD(gm).Draw
	}

	log.Printf("Game: running at fixed step %.4fs", cfg.Simulation.FixedStep)
	return gm.Run(ctx, cfg.Simulation.MaxTicks)
}
