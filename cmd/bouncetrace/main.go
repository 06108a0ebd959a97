// Command bouncetrace runs the court simulation without a window and prints
// one CSV row per tick.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"courtbounce/internal/config"
	"courtbounce/internal/game"
	"courtbounce/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	ticks := flag.Int("ticks", 120, "number of ticks to simulate")
	flag.Parse()

	if *ticks <= 0 {
		log.Fatalf("ticks must be positive, got %d", *ticks)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Trace: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if err := trace(cfg, *ticks, out); err != nil {
		log.Fatalf("Trace: %v", err)
	}
}

func trace(cfg *config.Config, ticks int, out *bufio.Writer) error {
	g := cfg.Simulation.Gravity
	sim := physics.NewWorld(rl.Vector3{X: g[0], Y: g[1], Z: g[2]})

	win := &game.HeadlessWindow{Width: cfg.Window.Width, Height: cfg.Window.Height}
	gm, err := game.New(cfg, sim, win, &game.HeadlessRenderer{})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "tick,y,vy,bounces")
	gm.Ticked.AddListener(func(info game.TickInfo) {
		fmt.Fprintf(out, "%d,%.6f,%.6f,%d\n", info.Tick, info.BallPosition.Y, info.BallVelocity.Y, info.Bounces)
	})

	return gm.Run(context.Background(), ticks)
}
