//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"gol-editor/internal/app"
	"gol-editor/internal/core"
	_ "gol-editor/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	configPath := flag.String("config", "", "YAML config file; flags given on the command line override it")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		loaded, err := app.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		// Re-apply the command line on top of the file.
		fs := flag.NewFlagSet("ca", flag.ExitOnError)
		fs.String("config", "", "")
		loaded.Bind(fs)
		fs.Parse(os.Args[1:])
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	var pattern string
	if cfg.Pattern != "" {
		text, err := app.ReadPattern(cfg.Pattern)
		if err != nil {
			log.Fatal(err)
		}
		pattern = text
	}

	sim := factory(cfg.SimConfig())
	game := app.New(sim, cfg, pattern)
	game.Reset(cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("gol-editor: " + sim.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUD, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
