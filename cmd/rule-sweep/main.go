// Command rule-sweep runs many rules on the same seeded random boards and
// ranks them, to find rules worth exploring in the editor.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"gol-editor/pkg/engine"
	"gol-editor/pkg/rules"
)

func main() {
	gens := flag.Int("gens", 200, "generations to simulate per board")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 128, "board width")
	height := flag.Int("h", 128, "board height")
	density := flag.Float64("density", 0.1, "share of cells alive at the start")
	seeds := flag.Int("seeds", 3, "boards per rule, seeded 1..n")
	edge := flag.String("edge", "flat", "edge policy: flat, dead, clamp or wrap")
	presets := flag.String("presets", rules.FamilyBS, "comma-separated preset families to include, empty for none")
	family := flag.String("family", rules.FamilyBS, "family of the random rules")
	random := flag.Int("random", 0, "number of random rules to add")
	randomSeed := flag.Int64("random-seed", 1, "seed for the random rules")
	sortBy := flag.String("sort", "final", "ranking key: final, activity or peak")
	top := flag.Int("top", 10, "number of results to print")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	policy, err := engine.ParseEdgePolicy(*edge)
	if err != nil {
		fatal(err)
	}
	var families []string
	for _, f := range strings.Split(*presets, ",") {
		if f = strings.TrimSpace(f); f != "" {
			families = append(families, f)
		}
	}
	cands, err := candidates(families, *family, *random, *randomSeed)
	if err != nil {
		fatal(err)
	}
	if len(cands) == 0 {
		fatal(fmt.Errorf("nothing to sweep: set -presets or -random"))
	}

	sc := scenario{width: *width, height: *height, density: *density, gens: *gens, edge: policy}
	for i := range *seeds {
		sc.seeds = append(sc.seeds, int64(i+1))
	}

	fmt.Printf("Sweeping %d rules (%d workers, %d gens, %d boards of %dx%d)\n",
		len(cands), *workers, *gens, len(sc.seeds), sc.width, sc.height)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep(ctx, sc, cands, *workers)
	if err != nil {
		fatal(err)
	}
	if err := rank(results, *sortBy); err != nil {
		fatal(err)
	}

	fmt.Printf("\nTop %d results by %s (elapsed %s):\n", min(*top, len(results)), *sortBy, time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, results[i])
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "rule-sweep:", err)
	os.Exit(1)
}
