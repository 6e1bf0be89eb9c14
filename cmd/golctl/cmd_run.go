package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gol-editor/internal/app"
	"gol-editor/internal/core"
	"gol-editor/internal/render"
	"gol-editor/internal/sims/life"
	"gol-editor/pkg/pattern"
)

type runOptions struct {
	cfg         *app.Config
	configPath  string
	gens        int
	fast        bool
	every       int
	metricsAddr string
	print       bool
	pngPath     string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{cfg: app.NewConfig()}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a board headlessly and report the result",
		Long: `Run seeds a board (randomly, or from --pattern) and steps it for --gens
generations at --tps. Engine metrics are served on --metrics-addr while the
run is in progress.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return runBoard(cmd, cfg, opts)
		},
	}

	goFlags := flag.NewFlagSet("run", flag.ContinueOnError)
	opts.cfg.Bind(goFlags)
	cmd.Flags().AddGoFlagSet(goFlags)
	_ = cmd.Flags().MarkHidden("scale")
	_ = cmd.Flags().MarkHidden("hud")

	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file; explicit flags override it")
	cmd.Flags().IntVar(&opts.gens, "gens", 100, "generations to run, 0 runs until interrupted")
	cmd.Flags().BoolVar(&opts.fast, "fast", false, "ignore --tps and step as fast as possible")
	cmd.Flags().IntVar(&opts.every, "log-every", 0, "log progress every N generations")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	cmd.Flags().BoolVar(&opts.print, "print", false, "print the final living cells as pattern text")
	cmd.Flags().StringVar(&opts.pngPath, "png", "", "write the final board to a PNG file")
	return cmd
}

// resolve applies the config file, if any, and then re-applies every flag
// set explicitly on the command line.
func (o *runOptions) resolve(flags *pflag.FlagSet) (*app.Config, error) {
	if o.configPath == "" {
		return o.cfg, o.cfg.Validate()
	}
	loaded, err := app.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	overrides := flag.NewFlagSet("overrides", flag.ContinueOnError)
	loaded.Bind(overrides)
	var setErr error
	flags.Visit(func(f *pflag.Flag) {
		if setErr == nil && overrides.Lookup(f.Name) != nil {
			setErr = overrides.Set(f.Name, f.Value.String())
		}
	})
	if setErr != nil {
		return nil, setErr
	}
	return loaded, loaded.Validate()
}

func runBoard(cmd *cobra.Command, cfg *app.Config, opts *runOptions) error {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return fmt.Errorf("unknown sim %q", cfg.Sim)
	}
	sim, ok := factory(cfg.SimConfig()).(*life.Life)
	if !ok {
		return fmt.Errorf("sim %q cannot run headless", cfg.Sim)
	}
	if cfg.Pattern != "" {
		text, err := app.ReadPattern(cfg.Pattern)
		if err != nil {
			return err
		}
		size := sim.Size()
		w, h := pattern.Dims(text)
		n := sim.LoadPattern(text, (size.W-w)/2, (size.H-h)/2)
		slog.Info("pattern loaded", "file", cfg.Pattern, "cells", n)
	} else {
		sim.Reset(cfg.Seed)
	}

	if opts.metricsAddr != "" {
		stop := serveMetrics(opts.metricsAddr)
		defer stop()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	eng := sim.Engine()
	pacer := core.NewFixedStep(cfg.TPS)
	start := time.Now()
	slog.Info("run started", "board", eng.String(), "edge", sim.Config().Edge, "gens", opts.gens)
loop:
	for opts.gens == 0 || eng.Generation() < opts.gens {
		select {
		case <-ctx.Done():
			slog.Info("interrupted", "generation", eng.Generation())
			break loop
		default:
		}
		if !opts.fast {
			pacer.Wait()
		}
		sim.Step()
		if opts.every > 0 && eng.Generation()%opts.every == 0 {
			slog.Info("progress", "generation", eng.Generation(), "population", eng.Population(), "path", eng.LastPath())
		}
	}
	eng.Board().Refresh()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, eng.String())
	if tl, br, ok := eng.ActiveWindow(); ok {
		fmt.Fprintf(out, "active window (%d,%d)-(%d,%d)\n", tl.X, tl.Y, br.X, br.Y)
	}
	slog.Debug("run finished", "elapsed", time.Since(start))

	if opts.print {
		fmt.Fprintln(out, pattern.Encode(eng.Living(), eng.Size()))
	}
	if opts.pngPath != "" {
		if err := writePNG(opts.pngPath, sim); err != nil {
			return err
		}
	}
	return nil
}

func serveMetrics(addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server failed", "addr", addr, "err", err)
		}
	}()
	slog.Info("serving metrics", "addr", addr)
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func writePNG(path string, sim *life.Life) error {
	eng := sim.Engine()
	size := eng.Size()
	cells := make([]uint8, size.Area())
	for _, idx := range eng.Living() {
		cells[idx] = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	render.FillBinaryRGBA(img.Pix, cells, color.White, color.Black)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
