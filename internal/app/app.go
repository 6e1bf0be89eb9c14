//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"gol-editor/internal/core"
	"gol-editor/internal/render"
	"gol-editor/internal/ui"
	"gol-editor/pkg/pattern"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type patternLoader interface {
	LoadPattern(text string, x, y int) int
}

var binaryPalette = []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	editor  core.Editor
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep
	palette []color.RGBA

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
	pattern  string
}

// New constructs a Game for the provided simulation. pattern, when not
// empty, replaces the random board on every reset.
func New(sim core.Sim, cfg *Config, pattern string) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		hud:      ui.NewHUD(sim, cfg.HUD),
		pacer:    core.NewFixedStep(cfg.TPS),
		palette:  binaryPalette,
		scale:    cfg.Scale,
		hudWidth: cfg.HUD,
		seed:     cfg.Seed,
		pattern:  pattern,
	}
	g.editor, _ = sim.(core.Editor)
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	if loader, ok := g.sim.(patternLoader); ok && g.pattern != "" {
		size := g.sim.Size()
		w, h := pattern.Dims(g.pattern)
		n := loader.LoadPattern(g.pattern, (size.W-w)/2, (size.H-h)/2)
		slog.Debug("pattern loaded", "cells", n)
	}
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation at the
// configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.handleEdits()

	g.overlay.Update()
	g.hud.Update(g.boardWidth())

	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused && g.pacer.ShouldStep():
		g.sim.Step()
	}
	return nil
}

func (g *Game) handleEdits() {
	if g.editor == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.paused = true
		if !g.editor.Rewind() {
			slog.Debug("nothing to rewind")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.editor.Checkpoint()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.paused = true
		g.editor.RestoreCheckpoint()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.editor.ClearRuleBoxes()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= 0 && my >= 0 && mx < g.boardWidth() {
			g.editor.Toggle(mx/g.scale, my/g.scale)
		}
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.boardWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

func (g *Game) boardWidth() int { return g.sim.Size().W * g.scale }
