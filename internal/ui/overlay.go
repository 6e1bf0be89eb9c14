//go:build ebiten

package ui

import (
	"image/color"
	"log/slog"

	"gol-editor/internal/core"
	gridcore "gol-editor/pkg/core"
	"gol-editor/pkg/rules"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type ruleBoxMasker interface {
	RuleBoxMask() []bool
}

type ruleBoxAssigner interface {
	AssignRuleBox(a, b gridcore.Coord) *rules.RuleSet
}

var (
	boxTint       = color.RGBA{R: 120, G: 80, B: 200, A: 90}
	selectionTint = color.RGBA{R: 255, G: 220, B: 90, A: 200}
)

// Overlay draws rule-box highlights and handles the right-drag gesture that
// creates new rule boxes.
type Overlay struct {
	sim       core.Sim
	scale     int
	showBoxes bool
	sel       selection

	maskImg *ebiten.Image
	maskBuf []byte
	pixel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: max(scale, 1), showBoxes: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the highlight and tracks the selection drag.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBoxes = !o.showBoxes
	}
	assigner, ok := o.sim.(ruleBoxAssigner)
	if !ok {
		return
	}
	size := o.sim.Size()
	mx, my := ebiten.CursorPosition()
	inside := mx >= 0 && my >= 0 && mx < size.W*o.scale && my < size.H*o.scale
	cell := cellAt(mx, my, o.scale, size)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && inside:
		o.sel.begin(cell)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		o.sel.move(cell)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight):
		if a, b, ok := o.sel.finish(); ok {
			r := assigner.AssignRuleBox(a, b)
			slog.Debug("rule box assigned", "from", a, "to", b, "rule", rules.Generate(r))
		}
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	total := size.Area()
	if total == 0 {
		return
	}
	if o.showBoxes {
		if masker, ok := o.sim.(ruleBoxMasker); ok {
			o.drawMask(screen, masker.RuleBoxMask(), size)
		}
	}
	if o.sel.active {
		o.drawSelection(screen)
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []bool, size gridcore.Size) {
	total := size.Area()
	if len(mask) != total {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	fillMaskRGBA(o.maskBuf, mask, boxTint)
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawSelection(screen *ebiten.Image) {
	a, b := o.sel.bounds()
	s := float64(o.scale)
	x0, y0 := float64(a.X)*s, float64(a.Y)*s
	x1, y1 := float64(b.X+1)*s, float64(b.Y+1)*s
	o.fillRect(screen, x0, y0, x1-x0, 1)
	o.fillRect(screen, x0, y1-1, x1-x0, 1)
	o.fillRect(screen, x0, y0, 1, y1-y0)
	o.fillRect(screen, x1-1, y0, 1, y1-y0)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(selectionTint)
	screen.DrawImage(o.pixel, op)
}
