package ui

import (
	"image/color"

	gridcore "gol-editor/pkg/core"
)

// selection tracks a rectangle dragged across the board in cell units.
type selection struct {
	active bool
	start  gridcore.Coord
	end    gridcore.Coord
}

func (s *selection) begin(c gridcore.Coord) {
	s.active = true
	s.start, s.end = c, c
}

func (s *selection) move(c gridcore.Coord) {
	if s.active {
		s.end = c
	}
}

// finish ends the drag and returns its corners ordered top-left first.
func (s *selection) finish() (topLeft, bottomRight gridcore.Coord, ok bool) {
	if !s.active {
		return gridcore.Coord{}, gridcore.Coord{}, false
	}
	s.active = false
	topLeft, bottomRight = s.bounds()
	return topLeft, bottomRight, true
}

func (s *selection) bounds() (topLeft, bottomRight gridcore.Coord) {
	topLeft = gridcore.Coord{X: min(s.start.X, s.end.X), Y: min(s.start.Y, s.end.Y)}
	bottomRight = gridcore.Coord{X: max(s.start.X, s.end.X), Y: max(s.start.Y, s.end.Y)}
	return topLeft, bottomRight
}

// cellAt converts a screen position to a cell clamped to the board.
func cellAt(px, py, scale int, size gridcore.Size) gridcore.Coord {
	if scale <= 0 {
		scale = 1
	}
	x := min(max(px/scale, 0), size.W-1)
	y := min(max(py/scale, 0), size.H-1)
	return gridcore.Coord{X: x, Y: y}
}

// fillMaskRGBA paints tint over masked cells and leaves the rest
// transparent.
func fillMaskRGBA(buf []byte, mask []bool, tint color.RGBA) {
	for i, on := range mask {
		base := i * 4
		if !on {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		buf[base+0], buf[base+1], buf[base+2], buf[base+3] = tint.R, tint.G, tint.B, tint.A
	}
}
