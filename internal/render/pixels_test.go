package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	FillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.Black)
	assert.Equal(t, []byte{255, 255, 255, 255, 0, 0, 0, 255}, buf)
}

func TestFillPaletteRGBAClampsToLastColor(t *testing.T) {
	palette := []color.RGBA{{A: 255}, {R: 10, G: 20, B: 30, A: 255}}
	buf := make([]byte, 12)
	FillPaletteRGBA(buf, []uint8{0, 1, 7}, palette)
	assert.Equal(t, []byte{0, 0, 0, 255, 10, 20, 30, 255, 10, 20, 30, 255}, buf)
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	FillPaletteRGBA(buf, []uint8{3, 3}, nil)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0, 9}, buf)
}
