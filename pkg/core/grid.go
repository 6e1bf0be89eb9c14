package core

// Grid stores a 2D grid of live/dead cells in row-major order.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Alive reports the value at idx; any index outside the slice reads as dead.
func (g *Grid) Alive(idx int) bool {
	if idx < 0 || idx >= len(g.data) {
		return false
	}
	return g.data[idx]
}

// Set writes idx when it is on the grid and reports whether it was.
func (g *Grid) Set(idx int, alive bool) bool {
	if idx < 0 || idx >= len(g.data) {
		return false
	}
	g.data[idx] = alive
	return true
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clamp pins the provided coordinates to the nearest edge cell.
func (g *Grid) Clamp(x, y int) (int, int) {
	x = min(max(x, 0), g.W-1)
	y = min(max(y, 0), g.H-1)
	return x, y
}

// Living appends the index of every live cell to dst in ascending order.
func (g *Grid) Living(dst []int) []int {
	for i, alive := range g.data {
		if alive {
			dst = append(dst, i)
		}
	}
	return dst
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
