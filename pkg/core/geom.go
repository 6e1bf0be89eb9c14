package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns W*H.
func (s Size) Area() int { return s.W * s.H }

// Index returns the row-major index of (x, y). No bounds checking is done.
func (s Size) Index(x, y int) int { return y*s.W + x }

// Coord converts a row-major index back into coordinates.
func (s Size) Coord(idx int) Coord {
	if s.W <= 0 {
		return Coord{}
	}
	y := idx / s.W
	x := idx % s.W
	if x < 0 {
		x += s.W
		y--
	}
	return Coord{X: x, Y: y}
}

// Contains reports whether (x, y) lies on the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Coord is a cell position on the grid.
type Coord struct {
	X int
	Y int
}
