// Package pattern converts between plain-text patterns and board indices.
//
// A pattern is a block of rows, one per line, where 'O' marks a live cell and
// any other character a dead one. Lines starting with '!' at the top of the
// text are comments. Other notations are not understood: text is read
// leniently and never rejected.
package pattern

import (
	"slices"
	"strings"

	"gol-editor/pkg/core"
)

const (
	live    = 'O'
	dead    = '.'
	comment = '!'
)

// Rows strips the leading comment block and splits text into rows.
func Rows(text string) []string {
	for strings.HasPrefix(text, string(comment)) {
		_, rest, found := strings.Cut(text, "\n")
		if !found {
			return nil
		}
		text = rest
	}
	rows := strings.Split(text, "\n")
	for i, row := range rows {
		rows[i] = strings.TrimSuffix(row, "\r")
	}
	return rows
}

// Dims returns the width of the longest row and the number of rows.
func Dims(text string) (w, h int) {
	rows := Rows(text)
	for _, row := range rows {
		w = max(w, len(row))
	}
	return w, len(rows)
}

// Decode maps every 'O' at row r, column c to origin + r*size.W + c. Indices
// are not checked against the board.
func Decode(text string, size core.Size, origin int) []int {
	var out []int
	for r, row := range Rows(text) {
		base := origin + r*size.W
		for c := 0; c < len(row); c++ {
			if row[c] == live {
				out = append(out, base+c)
			}
		}
	}
	return out
}

// DecodeAt is Decode with the origin given as coordinates.
func DecodeAt(text string, size core.Size, x, y int) []int {
	return Decode(text, size, size.Index(x, y))
}

// Encode writes the cells of indices as a pattern anchored at their bounding
// box, so Decode at the box's top-left index gives the same set back.
func Encode(indices []int, size core.Size) string {
	if len(indices) == 0 || size.W <= 0 {
		return ""
	}
	set := make(map[int]bool, len(indices))
	for _, idx := range indices {
		set[idx] = true
	}
	tl, br := BoundingBox(indices, size)
	var sb strings.Builder
	sb.Grow((br.X - tl.X + 2) * (br.Y - tl.Y + 1))
	for y := tl.Y; y <= br.Y; y++ {
		if y > tl.Y {
			sb.WriteByte('\n')
		}
		for x := tl.X; x <= br.X; x++ {
			if set[size.Index(x, y)] {
				sb.WriteByte(live)
			} else {
				sb.WriteByte(dead)
			}
		}
	}
	return sb.String()
}

// BoundingBox returns the top-left and bottom-right coordinates enclosing
// indices. An empty slice yields two zero coordinates.
func BoundingBox(indices []int, size core.Size) (topLeft, bottomRight core.Coord) {
	if len(indices) == 0 {
		return core.Coord{}, core.Coord{}
	}
	topLeft = size.Coord(indices[0])
	bottomRight = topLeft
	for _, idx := range indices[1:] {
		c := size.Coord(idx)
		topLeft.X = min(topLeft.X, c.X)
		topLeft.Y = min(topLeft.Y, c.Y)
		bottomRight.X = max(bottomRight.X, c.X)
		bottomRight.Y = max(bottomRight.Y, c.Y)
	}
	return topLeft, bottomRight
}

// Box lists the cells of the rectangle spanned by two corners given in any
// order, clipped to the board, in ascending order.
func Box(a, b core.Coord, size core.Size) []int {
	x0, x1 := max(min(a.X, b.X), 0), min(max(a.X, b.X), size.W-1)
	y0, y1 := max(min(a.Y, b.Y), 0), min(max(a.Y, b.Y), size.H-1)
	if x0 > x1 || y0 > y1 {
		return nil
	}
	out := make([]int, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			out = append(out, size.Index(x, y))
		}
	}
	return out
}

// Trim drops the dead rows and columns surrounding the live cells of text.
func Trim(text string) string {
	w, h := Dims(text)
	size := core.Size{W: w, H: h}
	return Encode(Decode(text, size, 0), size)
}

// ActiveWindow grows the bounding box of indices by one cell on every side,
// the furthest a pattern can spread in one generation, and clips it to the
// board. ok is false when indices is empty.
func ActiveWindow(indices []int, size core.Size) (topLeft, bottomRight core.Coord, ok bool) {
	if len(indices) == 0 {
		return core.Coord{}, core.Coord{}, false
	}
	tl, br := BoundingBox(indices, size)
	topLeft = core.Coord{X: max(tl.X-1, 0), Y: max(tl.Y-1, 0)}
	bottomRight = core.Coord{X: min(br.X+1, size.W-1), Y: min(br.Y+1, size.H-1)}
	return topLeft, bottomRight, true
}

// Living returns the sorted, de-duplicated indices of text placed at origin
// that fall on the board.
func Living(text string, size core.Size, origin int) []int {
	out := slices.DeleteFunc(Decode(text, size, origin), func(idx int) bool {
		return idx < 0 || idx >= size.Area()
	})
	slices.Sort(out)
	return slices.Compact(out)
}
