package engine

import (
	"fmt"
	"strings"
)

// EdgePolicy decides what a neighborhood looks like near the board border.
type EdgePolicy uint8

const (
	// EdgeFlat derives neighbors as center ± k*width ± j on the flat cell
	// array. Windows near the left/right border spill into the adjacent row
	// and indices past either end read as dead.
	EdgeFlat EdgePolicy = iota
	// EdgeDead treats every position outside the rectangle as dead.
	EdgeDead
	// EdgeClamp replaces outside positions with the nearest border cell.
	EdgeClamp
	// EdgeWrap wraps both axes, making the board a torus.
	EdgeWrap
)

var edgeNames = [...]string{
	EdgeFlat:  "flat",
	EdgeDead:  "dead",
	EdgeClamp: "clamp",
	EdgeWrap:  "wrap",
}

func (p EdgePolicy) String() string {
	if int(p) < len(edgeNames) {
		return edgeNames[p]
	}
	return fmt.Sprintf("EdgePolicy(%d)", p)
}

// ParseEdgePolicy maps a policy name back to its value.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return EdgeFlat, nil
	}
	for p, name := range edgeNames {
		if name == s {
			return EdgePolicy(p), nil
		}
	}
	return EdgeFlat, fmt.Errorf("engine: unknown edge policy %q", s)
}

// Neighbors lists the (2*spread+1)^2 window around center in row-major
// order, leaving out center itself unless includeCenter is set. Indices that
// are not cells of the board may appear under EdgeFlat; they read as dead.
func (b *Board) Neighbors(center, spread int, includeCenter bool) []int {
	return b.appendNeighbors(nil, center, spread, includeCenter)
}

func (b *Board) appendNeighbors(dst []int, center, spread int, includeCenter bool) []int {
	w, h := b.grid.W, b.grid.H
	cx, cy := center%w, center/w
	for dy := -spread; dy <= spread; dy++ {
		for dx := -spread; dx <= spread; dx++ {
			if dx == 0 && dy == 0 && !includeCenter {
				continue
			}
			switch b.edge {
			case EdgeDead:
				x, y := cx+dx, cy+dy
				if x < 0 || y < 0 || x >= w || y >= h {
					continue
				}
				dst = append(dst, y*w+x)
			case EdgeClamp:
				x, y := b.grid.Clamp(cx+dx, cy+dy)
				dst = append(dst, y*w+x)
			case EdgeWrap:
				x, y := b.grid.Wrap(cx+dx, cy+dy)
				dst = append(dst, y*w+x)
			default:
				dst = append(dst, center+dy*w+dx)
			}
		}
	}
	return dst
}

// countLiving sums the live cells among indices.
func (b *Board) countLiving(indices []int) int {
	n := 0
	for _, idx := range indices {
		if b.grid.Alive(idx) {
			n++
		}
	}
	return n
}
