package engine

import "slices"

// Delta lists the cells a step changes, each in ascending order. Birth only
// holds dead cells and Doomed only live ones, so the two never overlap.
type Delta struct {
	Birth  []int
	Doomed []int
}

// Path names the neighbor-counting strategy used for a step.
type Path uint8

const (
	// PathSparse only visits the neighborhoods of living cells.
	PathSparse Path = iota
	// PathDense visits every cell of the board.
	PathDense
)

func (p Path) String() string {
	if p == PathSparse {
		return "sparse"
	}
	return "dense"
}

// SelectPath picks the sparse path while the population is below the board's
// check threshold and no rule in effect gives birth on zero neighbors. A
// zero-neighbor birth can happen anywhere, far from any living cell.
func SelectPath(b *Board) Path {
	if b.population < b.checkThreshold && !b.rule.Born(0) && !b.overlay.BornOnZero() {
		return PathSparse
	}
	return PathDense
}

// NextSpaces refreshes the board counters and classifies the next generation
// with the path SelectPath chooses.
func NextSpaces(b *Board) (Delta, Path) {
	b.Refresh()
	return nextSpaces(b)
}

func nextSpaces(b *Board) (Delta, Path) {
	path := SelectPath(b)
	if path == PathSparse {
		return sparse(b), path
	}
	return dense(b), path
}

// Sparse classifies the next generation by walking the neighborhoods of the
// living cells only. It returns the same Delta as Dense whenever no rule in
// effect is born on zero neighbors.
func Sparse(b *Board) Delta {
	b.Refresh()
	return sparse(b)
}

// Dense classifies the next generation by counting the neighborhood of every
// cell.
func Dense(b *Board) Delta {
	return dense(b)
}

func sparse(b *Board) Delta {
	var (
		d    Delta
		nbrs []int
	)
	// With a single radius in effect the neighbor relation is symmetric, so
	// the number of living cells that list a dead cell as a neighbor is that
	// dead cell's own count. Clamped windows repeat border cells and break
	// the symmetry.
	tally := b.edge != EdgeClamp && b.overlay.spreadsMatch(b.rule.Spread)
	freq := map[int]int{}

	for _, center := range b.living {
		r := b.overlay.Rule(center, b.rule)
		nbrs = b.appendNeighbors(nbrs[:0], center, r.Spread, r.IncludeCenter)
		parents := 0
		for _, idx := range nbrs {
			if b.grid.Alive(idx) {
				parents++
				continue
			}
			if tally && b.Contains(idx) {
				freq[idx]++
			}
		}
		if !r.Survives(parents) {
			d.Doomed = append(d.Doomed, center)
		}
	}

	if tally {
		for idx, count := range freq {
			if b.overlay.Rule(idx, b.rule).Born(count) {
				d.Birth = append(d.Birth, idx)
			}
		}
		slices.Sort(d.Birth)
		return d
	}

	// Mixed radii: every dead cell within the widest radius of a living cell
	// is a candidate, counted under its own rule.
	spread := b.overlay.maxSpread(b.rule.Spread)
	seen := map[int]bool{}
	var window []int
	for _, center := range b.living {
		window = b.appendNeighbors(window[:0], center, spread, false)
		for _, idx := range window {
			if seen[idx] || !b.Contains(idx) || b.grid.Alive(idx) {
				continue
			}
			seen[idx] = true
			r := b.overlay.Rule(idx, b.rule)
			nbrs = b.appendNeighbors(nbrs[:0], idx, r.Spread, r.IncludeCenter)
			if r.Born(b.countLiving(nbrs)) {
				d.Birth = append(d.Birth, idx)
			}
		}
	}
	slices.Sort(d.Birth)
	return d
}

func dense(b *Board) Delta {
	var (
		d    Delta
		nbrs []int
	)
	for center := 0; center < b.Area(); center++ {
		r := b.overlay.Rule(center, b.rule)
		nbrs = b.appendNeighbors(nbrs[:0], center, r.Spread, r.IncludeCenter)
		parents := b.countLiving(nbrs)
		if b.grid.Alive(center) {
			if !r.Survives(parents) {
				d.Doomed = append(d.Doomed, center)
			}
			continue
		}
		if r.Born(parents) {
			d.Birth = append(d.Birth, center)
		}
	}
	return d
}
