// Package engine advances two-state cellular automata boards.
//
// A Board holds the cells, counters, the global rule and a rule overlay. The
// stepping functions read a Board and report which cells are born and which
// die; Engine ties a Board to its History and applies those changes.
//
// Nothing in this package is safe for concurrent use. Callers serialize every
// operation on a Board and on the Engine that owns it.
package engine

import (
	"gol-editor/pkg/core"
	"gol-editor/pkg/rules"
)

// Board is the grid state of one editing session.
type Board struct {
	grid *core.Grid

	population int
	generation int
	living     []int

	rule           *rules.RuleSet
	overlay        *Overlay
	edge           EdgePolicy
	checkThreshold int
}

// NewBoard allocates an all-dead board. A nil rule defaults to B3/S23.
func NewBoard(w, h int, rule *rules.RuleSet, edge EdgePolicy) *Board {
	if rule == nil {
		rule = rules.Default()
	}
	g := core.NewGrid(w, h)
	return &Board{
		grid:           g,
		rule:           rule,
		overlay:        NewOverlay(),
		edge:           edge,
		checkThreshold: g.W * g.H / 2,
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.grid.W }

// Height returns the number of rows.
func (b *Board) Height() int { return b.grid.H }

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return b.grid.Size() }

// Area returns Width*Height.
func (b *Board) Area() int { return b.grid.W * b.grid.H }

// Population is the live-cell count taken at the last Refresh, which every
// step performs before it mutates the board.
func (b *Board) Population() int { return b.population }

// Generation returns the generation counter.
func (b *Board) Generation() int { return b.generation }

// Rule returns the global rule.
func (b *Board) Rule() *rules.RuleSet { return b.rule }

// Overlay returns the per-cell rule overrides.
func (b *Board) Overlay() *Overlay { return b.overlay }

// Edge returns the neighborhood edge policy.
func (b *Board) Edge() EdgePolicy { return b.edge }

// CheckThreshold is the population at which stepping stops using the sparse path.
func (b *Board) CheckThreshold() int { return b.checkThreshold }

// Contains reports whether idx is a cell of the board.
func (b *Board) Contains(idx int) bool { return idx >= 0 && idx < b.Area() }

// Alive reports whether idx is live. Indices off the board read as dead.
func (b *Board) Alive(idx int) bool { return b.grid.Alive(idx) }

// Living enumerates the live cells in ascending order.
func (b *Board) Living() []int { return b.grid.Living(nil) }

// Refresh recounts the population and the live-cell enumeration.
func (b *Board) Refresh() {
	b.living = b.grid.Living(b.living[:0])
	b.population = len(b.living)
}

// Birth makes idx live. It reports false for indices off the board.
func (b *Board) Birth(idx int) bool { return b.grid.Set(idx, true) }

// Kill makes idx dead. It reports false for indices off the board.
func (b *Board) Kill(idx int) bool { return b.grid.Set(idx, false) }

// Toggle flips idx and returns its new state.
func (b *Board) Toggle(idx int) bool {
	alive := !b.grid.Alive(idx)
	if !b.grid.Set(idx, alive) {
		return false
	}
	return alive
}

// Clear kills every cell. Counters, rule and overlay are left alone.
func (b *Board) Clear() { b.grid.Clear() }

// SetRule replaces the global rule. A nil rule is ignored.
func (b *Board) SetRule(r *rules.RuleSet) {
	if r != nil {
		b.rule = r
	}
}

// EffectiveRule returns the rule governing idx: its overlay entry when there
// is one, else the global rule.
func (b *Board) EffectiveRule(idx int) *rules.RuleSet {
	return b.overlay.Rule(idx, b.rule)
}

func (b *Board) apply(d Delta) {
	for _, idx := range d.Birth {
		b.grid.Set(idx, true)
	}
	for _, idx := range d.Doomed {
		b.grid.Set(idx, false)
	}
}
