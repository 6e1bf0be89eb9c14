// Package rules models two-state totalistic rules and their textual notations.
//
// A RuleSet always has the same shape regardless of the notation it was read
// from: a birth set, a survive set, a neighborhood radius (spread) and whether
// the center cell counts towards its own neighborhood.
package rules

import (
	"fmt"
	"slices"
)

// RuleSet is a Birth/Survive rule over a square (Moore) neighborhood.
//
// A *RuleSet is a shared handle: regions assigned the same pointer follow every
// later change made through it. Use Clone for an independent copy.
type RuleSet struct {
	// Spread is the Chebyshev radius of the neighborhood, at least 1.
	Spread int
	// IncludeCenter makes a cell count itself as one of its neighbors.
	IncludeCenter bool

	birth   countSet
	survive countSet
}

// MaxSpread is the largest neighborhood radius a rule may use.
const MaxSpread = 50

// maxCount is the neighbor count limit of the largest allowed neighborhood.
const maxCount = (2*MaxSpread + 1) * (2*MaxSpread + 1)

// New builds a RuleSet. Spread is clamped to [1, MaxSpread] and counts outside
// [0, maxCount] are dropped.
func New(birth, survive []int, spread int, includeCenter bool) *RuleSet {
	spread = min(max(spread, 1), MaxSpread)
	return &RuleSet{
		Spread:        spread,
		IncludeCenter: includeCenter,
		birth:         newCountSet(birth),
		survive:       newCountSet(survive),
	}
}

// Default returns Conway's Life, B3/S23.
func Default() *RuleSet {
	return New([]int{3}, []int{2, 3}, 1, false)
}

// Birth returns the birth counts in ascending order.
func (r *RuleSet) Birth() []int { return r.birth.values() }

// Survive returns the survive counts in ascending order.
func (r *RuleSet) Survive() []int { return r.survive.values() }

// Born reports whether a dead cell with n living neighbors comes alive.
func (r *RuleSet) Born(n int) bool { return r.birth.has(n) }

// Survives reports whether a live cell with n living neighbors stays alive.
func (r *RuleSet) Survives(n int) bool { return r.survive.has(n) }

// SetBirth replaces the birth set.
func (r *RuleSet) SetBirth(counts ...int) { r.birth = newCountSet(counts) }

// SetSurvive replaces the survive set.
func (r *RuleSet) SetSurvive(counts ...int) { r.survive = newCountSet(counts) }

// NeighborCountLimit is the largest neighbor count the rule can observe.
// Spreads above MaxSpread are treated as MaxSpread.
func (r *RuleSet) NeighborCountLimit() int {
	side := 2*min(r.Spread, MaxSpread) + 1
	if r.IncludeCenter {
		return side * side
	}
	return side*side - 1
}

// IsLtL reports whether the rule needs Larger-than-Life notation.
func (r *RuleSet) IsLtL() bool { return r.Spread > 1 || r.IncludeCenter }

// Shape identifies the neighborhood the rule counts over.
func (r *RuleSet) Shape() Shape { return Shape{Spread: r.Spread, IncludeCenter: r.IncludeCenter} }

// Validate checks the spread and that every count fits the neighborhood.
func (r *RuleSet) Validate() error {
	if r.Spread < 1 {
		return fmt.Errorf("spread %d below 1", r.Spread)
	}
	if r.Spread > MaxSpread {
		return fmt.Errorf("spread %d exceeds %d", r.Spread, MaxSpread)
	}
	limit := r.NeighborCountLimit()
	if hi, ok := r.birth.max(); ok && hi > limit {
		return fmt.Errorf("birth count %d exceeds neighborhood limit %d", hi, limit)
	}
	if hi, ok := r.survive.max(); ok && hi > limit {
		return fmt.Errorf("survive count %d exceeds neighborhood limit %d", hi, limit)
	}
	return nil
}

// Clone returns an independent copy of r.
func (r *RuleSet) Clone() *RuleSet {
	return &RuleSet{
		Spread:        r.Spread,
		IncludeCenter: r.IncludeCenter,
		birth:         slices.Clone(r.birth),
		survive:       slices.Clone(r.survive),
	}
}

// Equal reports whether both rules have identical fields.
func (r *RuleSet) Equal(o *RuleSet) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Shape() == o.Shape() &&
		slices.Equal(r.Birth(), o.Birth()) &&
		slices.Equal(r.Survive(), o.Survive())
}

// String returns the rulestring produced by Generate.
func (r *RuleSet) String() string { return Generate(r) }

// Shape is the neighborhood geometry of a rule.
type Shape struct {
	Spread        int
	IncludeCenter bool
}

// countSet is a membership table indexed by neighbor count.
type countSet []bool

func newCountSet(counts []int) countSet {
	hi := -1
	for _, c := range counts {
		if c <= maxCount {
			hi = max(hi, c)
		}
	}
	set := make(countSet, hi+1)
	for _, c := range counts {
		if c >= 0 && c <= maxCount {
			set[c] = true
		}
	}
	return set
}

func (s countSet) has(n int) bool { return n >= 0 && n < len(s) && s[n] }

func (s countSet) values() []int {
	out := make([]int, 0, len(s))
	for n, ok := range s {
		if ok {
			out = append(out, n)
		}
	}
	return out
}

func (s countSet) min() (int, bool) {
	for n, ok := range s {
		if ok {
			return n, true
		}
	}
	return 0, false
}

func (s countSet) max() (int, bool) {
	for n := len(s) - 1; n >= 0; n-- {
		if s[n] {
			return n, true
		}
	}
	return 0, false
}
