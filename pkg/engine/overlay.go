package engine

import (
	"maps"
	"slices"

	"gol-editor/pkg/rules"
)

// Overlay assigns rules to individual cells on top of a board's global rule.
//
// Assign stores the caller's *rules.RuleSet itself, so every cell of one
// region shares it and later edits through that pointer reach all of them at
// once. Snapshots keep a pointer to the Overlay, so Clear and Assign are
// visible through previously captured snapshots too.
type Overlay struct {
	spaces       map[int]*rules.RuleSet
	birthNumbers map[int]struct{}
	assigned     []*rules.RuleSet
}

// NewOverlay returns an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{
		spaces:       map[int]*rules.RuleSet{},
		birthNumbers: map[int]struct{}{},
	}
}

// Assign binds every index of region to r and records r's birth counts.
// Rules left without any cell are forgotten.
func (o *Overlay) Assign(region []int, r *rules.RuleSet) {
	if r == nil {
		return
	}
	displaced := false
	for _, idx := range region {
		if old, ok := o.spaces[idx]; ok && old != r {
			displaced = true
		}
		o.spaces[idx] = r
	}
	if !slices.Contains(o.assigned, r) {
		o.assigned = append(o.assigned, r)
	}
	if displaced {
		o.prune()
	}
	for _, n := range r.Birth() {
		o.birthNumbers[n] = struct{}{}
	}
}

// prune drops the rules no cell refers to and rebuilds the birth numbers from
// the rest.
func (o *Overlay) prune() {
	live := make(map[*rules.RuleSet]struct{}, len(o.assigned))
	for _, r := range o.spaces {
		live[r] = struct{}{}
	}
	o.assigned = slices.DeleteFunc(o.assigned, func(r *rules.RuleSet) bool {
		_, ok := live[r]
		return !ok
	})
	clear(o.birthNumbers)
	for _, r := range o.assigned {
		for _, n := range r.Birth() {
			o.birthNumbers[n] = struct{}{}
		}
	}
}

// AssignCopy binds region to a private clone of r and returns the clone.
func (o *Overlay) AssignCopy(region []int, r *rules.RuleSet) *rules.RuleSet {
	if r == nil {
		return nil
	}
	c := r.Clone()
	o.Assign(region, c)
	return c
}

// Clear drops every assignment.
func (o *Overlay) Clear() {
	clear(o.spaces)
	clear(o.birthNumbers)
	o.assigned = nil
}

// Rule returns the rule assigned to idx, or global when there is none.
func (o *Overlay) Rule(idx int, global *rules.RuleSet) *rules.RuleSet {
	if o == nil {
		return global
	}
	if r, ok := o.spaces[idx]; ok {
		return r
	}
	return global
}

// Lookup returns the rule assigned to idx, if any.
func (o *Overlay) Lookup(idx int) (*rules.RuleSet, bool) {
	r, ok := o.spaces[idx]
	return r, ok
}

// Len returns the number of cells with an assigned rule.
func (o *Overlay) Len() int { return len(o.spaces) }

// Indices lists the cells with an assigned rule in ascending order.
func (o *Overlay) Indices() []int {
	return slices.Sorted(maps.Keys(o.spaces))
}

// BirthNumbers is the union of the birth sets recorded by Assign.
func (o *Overlay) BirthNumbers() []int {
	return slices.Sorted(maps.Keys(o.birthNumbers))
}

// BornOnZero reports whether any assigned rule can give birth to a cell with
// no living neighbors, either as recorded at assignment or after a later edit
// through the shared pointer.
func (o *Overlay) BornOnZero() bool {
	if _, ok := o.birthNumbers[0]; ok {
		return true
	}
	for _, r := range o.assigned {
		if r.Born(0) {
			return true
		}
	}
	return false
}

// spreadsMatch reports whether every assigned rule uses the given radius.
func (o *Overlay) spreadsMatch(spread int) bool {
	for _, r := range o.assigned {
		if r.Spread != spread {
			return false
		}
	}
	return true
}

// maxSpread returns the largest radius among base and the assigned rules.
func (o *Overlay) maxSpread(base int) int {
	for _, r := range o.assigned {
		base = max(base, r.Spread)
	}
	return base
}
