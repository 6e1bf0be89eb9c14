package engine

import "gol-editor/pkg/rules"

// MaxHistory is the default number of snapshots kept for rewinding.
const MaxHistory = 1000

// Snapshot is the restorable state of a board at one generation.
//
// Rule and Overlay are shared with the board they were captured from: edits
// made later through those pointers show up in the snapshot as well.
type Snapshot struct {
	Generation int
	Rule       *rules.RuleSet
	Overlay    *Overlay
	Living     []int
}

// Capture records the current state of b.
func Capture(b *Board) Snapshot {
	return Snapshot{
		Generation: b.generation,
		Rule:       b.rule,
		Overlay:    b.overlay,
		Living:     b.grid.Living(nil),
	}
}

// Restore replaces the state of b with s: the grid is cleared, every live
// index of s is born again and generation, rule and overlay are put back.
func Restore(b *Board, s Snapshot) {
	b.grid.Clear()
	for _, idx := range s.Living {
		b.grid.Set(idx, true)
	}
	b.generation = s.Generation
	if s.Rule != nil {
		b.rule = s.Rule
	}
	if s.Overlay != nil {
		b.overlay = s.Overlay
	}
	b.Refresh()
}

// History is a bounded stack of snapshots. Pushing past the bound empties
// the whole stack rather than dropping the oldest entry.
type History struct {
	stack []Snapshot
	limit int
}

// NewHistory returns a History holding at most limit snapshots. A limit
// below 1 selects MaxHistory.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = MaxHistory
	}
	return &History{limit: limit}
}

// Capture pushes a snapshot of b. When the push would exceed the limit the
// stack is emptied instead and Capture reports true.
func (h *History) Capture(b *Board) (cleared bool) {
	if len(h.stack)+1 > h.limit {
		h.stack = nil
		return true
	}
	h.stack = append(h.stack, Capture(b))
	return false
}

// Rewind pops the newest snapshot into b. It reports false, leaving b
// untouched, when the stack is empty.
func (h *History) Rewind(b *Board) bool {
	if len(h.stack) == 0 {
		return false
	}
	top := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	Restore(b, top)
	return true
}

// Peek returns the newest snapshot without removing it.
func (h *History) Peek() (Snapshot, bool) {
	if len(h.stack) == 0 {
		return Snapshot{}, false
	}
	return h.stack[len(h.stack)-1], true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.stack) }

// Limit returns the maximum depth.
func (h *History) Limit() int { return h.limit }

// Clear drops every snapshot.
func (h *History) Clear() { h.stack = nil }
