// Package life adapts the rule engine to the host Sim contract. It is
// registered twice: "life" starts on B3/S23 and "ltl" on the Bugs
// Larger-than-Life preset.
package life

import (
	"fmt"
	"log/slog"
	"time"

	"gol-editor/internal/core"
	gridcore "gol-editor/pkg/core"
	"gol-editor/pkg/engine"
	"gol-editor/pkg/rules"
)

// Display values written by Cells.
const (
	CellDead uint8 = iota
	CellLive
	CellDeadInBox
	CellLiveInBox
)

// Life is a single editable board driven by the rule engine.
type Life struct {
	name string
	cfg  Config
	edge engine.EdgePolicy

	eng     *engine.Engine
	display []uint8
	logger  *slog.Logger
}

// New builds a Life session from cfg. The board starts empty; call Reset to
// seed it.
func New(name string, cfg Config) (*Life, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("life: invalid board size %dx%d", cfg.Width, cfg.Height)
	}
	rule, err := rules.Parse(cfg.Rule)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	edge, err := engine.ParseEdgePolicy(cfg.Edge)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	if cfg.HistoryDepth <= 0 {
		cfg.HistoryDepth = engine.MaxHistory
	}
	l := &Life{
		name:    name,
		cfg:     cfg,
		edge:    edge,
		display: make([]uint8, cfg.Width*cfg.Height),
		logger:  slog.Default().With("sim", name),
	}
	l.eng = l.newEngine(rule)
	return l, nil
}

func (l *Life) newEngine(rule *rules.RuleSet) *engine.Engine {
	return engine.New(l.cfg.Width, l.cfg.Height, rule,
		engine.WithEdgePolicy(l.edge),
		engine.WithHistoryDepth(l.cfg.HistoryDepth),
		engine.WithLogger(l.logger),
	)
}

// Name returns the registry name of the session.
func (l *Life) Name() string { return l.name }

// Size returns the board dimensions.
func (l *Life) Size() core.Size { return l.eng.Size() }

// Engine exposes the underlying engine for hosts that need the full API.
func (l *Life) Engine() *engine.Engine { return l.eng }

// Config returns the configuration the session was built with.
func (l *Life) Config() Config { return l.cfg }

// Reset discards history and rule boxes, then fills the board at the
// configured density. A zero seed falls back to the configured seed.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.eng = l.newEngine(l.eng.Rule())
	n := l.eng.Randomize(l.cfg.Density, seed)
	l.logger.Debug("reset", "seed", seed, "density", l.cfg.Density, "live", n)
}

// Step advances one generation.
func (l *Life) Step() { l.eng.Step() }

// Cells renders the board into display values. Cells covered by a rule box
// are marked so the host can tint them.
func (l *Life) Cells() []uint8 {
	for i := range l.display {
		l.display[i] = CellDead
	}
	overlay := l.eng.Board().Overlay()
	for _, idx := range overlay.Indices() {
		l.display[idx] = CellDeadInBox
	}
	for _, idx := range l.eng.Living() {
		l.display[idx]++
	}
	return l.display
}

// RuleBoxMask reports which cells are covered by a rule box.
func (l *Life) RuleBoxMask() []bool {
	mask := make([]bool, len(l.display))
	for _, idx := range l.eng.Board().Overlay().Indices() {
		mask[idx] = true
	}
	return mask
}

// Toggle flips the cell at (x, y). The board is captured first so the edit
// can be rewound.
func (l *Life) Toggle(x, y int) bool {
	size := l.eng.Size()
	if !size.Contains(x, y) {
		return false
	}
	l.eng.Capture()
	return l.eng.Toggle(size.Index(x, y))
}

// Rewind restores the previous generation.
func (l *Life) Rewind() bool { return l.eng.Rewind() }

// Checkpoint records the current board in the checkpoint slot.
func (l *Life) Checkpoint() { l.eng.Checkpoint() }

// RestoreCheckpoint restores the checkpoint slot if it is set.
func (l *Life) RestoreCheckpoint() bool { return l.eng.RestoreCheckpoint() }

// ClearRuleBoxes drops every rule box.
func (l *Life) ClearRuleBoxes() { l.eng.ClearRuleBoxes() }

// AssignRuleBox gives the rectangle spanned by a and b its own copy of the
// current global rule and returns that copy for further editing.
func (l *Life) AssignRuleBox(a, b gridcore.Coord) *rules.RuleSet {
	r := l.eng.Rule().Clone()
	l.eng.AssignRuleBox(a, b, r)
	return r
}

// SetRulestring replaces the global rule. Besides rulestrings and preset
// names it takes the keywords "random" and "default", resolved in the family
// of the current rule.
func (l *Life) SetRulestring(s string) error {
	family := rules.FamilyOf(l.eng.Rule())
	r, err := rules.Resolve(family, s, gridcore.NewRNG(time.Now().UnixNano()))
	if err != nil {
		return fmt.Errorf("life: %w", err)
	}
	l.eng.SetRule(r)
	l.cfg.Rule = l.eng.Rulestring()
	return nil
}

// LoadPattern clears the board and places text with its top-left cell at
// (x, y).
func (l *Life) LoadPattern(text string, x, y int) int {
	l.eng.Capture()
	l.eng.Clear()
	return l.eng.LoadPatternAt(text, x, y)
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return mustNew("life", FromMap(cfg))
	})
	core.Register("ltl", func(cfg map[string]string) core.Sim {
		return mustNew("ltl", DefaultLtLConfig().Apply(cfg))
	})
}

// mustNew is used by the registry where Apply has already dropped any value
// New would reject.
func mustNew(name string, cfg Config) *Life {
	l, err := New(name, cfg)
	if err != nil {
		panic(err)
	}
	return l
}
