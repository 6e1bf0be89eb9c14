package engine

import (
	"fmt"
	"log/slog"
	"time"

	"gol-editor/pkg/core"
	"gol-editor/pkg/pattern"
	"gol-editor/pkg/rules"
)

// Engine owns a Board together with its rewind history and checkpoint.
// Hosts read the board through the Engine and change it only through Engine
// methods.
type Engine struct {
	board      *Board
	history    *History
	checkpoint *Snapshot
	logger     *slog.Logger

	lastPath Path
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	edge         EdgePolicy
	historyDepth int
	logger       *slog.Logger
}

// WithEdgePolicy sets the neighborhood edge policy. The default is EdgeFlat.
func WithEdgePolicy(p EdgePolicy) Option {
	return func(o *engineOptions) { o.edge = p }
}

// WithHistoryDepth bounds the rewind history. The default is MaxHistory.
func WithHistoryDepth(n int) Option {
	return func(o *engineOptions) { o.historyDepth = n }
}

// WithLogger sets the logger for debug events. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *engineOptions) { o.logger = l }
}

// New creates an Engine over an all-dead w*h board. A nil rule means B3/S23.
func New(w, h int, rule *rules.RuleSet, opts ...Option) *Engine {
	o := engineOptions{historyDepth: MaxHistory}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &Engine{
		board:   NewBoard(w, h, rule, o.edge),
		history: NewHistory(o.historyDepth),
		logger:  o.logger.With("component", "engine"),
	}
}

// Board exposes the board for reading.
func (e *Engine) Board() *Board { return e.board }

// History exposes the rewind history.
func (e *Engine) History() *History { return e.history }

// Size returns the board dimensions.
func (e *Engine) Size() core.Size { return e.board.Size() }

// Population returns the population counted at the last step or refresh.
func (e *Engine) Population() int { return e.board.population }

// Generation returns the generation counter.
func (e *Engine) Generation() int { return e.board.generation }

// Rule returns the global rule.
func (e *Engine) Rule() *rules.RuleSet { return e.board.rule }

// Rulestring returns the global rule in its display notation.
func (e *Engine) Rulestring() string { return rules.Generate(e.board.rule) }

// Living enumerates the live cells for a full redraw.
func (e *Engine) Living() []int { return e.board.Living() }

// Alive reports whether idx is live.
func (e *Engine) Alive(idx int) bool { return e.board.Alive(idx) }

// LastPath reports the path used by the latest step.
func (e *Engine) LastPath() Path { return e.lastPath }

// Step advances the board by one generation and returns the changed cells.
// The state before the step is pushed onto the history.
func (e *Engine) Step() Delta {
	start := time.Now()
	b := e.board
	b.Refresh()
	e.capture()
	d, path := nextSpaces(b)
	b.apply(d)
	b.generation++
	e.lastPath = path

	stepTotal.WithLabelValues(path.String()).Inc()
	stepDuration.WithLabelValues(path.String()).Observe(time.Since(start).Seconds())
	cellsChanged.WithLabelValues("birth").Add(float64(len(d.Birth)))
	cellsChanged.WithLabelValues("doomed").Add(float64(len(d.Doomed)))
	return d
}

// SkipNGens runs Step n times in a row.
func (e *Engine) SkipNGens(n int) {
	for ; n > 0; n-- {
		e.Step()
	}
}

// SkipToGenN steps forward until the generation counter reaches target. A
// target behind the current generation does nothing; use Rewind instead.
func (e *Engine) SkipToGenN(target int) {
	e.SkipNGens(target - e.board.generation)
}

// Capture pushes the current state onto the history. Hosts call it before an
// edit they want Rewind to undo.
func (e *Engine) Capture() {
	e.board.Refresh()
	e.capture()
}

func (e *Engine) capture() {
	if e.history.Capture(e.board) {
		historyOverflows.Inc()
		e.logger.Debug("history limit reached, cleared",
			"limit", e.history.Limit(), "generation", e.board.generation)
	}
}

// Rewind restores the newest history entry. It reports false when the
// history is empty, in which case nothing changes.
func (e *Engine) Rewind() bool {
	ok := e.history.Rewind(e.board)
	rewinds.WithLabelValues("history", outcome(ok)).Inc()
	if ok {
		e.logger.Debug("rewound", "generation", e.board.generation, "depth", e.history.Len())
	}
	return ok
}

// Checkpoint stores the current state in the single checkpoint slot,
// replacing any earlier checkpoint. The rewind history is not touched.
func (e *Engine) Checkpoint() {
	s := Capture(e.board)
	e.checkpoint = &s
}

// HasCheckpoint reports whether a checkpoint is stored.
func (e *Engine) HasCheckpoint() bool { return e.checkpoint != nil }

// RestoreCheckpoint puts the board back to the stored checkpoint. The
// checkpoint stays available for later restores.
func (e *Engine) RestoreCheckpoint() bool {
	if e.checkpoint == nil {
		rewinds.WithLabelValues("checkpoint", outcome(false)).Inc()
		return false
	}
	Restore(e.board, *e.checkpoint)
	rewinds.WithLabelValues("checkpoint", outcome(true)).Inc()
	e.logger.Debug("checkpoint restored", "generation", e.board.generation)
	return true
}

func outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "empty"
}

// SetRule replaces the global rule.
func (e *Engine) SetRule(r *rules.RuleSet) {
	if r == nil {
		return
	}
	e.board.SetRule(r)
	e.logger.Debug("rule changed", "rule", rules.Generate(r))
}

// SetRulestring parses s and makes it the global rule. On error the current
// rule is kept.
func (e *Engine) SetRulestring(s string) error {
	r, err := rules.Parse(s)
	if err != nil {
		return err
	}
	e.SetRule(r)
	return nil
}

// AssignRuleBox gives every cell of the rectangle between a and b the rule
// r, shared by pointer, and returns the affected indices.
func (e *Engine) AssignRuleBox(a, b core.Coord, r *rules.RuleSet) []int {
	region := pattern.Box(a, b, e.board.Size())
	e.board.overlay.Assign(region, r)
	return region
}

// ClearRuleBoxes drops every rule box.
func (e *Engine) ClearRuleBoxes() { e.board.overlay.Clear() }

// Birth makes idx live.
func (e *Engine) Birth(idx int) bool { return e.board.Birth(idx) }

// Kill makes idx dead.
func (e *Engine) Kill(idx int) bool { return e.board.Kill(idx) }

// Toggle flips idx and returns its new state.
func (e *Engine) Toggle(idx int) bool { return e.board.Toggle(idx) }

// Clear kills every cell and recounts the population.
func (e *Engine) Clear() {
	e.board.Clear()
	e.board.Refresh()
}

// ClearRegion kills every cell of the rectangle between a and b.
func (e *Engine) ClearRegion(a, b core.Coord) {
	for _, idx := range pattern.Box(a, b, e.board.Size()) {
		e.board.Kill(idx)
	}
	e.board.Refresh()
}

// Randomize replaces the board with density*area live cells picked with seed.
func (e *Engine) Randomize(density float64, seed int64) int {
	n := core.FillDensity(core.NewRNG(seed), e.board.grid.Cells(), density)
	e.board.Refresh()
	return n
}

// LoadPattern births every live cell of text placed at the flat index origin
// and returns how many cells landed on the board.
func (e *Engine) LoadPattern(text string, origin int) int {
	cells := pattern.Living(text, e.board.Size(), origin)
	for _, idx := range cells {
		e.board.Birth(idx)
	}
	e.board.Refresh()
	return len(cells)
}

// LoadPatternAt is LoadPattern with the origin given as coordinates.
func (e *Engine) LoadPatternAt(text string, x, y int) int {
	return e.LoadPattern(text, e.board.Size().Index(x, y))
}

// Paste loads text with its top-left cell at at.
func (e *Engine) Paste(text string, at core.Coord) int {
	return e.LoadPatternAt(text, at.X, at.Y)
}

// Copy returns the live cells of the rectangle between a and b as trimmed
// pattern text.
func (e *Engine) Copy(a, b core.Coord) string {
	var live []int
	for _, idx := range pattern.Box(a, b, e.board.Size()) {
		if e.board.Alive(idx) {
			live = append(live, idx)
		}
	}
	return pattern.Encode(live, e.board.Size())
}

// ActiveWindow is the bounding box of the living grown by one cell, the
// region the next generation can touch. ok is false on an empty board.
func (e *Engine) ActiveWindow() (topLeft, bottomRight core.Coord, ok bool) {
	return pattern.ActiveWindow(e.board.Living(), e.board.Size())
}

// String summarizes the engine for logs.
func (e *Engine) String() string {
	s := e.board.Size()
	return fmt.Sprintf("%dx%d gen=%d pop=%d rule=%s", s.W, s.H, e.board.generation, e.board.population, e.Rulestring())
}
