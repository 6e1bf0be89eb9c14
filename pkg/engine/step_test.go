package engine

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gol-editor/pkg/core"
	"gol-editor/pkg/rules"
)

func TestBlinkerOscillation(t *testing.T) {
	e := New(10, 10, rules.MustParse("B3/S23"))
	w := e.Size().W
	set := func(x, y int) { e.Birth(y*w + x) }
	set(4, 5)
	set(5, 5)
	set(6, 5)

	horizontal := e.Living()
	vertical := []int{4*w + 5, 5*w + 5, 6*w + 5}

	for gen := 1; gen <= 6; gen++ {
		e.Step()
		want := horizontal
		if gen%2 == 1 {
			want = vertical
		}
		if got := e.Living(); !slices.Equal(got, want) {
			t.Fatalf("generation %d: living %v, expected %v", gen, got, want)
		}
		if e.Generation() != gen {
			t.Fatalf("generation counter %d, expected %d", e.Generation(), gen)
		}
	}
}

func TestStepReturnsDelta(t *testing.T) {
	e := New(10, 10, nil)
	e.LoadPatternAt("OOO", 4, 5)
	d := e.Step()
	assert.Equal(t, []int{45, 65}, d.Birth)
	assert.Equal(t, []int{54, 56}, d.Doomed)
	assert.Equal(t, 3, e.Population())
	assert.Equal(t, PathSparse, e.LastPath())
}

var equivalenceRules = []string{
	"B3/S23",
	"B36/S23",
	"B3678/S34678",
	"B1/S012345678",
	"B35678/S5678",
	"R2,C0,M1,S3..8,B4..6,NM",
	"R3,C0,M0,S10..20,B8..12,NM",
}

func randomBoard(rng *core.RNG, rule *rules.RuleSet, edge EdgePolicy) *Board {
	b := NewBoard(20, 20, rule, edge)
	density := 0.01 + rng.Float64()*0.79
	core.FillDensity(rng, b.grid.Cells(), density)
	b.Refresh()
	if b.Population() == 0 {
		b.Birth(rng.IntN(b.Area()))
		b.Refresh()
	}
	return b
}

func TestSparseMatchesDense(t *testing.T) {
	rng := core.NewRNG(20240601)
	for _, edge := range []EdgePolicy{EdgeFlat, EdgeDead, EdgeClamp, EdgeWrap} {
		for i := 0; i < 100; i++ {
			rule := rules.MustParse(equivalenceRules[i%len(equivalenceRules)])
			b := randomBoard(rng, rule, edge)
			pop := b.Population()
			require.GreaterOrEqual(t, pop, 1)
			require.LessOrEqual(t, pop, b.Area()*80/100+1)

			sp, de := Sparse(b), Dense(b)
			if !slices.Equal(sp.Birth, de.Birth) || !slices.Equal(sp.Doomed, de.Doomed) {
				t.Fatalf("%s board %d rule %s: sparse %+v dense %+v", edge, i, rule, sp, de)
			}
		}
	}
}

func TestSparseMatchesDenseWithRuleBoxes(t *testing.T) {
	rng := core.NewRNG(99)
	for _, edge := range []EdgePolicy{EdgeFlat, EdgeDead, EdgeClamp, EdgeWrap} {
		for i := 0; i < 50; i++ {
			b := randomBoard(rng, rules.Default(), edge)
			ltl := rules.MustParse("R2,C0,M1,S3..8,B4..6,NM")
			highlife := rules.MustParse("B36/S23")
			b.Overlay().Assign(boxIndices(b, 2, 2, 9, 9), ltl)
			b.Overlay().Assign(boxIndices(b, 8, 8, 17, 15), highlife)

			sp, de := Sparse(b), Dense(b)
			if !slices.Equal(sp.Birth, de.Birth) || !slices.Equal(sp.Doomed, de.Doomed) {
				t.Fatalf("%s board %d: sparse %+v dense %+v", edge, i, sp, de)
			}
		}
	}
}

func boxIndices(b *Board, x0, y0, x1, y1 int) []int {
	var out []int
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			out = append(out, y*b.Width()+x)
		}
	}
	return out
}

func TestDeltaSetsAreDisjoint(t *testing.T) {
	rng := core.NewRNG(5)
	for i := 0; i < 20; i++ {
		b := randomBoard(rng, rules.MustParse("B3678/S34678"), EdgeWrap)
		d := Dense(b)
		for _, idx := range d.Birth {
			require.False(t, b.Alive(idx), "birth %d is already alive", idx)
		}
		for _, idx := range d.Doomed {
			require.True(t, b.Alive(idx), "doomed %d is not alive", idx)
		}
	}
}

func TestSelectPath(t *testing.T) {
	b := NewBoard(10, 10, rules.Default(), EdgeFlat)
	b.Birth(0)
	b.Refresh()
	assert.Equal(t, PathSparse, SelectPath(b))

	b.SetRule(rules.MustParse("B0123478/S01234678"))
	assert.Equal(t, PathDense, SelectPath(b))

	b.SetRule(rules.Default())
	zero := rules.MustParse("B03/S23")
	b.Overlay().Assign([]int{5}, zero)
	assert.Equal(t, PathDense, SelectPath(b))

	b.Overlay().Clear()
	assert.Equal(t, PathSparse, SelectPath(b))

	for i := 0; i < b.CheckThreshold(); i++ {
		b.Birth(i)
	}
	b.Refresh()
	assert.Equal(t, 50, b.CheckThreshold())
	assert.Equal(t, PathDense, SelectPath(b))
}

func TestSelectPathSeesSharedRuleEdits(t *testing.T) {
	b := NewBoard(10, 10, rules.Default(), EdgeFlat)
	shared := rules.Default()
	b.Overlay().Assign([]int{1, 2, 3}, shared)
	b.Birth(0)
	b.Refresh()
	require.Equal(t, PathSparse, SelectPath(b))

	shared.SetBirth(0, 3)
	assert.Equal(t, PathDense, SelectPath(b))
}

func TestZeroBirthRuleFillsEmptyBoard(t *testing.T) {
	e := New(6, 4, rules.MustParse("B0/S"))
	d := e.Step()
	assert.Len(t, d.Birth, 24)
	assert.Equal(t, PathDense, e.LastPath())
}

func TestOverlaySharedRuleMutation(t *testing.T) {
	e := New(20, 10, rules.Default())
	shared := rules.MustParse("B3/S23")
	region := e.AssignRuleBox(core.Coord{X: 0, Y: 0}, core.Coord{X: 9, Y: 9}, shared)
	require.Len(t, region, 100)

	e.LoadPatternAt("OOO", 3, 5)
	e.LoadPatternAt("OOO", 13, 5)

	e.Step()
	assert.Equal(t, 6, len(e.Living()), "both blinkers oscillate under Life")

	shared.SetBirth()
	shared.SetSurvive()
	e.Step()

	for _, idx := range e.Living() {
		x := idx % 20
		if x < 10 {
			t.Fatalf("cell %d inside the rule box survived after the shared rule was emptied", idx)
		}
	}
	assert.Equal(t, []int{5*20 + 13, 5*20 + 14, 5*20 + 15}, e.Living())
	for _, idx := range region {
		assert.Same(t, shared, e.Board().EffectiveRule(idx))
	}
}

func TestAssignCopyIsIndependent(t *testing.T) {
	o := NewOverlay()
	src := rules.Default()
	c := o.AssignCopy([]int{1, 2}, src)
	src.SetBirth(0)

	r, ok := o.Lookup(1)
	require.True(t, ok)
	assert.Same(t, c, r)
	assert.Equal(t, []int{3}, r.Birth())
	assert.False(t, o.BornOnZero())
	assert.Equal(t, []int{1, 2}, o.Indices())
	assert.Equal(t, []int{3}, o.BirthNumbers())
}

func TestOverlayForgetsReplacedRules(t *testing.T) {
	o := NewOverlay()
	wide := rules.MustParse("R2,C0,M0,S0..3,B0..2,NM")
	o.Assign([]int{1, 2}, wide)
	assert.True(t, o.BornOnZero())
	assert.False(t, o.spreadsMatch(1))

	narrow := rules.Default()
	o.Assign([]int{1}, narrow)
	assert.True(t, o.BornOnZero(), "cell 2 still uses the wide rule")

	o.Assign([]int{2}, narrow)
	assert.False(t, o.BornOnZero())
	assert.True(t, o.spreadsMatch(1))
	assert.Equal(t, 1, o.maxSpread(1))
	assert.Equal(t, []int{3}, o.BirthNumbers())
	assert.Equal(t, []*rules.RuleSet{narrow}, o.assigned)
}

func TestSkipGenerations(t *testing.T) {
	e := New(10, 10, nil)
	e.LoadPatternAt("OOO", 4, 5)
	e.SkipNGens(5)
	assert.Equal(t, 5, e.Generation())

	e.SkipToGenN(9)
	assert.Equal(t, 9, e.Generation())

	before := e.Living()
	e.SkipToGenN(3)
	assert.Equal(t, 9, e.Generation())
	assert.Equal(t, before, e.Living())
}

func TestSetRulestringKeepsRuleOnError(t *testing.T) {
	e := New(10, 10, nil)
	err := e.SetRulestring("B3/X23")
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrParse)
	assert.Equal(t, "B3/S23", e.Rulestring())

	require.NoError(t, e.SetRulestring("R5,C0,M1,S34..58,B34..45,NM"))
	assert.Equal(t, "R5,C0,M1,S34..58,B34..45,NM", e.Rulestring())
}

func ExampleEngine_Step() {
	e := New(10, 10, rules.MustParse("B3/S23"))
	e.LoadPatternAt("OOO", 4, 5)
	d := e.Step()
	fmt.Println(d.Birth, d.Doomed, e.Generation())
	// Output: [45 65] [54 56] 1
}
