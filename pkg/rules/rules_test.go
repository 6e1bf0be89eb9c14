package rules

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gol-editor/pkg/core"
)

func TestParseBS(t *testing.T) {
	r, err := Parse("B3/S23")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, r.Birth())
	assert.Equal(t, []int{2, 3}, r.Survive())
	assert.Equal(t, 1, r.Spread)
	assert.False(t, r.IncludeCenter)

	r, err = Parse(" s23 / b36 ")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6}, r.Birth())
	assert.Equal(t, []int{2, 3}, r.Survive())

	r, err = Parse("B/S")
	require.NoError(t, err)
	assert.Empty(t, r.Birth())
	assert.Empty(t, r.Survive())
}

func TestParseLtL(t *testing.T) {
	r, err := Parse("R5,C0,M1,S34..58,B34..45,NM")
	require.NoError(t, err)
	assert.Equal(t, 5, r.Spread)
	assert.True(t, r.IncludeCenter)
	birth := r.Birth()
	require.Len(t, birth, 12)
	assert.Equal(t, 34, birth[0])
	assert.Equal(t, 45, birth[len(birth)-1])
	assert.Len(t, r.Survive(), 25)

	r, err = Parse("R2,C2,M0,S5,B3..4,NM")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, r.Survive())
	assert.Equal(t, []int{3, 4}, r.Birth())
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"",
		"3/23",
		"B3/23",
		"B3/S2x",
		"B9/S23",
		"R5,C3,M1,S34..58,B34..45,NM",
		"R5,C0,M1,S34..58,B34..45,NN",
		"R5,C0,M1,S58..34,B34..45,NM",
		"R0,C0,M1,S1..2,B1..2,NM",
		"R1,C0,M2,S1..2,B1..2,NM",
		"R1,C0,M0,S1..9,B1..2,NM",
		"R3,C0,M1,S1..2,NM",
	}
	for _, in := range cases {
		_, err := Parse(in)
		if err == nil {
			t.Fatalf("Parse(%q) succeeded, expected error", in)
		}
		if !errors.Is(err, ErrParse) {
			t.Fatalf("Parse(%q) error %v does not match ErrParse", in, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Input != in {
			t.Fatalf("Parse(%q) error %v is not a ParseError for the input", in, err)
		}
	}
}

func TestGenerateNotation(t *testing.T) {
	assert.Equal(t, "B3/S23", Generate(Default()))
	assert.Equal(t, "R1,C0,M1,S2..3,B3..3,NM", Generate(New([]int{3}, []int{2, 3}, 1, true)))
	assert.Equal(t, "R2,C0,M0,S,B,NM", Generate(New(nil, nil, 2, false)))

	empty, err := Parse("R2,C0,M0,S,B,NM")
	require.NoError(t, err)
	assert.Empty(t, empty.Birth())
}

func TestBSPresetsRoundTrip(t *testing.T) {
	presets, ok := Presets(FamilyBS)
	require.True(t, ok)
	for name, s := range presets {
		r, err := Parse(s)
		require.NoError(t, err, name)
		back, err := Parse(Generate(r))
		require.NoError(t, err, name)
		assert.Equal(t, r.Birth(), back.Birth(), name)
		assert.Equal(t, r.Survive(), back.Survive(), name)
		assert.Equal(t, s, Generate(r), name)
	}
}

func TestLtLPresetsParse(t *testing.T) {
	for _, name := range Names(FamilyLtL) {
		s, _ := Preset(FamilyLtL, name)
		r, err := Parse(s)
		require.NoError(t, err, name)
		assert.True(t, r.IsLtL(), name)
		assert.Equal(t, s, Generate(r), name)
	}
}

func TestLtLGenerateWidensToEnvelope(t *testing.T) {
	r := New([]int{1, 3, 5}, []int{2, 3}, 2, false)
	back, err := Parse(Generate(r))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, back.Birth())
	assert.Subset(t, back.Birth(), r.Birth())
}

func TestPresetsAreCopies(t *testing.T) {
	table, ok := Presets(FamilyBS)
	require.True(t, ok)
	table["Life"] = "B0/S"
	s, _ := Preset(FamilyBS, "Life")
	assert.Equal(t, "B3/S23", s)

	_, ok = Presets("nope")
	assert.False(t, ok)
	assert.Equal(t, []string{FamilyBS, FamilyLtL}, Families())

	bugs, err := Lookup("Bugs")
	require.NoError(t, err)
	assert.Equal(t, 5, bugs.Spread)
	_, err = Lookup("missing")
	assert.Error(t, err)
}

func TestNeighborCountLimit(t *testing.T) {
	assert.Equal(t, 8, New(nil, nil, 1, false).NeighborCountLimit())
	assert.Equal(t, 9, New(nil, nil, 1, true).NeighborCountLimit())
	assert.Equal(t, 120, New(nil, nil, 5, false).NeighborCountLimit())

	huge := &RuleSet{Spread: 1 << 30}
	assert.Equal(t, maxCount-1, huge.NeighborCountLimit())
	assert.Error(t, huge.Validate())
}

func TestOversizedRulestringsFailCheaply(t *testing.T) {
	cases := []string{
		"R1,C0,M0,S0..100000000,B,NM",
		"R1,C0,M0,S,B5..9999999999,NM",
		"S0..100000000,B,NM,R1,C0,M0",
		"R100000,C0,M0,S1..2,B1..2,NM",
		"R9223372036854775807,C0,M0,S,B,NM",
	}
	for _, in := range cases {
		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)
		_, err := Parse(in)
		runtime.ReadMemStats(&after)
		require.ErrorIs(t, err, ErrParse, in)
		assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20), in)
	}

	r, err := Parse("R50,C0,M1,S0..10201,B1..2,NM")
	require.NoError(t, err)
	assert.Equal(t, maxCount, r.NeighborCountLimit())
}

func TestNewBoundsSpreadAndCounts(t *testing.T) {
	r := New([]int{3, 1 << 30}, []int{-1, 2}, 1<<20, false)
	assert.Equal(t, MaxSpread, r.Spread)
	assert.Equal(t, []int{3}, r.Birth())
	assert.Equal(t, []int{2}, r.Survive())

	r.SetSurvive(maxCount+1, 4)
	assert.Equal(t, []int{4}, r.Survive())
}

func TestGenerateNeverAliasesMultiDigitCounts(t *testing.T) {
	r := New([]int{12}, nil, 1, false)
	s := Generate(r)
	assert.Equal(t, "R1,C0,M0,S,B12..12,NM", s)
	_, err := Parse(s)
	require.ErrorIs(t, err, ErrParse)

	valid := New([]int{12}, []int{10, 11}, 2, false)
	back, err := Parse(Generate(valid))
	require.NoError(t, err)
	assert.True(t, valid.Equal(back))
}

func TestResolveKeywords(t *testing.T) {
	rng := core.NewRNG(3)

	r, err := Resolve(FamilyBS, "default", rng)
	require.NoError(t, err)
	assert.True(t, r.Equal(Default()))

	r, err = Resolve(FamilyLtL, " DEFAULT ", rng)
	require.NoError(t, err)
	assert.Equal(t, "R5,C0,M1,S34..58,B34..45,NM", Generate(r))

	for _, family := range Families() {
		r, err := Resolve(family, "random", rng)
		require.NoError(t, err, family)
		require.NoError(t, r.Validate())
		assert.Equal(t, family == FamilyLtL, r.IsLtL(), family)
	}

	r, err = Resolve(FamilyBS, "HighLife", rng)
	require.NoError(t, err)
	assert.Equal(t, "B36/S23", Generate(r))

	_, err = Resolve(FamilyBS, "B3/S2x", rng)
	require.ErrorIs(t, err, ErrParse)
	_, err = Resolve("hex", "random", rng)
	require.Error(t, err)
	_, err = Resolve("hex", "default", rng)
	require.Error(t, err)
}

func TestRandomizeStaysInLimit(t *testing.T) {
	rng := core.NewRNG(7)
	for i := 0; i < 200; i++ {
		r := Random(rng, true, true)
		require.NoError(t, r.Validate())
		assert.GreaterOrEqual(t, r.Spread, 1)
		assert.LessOrEqual(t, r.Spread, maxRandomSpread)
	}
	r := Random(rng, false, false)
	assert.Equal(t, 1, r.Spread)
	assert.False(t, r.IncludeCenter)
}

func TestRandomRulestringParses(t *testing.T) {
	rng := core.NewRNG(11)
	for _, family := range Families() {
		for i := 0; i < 50; i++ {
			s, err := RandomRulestring(family, rng)
			require.NoError(t, err)
			r, err := Parse(s)
			require.NoError(t, err, s)
			if family == FamilyLtL {
				assert.True(t, r.IsLtL(), s)
			}
		}
	}
	_, err := RandomRulestring("nope", rng)
	assert.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	r := Default()
	c := r.Clone()
	c.SetBirth(3, 6)
	c.Spread = 2
	assert.Equal(t, []int{3}, r.Birth())
	assert.Equal(t, 1, r.Spread)
	assert.False(t, r.Equal(c))
	assert.True(t, r.Equal(Default()))
}
