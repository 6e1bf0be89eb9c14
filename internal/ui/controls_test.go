package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gol-editor/internal/core"
	gridcore "gol-editor/pkg/core"
)

type fakeSetter struct {
	ints   map[string]int
	floats map[string]float64
	reject bool
}

func (f *fakeSetter) SetIntParameter(key string, value int) bool {
	if f.reject {
		return false
	}
	f.ints[key] = value
	return true
}

func (f *fakeSetter) SetFloatParameter(key string, value float64) bool {
	if f.reject {
		return false
	}
	f.floats[key] = value
	return true
}

func newFakeSetter() *fakeSetter {
	return &fakeSetter{ints: map[string]int{}, floats: map[string]float64{}}
}

func snapshot(params ...core.Parameter) core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{Name: "Test", Params: params}}}
}

func TestIntControlClampsToBounds(t *testing.T) {
	states := newControlStates([]core.ParameterControl{{
		Key: "spread", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 3, HasMin: true, HasMax: true,
	}})
	state := &states[0]
	assert.Equal(t, "--", state.value)
	assert.False(t, state.canAdjust(1))

	state.refresh(snapshot(core.Parameter{Key: "spread", Type: core.ParamTypeInt, Value: "3"}))
	require.True(t, state.hasValue)
	assert.False(t, state.canAdjust(1))
	assert.True(t, state.canAdjust(-1))

	setter := newFakeSetter()
	assert.False(t, state.adjust(1, setter, setter))
	require.True(t, state.adjust(-1, setter, setter))
	assert.Equal(t, 2, setter.ints["spread"])
	assert.Equal(t, "2", state.value)
}

func TestFloatControlFormatsByStep(t *testing.T) {
	states := newControlStates([]core.ParameterControl{{
		Key: "density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true,
	}})
	state := &states[0]
	state.refresh(snapshot(core.Parameter{Key: "density", Type: core.ParamTypeFloat, Value: "0.1"}))
	assert.Equal(t, "0.10", state.value)

	setter := newFakeSetter()
	require.True(t, state.adjust(-1, setter, setter))
	assert.InDelta(t, 0.05, setter.floats["density"], 1e-9)
	require.True(t, state.adjust(-1, setter, setter))
	assert.InDelta(t, 0, state.floatValue, 1e-9)
	assert.False(t, state.adjust(-1, setter, setter))
}

func TestAdjustKeepsValueWhenSetterRejects(t *testing.T) {
	states := newControlStates([]core.ParameterControl{{Key: "spread", Type: core.ParamTypeInt}})
	state := &states[0]
	state.refresh(snapshot(core.Parameter{Key: "spread", Type: core.ParamTypeInt, Value: "4"}))
	setter := newFakeSetter()
	setter.reject = true
	assert.False(t, state.adjust(1, setter, setter))
	assert.Equal(t, 4, state.intValue)
	assert.False(t, state.adjust(1, nil, nil))
}

func TestRefreshRejectsUnparsableValues(t *testing.T) {
	states := newControlStates([]core.ParameterControl{{Key: "spread", Type: core.ParamTypeInt}})
	state := &states[0]
	state.refresh(snapshot(core.Parameter{Key: "spread", Value: "wide"}))
	assert.False(t, state.hasValue)
	assert.Equal(t, "--", state.value)
}

func TestStatusLines(t *testing.T) {
	snap := snapshot(
		core.Parameter{Key: "rule", Value: "B3/S23"},
		core.Parameter{Key: "generation", Value: "12"},
		core.Parameter{Key: "population", Value: "340"},
		core.Parameter{Key: "history", Value: "12"},
		core.Parameter{Key: "history_limit", Value: "1000"},
		core.Parameter{Key: "rule_boxes", Value: "0"},
	)
	assert.Equal(t, []string{"Rule B3/S23", "Gen 12  Pop 340", "History 12/1000"}, statusLines(snap))
	assert.Empty(t, statusLines(core.ParameterSnapshot{}))
}

func TestSelectionOrdersCorners(t *testing.T) {
	var sel selection
	_, _, ok := sel.finish()
	assert.False(t, ok)

	sel.begin(gridcore.Coord{X: 7, Y: 2})
	sel.move(gridcore.Coord{X: 3, Y: 9})
	a, b, ok := sel.finish()
	require.True(t, ok)
	assert.Equal(t, gridcore.Coord{X: 3, Y: 2}, a)
	assert.Equal(t, gridcore.Coord{X: 7, Y: 9}, b)
	assert.False(t, sel.active)
}

func TestCellAtClampsToBoard(t *testing.T) {
	size := gridcore.Size{W: 10, H: 5}
	assert.Equal(t, gridcore.Coord{X: 2, Y: 1}, cellAt(8, 5, 4, size))
	assert.Equal(t, gridcore.Coord{X: 9, Y: 4}, cellAt(400, 400, 4, size))
	assert.Equal(t, gridcore.Coord{X: 0, Y: 0}, cellAt(-3, -3, 4, size))
}

func TestFillMaskRGBA(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	fillMaskRGBA(buf, []bool{true, false}, color.RGBA{R: 1, G: 2, B: 3, A: 4})
	assert.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0}, buf)
}
