package life

import (
	"image/color"
	"strconv"

	"gol-editor/internal/core"
	"gol-editor/pkg/rules"
)

const maxSpread = 10

func (l *Life) Parameters() core.ParameterSnapshot {
	rule := l.eng.Rule()
	history := l.eng.History()
	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("w", "Width", l.cfg.Width),
				intParam("h", "Height", l.cfg.Height),
				stringParam("edge", "Edge", l.edge.String()),
				floatParam("density", "Seed density", l.cfg.Density),
				int64Param("seed", "Seed", l.cfg.Seed),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				stringParam("rule", "Rule", rules.Generate(rule)),
				intParam("spread", "Spread", rule.Spread),
				boolParam("center", "Include center", rule.IncludeCenter),
				intParam("rule_boxes", "Rule box cells", l.eng.Board().Overlay().Len()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("generation", "Generation", l.eng.Generation()),
				intParam("population", "Population", l.eng.Population()),
				intParam("history", "History", history.Len()),
				intParam("history_limit", "History limit", history.Limit()),
				stringParam("path", "Step path", l.eng.LastPath().String()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key: "spread", Label: "Spread", Type: core.ParamTypeInt,
			Step: 1, Min: 1, Max: maxSpread, HasMin: true, HasMax: true,
		},
		{
			Key: "density", Label: "Seed density", Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true,
		},
	}
}

// SetIntParameter handles "spread". Counts that no longer fit the smaller
// neighborhood are dropped from the rule.
func (l *Life) SetIntParameter(key string, value int) bool {
	switch key {
	case "spread":
		if value < 1 || value > maxSpread {
			return false
		}
		r := l.eng.Rule().Clone()
		if r.Spread == value {
			return false
		}
		r.Spread = value
		limit := r.NeighborCountLimit()
		r.SetBirth(clip(r.Birth(), limit)...)
		r.SetSurvive(clip(r.Survive(), limit)...)
		l.eng.SetRule(r)
		l.cfg.Rule = rules.Generate(r)
		return true
	}
	return false
}

// SetFloatParameter handles "density", used by the next Reset.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		if value < 0 {
			value = 0
		}
		if value > 1 {
			value = 1
		}
		if value == l.cfg.Density {
			return false
		}
		l.cfg.Density = value
		return true
	}
	return false
}

func clip(counts []int, limit int) []int {
	out := counts[:0]
	for _, n := range counts {
		if n <= limit {
			out = append(out, n)
		}
	}
	return out
}

var lifePalette = []color.RGBA{
	CellDead:      {R: 0, G: 0, B: 0, A: 255},
	CellLive:      {R: 255, G: 255, B: 255, A: 255},
	CellDeadInBox: {R: 28, G: 20, B: 48, A: 255},
	CellLiveInBox: {R: 200, G: 170, B: 255, A: 255},
}

// Palette maps display values to colors.
func (l *Life) Palette() []color.RGBA { return lifePalette }

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
