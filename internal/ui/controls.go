package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"

	"gol-editor/internal/core"
)

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl) []hudControlState {
	states := make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		states[i] = hudControlState{control: ctrl, value: "--"}
	}
	return states
}

// refresh reads the control's current value from snap.
func (s *hudControlState) refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	s.value = "--"
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
		s.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control.Step, parsed)
		s.hasValue = true
	}
}

func (s *hudControlState) intStep() int {
	step := int(math.Round(s.control.Step))
	if step <= 0 {
		step = 1
	}
	return step
}

func (s *hudControlState) floatStep() float64 {
	if s.control.Step <= 0 {
		return 0.05
	}
	return s.control.Step
}

// canAdjust reports whether moving one step in direction stays in bounds.
func (s *hudControlState) canAdjust(direction int) bool {
	if !s.hasValue || direction == 0 {
		return false
	}
	ctrl := s.control
	switch ctrl.Type {
	case core.ParamTypeInt:
		target := s.intValue + direction*s.intStep()
		if ctrl.HasMin && direction < 0 && target < int(math.Round(ctrl.Min)) {
			return false
		}
		if ctrl.HasMax && direction > 0 && target > int(math.Round(ctrl.Max)) {
			return false
		}
		return true
	case core.ParamTypeFloat:
		target := s.floatValue + float64(direction)*s.floatStep()
		if ctrl.HasMin && direction < 0 && target < ctrl.Min-1e-9 {
			return false
		}
		if ctrl.HasMax && direction > 0 && target > ctrl.Max+1e-9 {
			return false
		}
		return true
	}
	return false
}

// adjust moves the control one step in direction, clamped to its bounds,
// and pushes the new value through the matching setter.
func (s *hudControlState) adjust(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	if !s.hasValue || direction == 0 {
		return false
	}
	ctrl := s.control
	switch ctrl.Type {
	case core.ParamTypeInt:
		if ints == nil {
			return false
		}
		target := s.intValue + direction*s.intStep()
		if ctrl.HasMin {
			target = max(target, int(math.Round(ctrl.Min)))
		}
		if ctrl.HasMax {
			target = min(target, int(math.Round(ctrl.Max)))
		}
		if target == s.intValue || !ints.SetIntParameter(ctrl.Key, target) {
			return false
		}
		s.intValue = target
		s.floatValue = float64(target)
		s.value = strconv.Itoa(target)
		return true
	case core.ParamTypeFloat:
		if floats == nil {
			return false
		}
		target := s.floatValue + float64(direction)*s.floatStep()
		if ctrl.HasMin {
			target = math.Max(target, ctrl.Min)
		}
		if ctrl.HasMax {
			target = math.Min(target, ctrl.Max)
		}
		if math.Abs(target-s.floatValue) < 1e-9 || !floats.SetFloatParameter(ctrl.Key, target) {
			return false
		}
		s.floatValue = target
		s.value = formatFloat(ctrl.Step, target)
		return true
	}
	return false
}

func formatFloat(step, value float64) string {
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// statusLines summarises the run state of a snapshot for the HUD header.
// Keys the sim does not expose are skipped.
func statusLines(snap core.ParameterSnapshot) []string {
	value := func(key string) (string, bool) {
		p, ok := snap.Lookup(key)
		return p.Value, ok
	}
	var lines []string
	if rule, ok := value("rule"); ok {
		lines = append(lines, "Rule "+rule)
	}
	gen, okGen := value("generation")
	pop, okPop := value("population")
	if okGen && okPop {
		lines = append(lines, fmt.Sprintf("Gen %s  Pop %s", gen, pop))
	}
	hist, okHist := value("history")
	limit, okLimit := value("history_limit")
	if okHist && okLimit {
		lines = append(lines, fmt.Sprintf("History %s/%s", hist, limit))
	}
	if boxes, ok := value("rule_boxes"); ok && boxes != "0" {
		lines = append(lines, "Rule box cells "+boxes)
	}
	return lines
}

var keyHints = []string{
	"space pause  n step",
	"b rewind  c/v checkpoint",
	"r reset  s reseed",
	"click toggle  rdrag box",
	"x clear boxes  1 show",
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
