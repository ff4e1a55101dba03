package ui

import (
	"image"
	"math"
	"strconv"

	"sandfall/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 16
)

// controlState caches the displayed value and hit boxes of one HUD control.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	boolValue  bool
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlPanel holds the adjustable parameters of a sim independently of how
// they are drawn.
type controlPanel struct {
	controls []controlState
	ints     core.IntParameterSetter
	floats   core.FloatParameterSetter
	bools    core.BoolParameterSetter
}

func newControlPanel(sim core.Sim) *controlPanel {
	p := &controlPanel{}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		ctrls := provider.ParameterControls()
		p.controls = make([]controlState, len(ctrls))
		for i, ctrl := range ctrls {
			p.controls[i] = controlState{control: ctrl, value: "--"}
		}
	}
	p.ints, _ = sim.(core.IntParameterSetter)
	p.floats, _ = sim.(core.FloatParameterSetter)
	p.bools, _ = sim.(core.BoolParameterSetter)
	return p
}

// layout positions the controls in a panel of the given width, starting at
// the vertical offset top.
func (p *controlPanel) layout(width, top int) {
	for i := range p.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = rowTop
		p.controls[i].minusRect = minus
		p.controls[i].plusRect = plus
	}
}

// refresh pulls the current values out of snap.
func (p *controlPanel) refresh(snap core.ParameterSnapshot) {
	for i := range p.controls {
		state := &p.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			v, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = v
			state.floatValue = float64(v)
			state.value = strconv.Itoa(v)
		case core.ParamTypeFloat:
			v, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = v
			state.value = formatFloat(state.control, v)
		case core.ParamTypeBool:
			v, err := strconv.ParseBool(param.Value)
			if err != nil {
				continue
			}
			state.boolValue = v
			state.value = onOff(v)
		default:
			continue
		}
		state.hasValue = true
	}
}

// hit returns the control index and direction of the button under (x, y).
func (p *controlPanel) hit(x, y int) (int, int, bool) {
	pt := image.Pt(x, y)
	for i := range p.controls {
		state := &p.controls[i]
		if !state.hasValue {
			continue
		}
		if pt.In(state.minusRect) {
			return i, -1, true
		}
		if pt.In(state.plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

// canAdjust reports whether moving control i in direction dir would change it.
func (p *controlPanel) canAdjust(i, dir int) bool {
	if i < 0 || i >= len(p.controls) || dir == 0 {
		return false
	}
	state := &p.controls[i]
	if !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if p.ints == nil {
			return false
		}
		target, clamped := intTarget(state, dir)
		return !clamped || target != state.intValue
	case core.ParamTypeFloat:
		if p.floats == nil {
			return false
		}
		target := floatTarget(state, dir)
		return math.Abs(target-state.floatValue) >= 1e-9
	case core.ParamTypeBool:
		if p.bools == nil {
			return false
		}
		return state.boolValue != (dir > 0)
	}
	return false
}

// adjust applies one step to control i and reports whether the sim accepted
// the new value.
func (p *controlPanel) adjust(i, dir int) bool {
	if !p.canAdjust(i, dir) {
		return false
	}
	state := &p.controls[i]
	switch state.control.Type {
	case core.ParamTypeInt:
		target, _ := intTarget(state, dir)
		if !p.ints.SetIntParameter(state.control.Key, target) {
			return false
		}
		state.intValue = target
		state.floatValue = float64(target)
		state.value = strconv.Itoa(target)
	case core.ParamTypeFloat:
		target := floatTarget(state, dir)
		if !p.floats.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	case core.ParamTypeBool:
		target := dir > 0
		if !p.bools.SetBoolParameter(state.control.Key, target) {
			return false
		}
		state.boolValue = target
		state.value = onOff(target)
	}
	return true
}

func intTarget(state *controlState, dir int) (int, bool) {
	step := int(math.Round(state.control.Step))
	if step <= 0 {
		step = 1
	}
	target := state.intValue + dir*step
	clamped := false
	if state.control.HasMin {
		if min := int(math.Round(state.control.Min)); target < min {
			target, clamped = min, true
		}
	}
	if state.control.HasMax {
		if max := int(math.Round(state.control.Max)); target > max {
			target, clamped = max, true
		}
	}
	return target, clamped
}

func floatTarget(state *controlState, dir int) float64 {
	step := state.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := state.floatValue + float64(dir)*step
	if state.control.HasMin && target < state.control.Min {
		target = state.control.Min
	}
	if state.control.HasMax && target > state.control.Max {
		target = state.control.Max
	}
	return target
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
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

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
