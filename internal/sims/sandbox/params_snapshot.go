package sandbox

import (
	"strconv"

	"sandfall/internal/core"
)

// Parameters reports the current tunables grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				boolParam("alternate_scan", "Alternate scan", params.AlternateScan),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				stringParam("species", "Species", w.SelectedName()),
				intParam("brush_radius", "Brush radius", w.brush),
				intParam("max_stroke", "Max stroke", params.MaxStrokeSize),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("fire_spread_chance", "Fire spread chance", params.FireSpreadChance),
				intParam("fire_spread_age", "Fire spread age", params.FireSpreadAge),
				intParam("fire_lifetime", "Fire lifetime", params.FireLifetime),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				boolParam("terrain", "Terrain on reset", params.Terrain),
				floatParam("terrain_roughness", "Terrain roughness", params.TerrainRoughness),
				intParam("terrain_seeds", "Terrain plant seeds", params.TerrainSeeds),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "brush_radius", Label: "Brush radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: float64(w.cfg.Params.MaxStrokeSize), HasMin: true, HasMax: true},
		{Key: "fire_spread_chance", Label: "Fire spread", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "fire_spread_age", Label: "Fire spread age", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "fire_lifetime", Label: "Fire lifetime", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "alternate_scan", Label: "Alternate scan", Type: core.ParamTypeBool},
	}
}

// SetIntParameter updates an integer tunable. It reports whether the key was
// recognised.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "brush_radius":
		w.SetBrushRadius(value)
	case "fire_spread_age":
		if value < 0 {
			value = 0
		}
		w.cfg.Params.FireSpreadAge = value
		if w.cfg.Params.FireLifetime < value {
			w.cfg.Params.FireLifetime = value
		}
	case "fire_lifetime":
		if value < w.cfg.Params.FireSpreadAge {
			value = w.cfg.Params.FireSpreadAge
		}
		w.cfg.Params.FireLifetime = value
	case "terrain_seeds":
		if value < 0 {
			value = 0
		}
		w.cfg.Params.TerrainSeeds = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point tunable, clamping probabilities
// to [0, 1].
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "fire_spread_chance":
		w.cfg.Params.FireSpreadChance = clampUnit(value)
	case "terrain_roughness":
		if value <= 0 {
			return false
		}
		w.cfg.Params.TerrainRoughness = value
	default:
		return false
	}
	return true
}

// SetBoolParameter updates a boolean tunable.
func (w *World) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "alternate_scan":
		w.cfg.Params.AlternateScan = value
		if !w.customScan {
			w.scan = scanOrderFor(w.cfg.Params)
		}
	case "terrain":
		w.cfg.Params.Terrain = value
	default:
		return false
	}
	return true
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Value: value}
}
