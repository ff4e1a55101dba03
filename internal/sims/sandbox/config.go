package sandbox

import "strconv"

// Params holds the tunable constants of the update rules and the brush.
type Params struct {
	AlternateScan bool
	MaxStrokeSize int

	FireSpreadChance float64
	FireSpreadAge    int
	FireLifetime     int

	Terrain          bool
	TerrainRoughness float64
	TerrainSeeds     int
}

// Config controls the sandbox dimensions and rule parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 200,
		Seed:   1337,
		Params: Params{
			AlternateScan:    true,
			MaxStrokeSize:    20,
			FireSpreadChance: 0.02,
			FireSpreadAge:    20,
			FireLifetime:     25,
			TerrainRoughness: 0.6,
			TerrainSeeds:     4,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
			c.Height = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["alternate_scan"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.AlternateScan = parsed
		}
	}
	if v, ok := cfg["max_stroke"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MaxStrokeSize = parsed
		}
	}
	if v, ok := cfg["fire_spread_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.FireSpreadChance = parsed
		}
	}
	if v, ok := cfg["fire_spread_age"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FireSpreadAge = parsed
		}
	}
	if v, ok := cfg["fire_lifetime"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FireLifetime = parsed
		}
	}
	if c.Params.FireLifetime < c.Params.FireSpreadAge {
		c.Params.FireLifetime = c.Params.FireSpreadAge
	}
	if v, ok := cfg["terrain"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.Terrain = parsed
		}
	}
	if v, ok := cfg["terrain_roughness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.TerrainRoughness = parsed
		}
	}
	if v, ok := cfg["terrain_seeds"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.TerrainSeeds = parsed
		}
	}
	return c
}
