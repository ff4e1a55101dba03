package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Period   time.Duration
	Seed     int64
	HUDWidth int
	LogLevel string
	Params   ParamFlag
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "sandbox",
		Scale:    4,
		TPS:      60,
		Period:   15 * time.Millisecond,
		Seed:     42,
		HUDWidth: 220,
		LogLevel: "info",
		Params:   ParamFlag{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the window loop")
	fs.DurationVar(&c.Period, "period", c.Period, "time between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.Var(c.Params, "p", "simulation parameter as key=value (repeatable)")
}

// ParamFlag collects repeated key=value flags into a map understood by the
// simulation factories.
type ParamFlag map[string]string

// String renders the collected pairs in key order.
func (p ParamFlag) String() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + p[k]
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (p ParamFlag) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	p[key] = strings.TrimSpace(value)
	return nil
}
