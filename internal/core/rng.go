package core

import "math/rand/v2"

// Rand is the single source of randomness consumed by stochastic rules.
// Float64 returns a value in [0, 1).
type Rand interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a uniform value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// ScriptedRand replays a fixed sequence of values, cycling when exhausted.
// An empty script always yields 0.
type ScriptedRand struct {
	Values []float64
	pos    int
}

// Float64 returns the next scripted value.
func (s *ScriptedRand) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}

// Draws reports how many values have been consumed.
func (s *ScriptedRand) Draws() int { return s.pos }

// ConstRand always returns the same value.
type ConstRand float64

// Float64 returns the constant.
func (c ConstRand) Float64() float64 { return float64(c) }
