package core

import (
	"strings"
	"testing"
	"time"
)

func TestGridIndexAndBounds(t *testing.T) {
	g := NewGrid[int](4, 3)
	if g.W != 4 || g.H != 3 {
		t.Fatalf("unexpected dimensions %dx%d", g.W, g.H)
	}
	if got := g.Index(2, 1); got != 6 {
		t.Fatalf("Index(2,1) = %d, want 6", got)
	}
	*g.At(2, 1) = 9
	if g.Cells()[6] != 9 {
		t.Fatal("At should address the row-major backing slot")
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if g.At(p[0], p[1]) != nil {
			t.Fatalf("At(%d,%d) should be nil outside the grid", p[0], p[1])
		}
	}
}

func TestGridFillAndCopy(t *testing.T) {
	a := NewGrid[int](3, 3)
	b := NewGrid[int](3, 3)
	a.Fill(7)
	b.CopyFrom(a)
	for i, v := range b.Cells() {
		if v != 7 {
			t.Fatalf("slot %d = %d after copy, want 7", i, v)
		}
	}

	other := NewGrid[int](2, 2)
	other.CopyFrom(a)
	for _, v := range other.Cells() {
		if v != 0 {
			t.Fatal("mismatched shapes must not be copied")
		}
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid[uint8](0, -5)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("expected 1x1 fallback, got %dx%d", g.W, g.H)
	}
}

func TestScriptedRandCycles(t *testing.T) {
	r := &ScriptedRand{Values: []float64{0.1, 0.9}}
	want := []float64{0.1, 0.9, 0.1}
	for i, w := range want {
		if got := r.Float64(); got != w {
			t.Fatalf("draw %d = %f, want %f", i, got, w)
		}
	}
	if r.Draws() != 3 {
		t.Fatalf("expected 3 draws, got %d", r.Draws())
	}
	var empty ScriptedRand
	if empty.Float64() != 0 {
		t.Fatal("empty script should yield zero")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 16; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("draw %d diverged: %f vs %f", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d out of range: %f", i, va)
		}
	}
	if NewRNG(1).IntN(0) != 0 {
		t.Fatal("IntN(0) should return 0")
	}
}

func TestFixedStepAdvance(t *testing.T) {
	fs := NewFixedStep(10 * time.Millisecond)
	start := time.Unix(100, 0)

	if got := fs.Advance(start); got != 1 {
		t.Fatalf("first call should release the primed step, got %d", got)
	}
	if got := fs.Advance(start.Add(5 * time.Millisecond)); got != 0 {
		t.Fatalf("half a period should not step, got %d", got)
	}
	if got := fs.Advance(start.Add(25 * time.Millisecond)); got != 2 {
		t.Fatalf("expected 2 steps after 25ms, got %d", got)
	}
	if got := fs.Advance(start.Add(10 * time.Second)); got != maxCatchUp {
		t.Fatalf("long stalls should be capped at %d, got %d", maxCatchUp, got)
	}
	if got := fs.Advance(start.Add(10*time.Second + time.Millisecond)); got != 0 {
		t.Fatalf("accumulator should be drained after a capped stall, got %d", got)
	}
}

func TestFixedStepDefaultsPeriod(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Period() != 15*time.Millisecond {
		t.Fatalf("expected 15ms default period, got %s", fs.Period())
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Brush", Params: []Parameter{{Key: "brush_radius", Label: "Brush radius", Value: "3"}}},
		{Name: "Fire", Params: []Parameter{{Key: "fire_spread_chance", Label: "Fire spread chance", Value: "0.02"}}},
	}}
	p, ok := snap.Lookup("fire_spread_chance")
	if !ok || p.Value != "0.02" {
		t.Fatalf("lookup failed: %+v %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("unexpected hit for missing key")
	}
	dump := snap.String()
	if !strings.Contains(dump, "Brush radius: 3") || !strings.Contains(dump, "Fire\n") {
		t.Fatalf("unexpected dump:\n%s", dump)
	}
}

func TestRegistryIgnoresInvalidEntries(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("invalid registrations must be ignored")
	}
}

func TestSizeContains(t *testing.T) {
	s := Size{W: 2, H: 2}
	if !s.Contains(1, 1) || s.Contains(2, 0) || s.Contains(0, -1) {
		t.Fatal("Contains misreports bounds")
	}
}
