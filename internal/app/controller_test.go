package app

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"sandfall/internal/core"
	"sandfall/internal/logging"
	"sandfall/internal/sims/sandbox"
)

func newTestController(t *testing.T) (*Controller, *sandbox.World) {
	t.Helper()
	world := sandbox.New(8, 8)
	world.SetRand(core.ConstRand(0.99))
	return NewController(world, 7, nil), world
}

func TestAdvanceRunsDueSteps(t *testing.T) {
	ctl, world := newTestController(t)
	if got := ctl.Advance(3); got != 3 {
		t.Fatalf("Advance(3) ran %d steps", got)
	}
	if world.Generation() != 3 {
		t.Fatalf("generation = %d, want 3", world.Generation())
	}
}

func TestPauseSuspendsTimedSteps(t *testing.T) {
	ctl, world := newTestController(t)
	ctl.Apply(CmdTogglePause)
	if !ctl.Paused() {
		t.Fatal("expected paused")
	}
	if got := ctl.Advance(2); got != 0 {
		t.Fatalf("paused Advance ran %d steps", got)
	}
	ctl.Apply(CmdStep)
	if got := ctl.Advance(0); got != 1 {
		t.Fatalf("single step ran %d steps, want 1", got)
	}
	if got := ctl.Advance(0); got != 0 {
		t.Fatalf("single step should not repeat, ran %d", got)
	}
	if world.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", world.Generation())
	}
}

func TestSingleStepIgnoredWhileRunning(t *testing.T) {
	ctl, world := newTestController(t)
	ctl.Apply(CmdStep)
	ctl.Advance(0)
	if world.Generation() != 0 {
		t.Fatalf("step while running should be ignored, generation = %d", world.Generation())
	}
}

func TestSelectionCommands(t *testing.T) {
	ctl, world := newTestController(t)
	start := world.SelectedSpecies()
	ctl.Apply(CmdNextSpecies)
	if world.SelectedSpecies() != start.Next() {
		t.Fatalf("species = %v, want %v", world.SelectedSpecies(), start.Next())
	}
	ctl.Apply(CmdPrevSpecies)
	if world.SelectedSpecies() != start {
		t.Fatal("prev should undo next")
	}

	radius := world.BrushRadius()
	ctl.Apply(CmdGrowBrush)
	if world.BrushRadius() != radius+1 {
		t.Fatalf("brush = %d, want %d", world.BrushRadius(), radius+1)
	}
	ctl.Apply(CmdShrinkBrush)
	if world.BrushRadius() != radius {
		t.Fatal("shrink should undo grow")
	}

	dna := world.SelectedDNA()
	ctl.Apply(CmdCycleDNA)
	if world.SelectedDNA() != dna.Next() {
		t.Fatalf("dna = %v, want %v", world.SelectedDNA(), dna.Next())
	}
}

func TestResetClearsWorld(t *testing.T) {
	var out bytes.Buffer
	world := sandbox.New(8, 8)
	world.SetRand(core.ConstRand(0.99))
	ctl := NewController(world, 7, logging.NewWithOutput("info", log.New(&out, "", 0)))

	world.Place(4, 4, sandbox.Rock, sandbox.BasicPlant, 1)
	ctl.Advance(2)
	ctl.Apply(CmdReset)
	if world.Census().NonAir() != 0 {
		t.Fatal("reset should clear every cell")
	}
	if world.Generation() != 0 {
		t.Fatalf("generation = %d after reset", world.Generation())
	}
	if !strings.Contains(out.String(), "reset sandbox") {
		t.Fatalf("expected reset to be logged, got %q", out.String())
	}
}

func TestTerrainCommandPopulatesGround(t *testing.T) {
	ctl, world := newTestController(t)
	ctl.Apply(CmdTerrain)
	census := world.Census()
	if census.Count(sandbox.Rock)+census.Count(sandbox.Sand) < world.Size().W {
		t.Fatal("terrain should cover every column with ground")
	}
}

func TestPaintMapsToSelection(t *testing.T) {
	ctl, world := newTestController(t)
	world.Select(sandbox.Rock)
	world.SetBrushRadius(0)
	ctl.Paint(2, 3)
	c, ok := world.Cell(2, 3)
	if !ok || c.Type != sandbox.Rock {
		t.Fatalf("cell (2,3) = %+v, want rock", c)
	}
}

func TestScreenToGridFlipsRows(t *testing.T) {
	size := core.Size{W: 10, H: 10}
	cases := []struct {
		sx, sy, scale int
		x, y          int
	}{
		{0, 0, 4, 0, 9},
		{39, 39, 4, 9, 0},
		{5, 12, 4, 1, 6},
		{-1, 0, 4, -1, 9},
		{0, 40, 4, 0, -1},
		{3, 3, 0, 3, 6},
	}
	for _, tc := range cases {
		x, y := ScreenToGrid(tc.sx, tc.sy, tc.scale, size)
		if x != tc.x || y != tc.y {
			t.Errorf("ScreenToGrid(%d, %d, %d) = (%d, %d), want (%d, %d)", tc.sx, tc.sy, tc.scale, x, y, tc.x, tc.y)
		}
	}
}
