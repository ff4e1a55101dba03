package ui

import (
	"image/color"
	"testing"

	"sandfall/internal/core"
	"sandfall/internal/sims/sandbox"
)

func controlIndex(t *testing.T, p *controlPanel, key string) int {
	t.Helper()
	for i, state := range p.controls {
		if state.control.Key == key {
			return i
		}
	}
	t.Fatalf("control %q not found", key)
	return -1
}

func TestControlPanelRefreshReadsSnapshot(t *testing.T) {
	world := sandbox.New(16, 16)
	world.SetBrushRadius(3)
	panel := newControlPanel(world)
	panel.refresh(world.Parameters())

	brush := panel.controls[controlIndex(t, panel, "brush_radius")]
	if !brush.hasValue || brush.value != "3" {
		t.Fatalf("brush control = %+v, want value 3", brush)
	}
	scan := panel.controls[controlIndex(t, panel, "alternate_scan")]
	if !scan.hasValue || scan.value != "on" {
		t.Fatalf("alternate scan control = %+v, want on", scan)
	}
}

func TestControlPanelAdjustsIntWithinBounds(t *testing.T) {
	world := sandbox.New(16, 16)
	world.SetBrushRadius(0)
	panel := newControlPanel(world)
	panel.refresh(world.Parameters())
	i := controlIndex(t, panel, "brush_radius")

	if panel.canAdjust(i, -1) {
		t.Fatal("brush radius should not go below zero")
	}
	if !panel.adjust(i, 1) {
		t.Fatal("expected brush radius increase to be accepted")
	}
	if world.BrushRadius() != 1 {
		t.Fatalf("brush radius = %d, want 1", world.BrushRadius())
	}

	world.SetBrushRadius(world.Config().Params.MaxStrokeSize)
	panel.refresh(world.Parameters())
	if panel.canAdjust(i, 1) {
		t.Fatal("brush radius should not exceed the max stroke size")
	}
}

func TestControlPanelAdjustsFloat(t *testing.T) {
	world := sandbox.New(16, 16)
	panel := newControlPanel(world)
	panel.refresh(world.Parameters())
	i := controlIndex(t, panel, "fire_spread_chance")

	before := world.Config().Params.FireSpreadChance
	if !panel.adjust(i, 1) {
		t.Fatal("expected fire spread increase to be accepted")
	}
	got := world.Config().Params.FireSpreadChance
	if got <= before {
		t.Fatalf("fire spread chance = %v, want above %v", got, before)
	}
	if panel.controls[i].value != formatFloat(panel.controls[i].control, got) {
		t.Fatalf("displayed value %q out of sync with %v", panel.controls[i].value, got)
	}
}

func TestControlPanelTogglesBool(t *testing.T) {
	world := sandbox.New(16, 16)
	panel := newControlPanel(world)
	panel.refresh(world.Parameters())
	i := controlIndex(t, panel, "alternate_scan")

	if panel.canAdjust(i, 1) {
		t.Fatal("alternate scan is already on")
	}
	if !panel.adjust(i, -1) {
		t.Fatal("expected alternate scan to switch off")
	}
	if world.Config().Params.AlternateScan {
		t.Fatal("alternate scan should be disabled")
	}
}

func TestControlPanelHitTesting(t *testing.T) {
	world := sandbox.New(16, 16)
	panel := newControlPanel(world)
	panel.layout(220, 40)
	panel.refresh(world.Parameters())

	first := panel.controls[0]
	i, dir, ok := panel.hit(first.plusRect.Min.X+1, first.plusRect.Min.Y+1)
	if !ok || i != 0 || dir != 1 {
		t.Fatalf("hit on plus = (%d, %d, %v)", i, dir, ok)
	}
	i, dir, ok = panel.hit(first.minusRect.Min.X+1, first.minusRect.Min.Y+1)
	if !ok || i != 0 || dir != -1 {
		t.Fatalf("hit on minus = (%d, %d, %v)", i, dir, ok)
	}
	if _, _, ok := panel.hit(0, 0); ok {
		t.Fatal("label area should not register a hit")
	}
}

type bareSim struct{}

func (bareSim) Name() string { return "bare" }
func (bareSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (bareSim) Reset(int64) {}
func (bareSim) Step() {}
func (bareSim) Cells() []uint8 { return []uint8{0} }

func TestControlPanelWithoutProviders(t *testing.T) {
	panel := newControlPanel(bareSim{})
	if len(panel.controls) != 0 {
		t.Fatal("sims without controls should produce an empty panel")
	}
	if panel.adjust(0, 1) {
		t.Fatal("adjusting a missing control must fail")
	}
}

func TestFillMaskRGBA(t *testing.T) {
	buf := make([]byte, 12)
	fillMaskRGBA(buf, []float32{0, 1, 2}, color.RGBA{R: 200, G: 100})
	if buf[3] != 0 {
		t.Fatalf("zero intensity alpha = %d, want 0", buf[3])
	}
	if buf[7] != 140 || buf[4] != 200 || buf[5] != 100 {
		t.Fatalf("full intensity pixel = %v", buf[4:8])
	}
	if buf[11] != buf[7] {
		t.Fatal("intensities above one should clamp")
	}
}
