//go:build ebiten

package ui

import (
	"image/color"

	"sandfall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type ageFieldProvider interface {
	AgeField() []float32
}

type lineageFieldProvider interface {
	LineageField() []float32
}

// Overlay draws optional debugging visuals on top of the base simulation.
// Key 1 toggles the cell age heat map and key 2 the plant lineage map.
type Overlay struct {
	sim         core.Sim
	scale       int
	showAge     bool
	showLineage bool
	maskImg     *ebiten.Image
	maskBuf     []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the overlays from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showAge = !o.showAge
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showLineage = !o.showLineage
	}
}

// Draw renders the enabled overlays onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showAge && !o.showLineage {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}

	if p, ok := o.sim.(ageFieldProvider); ok && o.showAge {
		o.drawMask(screen, p.AgeField(), ageTint)
	}
	if p, ok := o.sim.(lineageFieldProvider); ok && o.showLineage {
		o.drawMask(screen, p.LineageField(), lineageTint)
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	if len(mask)*4 != len(o.maskBuf) {
		return
	}
	fillMaskRGBA(o.maskBuf, mask, tint)
	o.maskImg.WritePixels(o.maskBuf)

	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
