//go:build ebiten

package render

import (
	"image/color"

	"sandfall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// GridPainter uploads the sim state into a single image and draws it scaled,
// one quad per cell.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit renders sim into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, scale int) {
	size := sim.Size()
	if size.W != gp.w || size.H != gp.h {
		return
	}
	var palette []color.RGBA
	if p, ok := sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	FillRGBA(gp.buf, sim, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
