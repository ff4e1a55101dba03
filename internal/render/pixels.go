package render

import (
	"image/color"

	"sandfall/internal/core"
)

// FillRGBA converts the current state of sim into RGBA pixels in buf, using
// the sim's own renderer when it has one and the palette otherwise. buf must
// hold 4*W*H bytes.
func FillRGBA(buf []byte, sim core.Sim, palette []color.RGBA) {
	size := sim.Size()
	if len(buf) != 4*size.W*size.H {
		return
	}
	if src, ok := sim.(core.PixelSource); ok {
		src.FillRGBA(buf)
		return
	}
	fillPaletteRGBA(buf, sim.Cells(), size, palette)
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette,
// flipping rows so that grid row 0 ends up at the bottom of the image. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, size core.Size, palette []color.RGBA) {
	if len(cells) != size.W*size.H {
		return
	}
	if len(palette) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	last := len(palette) - 1
	for y := 0; y < size.H; y++ {
		src := y * size.W
		dst := (size.H - 1 - y) * size.W
		for x := 0; x < size.W; x++ {
			idx := int(cells[src+x])
			if idx > last {
				idx = last
			}
			base := (dst + x) * 4
			col := palette[idx]
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
