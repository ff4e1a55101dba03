package sandbox

import "image/color"

// Normalization ceilings for the overlay fields.
const (
	ageFieldCeiling     = 64
	lineageFieldCeiling = 40
)

var sandboxPalette = buildPalette()

// Palette exposes the base color of every species, indexed by CellType.
func (w *World) Palette() []color.RGBA {
	return sandboxPalette
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, SpeciesCount)
	for i := range palette {
		palette[i] = toRGBA(CellType(i).Properties().Color, 0)
	}
	return palette
}

// BaseColor returns the untinted color of c. Leaves take the leaf color of
// their DNA variant.
func BaseColor(c Cell) RGB {
	if c.Type == Leaf && c.DNA.Valid() {
		return c.DNA.Params().LeafColor
	}
	return c.Type.Properties().Color
}

// ColorOf returns the rendered color of c, including its hue offset. Air is
// never tinted.
func ColorOf(c Cell) color.RGBA {
	if c.Type == Air {
		return toRGBA(BaseColor(c), 0)
	}
	return toRGBA(BaseColor(c), c.HueOffset)
}

func toRGBA(c RGB, tint float32) color.RGBA {
	return color.RGBA{
		R: channel(c.R + tint),
		G: channel(c.G + tint),
		B: channel(c.B + tint),
		A: 255,
	}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// FillRGBA writes the tinted color of every current cell into buf as RGBA
// bytes. The image is flipped vertically so its first row is the top of the
// world. Buffers of the wrong length are left untouched.
func (w *World) FillRGBA(buf []byte) {
	if len(buf) != 4*w.w*w.h {
		return
	}
	cells := w.curr.Cells()
	for y := 0; y < w.h; y++ {
		src := y * w.w
		dst := (w.h - 1 - y) * w.w
		for x := 0; x < w.w; x++ {
			col := ColorOf(cells[src+x])
			base := (dst + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// AgeField returns the age of every non-air cell normalized to [0, 1], in
// image order (top row first). Air reads as zero.
func (w *World) AgeField() []float32 {
	w.ageField = w.fillField(w.ageField, func(c Cell) float32 {
		return normalize(c.Age, ageFieldCeiling)
	})
	return w.ageField
}

// LineageField returns the lineage age of every plant cell normalized to
// [0, 1], in image order. Non-plant cells read as zero.
func (w *World) LineageField() []float32 {
	w.lineageField = w.fillField(w.lineageField, func(c Cell) float32 {
		if c.Type != Wood && c.Type != Leaf {
			return 0
		}
		return normalize(c.TreeAge+1, lineageFieldCeiling)
	})
	return w.lineageField
}

func (w *World) fillField(dst []float32, value func(Cell) float32) []float32 {
	total := w.w * w.h
	if len(dst) != total {
		dst = make([]float32, total)
	}
	cells := w.curr.Cells()
	for y := 0; y < w.h; y++ {
		src := y * w.w
		row := (w.h - 1 - y) * w.w
		for x := 0; x < w.w; x++ {
			c := cells[src+x]
			if c.Type == Air {
				dst[row+x] = 0
				continue
			}
			dst[row+x] = value(c)
		}
	}
	return dst
}

func normalize(v, ceiling int) float32 {
	if v <= 0 {
		return 0
	}
	if v >= ceiling {
		return 1
	}
	return float32(v) / float32(ceiling)
}
