package sandbox

import "fmt"

// Place stamps a filled disc of species t with the given DNA onto the
// current generation, outside of any step. Offsets falling off the grid are
// skipped. The radius is clamped to [0, MaxStrokeSize]. Hue offsets are left
// untouched. It returns the number of slots written.
func (w *World) Place(cx, cy int, t CellType, dna DNA, radius int) int {
	if !t.Valid() {
		return 0
	}
	if !dna.Valid() {
		dna = BasicPlant
	}
	radius = w.clampRadius(radius)
	r2 := radius * radius
	placed := 0
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			if i*i+j*j > r2 {
				continue
			}
			x, y := cx+i, cy+j
			slot := w.curr.At(x, y)
			if slot == nil {
				continue
			}
			slot.Type = t
			slot.Age = 0
			slot.TreeAge = 0
			slot.DNA = dna
			w.display[w.curr.Index(x, y)] = uint8(t)
			placed++
		}
	}
	return placed
}

// PlaceSelected stamps the selected species and DNA with the current brush
// radius.
func (w *World) PlaceSelected(cx, cy int) int {
	return w.Place(cx, cy, w.selected, w.selectedDNA, w.brush)
}

func (w *World) clampRadius(r int) int {
	if r < 0 {
		return 0
	}
	if r > w.cfg.Params.MaxStrokeSize {
		return w.cfg.Params.MaxStrokeSize
	}
	return r
}

// SelectedSpecies returns the species used by PlaceSelected.
func (w *World) SelectedSpecies() CellType { return w.selected }

// SelectedDNA returns the plant variant used by PlaceSelected.
func (w *World) SelectedDNA() DNA { return w.selectedDNA }

// BrushRadius returns the current brush radius.
func (w *World) BrushRadius() int { return w.brush }

// Select chooses the species used by PlaceSelected. Unknown species are
// ignored.
func (w *World) Select(t CellType) {
	if t.Valid() {
		w.selected = t
	}
}

// SelectNext cycles the selected species forward, wrapping around.
func (w *World) SelectNext() { w.selected = w.selected.Next() }

// SelectPrev cycles the selected species backward, wrapping around.
func (w *World) SelectPrev() { w.selected = w.selected.Prev() }

// CycleDNA advances the selected plant variant, wrapping around.
func (w *World) CycleDNA() { w.selectedDNA = w.selectedDNA.Next() }

// SetBrushRadius sets the brush radius, clamped to [0, MaxStrokeSize].
func (w *World) SetBrushRadius(r int) { w.brush = w.clampRadius(r) }

// GrowBrush enlarges the brush by one, up to MaxStrokeSize.
func (w *World) GrowBrush() { w.SetBrushRadius(w.brush + 1) }

// ShrinkBrush shrinks the brush by one, down to zero.
func (w *World) ShrinkBrush() { w.SetBrushRadius(w.brush - 1) }

// SelectedName returns the display name of the selection. Plant species
// carry their DNA variant.
func (w *World) SelectedName() string {
	if w.selected == Wood || w.selected == Leaf {
		return fmt.Sprintf("%s (%s)", w.selected, w.selectedDNA)
	}
	return w.selected.String()
}

// StatusLines returns the two status readout lines: the selection and the
// brush size.
func (w *World) StatusLines() []string {
	return []string{
		w.SelectedName(),
		fmt.Sprintf("Stroke Size: %d", w.brush),
	}
}
