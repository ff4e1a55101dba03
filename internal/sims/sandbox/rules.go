package sandbox

var (
	fallOrder = [...]Direction{Bottom, BottomLeft, BottomRight}
	flowOrder = [...]Direction{Left, Right}
)

// updateCell runs the rule of the cell at (x, y). The subject is read from
// the current generation; every write lands in the next buffer, where cells
// visited later in the scan will see it.
func (w *World) updateCell(x, y int) {
	cell := *w.curr.At(x, y)
	self := w.next.At(x, y)
	n := resolveNeighborhood(w.next, x, y)

	props := cell.Type.Properties()
	if props.HasGravity || props.IsFluid {
		move(cell, self, &n, props.IsFluid)
	}

	switch cell.Type {
	case Wood:
		w.growWood(cell, &n)
	case Leaf:
		w.growLeaf(cell, &n)
	case Fire:
		w.burn(cell, self, &n)
	}

	self.Age++
}

// move relocates the species tag of cell into the first free slot below it,
// or beside it for fluids. Only the type moves; the target keeps its other
// fields. Two sources may claim the same target in one scan, in which case
// the later one wins.
func move(cell Cell, self *Cell, n *Neighborhood, fluid bool) bool {
	for _, d := range fallOrder {
		if n.IsAir(d) {
			relocate(cell.Type, self, n.Slot(d))
			return true
		}
	}
	if !fluid {
		return false
	}
	for _, d := range flowOrder {
		if n.IsAir(d) {
			relocate(cell.Type, self, n.Slot(d))
			return true
		}
	}
	return false
}

func relocate(t CellType, from, to *Cell) {
	from.Type = Air
	to.Type = t
}

func woodGrowthChance(dna PlantDNA, d Direction) float64 {
	_, dy := d.Offset()
	switch {
	case dy > 0:
		return dna.WoodGrowthUp
	case dy == 0:
		return dna.WoodGrowthHorizontal
	default:
		return dna.WoodGrowthDown
	}
}

// growWood extends a young wood cell into neighboring air. Each free
// direction gets a wood roll and then an independent leaf roll; a successful
// leaf roll replaces whatever the wood roll produced.
func (w *World) growWood(cell Cell, n *Neighborhood) {
	dna := cell.DNA.Params()
	if cell.Age >= dna.WoodMaxAge || cell.TreeAge >= dna.WoodMaxTreeAge {
		return
	}
	for _, d := range growthOrder {
		if !n.IsAir(d) {
			continue
		}
		slot := n.Slot(d)
		if w.rng.Float64() < woodGrowthChance(dna, d) {
			*slot = Cell{
				Type:      Wood,
				IsValid:   true,
				TreeAge:   cell.TreeAge + 1,
				HueOffset: w.hueOffset(),
				DNA:       cell.DNA,
			}
		}
		if w.rng.Float64() < dna.WoodLeafGrowth {
			slot.Type = Leaf
			slot.Age = 0
			slot.TreeAge = 0
			slot.DNA = cell.DNA
		}
	}
}

func (w *World) growLeaf(cell Cell, n *Neighborhood) {
	dna := cell.DNA.Params()
	if cell.Age >= dna.LeafMaxAge || cell.TreeAge >= dna.LeafMaxTreeAge {
		return
	}
	for _, d := range growthOrder {
		if !n.IsAir(d) {
			continue
		}
		if w.rng.Float64() < dna.LeafGrowthRate {
			*n.Slot(d) = Cell{
				Type:      Leaf,
				IsValid:   true,
				TreeAge:   cell.TreeAge + 1,
				HueOffset: w.hueOffset(),
				DNA:       cell.DNA,
			}
		}
	}
}

func flammable(c Cell) bool {
	if !c.IsValid || c.Type == Air || c.Type == Rock {
		return false
	}
	return !c.Type.Properties().IsFluid
}

// burn spreads a young fire to flammable neighbors and turns an old one back
// into air. Between the two thresholds the fire smoulders without effect.
func (w *World) burn(cell Cell, self *Cell, n *Neighborhood) {
	p := w.cfg.Params
	if cell.Age < p.FireSpreadAge {
		for _, d := range growthOrder {
			if !flammable(n.At(d)) {
				continue
			}
			if w.rng.Float64() < p.FireSpreadChance {
				slot := n.Slot(d)
				slot.Type = Fire
				slot.Age = 0
				slot.HueOffset = w.hueOffset()
			}
		}
	}
	if cell.Age > p.FireLifetime {
		self.Type = Air
		self.HueOffset = 0
	}
}

// hueOffset draws a tint in [-0.1, 0.1).
func (w *World) hueOffset() float32 {
	return float32(-0.1 + 0.2*w.rng.Float64())
}
