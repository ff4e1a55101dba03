package sandbox

// Census summarizes the species population of the current generation.
type Census struct {
	Generation uint64
	Counts     [speciesCount]int
	// MaxTreeAge is the longest lineage among wood and leaf cells.
	MaxTreeAge int
}

// Count returns the number of cells of species t.
func (c Census) Count(t CellType) int {
	if !t.Valid() {
		return 0
	}
	return c.Counts[t]
}

// NonAir returns the number of cells that are not air.
func (c Census) NonAir() int {
	total := 0
	for t, n := range c.Counts {
		if CellType(t) != Air {
			total += n
		}
	}
	return total
}

// Plants returns the number of wood and leaf cells.
func (c Census) Plants() int { return c.Counts[Wood] + c.Counts[Leaf] }

// Census counts the current generation.
func (w *World) Census() Census {
	out := Census{Generation: w.generation}
	for _, cell := range w.curr.Cells() {
		if !cell.Type.Valid() {
			continue
		}
		out.Counts[cell.Type]++
		if (cell.Type == Wood || cell.Type == Leaf) && cell.TreeAge > out.MaxTreeAge {
			out.MaxTreeAge = cell.TreeAge
		}
	}
	return out
}
