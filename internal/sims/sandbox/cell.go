package sandbox

// Cell is the state of one grid slot.
type Cell struct {
	Type CellType
	// IsValid is false only for values standing in for off-grid neighbors.
	IsValid bool
	// Age counts generations since the slot was last (re)created.
	Age int
	// TreeAge counts growth edges since the lineage was seeded.
	TreeAge int
	// HueOffset is a cosmetic per-channel tint applied at creation.
	HueOffset float32
	// DNA is meaningful only while Type is Wood or Leaf.
	DNA DNA
}

// emptyCell is the freshly reset state of every slot.
var emptyCell = Cell{Type: Air, IsValid: true}

// IsAir reports whether c is a real slot holding air.
func (c Cell) IsAir() bool { return c.IsValid && c.Type == Air }
