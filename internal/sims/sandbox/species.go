package sandbox

// CellType enumerates the particle species.
type CellType uint8

const (
	Air CellType = iota
	Sand
	Water
	Rock
	Wood
	Leaf
	Fire

	speciesCount
)

// SpeciesCount is the number of selectable species.
const SpeciesCount = int(speciesCount)

// RGB is a color with float channels in [0, 1].
type RGB struct {
	R, G, B float32
}

// SpeciesProperties holds the static physical traits of a species.
type SpeciesProperties struct {
	Name       string
	HasGravity bool
	IsFluid    bool
	Color      RGB
	// Density is reserved for a future pressure model and is not read by
	// any rule.
	Density float32
}

var speciesTable = [speciesCount]SpeciesProperties{
	Air:   {Name: "Air", Color: RGB{0, 0, 0}},
	Sand:  {Name: "Sand", HasGravity: true, Color: RGB{0.8, 0.6, 0.2}, Density: 1.6},
	Water: {Name: "Water", HasGravity: true, IsFluid: true, Color: RGB{0, 0, 1}, Density: 1.0},
	Rock:  {Name: "Rock", Color: RGB{0.5, 0.5, 0.5}, Density: 2.5},
	Wood:  {Name: "Wood", Color: RGB{0.36, 0.27, 0.08}, Density: 2.5},
	Leaf:  {Name: "Leaf", Color: RGB{0.168, 0.51, 0.165}, Density: 1.2},
	Fire:  {Name: "Fire", Color: RGB{1, 0.35, 0}, Density: 0.1},
}

// Valid reports whether t is one of the known species.
func (t CellType) Valid() bool { return t < speciesCount }

// Properties returns the static traits of t. Unknown values yield the zero
// record, which behaves like inert air.
func (t CellType) Properties() SpeciesProperties {
	if !t.Valid() {
		return SpeciesProperties{}
	}
	return speciesTable[t]
}

// String returns the display name of the species.
func (t CellType) String() string {
	if !t.Valid() {
		return "Unknown"
	}
	return speciesTable[t].Name
}

// Next returns the following species, wrapping after the last one.
func (t CellType) Next() CellType {
	return CellType((int(t) + 1) % SpeciesCount)
}

// Prev returns the preceding species, wrapping before the first one.
func (t CellType) Prev() CellType {
	return CellType((int(t) + SpeciesCount - 1) % SpeciesCount)
}

// DNA selects the growth-parameter variant of a plant lineage.
type DNA uint8

const (
	BasicPlant DNA = iota
	Birch
	Shrub

	dnaCount
)

// DNACount is the number of plant variants.
const DNACount = int(dnaCount)

// PlantDNA holds the growth parameters of one plant variant.
type PlantDNA struct {
	Name string

	WoodMaxAge           int
	WoodMaxTreeAge       int
	WoodGrowthUp         float64
	WoodGrowthHorizontal float64
	WoodGrowthDown       float64
	WoodLeafGrowth       float64

	LeafMaxAge     int
	LeafMaxTreeAge int
	LeafGrowthRate float64
	LeafColor      RGB
}

var dnaTable = [dnaCount]PlantDNA{
	BasicPlant: {
		Name:                 "Basic",
		WoodMaxAge:           20,
		WoodMaxTreeAge:       20,
		WoodGrowthUp:         0.02,
		WoodGrowthHorizontal: 0.005,
		WoodGrowthDown:       0.002,
		WoodLeafGrowth:       0.001,
		LeafMaxAge:           15,
		LeafMaxTreeAge:       15,
		LeafGrowthRate:       0.025,
		LeafColor:            RGB{0.168, 0.51, 0.165},
	},
	Birch: {
		Name:                 "Birch",
		WoodMaxAge:           30,
		WoodMaxTreeAge:       40,
		WoodGrowthUp:         0.04,
		WoodGrowthHorizontal: 0.001,
		WoodGrowthDown:       0.0005,
		WoodLeafGrowth:       0.0015,
		LeafMaxAge:           10,
		LeafMaxTreeAge:       8,
		LeafGrowthRate:       0.03,
		LeafColor:            RGB{0.55, 0.72, 0.2},
	},
	Shrub: {
		Name:                 "Shrub",
		WoodMaxAge:           12,
		WoodMaxTreeAge:       8,
		WoodGrowthUp:         0.012,
		WoodGrowthHorizontal: 0.012,
		WoodGrowthDown:       0.001,
		WoodLeafGrowth:       0.004,
		LeafMaxAge:           20,
		LeafMaxTreeAge:       6,
		LeafGrowthRate:       0.04,
		LeafColor:            RGB{0.1, 0.38, 0.12},
	},
}

// Valid reports whether d is one of the known variants.
func (d DNA) Valid() bool { return d < dnaCount }

// Params returns the growth parameters of d. Unknown values yield the zero
// record, whose zero age limits disable growth entirely.
func (d DNA) Params() PlantDNA {
	if !d.Valid() {
		return PlantDNA{}
	}
	return dnaTable[d]
}

// String returns the display name of the variant.
func (d DNA) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return dnaTable[d].Name
}

// Next returns the following variant, wrapping after the last one.
func (d DNA) Next() DNA {
	return DNA((int(d) + 1) % DNACount)
}
