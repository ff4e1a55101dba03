package sandbox

import (
	"sandfall/internal/core"
)

// World owns both generation buffers, the random source, the scan order and
// the brush selection of a falling-sand automaton.
type World struct {
	cfg Config

	w, h int

	curr *core.Grid[Cell]
	next *core.Grid[Cell]

	display []uint8

	rng         core.Rand
	injectedRNG bool

	scan       ScanOrder
	customScan bool
	generation uint64

	selected    CellType
	selectedDNA DNA
	brush       int

	ageField     []float32
	lineageField []float32
}

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox configured from the provided options. The
// grid starts as all air.
func NewWithConfig(cfg Config) *World {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	if cfg.Params.MaxStrokeSize < 0 {
		cfg.Params.MaxStrokeSize = 0
	}
	w := &World{
		cfg:         cfg,
		w:           cfg.Width,
		h:           cfg.Height,
		curr:        core.NewGrid[Cell](cfg.Width, cfg.Height),
		next:        core.NewGrid[Cell](cfg.Width, cfg.Height),
		display:     make([]uint8, cfg.Width*cfg.Height),
		rng:         core.NewRNG(cfg.Seed),
		scan:        scanOrderFor(cfg.Params),
		selected:    Wood,
		selectedDNA: BasicPlant,
	}
	w.clear()
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sandbox" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the species of every slot of the current generation in
// row-major order, row 0 being the bottom of the world.
func (w *World) Cells() []uint8 { return w.display }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Generation reports how many steps have run since the last reset.
func (w *World) Generation() uint64 { return w.generation }

// SetRand replaces the random source consumed by the update rules. Reset
// keeps an injected source instead of reseeding it.
func (w *World) SetRand(r core.Rand) {
	if r == nil {
		w.rng = core.NewRNG(w.cfg.Seed)
		w.injectedRNG = false
		return
	}
	w.rng = r
	w.injectedRNG = true
}

// SetScanOrder replaces the traversal order of the update pass. A nil order
// restores the configured default.
func (w *World) SetScanOrder(order ScanOrder) {
	if order == nil {
		w.scan = scanOrderFor(w.cfg.Params)
		w.customScan = false
		return
	}
	w.scan = order
	w.customScan = true
}

// Cell returns the current state of (x, y). ok is false outside the grid.
func (w *World) Cell(x, y int) (Cell, bool) {
	c := w.curr.At(x, y)
	if c == nil {
		return Cell{}, false
	}
	return *c, true
}

// Each calls fn for every slot of the current generation.
func (w *World) Each(fn func(x, y int, c Cell)) {
	cells := w.curr.Cells()
	for y := 0; y < w.h; y++ {
		row := y * w.w
		for x := 0; x < w.w; x++ {
			fn(x, y, cells[row+x])
		}
	}
}

// Neighbors resolves the eight neighbors of (x, y) against the next buffer.
func (w *World) Neighbors(x, y int) Neighborhood {
	return resolveNeighborhood(w.next, x, y)
}

// Reset clears both buffers to air and restarts the generation counter. A
// zero seed falls back to the configured seed. Terrain is generated when the
// configuration asks for it.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if !w.injectedRNG {
		w.rng = core.NewRNG(effective)
	}
	w.clear()
	if w.cfg.Params.Terrain {
		w.SeedTerrain(effective)
	}
}

func (w *World) clear() {
	w.curr.Fill(emptyCell)
	w.next.Fill(emptyCell)
	w.generation = 0
	w.rebuildDisplay()
}

// Step advances the automaton by one generation: the next buffer is seeded
// from the current one, every cell's rule runs in scan order writing into
// next, and next becomes the current generation.
func (w *World) Step() {
	w.next.CopyFrom(w.curr)
	w.scan(w.Size(), w.generation, w.updateCell)
	w.curr, w.next = w.next, w.curr
	w.generation++
	w.rebuildDisplay()
}

func (w *World) rebuildDisplay() {
	for i, c := range w.curr.Cells() {
		w.display[i] = uint8(c.Type)
	}
}

func init() {
	core.Register("sandbox", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
