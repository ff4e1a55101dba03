package sandbox

import (
	"math"

	perlin "github.com/aquilax/go-perlin"
)

const (
	terrainAlpha   = 2.0
	terrainBeta    = 2.0
	terrainOctaves = 3

	terrainBaseLevel = 0.25
	terrainRelief    = 0.3
	sandDepthMin     = 2
	sandDepthRange   = 6
)

// SeedTerrain lays rolling rock hills topped with sand across the bottom of
// the current generation, then plants TerrainSeeds wood seeds on the surface,
// cycling through the DNA variants. Existing cells above the ground line are
// left alone.
func (w *World) SeedTerrain(seed int64) {
	noise := perlin.NewPerlin(terrainAlpha, terrainBeta, terrainOctaves, seed)
	rough := w.cfg.Params.TerrainRoughness
	if rough <= 0 {
		rough = DefaultConfig().Params.TerrainRoughness
	}

	for x := 0; x < w.w; x++ {
		n := noise.Noise1D(float64(x) / float64(w.w) * rough * 8)
		ground := int(float64(w.h) * (terrainBaseLevel + terrainRelief*n))
		if ground < 1 {
			ground = 1
		}
		if ground > w.h-1 {
			ground = w.h - 1
		}
		sandDepth := sandDepthMin + int(math.Abs(n)*sandDepthRange)
		for y := 0; y < ground; y++ {
			slot := w.curr.At(x, y)
			*slot = emptyCell
			if y < ground-sandDepth {
				slot.Type = Rock
			} else {
				slot.Type = Sand
			}
		}
	}

	for i := 0; i < w.cfg.Params.TerrainSeeds; i++ {
		x := int(w.rng.Float64() * float64(w.w))
		if x >= w.w {
			x = w.w - 1
		}
		y, ok := w.surface(x)
		if !ok {
			continue
		}
		w.Place(x, y, Wood, DNA(i%DNACount), 0)
	}
	w.rebuildDisplay()
}

// surface returns the lowest air slot above the topmost solid cell of column
// x.
func (w *World) surface(x int) (int, bool) {
	for y := w.h - 1; y >= 0; y-- {
		if w.curr.At(x, y).Type != Air {
			if y+1 < w.h {
				return y + 1, true
			}
			return 0, false
		}
	}
	return 0, true
}
