package main

import (
	"fmt"

	"sandfall/internal/sims/sandbox"
)

type paramSet struct {
	dna          sandbox.DNA
	spreadChance float64
	spreadAge    int
}

func (p paramSet) String() string {
	return fmt.Sprintf("dna=%s spread=%.3f spreadAge=%d", p.dna, p.spreadChance, p.spreadAge)
}

type scenarioResult struct {
	params     paramSet
	plantPeak  int
	maxTree    int
	survivors  int
	burnSteps  int
	burnedOut  bool
	firePeak   int
	generation uint64
}

// burnedFraction is the share of the grown plant that fire consumed.
func (r scenarioResult) burnedFraction() float64 {
	if r.plantPeak == 0 {
		return 0
	}
	return 1 - float64(r.survivors)/float64(r.plantPeak)
}

type scenarioConfig struct {
	width, height int
	growSteps     int
	burnSteps     int
	seed          int64
}

// runScenario grows a single plant from a seed on a rock floor, then ignites
// its base and runs until the fire dies or the burn budget is spent.
func runScenario(sc scenarioConfig, params paramSet) scenarioResult {
	cfg := sandbox.DefaultConfig()
	cfg.Width = sc.width
	cfg.Height = sc.height
	cfg.Seed = sc.seed
	cfg.Params.Terrain = false
	cfg.Params.FireSpreadChance = params.spreadChance
	cfg.Params.FireSpreadAge = params.spreadAge
	if cfg.Params.FireLifetime < params.spreadAge {
		cfg.Params.FireLifetime = params.spreadAge
	}

	world := sandbox.NewWithConfig(cfg)
	world.Reset(sc.seed)
	for x := 0; x < sc.width; x++ {
		world.Place(x, 0, sandbox.Rock, sandbox.BasicPlant, 0)
	}
	baseX := sc.width / 2
	world.Place(baseX, 1, sandbox.Wood, params.dna, 0)

	res := scenarioResult{params: params}
	for i := 0; i < sc.growSteps; i++ {
		world.Step()
		census := world.Census()
		if p := census.Plants(); p > res.plantPeak {
			res.plantPeak = p
		}
		if census.MaxTreeAge > res.maxTree {
			res.maxTree = census.MaxTreeAge
		}
	}

	world.Place(baseX, 1, sandbox.Fire, params.dna, 0)
	for i := 0; i < sc.burnSteps; i++ {
		world.Step()
		fires := world.Census().Count(sandbox.Fire)
		if fires > res.firePeak {
			res.firePeak = fires
		}
		if fires == 0 {
			res.burnSteps = i + 1
			res.burnedOut = true
			break
		}
	}
	if !res.burnedOut {
		res.burnSteps = sc.burnSteps
	}
	res.survivors = world.Census().Plants()
	res.generation = world.Generation()
	return res
}

// buildSets enumerates every DNA variant against the spread options.
func buildSets(spreads []float64, ages []int) []paramSet {
	var sets []paramSet
	for d := 0; d < sandbox.DNACount; d++ {
		for _, spread := range spreads {
			for _, age := range ages {
				sets = append(sets, paramSet{dna: sandbox.DNA(d), spreadChance: spread, spreadAge: age})
			}
		}
	}
	return sets
}
