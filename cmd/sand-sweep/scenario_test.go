package main

import (
	"testing"

	"sandfall/internal/sims/sandbox"
)

func TestBuildSetsCoversEveryDNA(t *testing.T) {
	sets := buildSets([]float64{0.1, 0.2}, []int{5})
	if len(sets) != sandbox.DNACount*2 {
		t.Fatalf("len(sets) = %d, want %d", len(sets), sandbox.DNACount*2)
	}
	seen := map[sandbox.DNA]bool{}
	for _, s := range sets {
		seen[s.dna] = true
	}
	if len(seen) != sandbox.DNACount {
		t.Fatalf("saw %d DNA variants", len(seen))
	}
}

func TestRunScenarioIsDeterministic(t *testing.T) {
	sc := scenarioConfig{width: 24, height: 24, growSteps: 60, burnSteps: 200, seed: 3}
	params := paramSet{dna: sandbox.BasicPlant, spreadChance: 0.2, spreadAge: 10}
	a := runScenario(sc, params)
	b := runScenario(sc, params)
	if a != b {
		t.Fatalf("scenario not reproducible:\n%+v\n%+v", a, b)
	}
	if a.plantPeak == 0 {
		t.Fatal("expected the seed to grow")
	}
}

func TestRunScenarioFireBurnsOut(t *testing.T) {
	sc := scenarioConfig{width: 16, height: 16, growSteps: 0, burnSteps: 100, seed: 1}
	res := runScenario(sc, paramSet{dna: sandbox.Shrub, spreadChance: 0, spreadAge: 5})
	if !res.burnedOut {
		t.Fatal("isolated fire should burn out within the budget")
	}
	if res.survivors != 0 {
		t.Fatalf("survivors = %d, want 0", res.survivors)
	}
	if limit := sandbox.DefaultConfig().Params.FireLifetime + 2; res.burnSteps > limit {
		t.Fatalf("fire lasted %d steps, want at most %d", res.burnSteps, limit)
	}
}
