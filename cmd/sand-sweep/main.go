package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"sandfall/internal/logging"
)

func main() {
	grow := flag.Int("steps", 400, "generations to grow each plant before ignition")
	burn := flag.Int("burn", 600, "maximum generations to let the fire run")
	size := flag.Int("size", 96, "width and height of the scenario grid")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "number of results to print")
	level := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger := logging.New(*level)
	if *workers <= 0 {
		*workers = 1
	}

	sc := scenarioConfig{width: *size, height: *size, growSteps: *grow, burnSteps: *burn, seed: *seed}
	sets := buildSets([]float64{0.01, 0.02, 0.05, 0.1, 0.2}, []int{10, 20, 30})
	logger.Infof("sweeping %d parameter sets (%d workers, %d grow steps, %d burn steps)", len(sets), *workers, *grow, *burn)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(sc, params)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		logger.Debugf("plants=%d burned=%.2f steps=%d %s", res.plantPeak, res.burnedFraction(), res.burnSteps, res.params)
		if !res.burnedOut {
			logger.Warnf("fire still burning after %d steps with %s", res.burnSteps, res.params)
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].burnedFraction() != all[j].burnedFraction() {
			return all[i].burnedFraction() > all[j].burnedFraction()
		}
		return all[i].burnSteps < all[j].burnSteps
	})

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) burned=%.2f plants=%d survivors=%d maxTree=%d firePeak=%d steps=%d params=%s\n",
			i+1, res.burnedFraction(), res.plantPeak, res.survivors, res.maxTree, res.firePeak, res.burnSteps, res.params)
	}
}
