package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"agelife/internal/life"
)

type scenario struct {
	seed   int64
	policy life.BorderPolicy
}

func (s scenario) String() string {
	return fmt.Sprintf("seed=%d border=%s", s.seed, s.policy)
}

type scenarioResult struct {
	scenario scenario
	stats    life.Stats
}

type sweepConfig struct {
	width, height int
	seeds         int
	gens          int
	workers       int
}

func main() {
	var sc sweepConfig
	flag.IntVar(&sc.seeds, "seeds", 16, "number of seeds to run per border policy")
	flag.IntVar(&sc.gens, "gens", 500, "generations to simulate per scenario")
	flag.IntVar(&sc.workers, "workers", runtime.NumCPU(), "number of scenarios run concurrently")
	flag.IntVar(&sc.width, "w", 64, "grid width in cells")
	flag.IntVar(&sc.height, "h", 48, "grid height in cells")
	flag.Parse()

	fmt.Printf("Sweeping %d scenarios (%d workers, %d generations, %dx%d)\n",
		2*sc.seeds, sc.workers, sc.gens, sc.width, sc.height)

	start := time.Now()
	results, err := sweep(sc)
	if err != nil {
		log.Fatal(err)
	}

	for _, res := range results {
		fmt.Printf("%-24s population=%-6d oldest=%-6d mean_age=%.2f\n",
			res.scenario, res.stats.Population, res.stats.OldestAge, res.stats.MeanAge)
	}
	fmt.Printf("Completed in %s\n", time.Since(start).Round(time.Millisecond))
}

// sweep runs every seed under both border policies and returns the results
// ordered by final population, largest first.
func sweep(sc sweepConfig) ([]scenarioResult, error) {
	var scenarios []scenario
	for i := 1; i <= sc.seeds; i++ {
		for _, policy := range []life.BorderPolicy{life.Clamp, life.Wrap} {
			scenarios = append(scenarios, scenario{seed: int64(i), policy: policy})
		}
	}

	results := make([]scenarioResult, len(scenarios))
	var g errgroup.Group
	if sc.workers > 0 {
		g.SetLimit(sc.workers)
	}
	for i, s := range scenarios {
		g.Go(func() error {
			stats, err := runScenario(sc, s)
			if err != nil {
				return fmt.Errorf("%s: %w", s, err)
			}
			results[i] = scenarioResult{scenario: s, stats: stats}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].stats.Population > results[j].stats.Population
	})
	return results, nil
}

func runScenario(sc sweepConfig, s scenario) (life.Stats, error) {
	sim, err := life.New(life.Config{
		Width:   sc.width,
		Height:  sc.height,
		Seed:    s.seed,
		Border:  s.policy,
		Workers: 1,
	})
	if err != nil {
		return life.Stats{}, err
	}
	sim.Reset(s.seed)
	for i := 0; i < sc.gens; i++ {
		sim.Step()
	}
	return sim.Stats(), nil
}
