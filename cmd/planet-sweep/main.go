package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"cube-planet/internal/logger"
	"cube-planet/internal/sims/planet"
	"cube-planet/internal/store"
)

// kvList collects repeatable key=value flags.
type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

type job struct {
	overrides map[string]string
	seed      int64
}

func main() {
	steps := flag.Int("steps", 500, "ticks to simulate per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	size := flag.Int("size", 16, "cells along each cube face edge")
	seeds := flag.Int("seeds", 4, "seeds per parameter set, starting at -seed")
	firstSeed := flag.Int64("seed", 1, "first seed")
	configPath := flag.String("config", "", "YAML file with base planet settings")
	dbPath := flag.String("db", "", "SQLite ledger to record runs in")
	label := flag.String("label", "", "label stored with recorded runs")
	var sets, sweeps kvList
	flag.Var(&sets, "set", "parameter override in key=value form (repeatable)")
	flag.Var(&sweeps, "sweep", "parameter values to sweep in key=v1,v2,... form (repeatable)")
	flag.Parse()

	log := logger.New("sweep")

	base := planet.DefaultConfig()
	if *configPath != "" {
		loaded, err := planet.LoadConfig(*configPath)
		if err != nil {
			log.Fatal("%v", err)
		}
		base = loaded
	}
	base.Size = *size
	base = base.Apply(parsePairs(sets))

	grid := expandGrid(sweeps)
	var jobs []job
	for _, overrides := range grid {
		for i := 0; i < *seeds; i++ {
			jobs = append(jobs, job{overrides: overrides, seed: *firstSeed + int64(i)})
		}
	}

	var ledger *store.Ledger
	if *dbPath != "" {
		var err error
		ledger, err = store.Open(*dbPath)
		if err != nil {
			log.Fatal("%v", err)
		}
		defer ledger.Close()
	}

	fmt.Printf("Running %d planets (%d parameter sets, %d workers, %d steps)\n", len(jobs), len(grid), *workers, *steps)

	type outcome struct {
		job    job
		params planet.Params
		result planet.RunResult
	}
	queue := make(chan job)
	results := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				cfg := base.Apply(j.overrides)
				cfg.Seed = j.seed
				results <- outcome{job: j, params: cfg.Params, result: planet.Run(cfg, *steps)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range jobs {
			queue <- j
		}
		close(queue)
	}()

	start := time.Now()
	var all []outcome
	ctx := context.Background()
	for res := range results {
		all = append(all, res)
		if res.result.Err != "" {
			log.Warn("seed %d %s: %s", res.job.seed, describe(res.job.overrides), res.result.Err)
		}
		if ledger != nil {
			if _, err := ledger.Record(ctx, *label, res.params, res.result); err != nil {
				log.Error("%v", err)
			}
		}
	}

	sort.Slice(all, func(i, j int) bool {
		return imbalance(all[i].result) < imbalance(all[j].result)
	})
	elapsed := time.Since(start)

	fmt.Printf("\nMost water-stable runs (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) balance=%+.2f %s %s\n", i+1, res.result.WaterBalance(), describe(res.job.overrides), res.result.Summary())
	}

	if ledger != nil {
		count, err := ledger.Count(ctx)
		if err != nil {
			log.Error("%v", err)
			os.Exit(1)
		}
		fmt.Printf("\nLedger %s now holds %d runs\n", *dbPath, count)
	}
}

func parsePairs(pairs []string) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		parts := strings.SplitN(kv, "=", 2)
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// expandGrid turns key=v1,v2 sweeps into the cartesian product of override
// maps. No sweeps yields a single empty set.
func expandGrid(sweeps []string) []map[string]string {
	grid := []map[string]string{{}}
	for key, values := range parsePairs(sweeps) {
		var next []map[string]string
		for _, partial := range grid {
			for _, v := range strings.Split(values, ",") {
				combo := make(map[string]string, len(partial)+1)
				for k, pv := range partial {
					combo[k] = pv
				}
				combo[key] = strings.TrimSpace(v)
				next = append(next, combo)
			}
		}
		grid = next
	}
	return grid
}

func describe(overrides map[string]string) string {
	if len(overrides) == 0 {
		return "[defaults]"
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + overrides[k]
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// imbalance ranks runs by how far water drifted. Failed or non-finite runs
// sort last.
func imbalance(r planet.RunResult) float64 {
	b := math.Abs(r.WaterBalance())
	if r.Err != "" || math.IsNaN(b) {
		return math.Inf(1)
	}
	return b
}
