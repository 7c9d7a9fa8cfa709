package binpack

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

// DriverResult is one heuristic's contribution to a Solve run.
type DriverResult struct {
	Heuristic string
	Packing   Packing
	Fitness   int
	Skipped   bool // true if the heuristic panicked with errFissionUnspecified
}

// RunSequential runs heuristics one after another, threading the best
// packing found so far into the next heuristic as its seed — spec.md
// §4.10's monotone incumbent propagation. Time is allocated by a
// descending linear weighting (the first heuristic in the list gets the
// largest share, the last gets the smallest), per spec.md §4.10, and
// capped against whatever remains of the overall budget.
func RunSequential(x []Item, capacity int, names []string, opts Options, logger *RunLogger) []DriverResult {
	target := TheoreticalMinimum(x, capacity)
	rng := rand.New(rand.NewSource(opts.Seed))

	results := make([]DriverResult, 0, len(names))
	var incumbentSeed []Item
	bestFit := len(x) + 1

	overallStart := time.Now()
	slices := descendingTimeSlices(opts.TimeMax, len(names))

	for i, name := range names {
		h := Must(GetHeuristic(name))

		budget := Budget{
			MaxIt: opts.MaxIt,
			Start: time.Now(),
		}
		if opts.TimeMax > 0 {
			remaining := opts.TimeMax - time.Since(overallStart)
			if remaining <= 0 {
				break
			}
			budget.TimeMax = slices[i]
			if budget.TimeMax > remaining {
				budget.TimeMax = remaining
			}
		}

		if logger != nil {
			logger.LogHeuristicStart(name)
		}

		packing, fit, ran := runHeuristicSafely(h, x, capacity, budget, rng, incumbentSeed)
		if !ran {
			results = append(results, DriverResult{Heuristic: name, Skipped: true})
			continue
		}

		checkInvariant(MassConservationOK(x, packing), "heuristic %s broke mass conservation", name)
		checkInvariant(CapacityRespected(packing, capacity), "heuristic %s broke capacity", name)

		results = append(results, DriverResult{Heuristic: name, Packing: packing, Fitness: fit})

		if fit < bestFit {
			bestFit = fit
			incumbentSeed = Flatten(packing)
			if logger != nil {
				logger.LogProgress(name, i, fit, bestFit)
			}
		}

		if bestFit <= target {
			break
		}
	}

	return results
}

// parallelTimeSlices implements spec §4.10's parallel-mode time allocation:
// 70% of the budget is split equally across the first maxWorkers
// heuristics (the ones that start immediately), and the remaining 30% is
// split across the rest by ascending weight (later-queued heuristics get a
// larger share of that pool, since they queue longer before a worker slot
// frees up).
func parallelTimeSlices(total time.Duration, n, maxWorkers int) []time.Duration {
	out := make([]time.Duration, n)
	if total <= 0 || n <= 0 {
		return out
	}
	if maxWorkers <= 0 || maxWorkers > n {
		maxWorkers = n
	}
	head := maxWorkers
	tail := n - head

	headBudget := total * 70 / 100
	tailBudget := total - headBudget

	if head > 0 {
		each := headBudget / time.Duration(head)
		for i := 0; i < head; i++ {
			out[i] = each
		}
	}
	if tail > 0 {
		tailSlices := ascendingTimeSlices(tailBudget, tail)
		copy(out[head:], tailSlices)
	}
	return out
}

// RunParallel runs every named heuristic concurrently via errgroup, each
// against its own rng and its own share of the overall time budget
// (allocated per spec §4.10's 70/30 split), and collects whichever results
// complete. There is no incumbent threading: every heuristic runs with a nil
// seed, including one that only starts after an earlier one has finished
// because opts.Workers limits concurrency. A context
// cancellation fires once opts.TimeMax elapses; heuristics cooperate with
// it only via their own Budget checks (there is no forced goroutine
// preemption), matching the rest of this package's budget model.
func RunParallel(x []Item, capacity int, names []string, opts Options, logger *RunLogger) []DriverResult {
	ctx := context.Background()
	var cancel context.CancelFunc
	if opts.TimeMax > 0 {
		ctx, cancel = context.WithTimeout(ctx, opts.TimeMax)
		defer cancel()
	}

	g, _ := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	results := make([]DriverResult, len(names))
	start := time.Now()
	slices := parallelTimeSlices(opts.TimeMax, len(names), opts.Workers)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			h := Must(GetHeuristic(name))
			rng := rand.New(rand.NewSource(opts.Seed + int64(i) + 1))
			budget := Budget{MaxIt: opts.MaxIt, Start: start, TimeMax: slices[i]}

			if logger != nil {
				logger.LogHeuristicStart(name)
			}

			packing, fit, ran := runHeuristicSafely(h, x, capacity, budget, rng, nil)
			if !ran {
				results[i] = DriverResult{Heuristic: name, Skipped: true}
				return nil
			}

			checkInvariant(MassConservationOK(x, packing), "heuristic %s broke mass conservation", name)
			checkInvariant(CapacityRespected(packing, capacity), "heuristic %s broke capacity", name)

			results[i] = DriverResult{Heuristic: name, Packing: packing, Fitness: fit}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// BestResult picks the lowest-fitness non-skipped result, or the zero
// value with ok=false if every heuristic was skipped.
func BestResult(results []DriverResult) (DriverResult, bool) {
	var best DriverResult
	found := false
	for _, r := range results {
		if r.Skipped {
			continue
		}
		if !found || r.Fitness < best.Fitness {
			best = r
			found = true
		}
	}
	return best, found
}

// descendingTimeSlices divides total across n heuristics by a descending
// linear weighting per spec §4.10: heuristic i (0-indexed) receives weight
// proportional to (n-i), so the first heuristic in the list gets the
// largest share and the last gets the smallest. Returns all-zero (meaning
// unbounded) when total is 0.
func descendingTimeSlices(total time.Duration, n int) []time.Duration {
	out := make([]time.Duration, n)
	if total <= 0 || n <= 0 {
		return out
	}
	denom := n * (n + 1) / 2
	for i := 0; i < n; i++ {
		weight := n - i
		out[i] = total * time.Duration(weight) / time.Duration(denom)
	}
	return out
}

// ascendingTimeSlices divides total across n heuristics by an ascending
// linear weighting: heuristic i receives weight proportional to (i+1), so
// later entries in the slice get the larger share. Used for the "remaining"
// pool in parallel mode's 70/30 split (spec §4.10).
func ascendingTimeSlices(total time.Duration, n int) []time.Duration {
	out := make([]time.Duration, n)
	if total <= 0 || n <= 0 {
		return out
	}
	denom := n * (n + 1) / 2
	for i := 0; i < n; i++ {
		weight := i + 1
		out[i] = total * time.Duration(weight) / time.Duration(denom)
	}
	return out
}

// SortResultsByFitness orders results ascending by fitness, skipped
// results last — used by cmd/binpack's report table.
func SortResultsByFitness(results []DriverResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Skipped != results[j].Skipped {
			return !results[i].Skipped
		}
		return results[i].Fitness < results[j].Fitness
	})
}
