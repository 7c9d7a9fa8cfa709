package binpack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunSequentialThreadsIncumbent(t *testing.T) {
	// TM is 4 but no 6 can share a bin with a 5, so the best packing has 5
	// bins: no heuristic reaches TM, the driver never stops early, and ABC
	// runs seeded with PSO's incumbent.
	x := []Item{6, 6, 6, 5, 5, 5}
	capacity := 10
	opts := DefaultOptions()
	opts.TimeMax = 200 * time.Millisecond
	opts.MaxIt = 50

	results := RunSequential(x, capacity, []string{"PSO", "ABC"}, opts, nil)
	require.Len(t, results, 2)
	for _, r := range results {
		if r.Skipped {
			continue
		}
		require.True(t, MassConservationOK(x, r.Packing))
		require.True(t, CapacityRespected(r.Packing, capacity))
	}
}

func TestRunSequentialSkipsReactor(t *testing.T) {
	x := []Item{1, 2, 3}
	opts := DefaultOptions()
	opts.MaxIt = 5

	results := RunSequential(x, 10, []string{"Reactor"}, opts, nil)
	require.Len(t, results, 1)
	require.True(t, results[0].Skipped)
}

func TestRunParallelCollectsAllResults(t *testing.T) {
	x := []Item{6, 5, 4, 3, 8, 7, 2, 9, 1}
	capacity := 10
	opts := DefaultOptions()
	opts.TimeMax = 200 * time.Millisecond
	opts.MaxIt = 50
	opts.Workers = 2

	results := RunParallel(x, capacity, []string{"PSO", "ABC", "Reactor"}, opts, nil)
	require.Len(t, results, 3)
}

func TestBestResultPicksLowestFitness(t *testing.T) {
	results := []DriverResult{
		{Heuristic: "a", Fitness: 5},
		{Heuristic: "b", Fitness: 2},
		{Heuristic: "c", Skipped: true},
	}
	best, ok := BestResult(results)
	require.True(t, ok)
	require.Equal(t, "b", best.Heuristic)
}

func TestBestResultAllSkipped(t *testing.T) {
	results := []DriverResult{{Heuristic: "a", Skipped: true}}
	_, ok := BestResult(results)
	require.False(t, ok)
}

func TestDescendingTimeSlices(t *testing.T) {
	zero := descendingTimeSlices(0, 3)
	require.Equal(t, []time.Duration{0, 0, 0}, zero)

	slices := descendingTimeSlices(600*time.Millisecond, 3)
	require.Len(t, slices, 3)
	// Weights 3:2:1 out of a denominator of 6 -> 300ms, 200ms, 100ms.
	require.Equal(t, 300*time.Millisecond, slices[0])
	require.Equal(t, 200*time.Millisecond, slices[1])
	require.Equal(t, 100*time.Millisecond, slices[2])
	require.True(t, slices[0] >= slices[1])
	require.True(t, slices[1] >= slices[2])
}

func TestAscendingTimeSlices(t *testing.T) {
	slices := ascendingTimeSlices(600*time.Millisecond, 3)
	require.Len(t, slices, 3)
	require.Equal(t, 100*time.Millisecond, slices[0])
	require.Equal(t, 200*time.Millisecond, slices[1])
	require.Equal(t, 300*time.Millisecond, slices[2])
}

func TestParallelTimeSlices(t *testing.T) {
	slices := parallelTimeSlices(1000*time.Millisecond, 4, 2)
	require.Len(t, slices, 4)
	// Head (first 2) split 700ms equally: 350ms each.
	require.Equal(t, 350*time.Millisecond, slices[0])
	require.Equal(t, 350*time.Millisecond, slices[1])
	// Tail (last 2) split 300ms ascending: 100ms, 200ms.
	require.Equal(t, 100*time.Millisecond, slices[2])
	require.Equal(t, 200*time.Millisecond, slices[3])
}

func TestSortResultsByFitness(t *testing.T) {
	results := []DriverResult{
		{Heuristic: "a", Fitness: 5},
		{Heuristic: "b", Skipped: true},
		{Heuristic: "c", Fitness: 1},
	}
	SortResultsByFitness(results)
	require.Equal(t, "c", results[0].Heuristic)
	require.Equal(t, "a", results[1].Heuristic)
	require.True(t, results[2].Skipped)
}
