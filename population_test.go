package binpack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTournamentRoulettePicksLowerFitness(t *testing.T) {
	pop := &MatrixPopulation{
		Rows:    [][]Item{{1}, {2}, {3}},
		Fitness: []int{9, 1, 9},
	}
	rng := rand.New(rand.NewSource(1))
	// With k large relative to population size, the tournament should find
	// the global best with overwhelming probability across many draws.
	counts := map[int]int{}
	for i := 0; i < 200; i++ {
		counts[TournamentRoulette(pop, 5, rng)]++
	}
	require.Greater(t, counts[1], counts[0]+counts[2])
}

func TestClampToItemRange(t *testing.T) {
	x := []Item{2, 8}
	out := clampToItemRange([]float64{-5, 100, 4.6}, x)
	require.Equal(t, Item(2), out[0])
	require.Equal(t, Item(8), out[1])
	require.Equal(t, Item(5), out[2])
}

func TestItemRange(t *testing.T) {
	lo, hi := itemRange([]Item{4, 1, 9, 3})
	require.Equal(t, Item(1), lo)
	require.Equal(t, Item(9), hi)
}

func TestClampWidth(t *testing.T) {
	require.Equal(t, []float64{1, 2, 0}, clampWidth([]float64{1, 2}, 3))
	require.Equal(t, []float64{1, 2}, clampWidth([]float64{1, 2, 3}, 2))
	require.Equal(t, []float64{1, 2}, clampWidth([]float64{1, 2}, 2))
}
