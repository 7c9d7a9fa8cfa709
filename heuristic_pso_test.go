package binpack

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPSOHeuristicRun(t *testing.T) {
	x := []Item{4, 6, 3, 7, 2, 8, 5}
	capacity := 10
	h := newPSOHeuristic()
	h.params.PopulationSize = 6
	h.maxIters = 20

	rng := rand.New(rand.NewSource(1))
	budget := Budget{MaxIt: 20, Start: time.Now()}

	p, fit := h.Run(x, capacity, budget, rng, nil)
	require.True(t, MassConservationOK(x, p))
	require.True(t, CapacityRespected(p, capacity))
	require.Equal(t, Fitness(p), fit)
	require.Equal(t, "PSO", h.Name())
}

func TestPSOHeuristicUsesSeed(t *testing.T) {
	x := []Item{1, 2, 3, 4}
	capacity := 10
	h := newPSOHeuristic()
	h.params.PopulationSize = 4
	h.maxIters = 5

	rng := rand.New(rand.NewSource(2))
	budget := Budget{MaxIt: 5, Start: time.Now()}
	seed := []Item{4, 3, 2, 1}

	p, _ := h.Run(x, capacity, budget, rng, seed)
	require.True(t, MassConservationOK(x, p))
}
