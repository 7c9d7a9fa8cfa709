package binpack

import "math/rand"

// psoHeuristic is a matrix-encoded Particle Swarm Optimisation flavor: each
// row is a particle position over the item alphabet, velocity updates pull
// every particle toward its own best and the swarm's best, and every
// candidate position is clamped into the item range and pushed through
// Repair before it is scored, per spec.md §4.2's population update
// contract.
type psoHeuristic struct {
	params   HeuristicParams
	w        float64 // inertia
	c1, c2   float64 // cognitive / social pull
	maxIters int
}

func newPSOHeuristic() *psoHeuristic {
	return &psoHeuristic{
		params:   DefaultHeuristicParams(),
		w:        0.7,
		c1:       1.4,
		c2:       1.4,
		maxIters: 400,
	}
}

func (h *psoHeuristic) Name() string { return "PSO" }

func (h *psoHeuristic) Run(x []Item, capacity int, budget Budget, rng *rand.Rand, seed []Item) (Packing, int) {
	width := len(x)
	if width == 0 {
		return Packing{}, 0
	}
	n := h.params.PopulationSize
	if n < 2 {
		n = 2
	}

	pos := make([][]float64, n)
	vel := make([][]float64, n)
	bestPos := make([][]float64, n)
	bestFit := make([]int, n)

	lo, hi := itemRange(x)
	initRow := seedRow(seed, width)

	for i := 0; i < n; i++ {
		row := make([]float64, width)
		if i == 0 && initRow != nil {
			for j, it := range initRow {
				row[j] = float64(it)
			}
		} else {
			for j := range row {
				row[j] = float64(lo) + rng.Float64()*float64(hi-lo)
			}
		}
		pos[i] = row
		vel[i] = make([]float64, width)
		bestPos[i] = append([]float64(nil), row...)
		bestFit[i] = Fitness(Decode(Repair(x, clampToItemRange(row, x), capacity, rng), capacity, ModeValid))
	}

	globalBest := 0
	for i := 1; i < n; i++ {
		if bestFit[i] < bestFit[globalBest] {
			globalBest = i
		}
	}

	var bestPacking Packing
	bestGlobalFit := bestFit[globalBest]

	it := 0
	for Continue(TheoreticalMinimum(x, capacity), bestGlobalFit, budget, it) && it < h.maxIters {
		for i := 0; i < n; i++ {
			for j := 0; j < width; j++ {
				r1, r2 := rng.Float64(), rng.Float64()
				vel[i][j] = h.w*vel[i][j] +
					h.c1*r1*(bestPos[i][j]-pos[i][j]) +
					h.c2*r2*(bestPos[globalBest][j]-pos[i][j])
				pos[i][j] += vel[i][j]
			}

			candidate := Repair(x, clampToItemRange(pos[i], x), capacity, rng)
			packing := Decode(candidate, capacity, ModeValid)
			fit := Fitness(packing)

			if fit < bestFit[i] {
				bestFit[i] = fit
				bestPos[i] = append([]float64(nil), pos[i]...)
			}
			if fit < bestGlobalFit {
				bestGlobalFit = fit
				globalBest = i
				bestPacking = packing
			}
		}
		it++
	}

	if bestPacking == nil {
		bestPacking = Decode(x, capacity, ModeBFD)
		bestGlobalFit = Fitness(bestPacking)
	}

	return bestPacking, bestGlobalFit
}

func init() {
	RegisterHeuristic("PSO", func() Heuristic { return newPSOHeuristic() })
}
