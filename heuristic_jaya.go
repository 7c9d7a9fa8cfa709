package binpack

import "math/rand"

// jayaHeuristic implements the Jaya "move away from worst, move toward
// best" update: no algorithm-specific control parameters, every row is
// pulled toward the population's best row and pushed away from its worst
// in a single formula. Several Jaya-family variants rebuild a candidate row
// by slicing and splicing pieces of other rows together, which can change
// the row's column count — spec.md's Open Question 2 flags exactly this,
// so every candidate here is run through clampWidth before Repair.
type jayaHeuristic struct {
	params   HeuristicParams
	maxIters int
}

func newJayaHeuristic() *jayaHeuristic {
	return &jayaHeuristic{params: DefaultHeuristicParams(), maxIters: 400}
}

func (h *jayaHeuristic) Name() string { return "Jaya" }

func (h *jayaHeuristic) Run(x []Item, capacity int, budget Budget, rng *rand.Rand, seed []Item) (Packing, int) {
	width := len(x)
	if width == 0 {
		return Packing{}, 0
	}
	n := h.params.PopulationSize
	if n < 2 {
		n = 2
	}

	rows := make([][]float64, n)
	fit := make([]int, n)
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
		rows[i] = row
		fit[i] = Fitness(Decode(Repair(x, clampToItemRange(row, x), capacity, rng), capacity, ModeValid))
	}

	best, worst := 0, 0
	for i := 1; i < n; i++ {
		if fit[i] < fit[best] {
			best = i
		}
		if fit[i] > fit[worst] {
			worst = i
		}
	}

	var bestPacking Packing
	bestFit := fit[best]

	it := 0
	for Continue(TheoreticalMinimum(x, capacity), bestFit, budget, it) && it < h.maxIters {
		for i := 0; i < n; i++ {
			// Row-slicing: keep only a random-length prefix of the row's
			// Jaya update, which can leave the candidate short of width;
			// clampWidth pads it back below.
			splice := 1 + rng.Intn(width)
			candidate := make([]float64, 0, width)
			for j := 0; j < width; j++ {
				r1, r2 := rng.Float64(), rng.Float64()
				v := rows[i][j] + r1*(rows[best][j]-abs64(rows[i][j])) - r2*(rows[worst][j]-abs64(rows[i][j]))
				if j < splice {
					candidate = append(candidate, v)
				}
			}
			candidate = clampWidth(candidate, width)

			repaired := Repair(x, clampToItemRange(candidate, x), capacity, rng)
			packing := Decode(repaired, capacity, ModeValid)
			newFit := Fitness(packing)

			if newFit <= fit[i] {
				rows[i] = candidate
				fit[i] = newFit
			}
			if newFit < bestFit {
				bestFit = newFit
				bestPacking = packing
			}
		}

		best, worst = 0, 0
		for i := 1; i < n; i++ {
			if fit[i] < fit[best] {
				best = i
			}
			if fit[i] > fit[worst] {
				worst = i
			}
		}
		it++
	}

	if bestPacking == nil {
		bestPacking = Decode(x, capacity, ModeBFD)
		bestFit = Fitness(bestPacking)
	}

	return bestPacking, bestFit
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func init() {
	RegisterHeuristic("Jaya", func() Heuristic { return newJayaHeuristic() })
}
