package binpack

import "math/rand"

// abcHeuristic is Artificial Bee Colony: employed bees perturb their own
// food source, onlooker bees pick a source via TournamentRoulette and
// perturb it again, and a source that hasn't improved in limit trials is
// abandoned and replaced with a fresh random one (the scout phase).
type abcHeuristic struct {
	params   HeuristicParams
	limit    int
	maxIters int
}

func newABCHeuristic() *abcHeuristic {
	return &abcHeuristic{params: DefaultHeuristicParams(), limit: 15, maxIters: 400}
}

func (h *abcHeuristic) Name() string { return "ABC" }

func (h *abcHeuristic) Run(x []Item, capacity int, budget Budget, rng *rand.Rand, seed []Item) (Packing, int) {
	width := len(x)
	if width == 0 {
		return Packing{}, 0
	}
	n := h.params.PopulationSize
	if n < 2 {
		n = 2
	}

	pop := &MatrixPopulation{Rows: make([][]Item, n), Fitness: make([]int, n), Capacity: capacity}
	trials := make([]int, n)

	initRow := seedRow(seed, width)
	for i := 0; i < n; i++ {
		var row []Item
		if i == 0 && initRow != nil {
			row = initRow
		} else {
			row = shuffled(x, rng)
		}
		pop.Rows[i] = row
		pop.RecomputeFitness(i)
	}

	perturb := func(i int) []Item {
		donor := rng.Intn(n)
		for donor == i && n > 1 {
			donor = rng.Intn(n)
		}
		candidate := append([]Item(nil), pop.Rows[i]...)
		j := rng.Intn(width)
		phi := rng.Float64()*2 - 1
		v := float64(candidate[j]) + phi*float64(int(candidate[j])-int(pop.Rows[donor][j]))
		return Repair(x, clampToItemRange([]float64{v}, x), capacity, rng)
	}

	tryImprove := func(i int) {
		candidate := perturb(i)
		// Perturb touches a single column; graft it back onto the row
		// before decoding so the rest of the encoding survives.
		full := append([]Item(nil), pop.Rows[i]...)
		if len(candidate) > 0 {
			full[rng.Intn(width)] = candidate[0]
		}
		full = Repair(x, full, capacity, rng)
		newFit := Fitness(Decode(full, capacity, ModeValid))
		if newFit < pop.Fitness[i] {
			pop.Rows[i] = full
			pop.Fitness[i] = newFit
			trials[i] = 0
		} else {
			trials[i]++
		}
	}

	bestIdx := pop.BestRow()
	var bestPacking Packing = Decode(pop.Rows[bestIdx], capacity, ModeValid)
	bestFit := pop.Fitness[bestIdx]

	it := 0
	for Continue(TheoreticalMinimum(x, capacity), bestFit, budget, it) && it < h.maxIters {
		for i := 0; i < n; i++ {
			tryImprove(i)
		}
		for i := 0; i < n; i++ {
			chosen := TournamentRoulette(pop, h.params.TournamentK, rng)
			tryImprove(chosen)
		}
		for i := 0; i < n; i++ {
			if trials[i] >= h.limit {
				pop.Rows[i] = shuffled(x, rng)
				pop.RecomputeFitness(i)
				trials[i] = 0
			}
		}

		cur := pop.BestRow()
		if pop.Fitness[cur] < bestFit {
			bestFit = pop.Fitness[cur]
			bestPacking = Decode(pop.Rows[cur], capacity, ModeValid)
		}
		it++
	}

	return bestPacking, bestFit
}

func init() {
	RegisterHeuristic("ABC", func() Heuristic { return newABCHeuristic() })
}
