package binpack

import "math/rand"

// TabuSearch runs the bin-level tabu search of spec.md §4.7: repeatedly
// sample a non-tabu bin pair, mark it tabu, and apply the composite Insert
// move until the termination predicate fires. The move tabu A is built
// once, sized off the initial bin count, and persists across the whole
// outer loop so a recently-tried pair actually stays excluded from
// resampling until it ages out of the FIFO — mirrors the original
// reference's __tabucns, which allocates its TabuStructure once before its
// while loop rather than per iteration. Fitness is monotone non-increasing
// because Insert either merges two bins (reducing K) or leaves the bin
// count unchanged.
func TabuSearch(p Packing, capacity int, budget Budget, rng *rand.Rand, alpha int) Packing {
	p = p.Clone()
	if len(p) < 2 {
		return p
	}

	if alpha < 1 {
		alpha = 4
	}

	target := TheoreticalMinimum(p.items(), capacity)

	tabuSize := len(p) / max(alpha, len(p)-1)
	if tabuSize < 1 {
		tabuSize = 1
	}
	tabu := NewMoveTabu(tabuSize)

	it := 0
	for Continue(target, Fitness(p), budget, it) {
		a, b := samplePair(len(p), rng)
		attempts := 0
		for tabu.Find(a, b) && attempts < len(p)*len(p) {
			a, b = samplePair(len(p), rng)
			attempts++
		}
		tabu.Insert(a, b)

		merged := Insert(p[a], p[b], capacity)
		if merged {
			p = removeBinAt(p, b)
		}

		it++
	}

	return compactEmptyBins(p)
}

// samplePair draws a uniformly random unordered pair of distinct indices
// in [0, n).
func samplePair(n int, rng *rand.Rand) (int, int) {
	if n < 2 {
		return 0, 0
	}
	a := rng.Intn(n)
	b := rng.Intn(n)
	for b == a {
		b = rng.Intn(n)
	}
	if a > b {
		a, b = b, a
	}
	return a, b
}

func removeBinAt(p Packing, idx int) Packing {
	out := make(Packing, 0, len(p)-1)
	out = append(out, p[:idx]...)
	out = append(out, p[idx+1:]...)
	return out
}

// compactEmptyBins drops any bin left with zero items (e.g. from an Insert
// merge that wasn't also index-removed by the caller).
func compactEmptyBins(p Packing) Packing {
	out := make(Packing, 0, len(p))
	for _, b := range p {
		if len(b.Items) > 0 {
			out = append(out, b)
		}
	}
	return out
}
