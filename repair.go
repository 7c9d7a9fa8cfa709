package binpack

import "math/rand"

// Repair forces a candidate genome Y back onto the legal multiset of an
// original encoding X, per spec.md §4.3. It walks Y left to right, keeping
// any element still available in X's multiset; whatever Y failed to spend
// is packed via BFD onto the accepted prefix and concatenated on. If Y
// spent nothing at all, the fallback is a fresh shuffle of X — repair must
// never return an encoding that isn't a permutation of X.
func Repair(original, candidate []Item, capacity int, rng *rand.Rand) []Item {
	counts := make(map[Item]int, len(original))
	for _, it := range original {
		counts[it]++
	}

	accepted := make([]Item, 0, len(candidate))
	for _, y := range candidate {
		if counts[y] > 0 {
			accepted = append(accepted, y)
			counts[y]--
		}
	}

	if len(accepted) == 0 {
		return shuffled(original, rng)
	}

	remainder := make([]Item, 0, len(original)-len(accepted))
	for it, n := range counts {
		for i := 0; i < n; i++ {
			remainder = append(remainder, it)
		}
	}

	seedPacking := Decode(accepted, capacity, ModeValid)
	repaired := BestFitDecreasing(remainder, capacity, seedPacking)

	return Flatten(repaired)
}

// RepairToPacking is a convenience wrapper returning the decoded packing of
// a repaired candidate rather than the flat genome, for callers (e.g. the
// population heuristics) that need the Packing directly without a second
// Decode pass.
func RepairToPacking(original, candidate []Item, capacity int, rng *rand.Rand) (repairedGenome []Item, packing Packing) {
	repairedGenome = Repair(original, candidate, capacity, rng)
	packing = Decode(repairedGenome, capacity, ModeValid)
	return
}
