package binpack

import (
	"math/rand"
	"time"
)

// CNSParams bounds the inner tabu-exchange / descent loop of CNS.
type CNSParams struct {
	MaxAttempts     int           // inner-loop stagnation cap
	InnerIterCap    int           // iteration cap per inner tabu-exchange phase
	InnerTimeCap    time.Duration // wall-clock cap per inner tabu-exchange phase
	DescentAttempts int           // rounds handed to Descent per inner pass
}

// DefaultCNSParams returns sane defaults scaled for small-to-medium
// instances.
func DefaultCNSParams() CNSParams {
	return CNSParams{
		MaxAttempts:     20,
		InnerIterCap:    500,
		InnerTimeCap:    2 * time.Second,
		DescentAttempts: 10,
	}
}

// CNS runs Consistent Neighborhood Search (spec.md §4.9): seed from BFD,
// then repeatedly try to shave one bin off the tail by dismantling it into
// an "unplaced" reservoir and re-packing everything into the remaining
// bins via a tabu-guided item-swap search followed by descent. It
// terminates immediately if the seed is already at the theoretical
// minimum.
func CNS(x []Item, capacity int, budget Budget, params CNSParams, rng *rand.Rand) Packing {
	target := TheoreticalMinimum(x, capacity)

	b := BestFitDecreasing(x, capacity, nil)
	if Fitness(b) <= target {
		return b
	}

	it := 0
	for Continue(target, Fitness(b), budget, it) {
		numBins := len(b)
		if numBins <= target {
			break
		}

		partial := b[:numBins-1].Clone()
		unplacedBins := b[numBins-1:]
		unplaced := Flatten(unplacedBins)

		partial, unplaced = cnsInner(partial, unplaced, capacity, params, rng, budget)

		if len(unplaced) == 0 && len(partial) < len(b) {
			b = partial
		} else {
			// No improvement this round: restore and stop, per spec.md
			// §4.9 step 4.
			break
		}

		it++
	}

	return b
}

// cnsInner runs the TabuCNS item-swap phase followed by descent, looping
// until no progress is made in params.MaxAttempts rounds or the inner time
// cap elapses.
func cnsInner(partial Packing, unplaced []Item, capacity int, params CNSParams, rng *rand.Rand, outerBudget Budget) (Packing, []Item) {
	tabu := NewCNSTabu()
	stagnant := 0
	innerStart := time.Now()

	for stagnant < params.MaxAttempts {
		if params.InnerTimeCap > 0 && time.Since(innerStart) >= params.InnerTimeCap {
			break
		}
		if outerBudget.TimeMax > 0 && !outerBudget.Start.IsZero() &&
			time.Since(outerBudget.Start) >= outerBudget.TimeMax {
			break
		}

		beforeLoad := partial.TotalLoad()

		newPartial, newUnplaced, moved := cnsSwapPhase(partial, unplaced, capacity, tabu, rng, params.InnerIterCap)
		partial, unplaced = newPartial, newUnplaced

		afterLoad := partial.TotalLoad()
		if moved && afterLoad > beforeLoad {
			tabu.Reset()
			stagnant = 0
		} else {
			stagnant++
		}

		partial, unplaced = Descent(partial, unplaced, capacity, params.DescentAttempts, rng)

		tabu.Tick()

		if len(unplaced) == 0 {
			break
		}
	}

	return partial, unplaced
}

// cnsSwapPhase searches, for every item s sitting in some bin a of partial
// and every item t in any bin of unplaced, for the single non-tabu move
// that yields the largest positive load delta on a while respecting
// capacity, and applies it by swapping s out of a for t. Aspiration is
// implicit: a move is only ever considered if it is a strict load
// improvement, so the aspiration criterion (accept tabu moves that beat
// the best known solution) never needs separate tracking here — any
// admissible move already beats the status quo.
func cnsSwapPhase(partial Packing, unplaced []Item, capacity int, tabu *CNSTabu, rng *rand.Rand, iterCap int) (Packing, []Item, bool) {
	moved := false

	for iter := 0; iter < iterCap; iter++ {
		bestDelta := 0
		bestBinIdx, bestS, bestT := -1, -1, -1

		for ai, bin := range partial {
			for si, s := range bin.Items {
				if tabu.IsTabu(s, bin.ID) {
					continue
				}
				for ti, t := range unplaced {
					delta := int(t) - int(s)
					if delta <= 0 {
						continue
					}
					if bin.Load-int(s)+int(t) > capacity {
						continue
					}
					if delta > bestDelta {
						bestDelta = delta
						bestBinIdx, bestS, bestT = ai, si, ti
					}
				}
			}
		}

		if bestBinIdx < 0 {
			break
		}

		bin := partial[bestBinIdx]
		s := bin.Items[bestS]
		t := unplaced[bestT]

		bin.Items = removeOne(bin.Items, s)
		bin.Load -= int(s)
		bin.insertSorted(t)

		unplaced = append(append([]Item(nil), unplaced[:bestT]...), unplaced[bestT+1:]...)
		unplaced = append(unplaced, s)

		tabu.Bump(s, bin.ID)
		moved = true
	}

	return partial, unplaced, moved
}
