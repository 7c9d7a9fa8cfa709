package binpack

import "math/rand"

// Descent repeatedly shuffles the bin order and re-sweeps each bin merged
// with the unplaced reservoir through the VALID one-pass packer, per
// spec.md §4.8: the last bin the sweep produces replaces the original bin,
// and every other bin the sweep produced is flattened back into the
// reservoir. It exits early once the unplaced reservoir fits in at most
// two bins by First-Fit, appending those bins and returning an empty
// reservoir; otherwise it returns after maxAttempts rounds with whatever
// residue remains unplaced.
func Descent(b Packing, unplaced []Item, capacity int, maxAttempts int, rng *rand.Rand) (Packing, []Item) {
	bins := b.Clone()
	residue := append([]Item(nil), unplaced...)

	for round := 0; round < maxAttempts; round++ {
		shuffleBins(bins, rng)

		for i, bin := range bins {
			combined := SortedMerge(bin.Items, residue)
			repacked := validSweep(combined, capacity)

			if len(repacked) == 0 {
				bins[i] = NewBin()
				residue = nil
				continue
			}

			bins[i] = repacked[len(repacked)-1]
			residue = Flatten(repacked[:len(repacked)-1])
		}

		if fitsInAtMostTwoBins(residue, capacity) {
			ff := FirstFit(residue, capacity, nil)
			bins = append(bins, ff...)
			return bins, nil
		}
	}

	return bins, residue
}

func shuffleBins(p Packing, rng *rand.Rand) {
	rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
}

func fitsInAtMostTwoBins(items []Item, capacity int) bool {
	if len(items) == 0 {
		return true
	}
	packed := FirstFit(items, capacity, nil)
	return len(packed) <= 2
}
