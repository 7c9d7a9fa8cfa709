package binpack

// Concatenate moves the longest ascending-ordered prefix of b that still
// fits in a's residual capacity into a, leaving the rest of b behind. Both
// bins stay in canonical ascending order and mass is conserved across the
// pair.
func Concatenate(a, b *Bin, capacity int) {
	residual := a.Residual(capacity)

	// b.Items is ascending; find the longest prefix whose cumulative sum
	// fits in residual via a running sum (equivalent to a binary search
	// over b's cumulative-sum array).
	cum := 0
	take := 0
	for _, it := range b.Items {
		if cum+int(it) > residual {
			break
		}
		cum += int(it)
		take++
	}
	if take == 0 {
		return
	}

	moved := b.Items[:take]
	a.Items = SortedMerge(a.Items, moved)
	a.Load += cum
	b.Items = append([]Item(nil), b.Items[take:]...)
	b.Load -= cum
}

// Change performs a capacity-preserving exchange: for each item x in a (in
// order), it looks for the smallest ascending prefix of b whose cumulative
// sum exceeds x by a margin that keeps b's load at or below capacity after
// the swap, then exchanges x for that prefix. Both bins remain canonical.
func Change(a, b *Bin, capacity int) {
	for idx := 0; idx < len(a.Items); idx++ {
		x := a.Items[idx]

		// Find the smallest prefix length of b whose cumulative sum
		// exceeds x while keeping both bins' post-swap loads within
		// capacity. Swapping x out of a and this prefix of b in leaves a
		// at a.Load-x+cum and b at b.Load-cum+x.
		cum := 0
		take := 0
		found := false
		for i, it := range b.Items {
			cum += int(it)
			newALoad := a.Load - int(x) + cum
			newBLoad := b.Load - cum + int(x)
			if cum > int(x) && newALoad <= capacity && newBLoad <= capacity {
				take = i + 1
				found = true
				break
			}
		}
		if !found {
			continue
		}

		moved := append([]Item(nil), b.Items[:take]...)

		// Remove x from a, merge moved in.
		a.Items = removeOne(a.Items, x)
		a.Load -= int(x)
		a.Items = SortedMerge(a.Items, moved)
		a.Load += sumItems(moved)

		// Remove moved prefix from b, push x into b's tail (re-sorted).
		b.Items = append([]Item(nil), b.Items[take:]...)
		b.Load -= sumItems(moved)
		b.insertSorted(x)

		idx = -1 // a.Items changed shape; restart the scan over a's (new) items
		if len(a.Items) == 0 {
			break
		}
	}
}

func sumItems(items []Item) int {
	total := 0
	for _, it := range items {
		total += int(it)
	}
	return total
}

func removeOne(items []Item, target Item) []Item {
	for i, it := range items {
		if it == target {
			out := make([]Item, 0, len(items)-1)
			out = append(out, items[:i]...)
			out = append(out, items[i+1:]...)
			return out
		}
	}
	return items
}

// Insert is the composite container move of spec.md §4.6. If a's residual
// already accommodates all of b's load (i.e. the two bins could merge
// cleanly), it does so and reports merged=true, shrinking the packing by
// one bin. Otherwise it runs Concatenate followed by Change, leaving the
// bin count unchanged but improving both bins' packing.
func Insert(a, b *Bin, capacity int) (merged bool) {
	if a.Residual(capacity) >= capacity-b.Residual(capacity) {
		a.Items = SortedMerge(a.Items, b.Items)
		a.Load += b.Load
		b.Items = nil
		b.Load = 0
		return true
	}

	Concatenate(a, b, capacity)
	Change(a, b, capacity)
	return false
}
