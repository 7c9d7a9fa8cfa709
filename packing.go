package binpack

import "sort"

// FirstFit places each item into the first existing bin (in order) whose
// residual admits it, opening a new bin otherwise. Input order is
// preserved; existing is appended to, not mutated.
func FirstFit(items []Item, capacity int, existing Packing) Packing {
	p := existing.Clone()
	for _, it := range items {
		placeFirstFit(&p, it, capacity)
	}
	return p
}

func placeFirstFit(p *Packing, it Item, capacity int) {
	for _, b := range *p {
		if b.Residual(capacity) >= int(it) {
			b.insertSorted(it)
			return
		}
	}
	nb := NewBin()
	nb.insertSorted(it)
	*p = append(*p, nb)
}

// FirstFitDecreasing sorts items descending, then runs FirstFit. Per
// spec.md's order-invariance law, the result only depends on the item
// multiset, not the caller's original ordering.
func FirstFitDecreasing(items []Item, capacity int, existing Packing) Packing {
	desc := sortedItems(items)
	reverseItems(desc)
	return FirstFit(desc, capacity, existing)
}

// BestFitDecreasing sorts items descending, then places each into the bin
// with the smallest residual that still admits it (tightest fit), opening a
// new bin otherwise.
func BestFitDecreasing(items []Item, capacity int, existing Packing) Packing {
	desc := sortedItems(items)
	reverseItems(desc)

	p := existing.Clone()
	for _, it := range desc {
		placeBestFit(&p, it, capacity)
	}
	return p
}

func placeBestFit(p *Packing, it Item, capacity int) {
	bestIdx := -1
	bestResidual := capacity + 1
	for i, b := range *p {
		res := b.Residual(capacity)
		if res >= int(it) && res < bestResidual {
			bestResidual = res
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		(*p)[bestIdx].insertSorted(it)
		return
	}
	nb := NewBin()
	nb.insertSorted(it)
	*p = append(*p, nb)
}

func reverseItems(items []Item) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}

// sortDescSingleton wraps each item, sorted descending, in its own bin. A
// degenerate but always-legal packing, used as a starting state for
// operators that need one bin per item.
func sortDescSingleton(items []Item) Packing {
	desc := sortedItems(items)
	reverseItems(desc)
	p := make(Packing, 0, len(desc))
	for _, it := range desc {
		b := NewBin()
		b.insertSorted(it)
		p = append(p, b)
	}
	return p
}

// validSweep performs the one-pass greedy sweep: walk the genome in order,
// accumulate items into the current bin, and open a new bin on overflow.
// This is the canonical genome -> packing decoding used everywhere an
// encoding's "implicit fitness" is needed.
func validSweep(genome []Item, capacity int) Packing {
	p := make(Packing, 0)
	var cur *Bin
	for _, it := range genome {
		if cur == nil || cur.Load+int(it) > capacity {
			cur = NewBin()
			p = append(p, cur)
		}
		cur.Items = append(cur.Items, it)
		cur.Load += int(it)
	}
	for _, b := range p {
		sort.Slice(b.Items, func(i, j int) bool { return b.Items[i] < b.Items[j] })
	}
	return p
}
