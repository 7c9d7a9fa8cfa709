// Package binpack implements a metaheuristic search engine for the
// one-dimensional bin packing problem: given a multiset of positive integer
// item sizes and a fixed bin capacity, partition the items into the fewest
// possible bins such that no bin's load exceeds capacity.
package binpack

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Item is a single positive-integer piece to be packed. Solve rejects any
// instance with an item at or above the capacity.
type Item int

// Bin is an ordered sequence of items whose sum does not exceed capacity.
// Canonical form keeps Items sorted ascending; Load is cached to avoid
// re-summing on every residual check, which dominates the hot loops in
// tabu search and descent.
type Bin struct {
	ID    uuid.UUID
	Items []Item
	Load  int
}

// NewBin returns an empty bin with a fresh identity. Bin identity survives
// reslicing and merges, which is what lets TabuCNS key off "this bin" rather
// than a slice index that shifts whenever a preceding bin is dropped.
func NewBin() *Bin {
	return &Bin{ID: uuid.New()}
}

// NewBinFrom builds a canonical bin from an arbitrary item set.
func NewBinFrom(items []Item) *Bin {
	b := NewBin()
	b.Items = append([]Item(nil), items...)
	sort.Slice(b.Items, func(i, j int) bool { return b.Items[i] < b.Items[j] })
	b.recomputeLoad()
	return b
}

func (b *Bin) recomputeLoad() {
	load := 0
	for _, it := range b.Items {
		load += int(it)
	}
	b.Load = load
}

// Residual returns the unused capacity of the bin.
func (b *Bin) Residual(capacity int) int {
	return capacity - b.Load
}

// insertSorted places an item into the bin, keeping ascending order.
func (b *Bin) insertSorted(it Item) {
	idx := sort.Search(len(b.Items), func(i int) bool { return b.Items[i] >= it })
	b.Items = append(b.Items, 0)
	copy(b.Items[idx+1:], b.Items[idx:])
	b.Items[idx] = it
	b.Load += int(it)
}

// Clone returns a deep copy of the bin, preserving its identity.
func (b *Bin) Clone() *Bin {
	return &Bin{
		ID:    b.ID,
		Items: append([]Item(nil), b.Items...),
		Load:  b.Load,
	}
}

func (b *Bin) String() string {
	return fmt.Sprintf("%v(%d)", b.Items, b.Load)
}

// Packing is an ordered sequence of bins. Its Fitness is its length; lower
// is better. Operators must return packings with every bin in canonical
// ascending form and with the multiset of all bins equal to the input
// multiset (mass conservation) — the two invariants property tests assert.
type Packing []*Bin

// Fitness returns the bin count of the packing.
func Fitness(p Packing) int {
	return len(p)
}

// TotalLoad sums the load of every bin in the packing.
func (p Packing) TotalLoad() int {
	total := 0
	for _, b := range p {
		total += b.Load
	}
	return total
}

// Clone returns a deep copy of the packing.
func (p Packing) Clone() Packing {
	out := make(Packing, len(p))
	for i, b := range p {
		out[i] = b.Clone()
	}
	return out
}

// Flatten concatenates bins into a single ascending-within-bin item sequence
// (the genome representation). Bin boundaries are not preserved.
func Flatten(p Packing) []Item {
	n := 0
	for _, b := range p {
		n += len(b.Items)
	}
	out := make([]Item, 0, n)
	for _, b := range p {
		out = append(out, b.Items...)
	}
	return out
}

// items returns every item across every bin, for multiset comparisons.
func (p Packing) items() []Item {
	return Flatten(p)
}
