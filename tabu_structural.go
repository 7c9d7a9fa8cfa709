package binpack

import "math/rand"

// suffixKey is a comparable encoding of a bounded window of the encoding
// following some element, used as the map key for structural-tabu lookups.
type suffixKey string

func encodeSuffix(seq []Item) suffixKey {
	b := make([]byte, 0, len(seq)*4)
	for _, it := range seq {
		b = append(b, byte(it), byte(it>>8), byte(it>>16), byte(it>>24))
	}
	return suffixKey(b)
}

// StructuralTabu is TabuStructure-B from spec.md §3/§4.4: a mapping from an
// element to a bounded list of suffix windows (length <= R) it has been
// seen with, plus a global FIFO of inserted element-keys capped at N
// entries with a per-key cap of M (M <= N).
type StructuralTabu struct {
	n, m, r int
	lists   map[Item][]suffixKey
	fifo    []Item
	rng     *rand.Rand
}

// NewStructuralTabu returns an empty structural tabu with parameters
// (N, M, R) as defined in spec.md §4.4.
func NewStructuralTabu(n, m, r int, rng *rand.Rand) *StructuralTabu {
	if m > n {
		m = n
	}
	return &StructuralTabu{
		n:     n,
		m:     m,
		r:     r,
		lists: make(map[Item][]suffixKey),
		rng:   rng,
	}
}

// Segment returns the element at position i and its bounded suffix window
// (length at most R) following it.
func (t *StructuralTabu) Segment(i int, seq []Item) (Item, []Item) {
	elem := seq[i]
	end := i + 1 + t.r
	if end > len(seq) {
		end = len(seq)
	}
	start := i + 1
	if start > len(seq) {
		start = len(seq)
	}
	return elem, seq[start:end]
}

// Find reports whether the (element, suffix) pair derived from position i
// of seq is currently tabu.
func (t *StructuralTabu) Find(i int, seq []Item) bool {
	elem, suffix := t.Segment(i, seq)
	list, ok := t.lists[elem]
	if !ok {
		return false
	}
	key := encodeSuffix(suffix)
	for _, k := range list {
		if k == key {
			return true
		}
	}
	return false
}

// Insert records the (element, suffix) pair derived from position i of seq.
// If the pair is already present and the element's list exceeds M, a
// random entry from that element's list is evicted instead of growing it
// further. Otherwise the suffix is appended, the element is pushed onto
// the global FIFO, and if the total key count exceeds N the oldest key is
// dropped in its entirety (its whole suffix list goes with it).
func (t *StructuralTabu) Insert(i int, seq []Item) {
	elem, suffix := t.Segment(i, seq)
	key := encodeSuffix(suffix)

	list, existed := t.lists[elem]
	alreadyHasKey := false
	for _, k := range list {
		if k == key {
			alreadyHasKey = true
			break
		}
	}

	if alreadyHasKey && len(list) > t.m {
		evictIdx := t.rng.Intn(len(list))
		list = append(list[:evictIdx], list[evictIdx+1:]...)
		t.lists[elem] = list
		return
	}

	if !alreadyHasKey {
		list = append(list, key)
	}
	// Enforce the per-key cap regardless of path: an insert can never leave
	// a key's suffix list longer than M.
	for len(list) > t.m {
		evictIdx := t.rng.Intn(len(list))
		list = append(list[:evictIdx], list[evictIdx+1:]...)
	}
	t.lists[elem] = list

	if !existed {
		t.fifo = append(t.fifo, elem)
	}

	if len(t.fifo) > t.n {
		oldest := t.fifo[0]
		t.fifo = t.fifo[1:]
		delete(t.lists, oldest)
	}
}

// KeyCount returns the number of distinct elements currently tracked.
func (t *StructuralTabu) KeyCount() int { return len(t.fifo) }

// ListLen returns the suffix-list length for a given element (0 if absent).
func (t *StructuralTabu) ListLen(elem Item) int { return len(t.lists[elem]) }
