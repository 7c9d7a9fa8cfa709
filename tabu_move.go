package binpack

// MovePair identifies a bin-index pair considered for a bin-level move.
// Indices are unordered at construction time but normalized so a < b,
// which keeps the FIFO/set below from treating (a,b) and (b,a) as distinct.
type MovePair struct {
	A, B int
}

func newMovePair(a, b int) MovePair {
	if a > b {
		a, b = b, a
	}
	return MovePair{A: a, B: b}
}

// MoveTabu is TabuStructure-A from spec.md §3/§4.4: a bounded FIFO of move
// pairs with a set mirror for O(1) membership tests. Oldest entry is
// evicted once the FIFO exceeds capacity N.
type MoveTabu struct {
	capacity int
	order    []MovePair
	present  map[MovePair]bool
}

// NewMoveTabu returns an empty move tabu bounded to capacity N.
func NewMoveTabu(capacity int) *MoveTabu {
	if capacity < 1 {
		capacity = 1
	}
	return &MoveTabu{
		capacity: capacity,
		present:  make(map[MovePair]bool, capacity),
	}
}

// Find reports whether the pair is currently tabu.
func (t *MoveTabu) Find(a, b int) bool {
	return t.present[newMovePair(a, b)]
}

// Insert marks the pair tabu, evicting the oldest entry if the FIFO is at
// capacity. Returns false if the pair was already present (no-op insert).
func (t *MoveTabu) Insert(a, b int) bool {
	pair := newMovePair(a, b)
	if t.present[pair] {
		return false
	}
	t.present[pair] = true
	t.order = append(t.order, pair)
	if len(t.order) > t.capacity {
		oldest := t.order[0]
		t.order = t.order[1:]
		delete(t.present, oldest)
	}
	return true
}

// Len returns the current number of tabu entries.
func (t *MoveTabu) Len() int { return len(t.order) }
