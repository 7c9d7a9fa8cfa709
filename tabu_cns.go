package binpack

import "github.com/google/uuid"

// cnsKey is the (item, bin-identity) key for CNSTabu entries. Bin identity
// is the bin's stable uuid.UUID rather than its transient slice index, so
// the entry survives reordering and merges elsewhere in the packing.
type cnsKey struct {
	item Item
	bin  uuid.UUID
}

// cnsEntry tracks how often a move has been revisited and how long it
// remains forbidden.
type cnsEntry struct {
	frequency int
	tenure    int
}

// CNSTabu implements the tabu memory used by the CNS item-swap search of
// spec.md §4.9: entries keyed by (item, bin identity), each carrying a
// frequency and a tenure. Tenure is set to frequency/2 on insertion and
// decremented every outer iteration; entries reaching tenure <= 0 are
// purged.
type CNSTabu struct {
	entries map[cnsKey]*cnsEntry
}

// NewCNSTabu returns an empty CNS tabu memory.
func NewCNSTabu() *CNSTabu {
	return &CNSTabu{entries: make(map[cnsKey]*cnsEntry)}
}

// IsTabu reports whether moving item out of bin is currently forbidden.
func (c *CNSTabu) IsTabu(item Item, bin uuid.UUID) bool {
	e, ok := c.entries[cnsKey{item, bin}]
	return ok && e.tenure > 0
}

// Reset clears the entire tabu memory, invoked on a strict improvement of
// the global objective.
func (c *CNSTabu) Reset() {
	c.entries = make(map[cnsKey]*cnsEntry)
}

// Bump increments the frequency of the (item, bin) entry on a
// non-improving accepted move, creating it (and setting its initial
// tenure to frequency/2) if absent.
func (c *CNSTabu) Bump(item Item, bin uuid.UUID) {
	k := cnsKey{item, bin}
	e, ok := c.entries[k]
	if !ok {
		e = &cnsEntry{}
		c.entries[k] = e
	}
	e.frequency++
	e.tenure = e.frequency / 2
}

// Tick decrements every entry's tenure by one and purges entries whose
// tenure has reached zero or below. Called once per outer CNS iteration.
func (c *CNSTabu) Tick() {
	for k, e := range c.entries {
		e.tenure--
		if e.tenure <= 0 {
			delete(c.entries, k)
		}
	}
}

// TenureOf returns the current tenure of an (item, bin) entry, or 0 if
// absent — used by property tests asserting max(0, insertionTenure - k).
func (c *CNSTabu) TenureOf(item Item, bin uuid.UUID) int {
	if e, ok := c.entries[cnsKey{item, bin}]; ok {
		return e.tenure
	}
	return 0
}
