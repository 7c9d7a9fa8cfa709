package binpack

import (
	"fmt"
	"math/rand"
)

// Heuristic is the population-update contract of spec.md §4.2: every
// swarm/evolutionary flavor seeds a population, iterates a numeric update
// rule clipped through Repair, tracks a global best, and honors the
// termination predicate, converting its best genome to a Packing via the
// VALID sweep on exit. Concrete flavors only supply the numeric update
// formula and local-search hook; this interface is the shared skeleton.
type Heuristic interface {
	// Name identifies the heuristic for driver reporting and registry
	// lookup.
	Name() string

	// Run executes the heuristic to completion (budget permitting) and
	// returns its best packing and that packing's fitness. seed, when
	// non-nil, is an encoding the heuristic should favor as one of its
	// initial rows — the mechanism the driver uses to thread an incumbent
	// from one heuristic into the next (spec.md §4.10).
	Run(x []Item, capacity int, budget Budget, rng *rand.Rand, seed []Item) (Packing, int)
}

// HeuristicParams bundles the population size and local knobs shared by
// every matrix-based flavor.
type HeuristicParams struct {
	PopulationSize int
	TournamentK    int
}

// DefaultHeuristicParams returns reasonable defaults for small/medium
// instances.
func DefaultHeuristicParams() HeuristicParams {
	return HeuristicParams{PopulationSize: 24, TournamentK: 3}
}

var heuristicRegistry = map[string]func() Heuristic{}

// RegisterHeuristic adds a heuristic constructor to the registry, keyed by
// name. Flavor files call this from an init() func, mirroring the
// teacher-pack's pool.Register pattern for pluggable strategies.
func RegisterHeuristic(name string, ctor func() Heuristic) {
	heuristicRegistry[name] = ctor
}

// GetHeuristic returns a fresh heuristic instance by name.
func GetHeuristic(name string) (Heuristic, error) {
	ctor, ok := heuristicRegistry[name]
	if !ok {
		return nil, fmt.Errorf("binpack: unknown heuristic %q (available: %v)", name, HeuristicNames())
	}
	return ctor(), nil
}

// HeuristicNames returns every registered heuristic name.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristicRegistry))
	for name := range heuristicRegistry {
		names = append(names, name)
	}
	return names
}

// seedRow builds the first population row from a seed encoding when one is
// supplied, clamped to the target width: a longer seed is truncated and a
// shorter one is extended by repeating it from the front. Returns nil only
// if seed is absent (the caller falls back to a random row in that case).
func seedRow(seed []Item, width int) []Item {
	if len(seed) == 0 {
		return nil
	}
	out := append([]Item(nil), seed...)
	if len(out) > width {
		out = out[:width]
	}
	for len(out) < width && len(seed) > 0 {
		out = append(out, seed[len(out)%len(seed)])
	}
	return out
}
