package binpack

import "io"

// Solve is the library's single entry point: pack items into bins of the
// given capacity, trying every heuristic opts.Heuristics names (or every
// registered heuristic if the list is empty), and return the best packing
// found along with its fitness and how the run ended.
//
// Items whose size is >= capacity are outside the instances this package
// handles and are rejected as a precondition failure rather than silently
// dropped, since silently
// discarding part of the input would violate the mass-conservation
// guarantee every other operation in this package upholds.
func Solve(capacity int, items []Item, opts Options) (packing Packing, fitness int, status Status, err error) {
	defer recoverInternal(&err)

	if capacity <= 0 {
		return nil, 0, StatusBudgetExhausted, &PreconditionError{Reason: "capacity must be positive"}
	}
	for _, it := range items {
		if int(it) >= capacity {
			return nil, 0, StatusBudgetExhausted, &PreconditionError{Reason: "item size must be below bin capacity"}
		}
		if it <= 0 {
			return nil, 0, StatusBudgetExhausted, &PreconditionError{Reason: "item sizes must be positive"}
		}
	}
	if err := opts.Validate(); err != nil {
		return nil, 0, StatusBudgetExhausted, err
	}

	names := opts.Heuristics
	if len(names) == 0 {
		names = HeuristicNames()
	}

	logger := (*RunLogger)(nil)
	target := TheoreticalMinimum(items, capacity)

	var results []DriverResult
	if opts.Parallel {
		results = RunParallel(items, capacity, names, opts, logger)
	} else {
		results = RunSequential(items, capacity, names, opts, logger)
	}

	best, ok := BestResult(results)
	if !ok {
		// Every heuristic was skipped (e.g. opts.Heuristics == {"Reactor"}
		// alone). Fall back to BFD so Solve always returns a legal packing.
		bfd := BestFitDecreasing(items, capacity, nil)
		return bfd, Fitness(bfd), StatusBudgetExhausted, nil
	}

	status = StatusBudgetExhausted
	if best.Fitness <= target {
		status = StatusOptimal
	}

	checkInvariant(MassConservationOK(items, best.Packing), "Solve result broke mass conservation")
	checkInvariant(CapacityRespected(best.Packing, capacity), "Solve result broke capacity")

	return best.Packing, best.Fitness, status, nil
}

// SolveWithLogging runs the same driver dispatch as Solve with an attached
// RunLogger writing to console and/or jsonl; either writer may be nil.
// Unlike Solve, it does not check capacity, item sizes or opts before
// running, does not re-check the result's invariants, and does not recover
// internal-inconsistency panics into its error return.
func SolveWithLogging(capacity int, items []Item, opts Options, console, jsonl io.Writer) (Packing, int, Status, error) {
	logger := NewRunLogger(console, jsonl)
	target := TheoreticalMinimum(items, capacity)
	logger.LogStart(len(items), capacity, target)

	names := opts.Heuristics
	if len(names) == 0 {
		names = HeuristicNames()
	}

	var results []DriverResult
	if opts.Parallel {
		results = RunParallel(items, capacity, names, opts, logger)
	} else {
		results = RunSequential(items, capacity, names, opts, logger)
	}

	best, ok := BestResult(results)
	if !ok {
		bfd := BestFitDecreasing(items, capacity, nil)
		fit := Fitness(bfd)
		status := StatusBudgetExhausted
		logger.LogEnd(fit, target, status)
		return bfd, fit, status, nil
	}

	status := StatusBudgetExhausted
	if best.Fitness <= target {
		status = StatusOptimal
	}
	logger.LogEnd(best.Fitness, target, status)

	return best.Packing, best.Fitness, status, nil
}

// NewItemsFromInts builds an Item slice from plain ints — the usual
// boundary conversion a CLI or test harness needs before calling Solve. It
// does not validate sizes; Solve is what rejects non-positive ones.
func NewItemsFromInts(sizes []int) []Item {
	items := make([]Item, len(sizes))
	for i, s := range sizes {
		items[i] = Item(s)
	}
	return items
}
