package binpack

import (
	"time"

	"github.com/mitchellh/mapstructure"
)

// Options configures a Solve run: which heuristics to try, how much time
// and iteration budget to give the driver overall, and the knobs each
// phase needs.
type Options struct {
	// Heuristics lists the heuristic names to run, in the order the driver
	// should try them. Empty means "every registered heuristic, driver's
	// choice of order".
	Heuristics []string

	// TimeMax bounds the whole Solve call; zero means unbounded (rely on
	// MaxIt or exhaustion of the heuristic list instead).
	TimeMax time.Duration

	// MaxIt bounds the iteration count handed to each heuristic's own
	// Budget; zero means unbounded.
	MaxIt int

	// Seed seeds the run's random source. DefaultOptions sets it from the
	// current time; a zero Seed is used as-is, as the literal seed 0.
	Seed int64

	// Parallel, when true, runs independent heuristics concurrently
	// instead of sequentially threading an incumbent between them.
	Parallel bool

	// Workers bounds goroutine concurrency in parallel mode; zero means no
	// limit, so every heuristic starts at once.
	Workers int

	CNSParams       CNSParams
	HeuristicParams HeuristicParams
}

// DefaultOptions returns reasonable defaults for small-to-medium instances:
// every registered heuristic, sequential execution, a five-second overall
// budget.
func DefaultOptions() Options {
	return Options{
		TimeMax:         5 * time.Second,
		Seed:            time.Now().UnixNano(),
		CNSParams:       DefaultCNSParams(),
		HeuristicParams: DefaultHeuristicParams(),
	}
}

// OptionsFromMap decodes a loosely-typed map (as produced by JSON/YAML
// unmarshalling or a CLI flag parser) into an Options value via
// mapstructure, seeding defaults first so a sparse map only overrides the
// fields it mentions.
func OptionsFromMap(m map[string]any) (Options, error) {
	opts := DefaultOptions()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		return opts, err
	}
	if err := decoder.Decode(m); err != nil {
		return opts, err
	}
	return opts, nil
}

// Validate reports a PreconditionError if the options are self-contradictory.
func (o Options) Validate() error {
	for _, name := range o.Heuristics {
		if _, ok := heuristicRegistry[name]; !ok {
			return &PreconditionError{Reason: "unknown heuristic " + name}
		}
	}
	if o.Workers < 0 {
		return &PreconditionError{Reason: "Workers must be >= 0"}
	}
	return nil
}
