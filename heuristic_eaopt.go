package binpack

import (
	"math"
	"math/rand"
	"time"

	"github.com/MaxHalford/eaopt"
)

// binGenome adapts a bin packing encoding to eaopt.Genome, the same
// interface the teacher's SplitLayout implements to drive eaopt's GA
// engine. Mutate and Crossover both perturb Genome with an ordinary
// numeric operator and then restore multiset identity via Repair, exactly
// the obligation spec.md §4.2 places on every population flavor.
type binGenome struct {
	genome   []Item
	original []Item // the reference multiset every candidate must repair onto
	capacity int
}

func (g *binGenome) Evaluate() (float64, error) {
	return float64(Fitness(Decode(g.genome, g.capacity, ModeValid))), nil
}

func (g *binGenome) Mutate(rng *rand.Rand) {
	if len(g.genome) == 0 {
		return
	}
	lo, hi := itemRange(g.original)
	candidate := append([]Item(nil), g.genome...)
	i := rng.Intn(len(candidate))
	span := int(hi-lo) + 1
	if span < 1 {
		span = 1
	}
	candidate[i] = lo + Item(rng.Intn(span))
	g.genome = Repair(g.original, candidate, g.capacity, rng)
}

func (g *binGenome) Crossover(other eaopt.Genome, rng *rand.Rand) {
	o := other.(*binGenome)
	if len(g.genome) < 2 {
		return
	}
	point := 1 + rng.Intn(len(g.genome)-1)

	childA := append(append([]Item(nil), g.genome[:point]...), o.genome[point:]...)
	childB := append(append([]Item(nil), o.genome[:point]...), g.genome[point:]...)

	g.genome = Repair(g.original, childA, g.capacity, rng)
	o.genome = Repair(o.original, childB, o.capacity, rng)
}

func (g *binGenome) Clone() eaopt.Genome {
	return &binGenome{
		genome:   append([]Item(nil), g.genome...),
		original: g.original,
		capacity: g.capacity,
	}
}

// acceptFunc builds the eaopt simulated-annealing acceptance function,
// mirroring the teacher's getAcceptFunc switch. "drop-slow" is the
// teacher's recommended default and the only policy this engine exposes
// directly; it cools smoothly across the generation budget.
func acceptFuncDropSlow() func(g, ng uint, e0, e1 float64) float64 {
	return func(g, ng uint, e0, e1 float64) float64 {
		t := 1.0 - float64(g)/float64(ng)
		return (math.Cos(t*math.Pi) + 1.0) / 2.0
	}
}

// eaoptHeuristic runs an eaopt.GA to completion over a single binGenome,
// differing from its sibling only in which eaopt.Model it installs on the
// config — this is the shared driving code behind both the SA and GA-CGT
// flavors.
type eaoptHeuristic struct {
	name       string
	installSA  bool
	generation uint
}

func (h *eaoptHeuristic) Name() string { return h.name }

func (h *eaoptHeuristic) Run(x []Item, capacity int, budget Budget, rng *rand.Rand, seed []Item) (Packing, int) {
	generations := h.generation
	if generations == 0 {
		generations = 300
	}

	cfg := eaopt.NewDefaultGAConfig()
	cfg.NGenerations = generations
	if h.installSA {
		cfg.Model = eaopt.ModSimulatedAnnealing{Accept: acceptFuncDropSlow()}
	}

	ga := Must(cfg.NewGA())

	deadline := time.Time{}
	if budget.TimeMax > 0 && !budget.Start.IsZero() {
		deadline = budget.Start.Add(budget.TimeMax)
	}

	initial := seedRow(seed, len(x))
	if initial == nil {
		initial = shuffled(x, rng)
	}

	newGenome := func(_ *rand.Rand) eaopt.Genome {
		return &binGenome{
			genome:   append([]Item(nil), initial...),
			original: x,
			capacity: capacity,
		}
	}

	ga.Callback = func(cur *eaopt.GA) {
		if !deadline.IsZero() && time.Now().After(deadline) {
			panic(eaoptBudgetExceeded{})
		}
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(eaoptBudgetExceeded); !ok {
					panic(r)
				}
			}
		}()
		_ = ga.Minimize(newGenome)
	}()

	if len(ga.HallOfFame) == 0 {
		return Decode(x, capacity, ModeBFD), Fitness(Decode(x, capacity, ModeBFD))
	}

	best := ga.HallOfFame[0].Genome.(*binGenome)
	packing := Decode(best.genome, capacity, ModeValid)
	return packing, Fitness(packing)
}

// eaoptBudgetExceeded is a sentinel panic value used to unwind out of
// eaopt's generation loop once the wall-clock budget is spent; eaopt has
// no native mid-run cancellation hook, so this plays the same role as the
// driver's own budget.Start/TimeMax checks elsewhere in this package.
type eaoptBudgetExceeded struct{}

func init() {
	RegisterHeuristic("SA", func() Heuristic {
		return &eaoptHeuristic{name: "SA", installSA: true, generation: 300}
	})
	RegisterHeuristic("GA-CGT", func() Heuristic {
		return &eaoptHeuristic{name: "GA-CGT", installSA: false, generation: 300}
	})
}
