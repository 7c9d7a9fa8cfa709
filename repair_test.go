package binpack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepairPreservesMultiset(t *testing.T) {
	original := []Item{1, 2, 3, 4, 5}
	candidate := []Item{9, 2, 9, 4, 1} // two out-of-multiset 9s
	rng := rand.New(rand.NewSource(1))

	repaired := Repair(original, candidate, 20, rng)
	require.ElementsMatch(t, original, repaired)
}

func TestRepairAcceptsFullPermutation(t *testing.T) {
	original := []Item{1, 2, 3}
	candidate := []Item{3, 1, 2}
	rng := rand.New(rand.NewSource(1))

	repaired := Repair(original, candidate, 10, rng)
	require.ElementsMatch(t, original, repaired)
}

func TestRepairFallsBackWhenNothingAccepted(t *testing.T) {
	original := []Item{1, 2, 3}
	candidate := []Item{9, 9, 9}
	rng := rand.New(rand.NewSource(2))

	repaired := Repair(original, candidate, 10, rng)
	require.ElementsMatch(t, original, repaired)
}

func TestRepairToPacking(t *testing.T) {
	original := []Item{4, 4, 4, 4}
	candidate := []Item{4, 4, 4, 4}
	rng := rand.New(rand.NewSource(3))

	genome, packing := RepairToPacking(original, candidate, 8, rng)
	require.ElementsMatch(t, original, genome)
	require.True(t, CapacityRespected(packing, 8))
}
