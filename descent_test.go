package binpack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescentEmptyUnplacedIsNoOp(t *testing.T) {
	p := Packing{NewBinFrom([]Item{5, 5})}
	rng := rand.New(rand.NewSource(1))

	bins, residue := Descent(p, nil, 10, 5, rng)
	require.Empty(t, residue)
	require.Len(t, bins, 1)
}

func TestDescentAbsorbsSmallResidue(t *testing.T) {
	p := Packing{NewBinFrom([]Item{9}), NewBinFrom([]Item{9})}
	unplaced := []Item{1}
	rng := rand.New(rand.NewSource(5))

	bins, residue := Descent(p, unplaced, 10, 10, rng)
	require.Empty(t, residue, "a single leftover item should always be absorbed")
	require.True(t, MassConservationOK(append(Flatten(p), unplaced...), bins))
}

func TestDescentPreservesMassWhenResidueSurvives(t *testing.T) {
	p := Packing{NewBinFrom([]Item{10}), NewBinFrom([]Item{10})}
	unplaced := []Item{10, 10, 10}
	rng := rand.New(rand.NewSource(9))

	bins, residue := Descent(p, unplaced, 10, 3, rng)
	all := append(Flatten(bins), residue...)
	require.ElementsMatch(t, append(Flatten(p), unplaced...), all)
}

func TestFitsInAtMostTwoBins(t *testing.T) {
	require.True(t, fitsInAtMostTwoBins(nil, 10))
	require.True(t, fitsInAtMostTwoBins([]Item{5, 5}, 10))
	require.False(t, fitsInAtMostTwoBins([]Item{10, 10, 10}, 10))
}
