package binpack

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTheoreticalMinimum(t *testing.T) {
	cases := []struct {
		items    []Item
		capacity int
		want     int
	}{
		{[]Item{10, 10, 10}, 10, 3},
		{[]Item{1, 1, 1, 1, 1}, 2, 3},
		{nil, 10, 0},
		{[]Item{5}, 0, 0},
	}
	for _, c := range cases {
		require.Equal(t, c.want, TheoreticalMinimum(c.items, c.capacity))
	}
}

func TestMassConservationOK(t *testing.T) {
	items := []Item{1, 2, 3, 4}
	p := Packing{NewBinFrom([]Item{1, 4}), NewBinFrom([]Item{2, 3})}
	require.True(t, MassConservationOK(items, p))

	broken := Packing{NewBinFrom([]Item{1, 4}), NewBinFrom([]Item{2})}
	require.False(t, MassConservationOK(items, broken))
}

func TestCapacityRespected(t *testing.T) {
	ok := Packing{NewBinFrom([]Item{5, 5})}
	require.True(t, CapacityRespected(ok, 10))

	over := Packing{NewBinFrom([]Item{6, 6})}
	require.False(t, CapacityRespected(over, 10))
}

func TestSortedMerge(t *testing.T) {
	got := SortedMerge([]Item{1, 3, 5}, []Item{2, 4, 6})
	require.Equal(t, []Item{1, 2, 3, 4, 5, 6}, got)
}

func TestContinue(t *testing.T) {
	b := Budget{MaxIt: 5, Start: time.Now()}
	require.True(t, Continue(3, 10, b, 0))
	require.False(t, Continue(3, 3, b, 0), "already at target")
	require.False(t, Continue(3, 10, b, 6), "over MaxIt")
}

func TestContinueTimeExceeded(t *testing.T) {
	b := Budget{TimeMax: time.Millisecond, Start: time.Now().Add(-time.Second)}
	require.False(t, Continue(0, 10, b, 0))
}

func TestShuffledPreservesMultiset(t *testing.T) {
	items := []Item{1, 2, 3, 4, 5}
	rng := rand.New(rand.NewSource(1))
	got := shuffled(items, rng)
	require.ElementsMatch(t, items, got)
}
