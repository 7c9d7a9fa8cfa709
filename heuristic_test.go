package binpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeuristicRegistryHasAllFlavors(t *testing.T) {
	names := HeuristicNames()
	for _, want := range []string{"PSO", "Jaya", "ABC", "SA", "GA-CGT", "Reactor"} {
		require.Contains(t, names, want)
	}
}

func TestGetHeuristicUnknownName(t *testing.T) {
	_, err := GetHeuristic("does-not-exist")
	require.Error(t, err)
}

func TestSeedRowTruncatesAndRepeats(t *testing.T) {
	require.Equal(t, []Item{1, 2}, seedRow([]Item{1, 2, 3}, 2))
	require.Equal(t, []Item{1, 2, 1}, seedRow([]Item{1, 2}, 3))
	require.Nil(t, seedRow(nil, 3))
}
