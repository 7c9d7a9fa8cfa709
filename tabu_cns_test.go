package binpack

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCNSTabuBumpAndTenure(t *testing.T) {
	tabu := NewCNSTabu()
	bin := uuid.New()

	tabu.Bump(5, bin)
	require.Equal(t, 0, tabu.TenureOf(5, bin), "a single bump yields frequency/2 == 0")
	require.False(t, tabu.IsTabu(5, bin))

	tabu.Bump(5, bin)
	tabu.Bump(5, bin)
	require.Equal(t, 1, tabu.TenureOf(5, bin), "frequency 3 -> tenure 1")
	require.True(t, tabu.IsTabu(5, bin))
}

func TestCNSTabuTickPurges(t *testing.T) {
	tabu := NewCNSTabu()
	bin := uuid.New()
	for i := 0; i < 3; i++ {
		tabu.Bump(7, bin)
	}
	require.True(t, tabu.IsTabu(7, bin))

	tabu.Tick()
	require.False(t, tabu.IsTabu(7, bin), "tenure reached 0 and entry should be purged")
	require.Equal(t, 0, tabu.TenureOf(7, bin))
}

func TestCNSTabuReset(t *testing.T) {
	tabu := NewCNSTabu()
	bin := uuid.New()
	tabu.Bump(1, bin)
	tabu.Bump(1, bin)
	tabu.Bump(1, bin)
	require.True(t, tabu.IsTabu(1, bin))

	tabu.Reset()
	require.False(t, tabu.IsTabu(1, bin))
}

func TestCNSTabuDistinctBinsIndependent(t *testing.T) {
	tabu := NewCNSTabu()
	binA, binB := uuid.New(), uuid.New()
	tabu.Bump(2, binA)
	tabu.Bump(2, binA)
	tabu.Bump(2, binA)

	require.True(t, tabu.IsTabu(2, binA))
	require.False(t, tabu.IsTabu(2, binB), "same item in a different bin is a distinct key")
}
