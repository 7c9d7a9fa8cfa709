package binpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBinFrom(t *testing.T) {
	bin := NewBinFrom([]Item{5, 3, 8})
	require.Equal(t, []Item{3, 5, 8}, bin.Items, "items should be canonicalized ascending")
	require.Equal(t, 16, bin.Load)
}

func TestBinResidual(t *testing.T) {
	bin := NewBinFrom([]Item{10, 20})
	require.Equal(t, 70, bin.Residual(100))
}

func TestBinInsertSorted(t *testing.T) {
	bin := NewBin()
	bin.insertSorted(5)
	bin.insertSorted(1)
	bin.insertSorted(3)
	require.Equal(t, []Item{1, 3, 5}, bin.Items)
	require.Equal(t, 9, bin.Load)
}

func TestBinClone(t *testing.T) {
	bin := NewBinFrom([]Item{1, 2, 3})
	clone := bin.Clone()
	clone.Items[0] = 99
	require.Equal(t, Item(1), bin.Items[0], "mutating the clone must not affect the original")
}

func TestFitnessAndTotalLoad(t *testing.T) {
	p := Packing{NewBinFrom([]Item{1, 2}), NewBinFrom([]Item{3})}
	require.Equal(t, 2, Fitness(p))
	require.Equal(t, 6, p.TotalLoad())
}

func TestPackingFlatten(t *testing.T) {
	p := Packing{NewBinFrom([]Item{3, 1}), NewBinFrom([]Item{2})}
	got := Flatten(p)
	require.ElementsMatch(t, []Item{1, 2, 3}, got)
}

func TestPackingClone(t *testing.T) {
	p := Packing{NewBinFrom([]Item{1, 2})}
	clone := p.Clone()
	clone[0].Items[0] = 42
	require.Equal(t, Item(1), p[0].Items[0])
}
