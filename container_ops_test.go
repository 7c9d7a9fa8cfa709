package binpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcatenateMovesLongestFittingPrefix(t *testing.T) {
	a := NewBinFrom([]Item{5}) // residual 5 at capacity 10
	b := NewBinFrom([]Item{2, 3, 4})

	Concatenate(a, b, 10)

	require.Equal(t, []Item{2, 3, 5}, a.Items)
	require.Equal(t, 10, a.Load)
	require.Equal(t, []Item{4}, b.Items)
	require.Equal(t, 4, b.Load)
}

func TestConcatenateNoRoomIsNoOp(t *testing.T) {
	a := NewBinFrom([]Item{10})
	b := NewBinFrom([]Item{1})

	Concatenate(a, b, 10)
	require.Equal(t, []Item{10}, a.Items)
	require.Equal(t, []Item{1}, b.Items)
}

func TestChangePreservesMassAndCapacity(t *testing.T) {
	a := NewBinFrom([]Item{8})
	b := NewBinFrom([]Item{1, 2, 3})
	before := append(append([]Item(nil), a.Items...), b.Items...)

	Change(a, b, 10)

	after := append(append([]Item(nil), a.Items...), b.Items...)
	require.ElementsMatch(t, before, after)
	require.LessOrEqual(t, a.Load, 10)
	require.LessOrEqual(t, b.Load, 10)
}

func TestInsertMergesWhenPossible(t *testing.T) {
	a := NewBinFrom([]Item{3})
	b := NewBinFrom([]Item{4})

	merged := Insert(a, b, 10)

	require.True(t, merged)
	require.Equal(t, []Item{3, 4}, a.Items)
	require.Empty(t, b.Items)
	require.Equal(t, 0, b.Load)
}

func TestInsertCompositeMoveWhenNoMerge(t *testing.T) {
	a := NewBinFrom([]Item{9})
	b := NewBinFrom([]Item{1, 8})
	beforeTotal := a.Load + b.Load

	merged := Insert(a, b, 10)

	require.False(t, merged)
	require.LessOrEqual(t, a.Load, 10)
	require.LessOrEqual(t, b.Load, 10)
	require.Equal(t, beforeTotal, a.Load+b.Load, "composite move must conserve total load")
}

func TestRemoveOne(t *testing.T) {
	out := removeOne([]Item{1, 2, 2, 3}, 2)
	require.Equal(t, []Item{1, 2, 3}, out)
}
