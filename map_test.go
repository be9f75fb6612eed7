package parwork

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSquares(t *testing.T) {
	got := Map([]int{1, 2, 3, 4}, 3, func(n int) int { return n * n })
	assert.Equal(t, []int{1, 4, 9, 16}, got)
}

func TestMapAlignsResultsWithInput(t *testing.T) {
	items := []string{"alpha", "beta", "gamma", "delta", "epsilon"}

	got := Map(items, 2, func(s string) string {
		return fmt.Sprintf("<%s>", s)
	})

	require.Len(t, got, len(items))
	for i, s := range items {
		assert.Equal(t, "<"+s+">", got[i], "result %d should come from items[%d]", i, i)
	}
}

func TestMapEmptyInput(t *testing.T) {
	got := Map([]int{}, 4, func(n int) int { return n })

	require.NotNil(t, got, "Map always returns a buffer, even an empty one")
	assert.Empty(t, got)
}

func TestMapMatchesSerialMapAcrossConcurrency(t *testing.T) {
	items := make([]int, 32)
	for i := range items {
		items[i] = i
	}
	fn := func(n int) int { return n*n - n }

	want := SerialMap(items, 1, fn)
	for m := 1; m <= len(items); m++ {
		got := Map(items, m, fn)
		require.Equal(t, want, got, "parallel output should match serial baseline at maxConcurrency=%d", m)
	}
}

func TestMapClampsOversizedConcurrency(t *testing.T) {
	got := Map([]int{2, 4, 6}, 1000, func(n int) int { return n / 2 })
	assert.Equal(t, []int{1, 2, 3}, got)
}
