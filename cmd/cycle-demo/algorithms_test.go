package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MegaBluejay/cpplabs/pkg/cycle"
)

func TestAlgorithms(t *testing.T) {
	c, err := cycle.NewFromSlice([]int{1, 3, 3, 7, 9})
	require.NoError(t, err)
	require.NoError(t, c.PushFront(0))
	first, last := c.CBegin(), c.CEnd()

	assert.False(t, allOf(first, last, func(x int) bool { return x > 0 }))
	assert.True(t, allOf(first, last, func(x int) bool { return x < 10 }))

	assert.Equal(t, 4, find(first, last, 7).Index())
	assert.True(t, find(first, last, 42).Equal(last))

	assert.Equal(t, 2, adjacentFind(first, last).Index())
	assert.True(t, adjacentFind(first, first).Equal(first))

	assert.Equal(t, 5, maxElement(first, last).Index())
	assert.True(t, maxElement(last, last).Equal(last))

	for _, v := range []int{0, 1, 3, 7, 9} {
		assert.True(t, binarySearch(first, last, v), "contains %d", v)
	}
	for _, v := range []int{-1, 2, 8, 10} {
		assert.False(t, binarySearch(first, last, v), "contains %d", v)
	}
	assert.False(t, binarySearch(first, first, 0))
}
