package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModIsNeverNegative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Mod(14, 12))
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(uint8(0), Mod(uint8(24), uint8(12)))
}

func TestMapKeepsOrder(t *testing.T) {
	res := Map([]int{1, 2, 3}, func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, res)
}

func TestAny(t *testing.T) {
	assert := assert.New(t)
	isOdd := func(i int) bool { return i%2 == 1 }
	assert.True(Any([]int{2, 4, 5}, isOdd))
	assert.False(Any([]int{2, 4}, isOdd))
	assert.False(Any(nil, isOdd))
}

func TestDedupeOnlyDropsNeighbours(t *testing.T) {
	assert.Equal(t, []int{1, 2, 1, 3}, Dedupe([]int{1, 1, 2, 1, 3, 3, 3}))
}

func TestMin(t *testing.T) {
	assert.Equal(t, uint32(1), Min(uint32(1), uint32(4)))
}
