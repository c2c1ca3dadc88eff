package cycle

import "math/bits"

// MinCapacity is the smallest backing block a Cycle ever holds.
const MinCapacity = 8

// maxCapacity is the largest power of two that still fits an int.
const maxCapacity = 1 << (bits.UintSize - 2)

// physicalIndex maps a logical offset from start to a slot in a block of
// the given capacity. The double modulo keeps the result in [0, capacity)
// for negative offsets too, whatever sign the inner remainder takes.
func physicalIndex(start, logical, capacity int) int {
	return (capacity + (start+logical)%capacity) % capacity
}

// capacityFor returns the smallest power of two >= max(n, MinCapacity).
// A request of zero or less is clamped to 1 first. n must not exceed maxCapacity.
func capacityFor(n int) int {
	if n < 1 {
		n = 1
	}
	if n <= MinCapacity {
		return MinCapacity
	}
	return 1 << bits.Len(uint(n-1))
}
