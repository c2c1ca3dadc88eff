package alloc

import (
	"math/bits"
	"sync"

	"github.com/MegaBluejay/cpplabs/errors"
)

// Pooled recycles released blocks whose length is a power of two.
// Other sizes fall through to make. The zero value is ready to use.
type Pooled[T any] struct {
	classes [bits.UintSize]sync.Pool
}

// NewPooled creates a pooled strategy
func NewPooled[T any]() *Pooled[T] {
	return &Pooled[T]{}
}

func sizeClass(n int) (int, bool) {
	if n <= 0 || n&(n-1) != 0 {
		return 0, false
	}
	return bits.TrailingZeros(uint(n)), true
}

// Allocate reuses a pooled block of length n when one is available
func (p *Pooled[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, errors.WrapInvalid(errors.ErrNegativeCount, "Pooled", "Allocate", "validate size")
	}
	if class, ok := sizeClass(n); ok {
		if v := p.classes[class].Get(); v != nil {
			return *(v.(*[]T)), nil
		}
	}
	return make([]T, n), nil
}

// Deallocate zeroes the block and returns it to its size class
func (p *Pooled[T]) Deallocate(block []T) {
	class, ok := sizeClass(len(block))
	if !ok {
		return
	}
	clear(block)
	p.classes[class].Put(&block)
}

// Construct stores value in slot
func (p *Pooled[T]) Construct(slot *T, value T) {
	*slot = value
}

// Destroy zeroes slot
func (p *Pooled[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// Propagation: a copy gets a fresh Heap, moves and swaps keep the pool
func (p *Pooled[T]) Propagation() Propagation {
	return Propagation{OnCopy: false, OnMove: true, OnSwap: true}
}
