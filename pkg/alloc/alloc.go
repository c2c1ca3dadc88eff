package alloc

import (
	"github.com/MegaBluejay/cpplabs/errors"
)

// Propagation says which container operations carry the strategy along with the contents.
type Propagation struct {
	OnCopy bool
	OnMove bool
	OnSwap bool
}

// Allocator supplies raw blocks and constructs/destroys the elements living in them.
type Allocator[T any] interface {
	// Allocate returns a block of exactly n slots. All slots hold the zero value.
	Allocate(n int) ([]T, error)
	// Deallocate releases a block previously returned by Allocate.
	Deallocate(block []T)
	// Construct starts the life of an element in slot.
	Construct(slot *T, value T)
	// Destroy ends the life of the element in slot, leaving the zero value.
	Destroy(slot *T)
	// Propagation reports the strategy's copy/move/swap behaviour.
	Propagation() Propagation
}

// Heap allocates with make and relies on the garbage collector to reclaim blocks.
type Heap[T any] struct{}

// Allocate returns a fresh block of n zero-valued slots
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, errors.WrapInvalid(errors.ErrNegativeCount, "Heap", "Allocate", "validate size")
	}
	return make([]T, n), nil
}

// Deallocate drops the block; the garbage collector reclaims it
func (Heap[T]) Deallocate([]T) {}

// Construct stores value in slot
func (Heap[T]) Construct(slot *T, value T) {
	*slot = value
}

// Destroy zeroes slot so the old element does not stay reachable
func (Heap[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// Propagation reports that Heap follows the contents everywhere
func (Heap[T]) Propagation() Propagation {
	return Propagation{OnCopy: true, OnMove: true, OnSwap: true}
}

type propagating[T any] struct {
	Allocator[T]
	flags Propagation
}

func (p propagating[T]) Propagation() Propagation {
	return p.flags
}

// WithPropagation wraps inner, replacing its propagation flags
func WithPropagation[T any](inner Allocator[T], flags Propagation) Allocator[T] {
	return propagating[T]{Allocator: inner, flags: flags}
}
