package alloc

import (
	"fmt"

	"github.com/MegaBluejay/cpplabs/errors"
)

// Limited enforces a budget on the number of slots held at once.
type Limited[T any] struct {
	inner Allocator[T]
	limit int
	used  int
}

// NewLimited wraps inner with a budget of limit slots. A nil inner means Heap.
func NewLimited[T any](inner Allocator[T], limit int) *Limited[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Limited[T]{inner: inner, limit: limit}
}

// Allocate fails with ErrResourceExhausted when the block would exceed the budget
func (l *Limited[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, errors.WrapInvalid(errors.ErrNegativeCount, "Limited", "Allocate", "validate size")
	}
	if l.used+n > l.limit {
		return nil, errors.WrapFatal(errors.ErrResourceExhausted, "Limited", "Allocate",
			fmt.Sprintf("reserve %d slots (%d of %d in use)", n, l.used, l.limit))
	}
	block, err := l.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.used += len(block)
	return block, nil
}

// Deallocate returns the block's slots to the budget
func (l *Limited[T]) Deallocate(block []T) {
	l.used -= len(block)
	l.inner.Deallocate(block)
}

// Construct delegates to the wrapped strategy
func (l *Limited[T]) Construct(slot *T, value T) {
	l.inner.Construct(slot, value)
}

// Destroy delegates to the wrapped strategy
func (l *Limited[T]) Destroy(slot *T) {
	l.inner.Destroy(slot)
}

// Propagation delegates to the wrapped strategy
func (l *Limited[T]) Propagation() Propagation {
	return l.inner.Propagation()
}

// Used returns the number of slots currently held
func (l *Limited[T]) Used() int {
	return l.used
}

// Limit returns the budget
func (l *Limited[T]) Limit() int {
	return l.limit
}
