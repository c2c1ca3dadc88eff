package cycle

import (
	"fmt"

	"github.com/MegaBluejay/cpplabs/errors"
)

// Index returns the element at logical index i without a bounds check.
// i must be in [0, Len()); any other value reads some slot of the block.
func (c *Cycle[T]) Index(i int) T {
	return c.block[c.physical(i)]
}

// Ref returns a pointer to the element at logical index i without a bounds check.
func (c *Cycle[T]) Ref(i int) *T {
	return &c.block[c.physical(i)]
}

// Set replaces the element at logical index i without a bounds check.
func (c *Cycle[T]) Set(i int, value T) {
	c.block[c.physical(i)] = value
}

// At returns the element at logical index i, or an error wrapping
// errors.ErrOutOfRange when i is outside [0, Len()).
func (c *Cycle[T]) At(i int) (T, error) {
	if err := c.checkIndex(i, "At"); err != nil {
		var zero T
		return zero, err
	}
	return c.Index(i), nil
}

// AtRef is the checked counterpart of Ref.
func (c *Cycle[T]) AtRef(i int) (*T, error) {
	if err := c.checkIndex(i, "AtRef"); err != nil {
		return nil, err
	}
	return c.Ref(i), nil
}

// Front returns the first element. The container must not be empty.
func (c *Cycle[T]) Front() T {
	return c.Index(0)
}

// Back returns the last element. The container must not be empty.
func (c *Cycle[T]) Back() T {
	return c.Index(c.size - 1)
}

func (c *Cycle[T]) checkIndex(i int, operation string) error {
	if i >= 0 && i < c.size {
		return nil
	}
	c.stats.OutOfRange()
	if c.metrics != nil {
		c.metrics.core.RecordOutOfRange(c.metrics.prefix)
	}
	return errors.WrapInvalid(
		fmt.Errorf("%w: index %d, size %d", errors.ErrOutOfRange, i, c.size),
		"Cycle", operation, "bounds check")
}
