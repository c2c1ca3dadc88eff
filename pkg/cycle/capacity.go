package cycle

import (
	"github.com/MegaBluejay/cpplabs/errors"
)

// Len returns the number of live elements.
func (c *Cycle[T]) Len() int { return c.size }

// Cap returns the number of slots in the backing block.
func (c *Cycle[T]) Cap() int { return len(c.block) }

// Empty reports whether the container holds no elements.
func (c *Cycle[T]) Empty() bool { return c.size == 0 }

// MaxSize returns the largest capacity a container can grow to.
func (c *Cycle[T]) MaxSize() int { return maxCapacity }

// Reserve grows the backing block so that it holds at least n slots.
// It never shrinks the block.
func (c *Cycle[T]) Reserve(n int) error {
	if n > maxCapacity {
		return errors.WrapInvalid(errors.ErrInvalidCapacity, "Cycle", "Reserve", "validate capacity")
	}
	target := capacityFor(n)
	if target <= len(c.block) {
		return nil
	}
	return c.reallocate(target)
}

// ShrinkToFit reallocates to the smallest capacity that still holds the
// live elements, if that is smaller than the current one.
func (c *Cycle[T]) ShrinkToFit() error {
	target := capacityFor(c.size)
	if target >= len(c.block) {
		return nil
	}
	return c.reallocate(target)
}
