package cycle

import (
	"iter"

	"github.com/MegaBluejay/cpplabs/errors"
)

// makeRoom opens count empty slots at logical position p. Inserting at the
// front of a non-empty container only moves start; anywhere else the suffix
// [p, size) is shifted back to front. size is not changed.
func (c *Cycle[T]) makeRoom(p, count int) error {
	if count == 0 {
		return nil
	}
	if count > maxCapacity-c.size {
		return errors.WrapInvalid(errors.ErrInvalidCapacity, "Cycle", "Insert", "validate count")
	}
	if err := c.Reserve(c.size + count); err != nil {
		return err
	}
	if p == 0 && c.size != 0 {
		c.start = c.physical(-count)
		c.stats.FrontShift()
		return nil
	}
	for i := c.size - 1; i >= p; i-- {
		c.moveSlot(i, i+count)
	}
	return nil
}

// closeGap removes count already destroyed slots at logical position p.
func (c *Cycle[T]) closeGap(p, count int) {
	if p == 0 {
		c.start = c.physical(count)
		c.stats.FrontShift()
		return
	}
	for i := p + count; i < c.size; i++ {
		c.moveSlot(i, i-count)
	}
}

// Insert inserts value before pos and returns an iterator to it.
func (c *Cycle[T]) Insert(pos ConstIterator[T], value T) (Iterator[T], error) {
	p := pos.idx
	if err := c.makeRoom(p, 1); err != nil {
		return Iterator[T]{c: c, i: p}, err
	}
	c.alloc.Construct(c.Ref(p), value)
	c.grew(1)
	return Iterator[T]{c: c, i: p}, nil
}

// InsertN inserts count copies of value before pos and returns an iterator
// to the first of them.
func (c *Cycle[T]) InsertN(pos ConstIterator[T], count int, value T) (Iterator[T], error) {
	p := pos.idx
	if count < 0 {
		return Iterator[T]{c: c, i: p}, errors.WrapInvalid(errors.ErrNegativeCount, "Cycle", "InsertN", "validate count")
	}
	if err := c.makeRoom(p, count); err != nil {
		return Iterator[T]{c: c, i: p}, err
	}
	for k := 0; k < count; k++ {
		c.alloc.Construct(c.Ref(p+k), value)
	}
	c.grew(count)
	return Iterator[T]{c: c, i: p}, nil
}

// InsertSlice inserts copies of values before pos.
func (c *Cycle[T]) InsertSlice(pos ConstIterator[T], values []T) (Iterator[T], error) {
	p := pos.idx
	if err := c.makeRoom(p, len(values)); err != nil {
		return Iterator[T]{c: c, i: p}, err
	}
	for k, v := range values {
		c.alloc.Construct(c.Ref(p+k), v)
	}
	c.grew(len(values))
	return Iterator[T]{c: c, i: p}, nil
}

// InsertRange inserts copies of [first, last) before pos. The range may
// belong to c itself.
func (c *Cycle[T]) InsertRange(pos, first, last ConstIterator[T]) (Iterator[T], error) {
	n := last.Diff(first)
	if first.owner == c {
		values := make([]T, n)
		for k := range values {
			values[k] = first.Offset(k)
		}
		return c.InsertSlice(pos, values)
	}

	p := pos.idx
	if err := c.makeRoom(p, n); err != nil {
		return Iterator[T]{c: c, i: p}, err
	}
	for k := 0; k < n; k++ {
		c.alloc.Construct(c.Ref(p+k), first.Offset(k))
	}
	c.grew(n)
	return Iterator[T]{c: c, i: p}, nil
}

// InsertSeq drains seq, whose length is not known up front, and inserts
// its elements before pos. seq is consumed exactly once.
func (c *Cycle[T]) InsertSeq(pos ConstIterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	p := pos.idx
	tmp, n, _, err := readAll(seq, c.alloc)
	if err != nil {
		if c.metrics != nil {
			c.metrics.core.RecordAllocationFailure(c.metrics.prefix)
		}
		return Iterator[T]{c: c, i: p}, err
	}
	defer c.alloc.Deallocate(tmp)

	if err := c.makeRoom(p, n); err != nil {
		for k := 0; k < n; k++ {
			c.alloc.Destroy(&tmp[k])
		}
		return Iterator[T]{c: c, i: p}, err
	}
	for k := 0; k < n; k++ {
		c.moveConstruct(c.Ref(p+k), &tmp[k], c.alloc)
	}
	c.grew(n)
	return Iterator[T]{c: c, i: p}, nil
}

// Emplace constructs a default element before pos and lets build fill it in place.
func (c *Cycle[T]) Emplace(pos ConstIterator[T], build func(*T)) (Iterator[T], error) {
	p := pos.idx
	if err := c.makeRoom(p, 1); err != nil {
		return Iterator[T]{c: c, i: p}, err
	}
	var zero T
	slot := c.Ref(p)
	c.alloc.Construct(slot, zero)
	if build != nil {
		build(slot)
	}
	c.grew(1)
	return Iterator[T]{c: c, i: p}, nil
}

// Erase removes the element at pos and returns an iterator to the element
// now at that position, or End().
func (c *Cycle[T]) Erase(pos ConstIterator[T]) Iterator[T] {
	return c.EraseRange(pos, pos.Next())
}

// EraseRange removes [first, last) and returns an iterator to the element
// now at first's position, or End().
func (c *Cycle[T]) EraseRange(first, last ConstIterator[T]) Iterator[T] {
	p, n := first.idx, last.Diff(first)
	if n <= 0 {
		return Iterator[T]{c: c, i: p}
	}
	for k := 0; k < n; k++ {
		c.alloc.Destroy(c.Ref(p + k))
	}
	c.closeGap(p, n)
	c.size -= n

	c.stats.Erase(n)
	if c.metrics != nil {
		c.metrics.recordErase(n, c.size, len(c.block))
	}
	return Iterator[T]{c: c, i: p}
}

// PushBack appends value.
func (c *Cycle[T]) PushBack(value T) error {
	_, err := c.Insert(c.CEnd(), value)
	return err
}

// EmplaceBack appends a default element, lets build fill it in place and
// returns a pointer to it.
func (c *Cycle[T]) EmplaceBack(build func(*T)) (*T, error) {
	it, err := c.Emplace(c.CEnd(), build)
	if err != nil {
		return nil, err
	}
	return it.Ref(), nil
}

// PopBack removes and returns the last element. ok is false when empty.
func (c *Cycle[T]) PopBack() (value T, ok bool) {
	if c.size == 0 {
		return value, false
	}
	value = c.Back()
	c.Erase(c.CEnd().Prev())
	return value, true
}

// PushFront prepends value without moving existing elements.
func (c *Cycle[T]) PushFront(value T) error {
	_, err := c.Insert(c.CBegin(), value)
	return err
}

// PopFront removes and returns the first element. ok is false when empty.
func (c *Cycle[T]) PopFront() (value T, ok bool) {
	if c.size == 0 {
		return value, false
	}
	value = c.Front()
	c.Erase(c.CBegin())
	return value, true
}

// Resize changes the length to count, appending default elements or
// dropping trailing ones.
func (c *Cycle[T]) Resize(count int) error {
	var zero T
	return c.ResizeWith(count, zero)
}

// ResizeWith changes the length to count, appending copies of value or
// dropping trailing elements.
func (c *Cycle[T]) ResizeWith(count int, value T) error {
	if count < 0 {
		return errors.WrapInvalid(errors.ErrNegativeCount, "Cycle", "Resize", "validate count")
	}
	if count < c.size {
		c.EraseRange(c.CBegin().Add(count), c.CEnd())
		return nil
	}
	_, err := c.InsertN(c.CEnd(), count-c.size, value)
	return err
}

// Swap exchanges contents with other in O(1). The allocation strategies are
// exchanged as well when either of them propagates on swap.
func (c *Cycle[T]) Swap(other *Cycle[T]) {
	if c == other {
		return
	}
	c.block, other.block = other.block, c.block
	c.size, other.size = other.size, c.size
	c.start, other.start = other.start, c.start
	if c.alloc.Propagation().OnSwap || other.alloc.Propagation().OnSwap {
		c.alloc, other.alloc = other.alloc, c.alloc
	}
	c.syncMetrics()
	other.syncMetrics()
}

// Clear destroys every element and keeps the capacity.
func (c *Cycle[T]) Clear() {
	n := c.size
	for i := 0; i < n; i++ {
		c.alloc.Destroy(c.Ref(i))
	}
	c.size = 0
	c.start = 0
	if n == 0 {
		return
	}
	c.stats.Erase(n)
	if c.metrics != nil {
		c.metrics.recordErase(n, 0, len(c.block))
	}
}
