package cycle

import (
	"iter"
	"log/slog"
	"time"

	"github.com/MegaBluejay/cpplabs/errors"
	"github.com/MegaBluejay/cpplabs/pkg/alloc"
)

// Cycle is a growable double-ended sequence stored in a circular block.
// It is not safe for concurrent use.
type Cycle[T any] struct {
	alloc alloc.Allocator[T]
	block []T // len(block) is the capacity: a power of two >= MinCapacity
	size  int
	start int // physical slot of logical index 0

	logger  *slog.Logger
	stats   *Statistics   // always present
	metrics *cycleMetrics // optional
}

// newCycle allocates a block of exactly capacity slots through the configured strategy.
func newCycle[T any](capacity int, opts *cycleOptions[T]) (*Cycle[T], error) {
	c := &Cycle[T]{
		alloc:  opts.allocator,
		logger: opts.logger.With("component", "cycle"),
		stats:  NewStatistics(),
	}

	if opts.metricsReg != nil {
		metrics, err := newCycleMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapTransient(err, "Cycle", "new", "metrics registration")
		}
		c.metrics = metrics
		c.logger = c.logger.With("name", opts.metricsPrefix)
	}

	block, err := c.allocate(capacity)
	if err != nil {
		if c.metrics != nil {
			c.metrics.unregister()
		}
		return nil, err
	}
	c.block = block

	if c.metrics != nil {
		c.metrics.core.RecordContainerCreated(c.metrics.prefix)
		c.metrics.updateSize(0, capacity)
	}

	return c, nil
}

// New creates an empty container with MinCapacity slots.
func New[T any](options ...Option[T]) (*Cycle[T], error) {
	return newCycle(MinCapacity, applyOptions(options...))
}

// NewFilled creates a container holding count copies of value.
func NewFilled[T any](count int, value T, options ...Option[T]) (*Cycle[T], error) {
	if count < 0 {
		return nil, errors.WrapInvalid(errors.ErrNegativeCount, "Cycle", "NewFilled", "validate count")
	}
	if count > maxCapacity {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity, "Cycle", "NewFilled", "validate count")
	}
	c, err := newCycle(capacityFor(count), applyOptions(options...))
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		c.alloc.Construct(&c.block[i], value)
	}
	c.grew(count)
	return c, nil
}

// NewSized creates a container holding count default-constructed elements.
func NewSized[T any](count int, options ...Option[T]) (*Cycle[T], error) {
	var zero T
	return NewFilled(count, zero, options...)
}

// NewFromSlice creates a container holding a copy of values.
func NewFromSlice[T any](values []T, options ...Option[T]) (*Cycle[T], error) {
	c, err := newCycle(capacityFor(len(values)), applyOptions(options...))
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		c.alloc.Construct(&c.block[i], v)
	}
	c.grew(len(values))
	return c, nil
}

// NewFromRange creates a container holding copies of [first, last).
// The length is known up front, so elements are copied directly.
func NewFromRange[T any](first, last ConstIterator[T], options ...Option[T]) (*Cycle[T], error) {
	n := last.Diff(first)
	c, err := newCycle(capacityFor(n), applyOptions(options...))
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		c.alloc.Construct(&c.block[i], first.Offset(i))
	}
	c.grew(n)
	return c, nil
}

// NewFromSeq creates a container from a sequence of unknown length.
// The sequence is consumed exactly once.
func NewFromSeq[T any](seq iter.Seq[T], options ...Option[T]) (*Cycle[T], error) {
	c, err := New(options...)
	if err != nil {
		return nil, err
	}
	if _, err := c.InsertSeq(c.CBegin(), seq); err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

// Clone creates an element-wise copy of src with the same capacity and layout.
// src's allocator is shared when its copy-propagation flag is set; otherwise
// the allocator from options (default alloc.Heap) is used. Metrics and logger
// come from options only.
func Clone[T any](src *Cycle[T], options ...Option[T]) (*Cycle[T], error) {
	opts := applyOptions(options...)
	if src.alloc.Propagation().OnCopy {
		opts.allocator = src.alloc
	}
	c, err := newCycle(len(src.block), opts)
	if err != nil {
		return nil, err
	}
	c.start = src.start
	for i := 0; i < src.size; i++ {
		p := src.physical(i)
		c.alloc.Construct(&c.block[p], src.block[p])
	}
	c.grew(src.size)
	return c, nil
}

// NewMoved creates a container that takes over src's elements one by one.
// src's allocator is adopted when its move-propagation flag is set. src is
// left empty and usable.
func NewMoved[T any](src *Cycle[T], options ...Option[T]) (*Cycle[T], error) {
	opts := applyOptions(options...)
	if src.alloc.Propagation().OnMove {
		opts.allocator = src.alloc
	}
	c, err := newCycle(len(src.block), opts)
	if err != nil {
		return nil, err
	}
	c.start = src.start
	for i := 0; i < src.size; i++ {
		p := src.physical(i)
		c.moveConstruct(&c.block[p], &src.block[p], src.alloc)
	}
	c.grew(src.size)
	src.stats.Erase(src.size)
	src.size = 0
	src.start = 0
	src.syncMetrics()
	return c, nil
}

// Assign replaces the contents with a copy of src, including its capacity and
// layout. The allocator is replaced by src's when its copy-propagation flag is
// set. On allocation failure the container is left unchanged.
func (c *Cycle[T]) Assign(src *Cycle[T]) error {
	if c == src {
		return nil
	}
	next := c.alloc
	if src.alloc.Propagation().OnCopy {
		next = src.alloc
	}
	block, err := c.allocateWith(next, len(src.block))
	if err != nil {
		return err
	}
	c.adoptBlock(next, block, src.start)
	for i := 0; i < src.size; i++ {
		p := src.physical(i)
		c.alloc.Construct(&c.block[p], src.block[p])
	}
	c.grew(src.size)
	return nil
}

// MoveAssign replaces the contents by moving src's elements across. The
// allocator is replaced by src's when its move-propagation flag is set.
// src is left empty and usable.
func (c *Cycle[T]) MoveAssign(src *Cycle[T]) error {
	if c == src {
		return nil
	}
	next := c.alloc
	if src.alloc.Propagation().OnMove {
		next = src.alloc
	}
	block, err := c.allocateWith(next, len(src.block))
	if err != nil {
		return err
	}
	c.adoptBlock(next, block, src.start)
	for i := 0; i < src.size; i++ {
		p := src.physical(i)
		c.moveConstruct(&c.block[p], &src.block[p], src.alloc)
	}
	c.grew(src.size)
	src.stats.Erase(src.size)
	src.size = 0
	src.start = 0
	src.syncMetrics()
	return nil
}

// AssignSlice replaces the contents with a copy of values.
func (c *Cycle[T]) AssignSlice(values []T) error {
	block, err := c.allocateWith(c.alloc, capacityFor(len(values)))
	if err != nil {
		return err
	}
	c.adoptBlock(c.alloc, block, 0)
	for i, v := range values {
		c.alloc.Construct(&c.block[i], v)
	}
	c.grew(len(values))
	return nil
}

// Release destroys every element and returns the block to the allocator.
// The container must not be used afterwards.
func (c *Cycle[T]) Release() {
	if c.block == nil {
		return
	}
	c.Clear()
	c.alloc.Deallocate(c.block)
	c.block = nil
	if c.metrics != nil {
		c.metrics.core.RecordContainerReleased(c.metrics.prefix)
		c.metrics.unregister()
	}
}

// Allocator returns the container's allocation strategy.
func (c *Cycle[T]) Allocator() alloc.Allocator[T] {
	return c.alloc
}

// Stats returns the container's statistics (always available).
func (c *Cycle[T]) Stats() *Statistics {
	return c.stats
}

func (c *Cycle[T]) physical(logical int) int {
	return physicalIndex(c.start, logical, len(c.block))
}

func (c *Cycle[T]) allocate(n int) ([]T, error) {
	return c.allocateWith(c.alloc, n)
}

// allocateWith returns allocation failures exactly as the strategy produced them.
func (c *Cycle[T]) allocateWith(a alloc.Allocator[T], n int) ([]T, error) {
	block, err := a.Allocate(n)
	if err != nil {
		if c.metrics != nil {
			c.metrics.core.RecordAllocationFailure(c.metrics.prefix)
		}
		c.logger.Debug("allocation refused", "slots", n, "error", err)
		return nil, err
	}
	if c.metrics != nil {
		c.metrics.core.RecordBlockAllocated(c.metrics.prefix)
	}
	return block, nil
}

// adoptBlock destroys the current contents, releases the current block and
// installs block (obtained from next) with an empty logical range.
func (c *Cycle[T]) adoptBlock(next alloc.Allocator[T], block []T, start int) {
	c.Clear()
	c.alloc.Deallocate(c.block)
	c.alloc = next
	c.block = block
	c.start = start
}

// moveConstruct moves *src (owned by from) into the empty slot dst.
func (c *Cycle[T]) moveConstruct(dst, src *T, from alloc.Allocator[T]) {
	c.alloc.Construct(dst, *src)
	from.Destroy(src)
}

// moveSlot moves the element at logical index from into the empty logical slot to.
func (c *Cycle[T]) moveSlot(from, to int) {
	c.moveConstruct(&c.block[c.physical(to)], &c.block[c.physical(from)], c.alloc)
}

// grew records n elements constructed past the old end.
func (c *Cycle[T]) grew(n int) {
	c.size += n
	c.stats.Insert(n, c.size)
	if c.metrics != nil {
		c.metrics.recordInsert(n, c.size, len(c.block))
	}
}

func (c *Cycle[T]) syncMetrics() {
	if c.metrics != nil {
		c.metrics.updateSize(c.size, len(c.block))
	}
}

// reallocate moves the live elements, in logical order, to slots [0, size)
// of a new block of newCapacity slots.
func (c *Cycle[T]) reallocate(newCapacity int) error {
	began := time.Now()
	block, err := c.allocate(newCapacity)
	if err != nil {
		return err
	}
	for i := 0; i < c.size; i++ {
		c.moveConstruct(&block[i], &c.block[c.physical(i)], c.alloc)
	}
	oldCapacity := len(c.block)
	c.alloc.Deallocate(c.block)
	c.block = block
	c.start = 0

	c.stats.Reallocation()
	if c.metrics != nil {
		c.metrics.recordReallocation(c.size, c.size, newCapacity, time.Since(began))
	}
	c.logger.Debug("reallocated backing block",
		"old_capacity", oldCapacity,
		"new_capacity", newCapacity,
		"size", c.size)
	return nil
}
