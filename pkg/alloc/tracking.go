package alloc

// Tracking counts what passes through the wrapped strategy.
type Tracking[T any] struct {
	inner Allocator[T]

	allocations   int
	deallocations int
	liveSlots     int
	constructed   int
	destroyed     int
}

// NewTracking wraps inner. A nil inner means Heap.
func NewTracking[T any](inner Allocator[T]) *Tracking[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Tracking[T]{inner: inner}
}

// Allocate counts successful allocations
func (t *Tracking[T]) Allocate(n int) ([]T, error) {
	block, err := t.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	t.allocations++
	t.liveSlots += len(block)
	return block, nil
}

// Deallocate counts released blocks
func (t *Tracking[T]) Deallocate(block []T) {
	t.deallocations++
	t.liveSlots -= len(block)
	t.inner.Deallocate(block)
}

// Construct counts element constructions
func (t *Tracking[T]) Construct(slot *T, value T) {
	t.constructed++
	t.inner.Construct(slot, value)
}

// Destroy counts element destructions
func (t *Tracking[T]) Destroy(slot *T) {
	t.destroyed++
	t.inner.Destroy(slot)
}

// Propagation delegates to the wrapped strategy
func (t *Tracking[T]) Propagation() Propagation {
	return t.inner.Propagation()
}

// Allocations returns the number of blocks handed out
func (t *Tracking[T]) Allocations() int { return t.allocations }

// LiveBlocks returns blocks allocated and not yet released
func (t *Tracking[T]) LiveBlocks() int { return t.allocations - t.deallocations }

// LiveSlots returns the total length of unreleased blocks
func (t *Tracking[T]) LiveSlots() int { return t.liveSlots }

// LiveElements returns constructions not yet matched by a destruction
func (t *Tracking[T]) LiveElements() int { return t.constructed - t.destroyed }
