// Package cycle provides Cycle, a growable random-access sequence backed by
// a circular block, with an injectable allocation strategy.
//
// # Overview
//
// A Cycle keeps its elements in a block of power-of-two capacity (at least
// MinCapacity) and remembers the physical slot of its first element. Every
// access maps a logical index through that offset, so inserting or erasing at
// the front only moves the offset and never touches the other elements.
// Pushing and popping at either end is O(1) amortized; inserting or erasing
// elsewhere is O(n).
//
// # Quick Start
//
//	c, err := cycle.NewFromSlice([]int{4, 6, 8, 8})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Release()
//
//	_, err = c.InsertSlice(c.CBegin(), []int{2, 4})
//	err = c.PushBack(10)
//
//	for i, v := range c.All() {
//		fmt.Println(i, v)
//	}
//
// With an allocation strategy and metrics:
//
//	c, err := cycle.New[*Event](
//		cycle.WithAllocator[*Event](alloc.NewLimited[*Event](nil, 1<<20)),
//		cycle.WithMetrics[*Event](registry, "event_window"),
//	)
//
// # Access
//
// Index, Ref and Set do not check bounds: an index outside [0, Len()) is
// folded into the block and reads whatever slot it lands on. At and AtRef
// check bounds and return an error wrapping errors.ErrOutOfRange, classified
// invalid, without modifying the container.
//
// # Iterators
//
// Iterator and ConstIterator hold the container and a logical index. They
// support the full random-access set (Add, Sub, Diff, Offset, ordering) in
// O(1). Positions passed to Insert and Erase are ConstIterators; convert a
// mutable iterator with Const. An iterator is invalidated by any reallocation
// and by any insert or erase that shifts the element it designates.
//
// Range-over-func iteration is available through All, Values and Backward.
//
// # Sequences of unknown length
//
// NewFromSeq and InsertSeq consume an iter.Seq exactly once. The elements
// are first gathered into a temporary block that doubles as it fills, then
// moved into place, and the temporary block is returned to the allocator.
//
// # Observability
//
// Statistics are always collected and available via Stats. Prometheus
// metrics are opt-in through WithMetrics; Release unregisters them.
// Reallocations are logged at debug level.
//
// # Thread Safety
//
// A Cycle is not safe for concurrent use. Only the Statistics counters may be
// read from another goroutine.
package cycle
