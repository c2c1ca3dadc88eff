package cycle

import (
	"cmp"
	"iter"
)

// Iterator is a random-access cursor over a Cycle: a container plus a
// logical index. It never caches a physical slot, so it stays meaningful
// across operations that only move start. It is invalidated by reallocation
// and by shifts that move the element it designates.
type Iterator[T any] struct {
	c *Cycle[T]
	i int
}

// ConstIterator is the read-only counterpart of Iterator. Its fields differ
// from Iterator's so the two types are not convertible; Const is the only
// way from one to the other.
type ConstIterator[T any] struct {
	owner *Cycle[T]
	idx   int
}

// Begin returns an iterator at logical index 0.
func (c *Cycle[T]) Begin() Iterator[T] { return Iterator[T]{c: c} }

// End returns an iterator one past the last element.
func (c *Cycle[T]) End() Iterator[T] { return Iterator[T]{c: c, i: c.size} }

// CBegin returns a read-only iterator at logical index 0.
func (c *Cycle[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{owner: c} }

// CEnd returns a read-only iterator one past the last element.
func (c *Cycle[T]) CEnd() ConstIterator[T] { return ConstIterator[T]{owner: c, idx: c.size} }

// IteratorAt returns an iterator at logical index i.
func (c *Cycle[T]) IteratorAt(i int) Iterator[T] { return Iterator[T]{c: c, i: i} }

// All yields index/value pairs front to back.
func (c *Cycle[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < c.size; i++ {
			if !yield(i, c.Index(i)) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (c *Cycle[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < c.size; i++ {
			if !yield(c.Index(i)) {
				return
			}
		}
	}
}

// Backward yields index/value pairs back to front.
func (c *Cycle[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := c.size - 1; i >= 0; i-- {
			if !yield(i, c.Index(i)) {
				return
			}
		}
	}
}

// Slice returns the elements in logical order as a new slice.
func (c *Cycle[T]) Slice() []T {
	out := make([]T, c.size)
	for i := range out {
		out[i] = c.Index(i)
	}
	return out
}

// Get returns the element the iterator designates.
func (it Iterator[T]) Get() T { return it.c.Index(it.i) }

// Ref returns a pointer to the element the iterator designates.
func (it Iterator[T]) Ref() *T { return it.c.Ref(it.i) }

// Set replaces the element the iterator designates.
func (it Iterator[T]) Set(value T) { it.c.Set(it.i, value) }

// Index returns the iterator's logical index.
func (it Iterator[T]) Index() int { return it.i }

// Offset returns the element n positions away, it[n].
func (it Iterator[T]) Offset(n int) T { return it.c.Index(it.i + n) }

// Next returns an iterator one position forward.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns an iterator one position back.
func (it Iterator[T]) Prev() Iterator[T] { return it.Sub(1) }

// Inc moves the iterator forward and returns it.
func (it *Iterator[T]) Inc() *Iterator[T] {
	it.i++
	return it
}

// Dec moves the iterator back and returns it.
func (it *Iterator[T]) Dec() *Iterator[T] {
	it.i--
	return it
}

// PostInc moves the iterator forward and returns its previous position.
func (it *Iterator[T]) PostInc() Iterator[T] {
	old := *it
	it.i++
	return old
}

// PostDec moves the iterator back and returns its previous position.
func (it *Iterator[T]) PostDec() Iterator[T] {
	old := *it
	it.i--
	return old
}

// Advance moves the iterator n positions forward.
func (it *Iterator[T]) Advance(n int) *Iterator[T] {
	it.i += n
	return it
}

// Retreat moves the iterator n positions back.
func (it *Iterator[T]) Retreat(n int) *Iterator[T] {
	it.i -= n
	return it
}

// Add returns an iterator n positions forward.
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{c: it.c, i: it.i + n} }

// Sub returns an iterator n positions back.
func (it Iterator[T]) Sub(n int) Iterator[T] { return Iterator[T]{c: it.c, i: it.i - n} }

// Diff returns the signed distance it - other.
func (it Iterator[T]) Diff(other Iterator[T]) int { return it.i - other.i }

// Compare orders iterators of the same container by logical index.
func (it Iterator[T]) Compare(other Iterator[T]) int { return cmp.Compare(it.i, other.i) }

func (it Iterator[T]) Equal(other Iterator[T]) bool          { return it.i == other.i }
func (it Iterator[T]) NotEqual(other Iterator[T]) bool       { return it.i != other.i }
func (it Iterator[T]) Less(other Iterator[T]) bool           { return it.i < other.i }
func (it Iterator[T]) Greater(other Iterator[T]) bool        { return it.i > other.i }
func (it Iterator[T]) LessOrEqual(other Iterator[T]) bool    { return it.i <= other.i }
func (it Iterator[T]) GreaterOrEqual(other Iterator[T]) bool { return it.i >= other.i }

// Const converts the iterator to a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{owner: it.c, idx: it.i} }

// Get returns the element the iterator designates.
func (it ConstIterator[T]) Get() T { return it.owner.Index(it.idx) }

// Index returns the iterator's logical index.
func (it ConstIterator[T]) Index() int { return it.idx }

// Offset returns the element n positions away.
func (it ConstIterator[T]) Offset(n int) T { return it.owner.Index(it.idx + n) }

func (it ConstIterator[T]) Next() ConstIterator[T] { return it.Add(1) }
func (it ConstIterator[T]) Prev() ConstIterator[T] { return it.Sub(1) }

func (it *ConstIterator[T]) Inc() *ConstIterator[T] {
	it.idx++
	return it
}

func (it *ConstIterator[T]) Dec() *ConstIterator[T] {
	it.idx--
	return it
}

func (it *ConstIterator[T]) PostInc() ConstIterator[T] {
	old := *it
	it.idx++
	return old
}

func (it *ConstIterator[T]) PostDec() ConstIterator[T] {
	old := *it
	it.idx--
	return old
}

func (it *ConstIterator[T]) Advance(n int) *ConstIterator[T] {
	it.idx += n
	return it
}

func (it *ConstIterator[T]) Retreat(n int) *ConstIterator[T] {
	it.idx -= n
	return it
}

func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	return ConstIterator[T]{owner: it.owner, idx: it.idx + n}
}

func (it ConstIterator[T]) Sub(n int) ConstIterator[T] {
	return ConstIterator[T]{owner: it.owner, idx: it.idx - n}
}

// Diff returns the signed distance it - other.
func (it ConstIterator[T]) Diff(other ConstIterator[T]) int { return it.idx - other.idx }

func (it ConstIterator[T]) Compare(other ConstIterator[T]) int { return cmp.Compare(it.idx, other.idx) }

func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool          { return it.idx == other.idx }
func (it ConstIterator[T]) NotEqual(other ConstIterator[T]) bool       { return it.idx != other.idx }
func (it ConstIterator[T]) Less(other ConstIterator[T]) bool           { return it.idx < other.idx }
func (it ConstIterator[T]) Greater(other ConstIterator[T]) bool        { return it.idx > other.idx }
func (it ConstIterator[T]) LessOrEqual(other ConstIterator[T]) bool    { return it.idx <= other.idx }
func (it ConstIterator[T]) GreaterOrEqual(other ConstIterator[T]) bool { return it.idx >= other.idx }
