package testutil

import "slices"

// Deque is a reference double-ended queue backed by a plain slice.
type Deque[T any] struct {
	items []T
}

// NewDeque creates a Deque holding a copy of values.
func NewDeque[T any](values ...T) *Deque[T] {
	return &Deque[T]{items: slices.Clone(values)}
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return len(d.items) }

// At returns the element at position i.
func (d *Deque[T]) At(i int) T { return d.items[i] }

// Values returns a copy of the elements front to back.
func (d *Deque[T]) Values() []T { return slices.Clone(d.items) }

// Insert inserts values before position p.
func (d *Deque[T]) Insert(p int, values ...T) {
	d.items = slices.Insert(d.items, p, values...)
}

// Erase removes n elements starting at position p.
func (d *Deque[T]) Erase(p, n int) {
	d.items = slices.Delete(d.items, p, p+n)
}

func (d *Deque[T]) PushBack(v T)  { d.items = append(d.items, v) }
func (d *Deque[T]) PushFront(v T) { d.Insert(0, v) }

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if len(d.items) == 0 {
		return zero, false
	}
	v := d.items[len(d.items)-1]
	d.items = d.items[:len(d.items)-1]
	return v, true
}

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if len(d.items) == 0 {
		return zero, false
	}
	v := d.items[0]
	d.Erase(0, 1)
	return v, true
}

// Resize truncates or pads with value to n elements.
func (d *Deque[T]) Resize(n int, value T) {
	if n <= len(d.items) {
		d.items = d.items[:n]
		return
	}
	for len(d.items) < n {
		d.items = append(d.items, value)
	}
}

// Clear removes every element.
func (d *Deque[T]) Clear() { d.items = d.items[:0] }
