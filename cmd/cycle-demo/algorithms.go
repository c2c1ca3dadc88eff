package main

import (
	"cmp"

	"github.com/MegaBluejay/cpplabs/pkg/cycle"
)

// The helpers below work on iterator ranges [first, last) so they exercise
// the container's random-access cursor rather than a copied slice.

func allOf[T any](first, last cycle.ConstIterator[T], pred func(T) bool) bool {
	for it := first; it.Less(last); it.Inc() {
		if !pred(it.Get()) {
			return false
		}
	}
	return true
}

func find[T comparable](first, last cycle.ConstIterator[T], value T) cycle.ConstIterator[T] {
	for it := first; it.Less(last); it.Inc() {
		if it.Get() == value {
			return it
		}
	}
	return last
}

// adjacentFind returns the first of two equal neighbours, or last.
func adjacentFind[T comparable](first, last cycle.ConstIterator[T]) cycle.ConstIterator[T] {
	if first.GreaterOrEqual(last) {
		return last
	}
	for it, next := first, first.Next(); next.Less(last); it, next = next, next.Next() {
		if it.Get() == next.Get() {
			return it
		}
	}
	return last
}

// maxElement returns the first largest element, or last for an empty range.
func maxElement[T cmp.Ordered](first, last cycle.ConstIterator[T]) cycle.ConstIterator[T] {
	if first.Equal(last) {
		return last
	}
	best := first
	for it := first.Next(); it.Less(last); it.Inc() {
		if it.Get() > best.Get() {
			best = it
		}
	}
	return best
}

// binarySearch reports whether value occurs in the sorted range.
func binarySearch[T cmp.Ordered](first, last cycle.ConstIterator[T], value T) bool {
	for n := last.Diff(first); n > 0; {
		half := n / 2
		mid := first.Add(half)
		if mid.Get() < value {
			first = mid.Next()
			n -= half + 1
		} else {
			n = half
		}
	}
	return first.Less(last) && first.Get() == value
}
