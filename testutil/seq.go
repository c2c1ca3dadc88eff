package testutil

import "iter"

// OnceSeq returns a sequence over values that has no known length, and a
// counter of how many times it has been ranged over.
func OnceSeq[T any](values ...T) (iter.Seq[T], *int) {
	calls := new(int)
	return func(yield func(T) bool) {
		*calls++
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}, calls
}
