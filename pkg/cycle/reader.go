package cycle

import (
	"iter"

	"github.com/MegaBluejay/cpplabs/pkg/alloc"
)

// readAll drains seq into a temporary block obtained from a, doubling the
// block whenever it fills. The caller owns the returned block and must move
// its count elements out and hand the block back to a.Deallocate.
// On allocation failure nothing is left allocated.
func readAll[T any](seq iter.Seq[T], a alloc.Allocator[T]) (block []T, count, capacity int, err error) {
	block, err = a.Allocate(MinCapacity)
	if err != nil {
		return nil, 0, 0, err
	}

	for v := range seq {
		if count == len(block) {
			var grown []T
			grown, err = a.Allocate(2 * len(block))
			if err != nil {
				break
			}
			for i := 0; i < count; i++ {
				a.Construct(&grown[i], block[i])
				a.Destroy(&block[i])
			}
			a.Deallocate(block)
			block = grown
		}
		a.Construct(&block[count], v)
		count++
	}

	if err != nil {
		for i := 0; i < count; i++ {
			a.Destroy(&block[i])
		}
		a.Deallocate(block)
		return nil, 0, 0, err
	}
	return block, count, len(block), nil
}
