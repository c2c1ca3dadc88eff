// Package alloc provides allocation strategies for the containers in this module.
//
// An Allocator hands out and takes back backing blocks, and it is the only
// place where an element's life starts (Construct) and ends (Destroy). A
// container never writes into its block by any other route.
//
// The propagation flags tell a container whether the strategy follows the
// contents when a container is copied, moved or swapped:
//
//	Heap      copy, move and swap all propagate; never fails
//	Pooled    reuses released power-of-two blocks; a copy gets a fresh Heap
//	Limited   enforces a slot budget; exceeding it is a fatal ErrResourceExhausted
//	Tracking  counts blocks and live elements, for leak checks in tests
//
// Override the flags of any strategy with WithPropagation.
//
// Strategies are not safe for concurrent use unless documented otherwise;
// Pooled is backed by sync.Pool and may be shared.
package alloc
