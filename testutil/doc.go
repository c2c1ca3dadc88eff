// Package testutil provides test helpers for the containers in this module.
//
// # Overview
//
// The helpers have no dependency on the containers themselves, so any
// package may use them from its internal tests.
//
// Reference model:
//
// Deque is a plain slice-backed double-ended queue. Property and fuzz tests
// drive a container and a Deque with the same operations and compare the
// resulting sequences.
//
// Operation generators:
//
//   - RandomOps produces a reproducible operation list from a seed
//   - DecodeOps turns arbitrary fuzzer bytes into a valid operation list
//
// Every generated operation is valid for the sequence length at the point
// it is applied: positions are in range and pops never hit an empty queue.
//
// Sources:
//
// OnceSeq wraps values in a single-pass iter.Seq that records how often it
// was consumed, for checking that sequences of unknown length are read
// exactly once.
//
// # Example
//
//	model := testutil.NewDeque[int]()
//	for _, op := range testutil.RandomOps(42, 500) {
//		op.Apply(model)
//		applyToContainer(c, op)
//	}
//	if diff := cmp.Diff(model.Values(), c.Slice()); diff != "" {
//		t.Errorf("mismatch (-model +container):\n%s", diff)
//	}
package testutil
