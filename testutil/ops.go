package testutil

import (
	"fmt"
	"math/rand"
)

// OpKind identifies a sequence operation.
type OpKind int

const (
	OpPushBack OpKind = iota
	OpPushFront
	OpPopBack
	OpPopFront
	OpInsert // insert Count copies of Value at Pos
	OpErase  // erase Count elements at Pos
	OpResize // resize to Count, padding with Value
	OpClear
	OpShrink // shrink to fit; no effect on the sequence
	opKindCount
)

var opNames = [...]string{
	"PushBack", "PushFront", "PopBack", "PopFront",
	"Insert", "Erase", "Resize", "Clear", "Shrink",
}

func (k OpKind) String() string {
	if k >= 0 && int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one operation on an int sequence.
type Op struct {
	Kind  OpKind
	Pos   int
	Count int
	Value int
}

func (o Op) String() string {
	return fmt.Sprintf("%s(pos=%d, count=%d, value=%d)", o.Kind, o.Pos, o.Count, o.Value)
}

// Apply performs the operation on the reference model.
func (o Op) Apply(d *Deque[int]) {
	switch o.Kind {
	case OpPushBack:
		d.PushBack(o.Value)
	case OpPushFront:
		d.PushFront(o.Value)
	case OpPopBack:
		d.PopBack()
	case OpPopFront:
		d.PopFront()
	case OpInsert:
		values := make([]int, o.Count)
		for i := range values {
			values[i] = o.Value
		}
		d.Insert(o.Pos, values...)
	case OpErase:
		d.Erase(o.Pos, o.Count)
	case OpResize:
		d.Resize(o.Count, o.Value)
	case OpClear:
		d.Clear()
	case OpShrink:
	}
}

// maxBatch bounds Count for inserts, erases and resize growth.
const maxBatch = 20

// nextOp builds a valid operation for a sequence of the given length from
// three raw choices.
func nextOp(kind, a, b, size int) Op {
	op := Op{Kind: OpKind(kind % int(opKindCount)), Value: b}
	switch op.Kind {
	case OpPopBack, OpPopFront:
		if size == 0 {
			op.Kind = OpPushBack
		}
	case OpInsert:
		op.Pos = a % (size + 1)
		op.Count = b%maxBatch + 1
	case OpErase:
		if size == 0 {
			op.Kind = OpPushFront
			break
		}
		op.Pos = a % size
		op.Count = b%(size-op.Pos) + 1
		if op.Count > maxBatch {
			op.Count = maxBatch
		}
	case OpResize:
		op.Count = a % (size + maxBatch + 1)
	}
	return op
}

func applySize(op Op, size int) int {
	switch op.Kind {
	case OpPushBack, OpPushFront:
		return size + 1
	case OpPopBack, OpPopFront:
		return size - 1
	case OpInsert:
		return size + op.Count
	case OpErase:
		return size - op.Count
	case OpResize:
		return op.Count
	case OpClear:
		return 0
	}
	return size
}

// RandomOps returns n valid operations generated from seed.
func RandomOps(seed int64, n int) []Op {
	rng := rand.New(rand.NewSource(seed))
	ops := make([]Op, 0, n)
	size := 0
	for range n {
		kind := rng.Intn(int(opKindCount) * 4)
		// pushes dominate so the sequence actually grows
		if kind >= int(opKindCount) {
			kind %= 2
		}
		op := nextOp(kind, rng.Intn(1<<16), rng.Intn(1<<16), size)
		size = applySize(op, size)
		ops = append(ops, op)
	}
	return ops
}

// DecodeOps turns fuzzer input into valid operations, three bytes per op.
func DecodeOps(data []byte) []Op {
	ops := make([]Op, 0, len(data)/3)
	size := 0
	for len(data) >= 3 {
		op := nextOp(int(data[0]), int(data[1]), int(data[2]), size)
		size = applySize(op, size)
		ops = append(ops, op)
		data = data[3:]
	}
	return ops
}
