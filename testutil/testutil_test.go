package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeque(t *testing.T) {
	d := NewDeque(4, 6, 8, 8)
	d.Insert(0, 2, 4)
	d.PushBack(10)
	assert.Equal(t, []int{2, 4, 4, 6, 8, 8, 10}, d.Values())

	v, ok := d.PopFront()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = d.PopBack()
	require.True(t, ok)
	assert.Equal(t, 10, v)

	d.Erase(1, 2)
	assert.Equal(t, []int{4, 8, 8}, d.Values())

	d.Resize(5, -1)
	assert.Equal(t, []int{4, 8, 8, -1, -1}, d.Values())
	d.Resize(1, 0)
	assert.Equal(t, []int{4}, d.Values())

	d.Clear()
	_, ok = d.PopBack()
	assert.False(t, ok)
}

func TestRandomOps_Valid(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		d := NewDeque[int]()
		ops := RandomOps(seed, 300)
		require.Len(t, ops, 300)
		for _, op := range ops {
			require.NotPanics(t, func() { op.Apply(d) }, "seed %d: %s", seed, op)
		}
	}
}

func TestRandomOps_Reproducible(t *testing.T) {
	assert.Equal(t, RandomOps(7, 50), RandomOps(7, 50))
}

func TestDecodeOps(t *testing.T) {
	assert.Empty(t, DecodeOps([]byte{1, 2}))

	ops := DecodeOps([]byte{byte(OpPopBack), 0, 0, byte(OpErase), 3, 3})
	require.Len(t, ops, 2)
	assert.Equal(t, OpPushBack, ops[0].Kind, "pop on empty becomes a push")
	assert.Equal(t, OpErase, ops[1].Kind)
	assert.Equal(t, 0, ops[1].Pos)
	assert.Equal(t, 1, ops[1].Count)
}

func TestOnceSeq(t *testing.T) {
	seq, calls := OnceSeq(1, 2, 3)
	var got []int
	for v := range seq {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 1, *calls)
}

func TestOpKindString(t *testing.T) {
	assert.Equal(t, "Insert", OpInsert.String())
	assert.Equal(t, "OpKind(99)", OpKind(99).String())
}
