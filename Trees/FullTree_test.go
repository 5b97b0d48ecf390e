package Trees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullTree_PairedInserts(t *testing.T) {
	tree := NewFullTree[int]()
	for v := 1; v <= 41; v++ {
		require.NoError(t, tree.Insert(v))
		require.False(t, tree.Corrupt(), "after inserting %v", v)
		if v&1 == 1 { //odd sizes close all pairs
			require.True(t, tree.IsFull(), "not full at odd size %v", v)
		} else {
			require.False(t, tree.IsFull(), "no open half pair at even size %v", v)
		}
	}
	assert.Equal(t, uint(41), tree.Size())
}

func TestFullTree_Shape(t *testing.T) {
	tree := NewFullTree[int]()
	for v := 1; v <= 5; v++ {
		require.NoError(t, tree.Insert(v))
	}
	// 2,3 pair under 1, then 4,5 pair under 2
	assert.Equal(t, []int{1, 2, 3, 4, 5}, tree.TraverseLevelOrder())
	assert.Equal(t, uint(3), tree.CountLeaves())
}

func TestFullTree_RemoveLegality(t *testing.T) {
	tree := NewFullTree[int]()
	for v := 1; v <= 7; v++ {
		require.NoError(t, tree.Insert(v))
	}
	// full with no open pair: nothing may leave
	var shape *ShapeViolationError[int]
	require.ErrorAs(t, tree.Remove(4), &shape)
	assert.Equal(t, uint(7), tree.Size())
	assert.True(t, tree.IsFull())

	// opening a pair makes exactly one removal legal again
	require.NoError(t, tree.Insert(8))
	require.NoError(t, tree.Remove(4))
	assert.True(t, tree.IsFull())
	assert.Equal(t, uint(7), tree.Size())
	assert.False(t, tree.Has(4))
	assert.True(t, tree.Has(8)) //8's value moved into 4's slot
}

func TestFullTree_SingleNode(t *testing.T) {
	tree := NewFullTree[int]()
	require.NoError(t, tree.Insert(9))
	require.NoError(t, tree.Remove(9))
	assert.Equal(t, uint(0), tree.Size())
	assert.Equal(t, -1, tree.Height())

	var empty *EmptyTreeError
	require.ErrorAs(t, tree.Remove(9), &empty)
}

func TestFullTree_Errors(t *testing.T) {
	tree := NewFullTree[int]()
	require.NoError(t, tree.Insert(1))
	var nf *NotFoundError[int]
	require.ErrorAs(t, tree.Remove(5), &nf)

	ptrs := NewFullTree[*int]()
	var invalid *InvalidValueError
	require.ErrorAs(t, ptrs.Insert(nil), &invalid)
	assert.Equal(t, uint(0), ptrs.Size())
}

func TestFullTree_CloneEqual(t *testing.T) {
	tree := NewFullTree[int]()
	for v := 0; v < 9; v++ {
		require.NoError(t, tree.Insert(v))
	}
	cp := tree.Clone()
	require.True(t, tree.Equal(cp))
	require.NoError(t, cp.Insert(100))
	assert.False(t, tree.Equal(cp))
	assert.False(t, tree.Has(100))
}
