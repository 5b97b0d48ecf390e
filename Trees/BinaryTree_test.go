package Trees

import (
	"errors"
	"slices"
	"testing"
)

// seven sequential values make the perfect 3-level tree
//
//	        1
//	    2       3
//	  4   5   6   7
func sevenTree(t *testing.T) *BinaryTree[int] {
	t.Helper()
	tree := NewBinaryTree[int]()
	for v := 1; v <= 7; v++ {
		if err := tree.Insert(v); err != nil {
			t.Fatal(err)
		}
	}
	return tree
}

func TestBinaryTree_Insert(t *testing.T) {
	tree := sevenTree(t)
	if got := tree.TraverseLevelOrder(); !slices.Equal(got, []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("level order = %v", got)
	}
	if !tree.IsPerfect() || !tree.IsComplete() || !tree.IsFull() || !tree.IsBalanced() {
		t.Error("7 sequential inserts must build a perfect tree")
	}
	if tree.Height() != 2 {
		t.Errorf("height = %d, want 2", tree.Height())
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
}

func TestBinaryTree_Traversals(t *testing.T) {
	tree := sevenTree(t)
	if got := tree.TraverseInOrder(); !slices.Equal(got, []int{4, 2, 5, 1, 6, 3, 7}) {
		t.Errorf("inorder = %v", got)
	}
	if got := tree.TraversePreOrder(); !slices.Equal(got, []int{1, 2, 4, 5, 3, 6, 7}) {
		t.Errorf("preorder = %v", got)
	}
	if got := tree.TraversePostOrder(); !slices.Equal(got, []int{4, 5, 2, 6, 7, 3, 1}) {
		t.Errorf("postorder = %v", got)
	}
}

func TestBinaryTree_Iterators(t *testing.T) {
	tree := sevenTree(t)
	for round := 0; round < 2; round++ {
		next := tree.InOrder()
		var got []int
		for v, ok := next(); ok; v, ok = next() {
			got = append(got, v)
		}
		if !slices.Equal(got, tree.TraverseInOrder()) {
			t.Errorf("iterator round %d produced %v", round, got)
		}
	}
	next := tree.LevelOrder()
	var got []int
	for v, ok := next(); ok; v, ok = next() {
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("level-order iterator produced %v", got)
	}
}

func TestBinaryTree_Counts(t *testing.T) {
	tree := sevenTree(t)
	if tree.CountNodes() != 7 {
		t.Errorf("CountNodes = %d", tree.CountNodes())
	}
	if tree.CountLeaves() != 4 {
		t.Errorf("CountLeaves = %d", tree.CountLeaves())
	}
	if err := tree.Insert(8); err != nil {
		t.Fatal(err)
	}
	if tree.CountLeaves() != 4 { //8 hangs under 4, which stops being a leaf
		t.Errorf("CountLeaves = %d after growing", tree.CountLeaves())
	}
}

func TestBinaryTree_Mirror(t *testing.T) {
	tree := sevenTree(t)
	orig := tree.Clone()
	tree.Mirror()
	if got := tree.TraverseLevelOrder(); !slices.Equal(got, []int{1, 3, 2, 7, 6, 5, 4}) {
		t.Errorf("mirrored level order = %v", got)
	}
	if tree.Equal(orig) {
		t.Error("mirroring must change an asymmetric tree")
	}
	tree.Mirror()
	if !tree.Equal(orig) {
		t.Error("mirroring twice must restore the tree")
	}
}

func TestBinaryTree_Remove(t *testing.T) {
	tree := sevenTree(t)
	if err := tree.Remove(2); err != nil {
		t.Fatal(err)
	}
	// 2 takes the level-order-last value 7, and 7's node goes away
	if got := tree.TraverseLevelOrder(); !slices.Equal(got, []int{1, 7, 3, 4, 5, 6}) {
		t.Errorf("level order after removal = %v", got)
	}
	if tree.Size() != 6 || tree.Corrupt() {
		t.Errorf("size = %d after removal", tree.Size())
	}
	var nf *NotFoundError[int]
	if err := tree.Remove(2); !errors.As(err, &nf) {
		t.Errorf("removing gone value: got %v, want NotFoundError", err)
	}
}

func TestBinaryTree_RemoveAll(t *testing.T) {
	tree := NewBinaryTree[int]()
	for v := 0; v < 100; v++ {
		if err := tree.Insert(v); err != nil {
			t.Fatal(err)
		}
	}
	for v := 0; v < 100; v++ {
		if err := tree.Remove(v); err != nil {
			t.Fatalf("remove %v: %v", v, err)
		}
		if tree.Corrupt() {
			t.Fatalf("corrupt after removing %v", v)
		}
	}
	if tree.Size() != 0 || tree.Height() != -1 {
		t.Error("tree not empty after removing everything")
	}
	var empty *EmptyTreeError
	if err := tree.Remove(0); !errors.As(err, &empty) {
		t.Errorf("got %v, want EmptyTreeError", err)
	}
}

func TestBinaryTree_AbsentValue(t *testing.T) {
	tree := NewBinaryTree[*int]()
	var invalid *InvalidValueError
	if err := tree.Insert(nil); !errors.As(err, &invalid) {
		t.Errorf("inserting nil pointer: got %v, want InvalidValueError", err)
	}
	if tree.Size() != 0 {
		t.Error("failed insert must not grow the tree")
	}
	v := 42
	if err := tree.Insert(&v); err != nil {
		t.Errorf("non-nil pointer must insert: %v", err)
	}
}

func TestBinaryTree_Clear(t *testing.T) {
	tree := sevenTree(t)
	tree.Clear()
	if tree.Size() != 0 || tree.Height() != -1 || !tree.IsComplete() {
		t.Error("cleared tree must be empty")
	}
}
