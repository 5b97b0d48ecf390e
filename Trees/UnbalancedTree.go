package Trees

import (
	"golang.org/x/exp/constraints"
)

// UnbalancedTree is a binary search tree that never rebalances. It exists
// as the baseline the balanced variants are measured against: inserting a
// sorted sequence degenerates it into a linear chain, making every
// operation O(n). Unlike BSTree it accepts repeated values, which are
// sent to the right subtree.
type UnbalancedTree[T constraints.Ordered] struct {
	base[T]
}

// NewUnbalancedTree returns an empty UnbalancedTree.
func NewUnbalancedTree[T constraints.Ordered]() *UnbalancedTree[T] {
	return &UnbalancedTree[T]{}
}

// Insert [Tree.Insert]. Plain BST descent; values smaller than the node
// go left, everything else goes right, so repeats chain to the right.
// Time: O(D); Space: O(1)
func (u *UnbalancedTree[T]) Insert(v T) error {
	if absent(v) {
		return &InvalidValueError{}
	}
	cur := &u.root
	for *cur != nil {
		if v < (*cur).v {
			cur = &(*cur).l
		} else {
			cur = &(*cur).r
		}
	}
	*cur = &node[T]{v: v}
	u.sz++
	return nil
}

// Remove [Tree.Remove]. Plain BST deletion of the first node found
// holding v; with repeats present one occurrence is removed per call.
// Time: O(D); Space: O(1)
func (u *UnbalancedTree[T]) Remove(v T) error {
	if u.root == nil {
		return &EmptyTreeError{}
	}
	cur := &u.root
	for *cur != nil {
		if v < (*cur).v {
			cur = &(*cur).l
		} else if v > (*cur).v {
			cur = &(*cur).r
		} else {
			break
		}
	}
	if *cur == nil {
		return &NotFoundError[T]{v}
	}
	removeBST(cur)
	u.sz--
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u UnbalancedTree[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// SortedValues returns all values in ascending order.
// Time: O(n)
func (u UnbalancedTree[T]) SortedValues() []T {
	return u.TraverseInOrder()
}

// Corrupt [Tree.Corrupt]: ordering with repeats allowed on the right must
// hold, and the size bookkeeping must match a real count.
func (u UnbalancedTree[T]) Corrupt() bool {
	return !ordered(u.root, nil, nil, false) || u.CountNodes() != u.sz
}

// Clone returns a deep copy of the tree.
// Time: O(n)
func (u UnbalancedTree[T]) Clone() *UnbalancedTree[T] {
	return &UnbalancedTree[T]{base[T]{clone(u.root), u.sz}}
}
