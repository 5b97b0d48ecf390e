package Trees

import (
	"github.com/g-m-twostay/go-trees/Queues"
)

// BinaryTree is the plain variant with no ordering constraint: values go
// to the first vacant child slot in level order, so the tree always grows
// level by level, left to right. Lookups and removals scan breadth first.
// T only needs to be comparable because the tree never orders values.
type BinaryTree[T comparable] struct {
	base[T]
}

// NewBinaryTree returns an empty BinaryTree.
func NewBinaryTree[T comparable]() *BinaryTree[T] {
	return &BinaryTree[T]{}
}

// findBFS locates the first node holding v in level order.
func findBFS[T comparable](root *node[T], v T) *node[T] {
	if root == nil {
		return nil
	}
	q := Queues.MakeArrayQueue[*node[T]](8)
	q.Push(root)
	for !q.Empty() {
		cur, _ := q.Pop()
		if cur.v == v {
			return cur
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return nil
}

// lastBFS returns the level-order-last node and its parent. The parent is
// nil when the last node is the root itself.
func lastBFS[T any](root *node[T]) (last, parent *node[T]) {
	type pair struct{ n, p *node[T] }
	q := Queues.MakeArrayQueue[pair](8)
	q.Push(pair{root, nil})
	for !q.Empty() {
		cur, _ := q.Pop()
		last, parent = cur.n, cur.p
		if cur.n.l != nil {
			q.Push(pair{cur.n.l, cur.n})
		}
		if cur.n.r != nil {
			q.Push(pair{cur.n.r, cur.n})
		}
	}
	return
}

// Insert [Tree.Insert]. The new node takes the first vacant child slot
// found by a breadth first scan, left slot before right.
// Time: O(n); Space: O(n)
func (u *BinaryTree[T]) Insert(v T) error {
	if absent(v) {
		return &InvalidValueError{}
	}
	attachBFS(&u.base, v)
	return nil
}

// attachBFS hangs a new node holding v off the first vacant child slot in
// level order, left slot before right. Shared by the structural variants;
// this placement always leaves the tree complete.
func attachBFS[T any](b *base[T], v T) {
	nn := &node[T]{v: v}
	b.sz++
	if b.root == nil {
		b.root = nn
		return
	}
	q := Queues.MakeArrayQueue[*node[T]](8)
	q.Push(b.root)
	for {
		cur, _ := q.Pop()
		if cur.l == nil {
			cur.l = nn
			return
		}
		q.Push(cur.l)
		if cur.r == nil {
			cur.r = nn
			return
		}
		q.Push(cur.r)
	}
}

// Remove [Tree.Remove]. The first node holding v in level order gets the
// level-order-last node's value and the last node is dropped, so the tree
// shrinks from the end of its bottom level.
// Time: O(n); Space: O(n)
func (u *BinaryTree[T]) Remove(v T) error {
	if u.root == nil {
		return &EmptyTreeError{}
	}
	target := findBFS(u.root, v)
	if target == nil {
		return &NotFoundError[T]{v}
	}
	swapWithLast(&u.base, target)
	return nil
}

// swapWithLast drops target by copying the level-order-last node's value
// into it and detaching that last node, truncating the tree from the end
// of its level-order sequence.
func swapWithLast[T any](b *base[T], target *node[T]) {
	last, parent := lastBFS(b.root)
	target.v = last.v
	switch {
	case parent == nil:
		b.root = nil
	case parent.r == last:
		parent.r = nil
	default:
		parent.l = nil
	}
	b.sz--
}

// Has [Tree.Has] by breadth first scan.
// Time: O(n); Space: O(n)
func (u BinaryTree[T]) Has(v T) bool {
	return findBFS(u.root, v) != nil
}

// Clone returns a deep copy of the tree; the copy shares no nodes with
// the original.
// Time: O(n)
func (u BinaryTree[T]) Clone() *BinaryTree[T] {
	return &BinaryTree[T]{base[T]{clone(u.root), u.sz}}
}

// Equal reports whether both trees have the same shape with the same
// values in the same positions.
// Time: O(n)
func (u BinaryTree[T]) Equal(o *BinaryTree[T]) bool {
	return equal(u.root, o.root)
}

// Corrupt [Tree.Corrupt]: the node count bookkeeping must match a real
// walk.
func (u BinaryTree[T]) Corrupt() bool {
	return u.CountNodes() != u.sz
}
