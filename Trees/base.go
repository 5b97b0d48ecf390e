package Trees

import (
	"fmt"
	"slices"

	"github.com/g-m-twostay/go-trees/Queues"
)

// base holds the state and behavior shared by every variant: a single
// owned root reference and a node counter, plus all operations that do
// not depend on the insertion/removal policy. Variants embed base and
// supply the policy on top.
type base[T any] struct {
	root *node[T]
	sz   uint
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u base[T]) Size() uint {
	return u.sz
}

// depth of the subtree rooting at n in edges, measured by walking it.
// Recursive.
func depth[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return max(depth(n.l), depth(n.r)) + 1
}

// Height of the tree in edges: -1 when empty, 0 for a single node.
// Recursive. AVLTree overrides this with its cached value.
// Time: O(n)
func (u base[T]) Height() int {
	return depth(u.root)
}

// Clear the tree. The old nodes are released for collection.
// Time: O(1)
func (u *base[T]) Clear() {
	u.root, u.sz = nil, 0
}

// TraverseInOrder returns the values in left-node-right order using an
// explicit stack.
// Time: O(n); Space: O(D)
func (u base[T]) TraverseInOrder() []T {
	vs := make([]T, 0, u.sz)
	st := make([]*node[T], 0, 16)
	for cur := u.root; cur != nil || len(st) > 0; {
		for ; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		vs = append(vs, cur.v)
		cur = cur.r
	}
	return vs
}

// TraversePreOrder returns the values in node-left-right order.
// Time: O(n); Space: O(D)
func (u base[T]) TraversePreOrder() []T {
	vs := make([]T, 0, u.sz)
	if u.root == nil {
		return vs
	}
	st := []*node[T]{u.root}
	for len(st) > 0 {
		var cur *node[T]
		cur, st = st[len(st)-1], st[:len(st)-1]
		vs = append(vs, cur.v)
		if cur.r != nil {
			st = append(st, cur.r)
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
	}
	return vs
}

// TraversePostOrder returns the values in left-right-node order. It
// produces the reversed node-right-left sequence, which avoids the
// two-stack formulation.
// Time: O(n); Space: O(D)
func (u base[T]) TraversePostOrder() []T {
	vs := make([]T, 0, u.sz)
	if u.root == nil {
		return vs
	}
	st := []*node[T]{u.root}
	for len(st) > 0 {
		var cur *node[T]
		cur, st = st[len(st)-1], st[:len(st)-1]
		vs = append(vs, cur.v)
		if cur.l != nil {
			st = append(st, cur.l)
		}
		if cur.r != nil {
			st = append(st, cur.r)
		}
	}
	slices.Reverse(vs)
	return vs
}

// TraverseLevelOrder returns the values level by level, left to right
// within a level.
// Time: O(n); Space: O(n)
func (u base[T]) TraverseLevelOrder() []T {
	vs := make([]T, 0, u.sz)
	if u.root == nil {
		return vs
	}
	q := Queues.MakeArrayQueue[*node[T]](8)
	q.Push(u.root)
	for !q.Empty() {
		cur, _ := q.Pop()
		vs = append(vs, cur.v)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return vs
}

// InOrder [Tree.InOrder]. The iterator keeps the left spine of the
// remaining traversal on an explicit stack.
// Time: f(): amortized O(1) per call; Space: O(D)
func (u base[T]) InOrder() func() (T, bool) {
	st := make([]*node[T], 0, 16)
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		var cur *node[T]
		cur, st = st[len(st)-1], st[:len(st)-1]
		r, has = cur.v, true
		for c := cur.r; c != nil; c = c.l {
			st = append(st, c)
		}
		return
	}
}

// LevelOrder returns a restartable closure iterator over the level-order
// traversal, in the same style as InOrder.
// Time: f(): amortized O(1) per call; Space: O(n)
func (u base[T]) LevelOrder() func() (T, bool) {
	q := Queues.MakeArrayQueue[*node[T]](8)
	if u.root != nil {
		q.Push(u.root)
	}
	return func() (r T, has bool) {
		if q.Empty() {
			return
		}
		cur, _ := q.Pop()
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
		return cur.v, true
	}
}

// CountNodes walks the tree and counts its nodes. This is the measured
// count as opposed to Size's bookkeeping; the two agree unless the tree
// is corrupt. Recursive.
// Time: O(n)
func (u base[T]) CountNodes() uint {
	var count func(*node[T]) uint
	count = func(n *node[T]) uint {
		if n == nil {
			return 0
		}
		return count(n.l) + count(n.r) + 1
	}
	return count(u.root)
}

// CountLeaves counts the nodes with no children. Recursive.
// Time: O(n)
func (u base[T]) CountLeaves() uint {
	var count func(*node[T]) uint
	count = func(n *node[T]) uint {
		if n == nil {
			return 0
		}
		if n.l == nil && n.r == nil {
			return 1
		}
		return count(n.l) + count(n.r)
	}
	return count(u.root)
}

// balancedDepth reports the measured depth of n and whether every node
// below it has subtree heights differing by at most 1, in one bottom-up
// pass. Recursive.
func balancedDepth[T any](n *node[T]) (int, bool) {
	if n == nil {
		return -1, true
	}
	ld, lb := balancedDepth(n.l)
	rd, rb := balancedDepth(n.r)
	d := ld - rd
	return max(ld, rd) + 1, lb && rb && -1 <= d && d <= 1
}

// IsBalanced reports whether for every node the heights of its subtrees
// differ by at most 1.
// Time: O(n)
func (u base[T]) IsBalanced() bool {
	_, b := balancedDepth(u.root)
	return b
}

// IsFull reports whether every node has exactly 0 or exactly 2 children.
// Recursive.
// Time: O(n)
func (u base[T]) IsFull() bool {
	var full func(*node[T]) bool
	full = func(n *node[T]) bool {
		if n == nil {
			return true
		}
		if (n.l == nil) != (n.r == nil) {
			return false
		}
		return full(n.l) && full(n.r)
	}
	return full(u.root)
}

// IsPerfect reports whether every internal node has two children and all
// leaves sit on the same level. Recursive.
// Time: O(n)
func (u base[T]) IsPerfect() bool {
	d := 0
	for cur := u.root; cur != nil; cur = cur.l {
		d++
	}
	var check func(*node[T], int) bool
	check = func(n *node[T], lv int) bool {
		if n == nil {
			return true
		}
		if n.l == nil && n.r == nil {
			return lv+1 == d
		}
		if n.l == nil || n.r == nil {
			return false
		}
		return check(n.l, lv+1) && check(n.r, lv+1)
	}
	return check(u.root, 0)
}

// IsComplete reports whether all levels are fully filled except possibly
// the last, which is filled left to right with no gaps. The scan stops at
// the first node seen after a missing child.
// Time: O(n); Space: O(n)
func (u base[T]) IsComplete() bool {
	if u.root == nil {
		return true
	}
	q := Queues.MakeArrayQueue[*node[T]](8)
	q.Push(u.root)
	gap := false
	for !q.Empty() {
		cur, _ := q.Pop()
		if cur.l != nil {
			if gap {
				return false
			}
			q.Push(cur.l)
		} else {
			gap = true
		}
		if cur.r != nil {
			if gap {
				return false
			}
			q.Push(cur.r)
		} else {
			gap = true
		}
	}
	return true
}

// Mirror swaps the left and right subtrees of every node in place.
// Recursive.
// Time: O(n); Space: O(D)
func (u *base[T]) Mirror() {
	var flip func(*node[T])
	flip = func(n *node[T]) {
		if n == nil {
			return
		}
		n.l, n.r = n.r, n.l
		flip(n.l)
		flip(n.r)
	}
	flip(u.root)
}

// clone the subtree rooting at n. Recursive.
func clone[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{n.v, clone(n.l), clone(n.r), n.h}
}

// equal reports whether two subtrees have the same shape and values.
// Recursive.
func equal[T comparable](a, b *node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.v == b.v && equal(a.l, b.l) && equal(a.r, b.r)
}

// Print displays the tree sideways on stdout, right subtree up, one node
// per line. For debugging only.
func (u base[T]) Print() {
	var pr func(*node[T], string)
	pr = func(n *node[T], prefix string) {
		if n == nil {
			return
		}
		pr(n.r, prefix+"       ")
		fmt.Printf("%s%v\n", prefix, n.v)
		pr(n.l, prefix+"       ")
	}
	pr(u.root, "")
}
