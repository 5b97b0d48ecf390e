package Trees

import (
	"github.com/g-m-twostay/go-trees/Queues"
)

// FullTree keeps every node with exactly 0 or exactly 2 children. A full
// tree necessarily has an odd number of nodes, so single-value operations
// pass through a transient half-pair state: one node holding only a left
// child. Insert always completes an open half pair before starting a new
// one, so the property is restored on every second insertion, and Remove
// is only legal while a half pair is open (or on a single-node tree) —
// any other removal would strand a one-child node and is rejected with
// ShapeViolationError.
type FullTree[T comparable] struct {
	base[T]
}

// NewFullTree returns an empty FullTree.
func NewFullTree[T comparable]() *FullTree[T] {
	return &FullTree[T]{}
}

// halfBFS locates the first node with exactly one child in level order,
// nil when every node has 0 or 2 children.
func halfBFS[T any](root *node[T]) *node[T] {
	if root == nil {
		return nil
	}
	q := Queues.MakeArrayQueue[*node[T]](8)
	q.Push(root)
	for !q.Empty() {
		cur, _ := q.Pop()
		if (cur.l == nil) != (cur.r == nil) {
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

// Insert [Tree.Insert]. If a half pair is open the new node completes it
// as the right child; otherwise a new pair is opened under the first leaf
// in level order, leaving a half pair for the next insertion.
// Time: O(n); Space: O(n)
func (u *FullTree[T]) Insert(v T) error {
	if absent(v) {
		return &InvalidValueError{}
	}
	nn := &node[T]{v: v}
	u.sz++
	if u.root == nil {
		u.root = nn
		return nil
	}
	if h := halfBFS(u.root); h != nil {
		if h.l == nil {
			h.l = nn
		} else {
			h.r = nn
		}
		return nil
	}
	q := Queues.MakeArrayQueue[*node[T]](8)
	q.Push(u.root)
	for {
		cur, _ := q.Pop()
		if cur.l == nil {
			cur.l = nn
			return nil
		}
		q.Push(cur.l)
		q.Push(cur.r)
	}
}

// Remove [Tree.Remove]. A full tree of more than one node cannot lose a
// single value and stay full, so removal is only legal on a single-node
// tree or while a half pair is open; then the dangling child is the
// level-order-last node, and the usual swap-with-last truncation closes
// the pair and restores fullness. Anything else is ShapeViolationError.
// Time: O(n); Space: O(n)
func (u *FullTree[T]) Remove(v T) error {
	if u.root == nil {
		return &EmptyTreeError{}
	}
	target := findBFS(u.root, v)
	if target == nil {
		return &NotFoundError[T]{v}
	}
	if u.sz == 1 {
		u.root, u.sz = nil, 0
		return nil
	}
	h := halfBFS(u.root)
	if h == nil {
		return &ShapeViolationError[T]{v, "a full tree sheds values only from an open half pair"}
	}
	// The dangling left child closes the pair: its value moves to the
	// target and the node is detached.
	target.v = h.l.v
	h.l = nil
	u.sz--
	return nil
}

// Has [Tree.Has] by breadth first scan.
// Time: O(n); Space: O(n)
func (u FullTree[T]) Has(v T) bool {
	return findBFS(u.root, v) != nil
}

// Corrupt [Tree.Corrupt]: at most one node may hold exactly one child
// (the open half pair, which must be a left child), and the size
// bookkeeping must match a real count.
func (u FullTree[T]) Corrupt() bool {
	half := uint(0)
	var walk func(*node[T]) bool
	walk = func(n *node[T]) bool {
		if n == nil {
			return true
		}
		if (n.l == nil) != (n.r == nil) {
			if n.l == nil { //a right-only child can't come from Insert
				return false
			}
			half++
		}
		return walk(n.l) && walk(n.r)
	}
	return !walk(u.root) || half > 1 || u.CountNodes() != u.sz
}

// Clone returns a deep copy of the tree.
// Time: O(n)
func (u FullTree[T]) Clone() *FullTree[T] {
	return &FullTree[T]{base[T]{clone(u.root), u.sz}}
}

// Equal reports whether both trees have the same shape and values.
// Time: O(n)
func (u FullTree[T]) Equal(o *FullTree[T]) bool {
	return equal(u.root, o.root)
}
