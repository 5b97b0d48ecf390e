package Trees

import (
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated values: for every node
// all values in its left subtree are smaller and all values in its right
// subtree are larger. Lookups descend by comparison, so they never scan
// the whole tree. No rebalancing is done; the height depends on the
// insertion order.
type BSTree[T constraints.Ordered] struct {
	base[T]
}

// NewBSTree returns an empty BSTree.
func NewBSTree[T constraints.Ordered]() *BSTree[T] {
	return &BSTree[T]{}
}

// BuildBSTree builds a BSTree from the given slice recursively, which is
// faster than repeated Insert. The slice must be sorted in ascending
// order and must not contain duplicates, otherwise the built tree is
// corrupt; use Corrupt to verify when in doubt.
// Time: O(n)
func BuildBSTree[T constraints.Ordered](sli []T) *BSTree[T] {
	var build func([]T) *node[T]
	build = func(s []T) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		return &node[T]{v: s[mid], l: build(s[:mid]), r: build(s[mid+1:])}
	}
	return &BSTree[T]{base[T]{build(sli), uint(len(sli))}}
}

// Insert [Tree.Insert]. Descends by comparison and attaches a new leaf at
// the first vacant slot on the search path. Inserting a value already in
// the tree gives DuplicateValueError and leaves the tree untouched.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) error {
	if absent(v) {
		return &InvalidValueError{}
	}
	cur := &u.root
	for *cur != nil {
		if v < (*cur).v {
			cur = &(*cur).l
		} else if v > (*cur).v {
			cur = &(*cur).r
		} else {
			return &DuplicateValueError[T]{v}
		}
	}
	*cur = &node[T]{v: v}
	u.sz++
	return nil
}

// removeBST unlinks the node at *cur preserving the ordering invariant.
// A node with two children takes the minimum of its right subtree (the
// in-order successor) and that successor's node is spliced out instead.
func removeBST[T any](cur **node[T]) {
	n := *cur
	switch {
	case n.l == nil:
		*cur = n.r
	case n.r == nil:
		*cur = n.l
	default:
		t := &n.r
		for (*t).l != nil {
			t = &(*t).l
		}
		n.v = (*t).v
		*t = (*t).r
	}
}

// Remove [Tree.Remove]. Standard BST deletion: a leaf is dropped, a node
// with one child is replaced by it, a node with two children takes its
// in-order successor's value.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Remove(v T) error {
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
func (u BSTree[T]) Has(v T) bool {
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

// Minimum element of the tree.
// Time: O(D); Space: O(1)
func (u BSTree[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum element of the tree.
// Time: O(D); Space: O(1)
func (u BSTree[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// SortedValues returns all values in ascending order; by the ordering
// invariant this is exactly the in-order traversal.
// Time: O(n)
func (u BSTree[T]) SortedValues() []T {
	return u.TraverseInOrder()
}

// ordered reports whether the subtree at n respects the search ordering
// within the open bounds (lo, hi), nil meaning unbounded. With strict the
// lower bound is exclusive (no repeats anywhere); without it repeats may
// sit in right subtrees, so the lower bound is inclusive. The upper bound
// is always exclusive. Recursive.
func ordered[T constraints.Ordered](n *node[T], lo, hi *T, strict bool) bool {
	if n == nil {
		return true
	}
	if lo != nil {
		if strict && !(*lo < n.v) {
			return false
		}
		if !strict && n.v < *lo {
			return false
		}
	}
	if hi != nil && !(n.v < *hi) {
		return false
	}
	return ordered(n.l, lo, &n.v, strict) && ordered(n.r, &n.v, hi, strict)
}

// Corrupt [Tree.Corrupt]: ordering must hold strictly at every node and
// the size bookkeeping must match a real count.
func (u BSTree[T]) Corrupt() bool {
	return !ordered(u.root, nil, nil, true) || u.CountNodes() != u.sz
}

// Clone returns a deep copy of the tree.
// Time: O(n)
func (u BSTree[T]) Clone() *BSTree[T] {
	return &BSTree[T]{base[T]{clone(u.root), u.sz}}
}

// Equal reports whether both trees have the same shape and values.
// Time: O(n)
func (u BSTree[T]) Equal(o *BSTree[T]) bool {
	return equal(u.root, o.root)
}
