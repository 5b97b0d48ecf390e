package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values that keeps
// itself height balanced through rotations: after every insertion and
// removal the subtree heights of every node differ by at most 1, so the
// height D of the tree stays O(log n) regardless of the operation order.
// Each node caches its height, which costs one int per node and makes the
// balance factor a constant time read during the rebalancing walks.
// Insert and Remove are recursive; the recursion depth is D.
type AVLTree[T constraints.Ordered] struct {
	base[T]
}

// NewAVLTree returns an empty AVLTree.
func NewAVLTree[T constraints.Ordered]() *AVLTree[T] {
	return &AVLTree[T]{}
}

// BuildAVLTree builds an AVLTree from the given slice recursively, which
// is faster than repeated Insert. The slice must be sorted in ascending
// order and must not contain duplicates; the built tree is perfectly
// balanced.
// Time: O(n)
func BuildAVLTree[T constraints.Ordered](sli []T) *AVLTree[T] {
	var build func([]T) *node[T]
	build = func(s []T) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &node[T]{v: s[mid], l: build(s[:mid]), r: build(s[mid+1:])}
		n.refresh()
		return n
	}
	return &AVLTree[T]{base[T]{build(sli), uint(len(sli))}}
}

// rebalance restores |balance factor| <= 1 at *cur, assuming both
// subtrees already satisfy it and *cur's cached height is fresh. The four
// classic cases: left-left and right-right take a single rotation,
// left-right and right-left rotate the child first.
// Time: O(1)
func rebalance[T any](cur **node[T]) {
	n := *cur
	if f := factor(n); f > 1 {
		if factor(n.l) < 0 {
			rotateLeft(&n.l)
		}
		rotateRight(cur)
	} else if f < -1 {
		if factor(n.r) > 0 {
			rotateRight(&n.r)
		}
		rotateLeft(cur)
	}
}

// insertAVL inserts v into the subtree rooting at *cur recursively, then
// rebalances every node on the way back up.
func insertAVL[T constraints.Ordered](cur **node[T], v T) error {
	n := *cur
	if n == nil {
		*cur = &node[T]{v: v}
		return nil
	}
	if v < n.v {
		if err := insertAVL(&n.l, v); err != nil {
			return err
		}
	} else if v > n.v {
		if err := insertAVL(&n.r, v); err != nil {
			return err
		}
	} else {
		return &DuplicateValueError[T]{v}
	}
	n.refresh()
	rebalance(cur)
	return nil
}

// Insert [Tree.Insert]. BST insertion followed by the rebalancing walk
// back to the root. Inserting a value already in the tree gives
// DuplicateValueError and leaves the tree untouched.
// Time: O(D)
func (u *AVLTree[T]) Insert(v T) error {
	if absent(v) {
		return &InvalidValueError{}
	}
	if err := insertAVL(&u.root, v); err != nil {
		return err
	}
	u.sz++
	return nil
}

// removeAVL removes v from the subtree rooting at *cur recursively,
// rebalancing every node on the way back up. Unlike insertion, a removal
// can require rotations at several ancestors, so the walk re-checks all
// of them. Returns false when v isn't in the subtree.
func removeAVL[T constraints.Ordered](cur **node[T], v T) bool {
	n := *cur
	if n == nil {
		return false
	}
	if v < n.v {
		if !removeAVL(&n.l, v) {
			return false
		}
	} else if v > n.v {
		if !removeAVL(&n.r, v) {
			return false
		}
	} else {
		switch {
		case n.l == nil:
			*cur = n.r
			return true
		case n.r == nil:
			*cur = n.l
			return true
		default:
			// Two children: take the in-order successor's value and
			// remove that value from the right subtree instead.
			m := n.r
			for m.l != nil {
				m = m.l
			}
			n.v = m.v
			removeAVL(&n.r, m.v)
		}
	}
	n.refresh()
	rebalance(cur)
	return true
}

// Remove [Tree.Remove]. BST deletion followed by the rebalancing walk
// from the deletion point back to the root.
// Time: O(D)
func (u *AVLTree[T]) Remove(v T) error {
	if u.root == nil {
		return &EmptyTreeError{}
	}
	if !removeAVL(&u.root, v) {
		return &NotFoundError[T]{v}
	}
	u.sz--
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u AVLTree[T]) Has(v T) bool {
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

// Height [Tree.Height] from the root's cached height.
// Time: O(1)
func (u AVLTree[T]) Height() int {
	return height(u.root)
}

// Minimum element of the tree.
// Time: O(D); Space: O(1)
func (u AVLTree[T]) Minimum() (T, bool) {
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
func (u AVLTree[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Predecessor returns the greatest element less than v.
// Time: O(D); Space: O(1)
func (u AVLTree[T]) Predecessor(v T) (T, bool) {
	cur, p := u.root, (*node[T])(nil)
	for cur != nil {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor returns the smallest element greater than v.
// Time: O(D); Space: O(1)
func (u AVLTree[T]) Successor(v T) (T, bool) {
	cur, p := u.root, (*node[T])(nil)
	for cur != nil {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// SortedValues returns all values in ascending order.
// Time: O(n)
func (u AVLTree[T]) SortedValues() []T {
	return u.TraverseInOrder()
}

// Corrupt [Tree.Corrupt]: ordering must hold strictly, every cached
// height must match the measured one, every balance factor must be within
// [-1, 1] and the size bookkeeping must match a real count.
func (u AVLTree[T]) Corrupt() bool {
	var check func(*node[T]) (int, bool)
	check = func(n *node[T]) (int, bool) {
		if n == nil {
			return -1, true
		}
		ld, lok := check(n.l)
		rd, rok := check(n.r)
		d := ld - rd
		return max(ld, rd) + 1, lok && rok && -1 <= d && d <= 1 && n.h == max(ld, rd)+1
	}
	_, ok := check(u.root)
	return !ok || !ordered(u.root, nil, nil, true) || u.CountNodes() != u.sz
}

// Clone returns a deep copy of the tree.
// Time: O(n)
func (u AVLTree[T]) Clone() *AVLTree[T] {
	return &AVLTree[T]{base[T]{clone(u.root), u.sz}}
}

// Equal reports whether both trees have the same shape and values.
// Time: O(n)
func (u AVLTree[T]) Equal(o *AVLTree[T]) bool {
	return equal(u.root, o.root)
}
