package Trees

// CompleteTree keeps every level fully filled except possibly the last,
// which fills left to right with no gaps. Insertion takes the first gap
// in level order and removal truncates from the end of the level-order
// sequence, so the shape invariant holds after every operation. The
// shape is the one an array-backed heap would have, kept here on nodes.
type CompleteTree[T comparable] struct {
	base[T]
}

// NewCompleteTree returns an empty CompleteTree.
func NewCompleteTree[T comparable]() *CompleteTree[T] {
	return &CompleteTree[T]{}
}

// Insert [Tree.Insert]. The new node takes the first vacant child slot in
// level order, which is exactly the slot that keeps the tree complete.
// Time: O(n); Space: O(n)
func (u *CompleteTree[T]) Insert(v T) error {
	if absent(v) {
		return &InvalidValueError{}
	}
	attachBFS(&u.base, v)
	return nil
}

// Remove [Tree.Remove]. The first node holding v in level order gets the
// level-order-last node's value and the last node is dropped; truncating
// from the end keeps the tree complete.
// Time: O(n); Space: O(n)
func (u *CompleteTree[T]) Remove(v T) error {
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

// Has [Tree.Has] by breadth first scan.
// Time: O(n); Space: O(n)
func (u CompleteTree[T]) Has(v T) bool {
	return findBFS(u.root, v) != nil
}

// Corrupt [Tree.Corrupt]: the tree must be complete and the size
// bookkeeping must match a real count.
func (u CompleteTree[T]) Corrupt() bool {
	return !u.IsComplete() || u.CountNodes() != u.sz
}

// Clone returns a deep copy of the tree.
// Time: O(n)
func (u CompleteTree[T]) Clone() *CompleteTree[T] {
	return &CompleteTree[T]{base[T]{clone(u.root), u.sz}}
}

// Equal reports whether both trees have the same shape and values.
// Time: O(n)
func (u CompleteTree[T]) Equal(o *CompleteTree[T]) bool {
	return equal(u.root, o.root)
}
