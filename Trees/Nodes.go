package Trees

// A node in a binary tree.
// The zero value is meaningless; nodes are created by insertions only and
// released by removals only. Each node is owned by exactly one parent link
// (or the tree's root reference), so there is never structural sharing.
type node[T any] struct {
	v    T
	l, r *node[T]
	h    int //cached height in edges, 0 for a leaf. Maintained by AVLTree only; other variants leave it at 0 and measure on demand.
}

// height of n in edges, with nil counting as -1 so that a leaf is 0.
func height[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.h
}

// refresh the cached height of n from its children.
func (n *node[T]) refresh() {
	n.h = max(height(n.l), height(n.r)) + 1
}

// factor is the balance factor of n: height(l)-height(r), 0 for nil.
func factor[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return height(n.l) - height(n.r)
}

// rotateLeft performs a left rotation around *n. n is passed by reference
// in order to modify its content: the right child takes *n's position,
// *n becomes its left child and the right child's original left subtree
// becomes *n's new right subtree. Cached heights are refreshed bottom-up.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n **node[T]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	r.refresh()
	rc.refresh()
	*n = rc
}

// rotateRight performs a right rotation around *n, the mirror of
// rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[T any](n **node[T]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	r.refresh()
	lc.refresh()
	*n = lc
}
