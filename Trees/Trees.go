package Trees

import (
	"fmt"
	"reflect"
)

// Tree represents a binary tree structure implemented using nodes.
// Every variant in this package owns exactly one root reference and all
// nodes reachable from it; trees never share nodes and the structure is
// always acyclic. A tree is mutated by a single caller at a time, there
// is no internal synchronization.
// Mutating operations are all-or-nothing: when a method returns an error
// the tree is exactly as it was before the call.
// Methods implemented recursively are noted on the variants, otherwise
// receivers are implemented iteratively.
type Tree[T any] interface {
	//Insert v into the tree. An absent v (nil pointer, interface, map,
	//slice, func or chan) is rejected with InvalidValueError. Further
	//failure modes depend on the variant.
	Insert(v T) error
	//Remove v from the tree. Removing from an empty tree gives
	//EmptyTreeError; removing a value that isn't present gives
	//NotFoundError. Variants may restrict which removals are legal.
	Remove(v T) error
	//Has reports whether v is in the tree. Ordered variants answer by
	//descent, structural variants by a breadth first scan.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Height in edges of the longest root-to-leaf path. -1 for an empty
	//tree, 0 for a single node.
	Height() int
	//InOrder returns a closure acting like an iterator over the in-order
	//traversal. Calling it is like calling "Next()": val, valid=f().
	//val is meaningful only while valid is true; valid can't turn true
	//after it first became false. The tree must not be modified during
	//the iteration. Call InOrder again for a fresh iterator.
	InOrder() func() (T, bool)
	//Corrupt reports whether the tree violates the invariants of the
	//specific variant. A correct implementation never lets this become
	//true; it exists for tests and debugging.
	Corrupt() bool
}

// InvalidValueError reports an absent value passed to Insert.
type InvalidValueError struct{}

func (e *InvalidValueError) Error() string {
	return "Trees: cannot insert an absent value"
}

// EmptyTreeError reports a removal attempted on a tree with no root.
type EmptyTreeError struct{}

func (e *EmptyTreeError) Error() string {
	return "Trees: tree is empty: cannot Remove"
}

// DuplicateValueError reports an insert of a value already present in a
// tree that forbids duplicates.
type DuplicateValueError[T any] struct {
	Value T
}

func (e *DuplicateValueError[T]) Error() string {
	return fmt.Sprintf("Trees: value %v already in tree", e.Value)
}

// NotFoundError reports a removal of a value that isn't in the tree.
type NotFoundError[T any] struct {
	Value T
}

func (e *NotFoundError[T]) Error() string {
	return fmt.Sprintf("Trees: value %v not in tree", e.Value)
}

// ShapeViolationError reports a removal that would break the structural
// invariant of the variant, see FullTree.Remove.
type ShapeViolationError[T any] struct {
	Value  T
	Reason string
}

func (e *ShapeViolationError[T]) Error() string {
	return fmt.Sprintf("Trees: removing %v: %s", e.Value, e.Reason)
}

// absent reports whether v is the Go rendering of a missing value: a nil
// pointer, interface, map, slice, func or chan. Value kinds are never
// absent.
func absent[T any](v T) bool {
	switch rv := reflect.ValueOf(&v).Elem(); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
