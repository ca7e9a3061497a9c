package bintree

import "iter"

// Collection is the capability of a sized, iterable container with
// membership test. Iteration order is defined by the implementation.
type Collection[E comparable] interface {
	Size() int
	IsEmpty() bool
	Contains(E) bool
	All() iter.Seq[E]
}

// BinaryTree is the capability set specific to binary trees: child access,
// pruning and order-specific cursors.
type BinaryTree[E comparable] interface {
	Collection[E]
	Equal(*Tree[E]) bool
	Root() (E, error)
	Left() (*Tree[E], error)
	Right() (*Tree[E], error)
	ReplaceRoot(E) (E, error)
	RemoveLeft() error
	RemoveRight() error
	Height() int
	PreOrderCursor() *Cursor[E]
	InOrderCursor() *Cursor[E]
	PostOrderCursor() *Cursor[E]
	LevelOrderCursor() *Cursor[E]
}

var (
	_ Collection[int] = (*Tree[int])(nil)
	_ BinaryTree[int] = (*Tree[int])(nil)
)

// ContainsAll reports whether c holds every element of elems.
func ContainsAll[E comparable](c Collection[E], elems ...E) bool {
	for _, e := range elems {
		if !c.Contains(e) {
			return false
		}
	}
	return true
}

// Collect gathers the elements of c in iteration order.
func Collect[E comparable](c Collection[E]) []E {
	elems := make([]E, 0, c.Size())
	for e := range c.All() {
		elems = append(elems, e)
	}
	return elems
}
