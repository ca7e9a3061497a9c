package bintree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"strings"
)

// Tree is a binary tree of linked nodes.
//
// A tree created by
//
//	Tree[E]{}
//
// is a valid object and behaves like the empty tree. A nil *Tree is treated
// as empty by all query operations.
//
// Trees built with Make share the nodes of their subtrees with the argument
// trees, and Left and Right return handles sharing nodes with their parent.
// Mutations through one handle are visible through all handles sharing the
// affected nodes (see package documentation).
//
//	Operation          |  Cost
//	-------------------+---------
//	Size, IsEmpty      |  O(1)
//	Root, Left, Right  |  O(1)
//	Remove…, Replace…  |  O(1)
//	Height, Contains   |  O(n)
//	Equal              |  O(n)
//	Cursor creation    |  O(n)
type Tree[E comparable] struct {
	root *node[E]
}

// Empty creates an empty tree.
func Empty[E comparable]() *Tree[E] {
	return &Tree[E]{}
}

// Make creates a tree with root element and the given trees as left and right
// subtrees. Either subtree may be nil or empty, resulting in an absent child.
//
// The root nodes of left and right are linked into the new tree, not copied.
func Make[E comparable](left *Tree[E], element E, right *Tree[E]) *Tree[E] {
	return &Tree[E]{root: makeNode(left.rootNode(), element, right.rootNode())}
}

// Leaf creates a tree consisting of a single element.
func Leaf[E comparable](element E) *Tree[E] {
	return Make(nil, element, nil)
}

// MakeLeft creates a tree with a left subtree and no right subtree.
func MakeLeft[E comparable](left *Tree[E], element E) *Tree[E] {
	return Make(left, element, nil)
}

// MakeRight creates a tree with a right subtree and no left subtree.
func MakeRight[E comparable](element E, right *Tree[E]) *Tree[E] {
	return Make(nil, element, right)
}

// treeOf wraps an existing node as a tree handle.
func treeOf[E comparable](n *node[E]) *Tree[E] {
	return &Tree[E]{root: n}
}

func (t *Tree[E]) rootNode() *node[E] {
	if t == nil {
		return nil
	}
	return t.root
}

// Size returns the number of elements in t.
func (t *Tree[E]) Size() int {
	return size(t.rootNode())
}

// IsEmpty reports whether t has no elements.
func (t *Tree[E]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Contains reports whether t holds an element equal to x.
func (t *Tree[E]) Contains(x E) bool {
	return contains(t.rootNode(), x)
}

// Height returns the number of edges on the longest path from the root down to
// a leaf. A single-element tree has height 0, the empty tree has height -1.
func (t *Tree[E]) Height() int {
	if t.IsEmpty() {
		return -1
	}
	return height(t.root) - 1
}

// Equal reports whether t and other hold equal elements in the same shape.
// Swapping the children of a node results in a different tree.
func (t *Tree[E]) Equal(other *Tree[E]) bool {
	return equalStructure(t.rootNode(), other.rootNode())
}

// Root returns the root element of t.
func (t *Tree[E]) Root() (E, error) {
	if t.IsEmpty() {
		var zero E
		return zero, fmt.Errorf("root: %w", ErrEmptyTree)
	}
	return t.root.element, nil
}

// Left returns the left subtree of t. If the root of t has no left child,
// an empty tree is returned.
//
// The subtree shares its nodes with t.
func (t *Tree[E]) Left() (*Tree[E], error) {
	if t.IsEmpty() {
		return nil, fmt.Errorf("left child: %w", ErrEmptyTree)
	}
	return treeOf(t.root.left), nil
}

// Right returns the right subtree of t. If the root of t has no right child,
// an empty tree is returned.
//
// The subtree shares its nodes with t.
func (t *Tree[E]) Right() (*Tree[E], error) {
	if t.IsEmpty() {
		return nil, fmt.Errorf("right child: %w", ErrEmptyTree)
	}
	return treeOf(t.root.right), nil
}

// ReplaceRoot replaces the root element of t and returns the previous one.
func (t *Tree[E]) ReplaceRoot(element E) (E, error) {
	if t.IsEmpty() {
		var zero E
		return zero, fmt.Errorf("replace root: %w", ErrEmptyTree)
	}
	old := t.root.element
	t.root.element = element
	return old, nil
}

// RemoveLeft detaches the left subtree of t.
//
// Other trees sharing the root node of t will observe the removal. At debug
// trace level the cached sizes of t are verified afterwards, and drift is
// reported as an error wrapping ErrIllegalState. The subtree is removed in
// either case.
func (t *Tree[E]) RemoveLeft() error {
	if t.IsEmpty() {
		return fmt.Errorf("remove left: %w", ErrEmptyTree)
	}
	removed := size(t.root.left)
	t.root.size -= removed
	t.root.left = nil
	debugf("bintree: removed left subtree of size %d", removed)
	return checkPruned(t, "remove left")
}

// RemoveRight detaches the right subtree of t.
//
// Other trees sharing the root node of t will observe the removal. At debug
// trace level the cached sizes of t are verified afterwards, and drift is
// reported as an error wrapping ErrIllegalState. The subtree is removed in
// either case.
func (t *Tree[E]) RemoveRight() error {
	if t.IsEmpty() {
		return fmt.Errorf("remove right: %w", ErrEmptyTree)
	}
	removed := size(t.root.right)
	t.root.size -= removed
	t.root.right = nil
	debugf("bintree: removed right subtree of size %d", removed)
	return checkPruned(t, "remove right")
}

func checkPruned[E comparable](t *Tree[E], op string) error {
	if !debugging() {
		return nil
	}
	if err := t.Check(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Clone returns a deep copy of t. The copy shares no nodes with t.
func (t *Tree[E]) Clone() *Tree[E] {
	return treeOf(copyNodes(t.rootNode()))
}

// --- Iteration -------------------------------------------------------------

// All iterates over the elements of t in pre-order.
func (t *Tree[E]) All() iter.Seq[E] {
	return t.Traverse(PreOrder)
}

// Traverse iterates over the elements of t in the given order. The node
// sequence is fixed when iteration starts.
func (t *Tree[E]) Traverse(order Order) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, n := range linearize(t.rootNode(), order) {
			if !yield(n.element) {
				return
			}
		}
	}
}

// Slice returns the elements of t in pre-order.
func (t *Tree[E]) Slice() []E {
	return t.PreOrder()
}

// PreOrder returns the elements of t in pre-order.
func (t *Tree[E]) PreOrder() []E {
	return elements(preOrder(t.rootNode()))
}

// InOrder returns the elements of t in in-order.
func (t *Tree[E]) InOrder() []E {
	return elements(inOrder(t.rootNode()))
}

// PostOrder returns the elements of t in post-order.
func (t *Tree[E]) PostOrder() []E {
	return elements(postOrder(t.rootNode()))
}

// LevelOrder returns the elements of t breadth-first, left to right within
// a level.
func (t *Tree[E]) LevelOrder() []E {
	return elements(levelOrder(t.rootNode()))
}

func elements[E comparable](nodes []*node[E]) []E {
	elems := make([]E, len(nodes))
	for i, n := range nodes {
		elems[i] = n.element
	}
	return elems
}

// --- Rendering -------------------------------------------------------------

// String renders t as the nested Make call which would reproduce it, omitting
// empty subtrees, e.g.
//
//	make(make(2), 1, make(3))
//
// The empty tree renders as "make()".
func (t *Tree[E]) String() string {
	var sb strings.Builder
	writeMake(&sb, t.rootNode())
	return sb.String()
}

func writeMake[E comparable](sb *strings.Builder, n *node[E]) {
	sb.WriteString("make(")
	if n != nil {
		if n.left != nil {
			writeMake(sb, n.left)
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%v", n.element)
		if n.right != nil {
			sb.WriteString(", ")
			writeMake(sb, n.right)
		}
	}
	sb.WriteString(")")
}
