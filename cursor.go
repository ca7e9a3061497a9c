package bintree

import "fmt"

// Order selects one of the canonical linearizations of a binary tree.
type Order int8

// Traversal orders, for a node with element E and subtrees L and R.
const (
	PreOrder   Order = iota // E, L, R
	InOrder                 // L, E, R
	PostOrder               // L, R, E
	LevelOrder              // breadth-first, left before right
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	}
	return fmt.Sprintf("Order(%d)", int8(o))
}

// ParseOrder maps a short name ("pre", "in", "post", "level") or the
// long form returned by Order.String to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "pre", "pre-order", "preorder":
		return PreOrder, nil
	case "in", "in-order", "inorder":
		return InOrder, nil
	case "post", "post-order", "postorder":
		return PostOrder, nil
	case "level", "level-order", "levelorder":
		return LevelOrder, nil
	}
	return PreOrder, fmt.Errorf("unknown traversal order %q: %w", s, ErrIllegalArguments)
}

func linearize[E comparable](n *node[E], order Order) []*node[E] {
	switch order {
	case PreOrder:
		return preOrder(n)
	case InOrder:
		return inOrder(n)
	case PostOrder:
		return postOrder(n)
	case LevelOrder:
		return levelOrder(n)
	}
	panic(fmt.Sprintf("bintree: invalid traversal order %d", order))
}

// CursorState is the state of a cursor.
type CursorState int8

// A cursor starts in state HasNext if its tree has been non-empty at the time
// of cursor creation, and moves to Exhausted after the last element has been
// returned. There is no transition out of Exhausted except Reset.
const (
	HasNext CursorState = iota
	Exhausted
)

// Cursor traverses a tree in a fixed order.
//
// The cursor is bound to the node sequence of its tree at the time of its
// creation. Later structural changes to the tree neither extend nor shrink
// the sequence. Replacing elements with Set, however, writes through to the
// nodes, and is visible in every tree sharing them.
type Cursor[E comparable] struct {
	order Order
	nodes []*node[E]
	pos   int      // index of the next node to return
	last  *node[E] // node returned by the latest call to Next
}

// NewCursor creates a cursor over t in the given order.
func (t *Tree[E]) NewCursor(order Order) (*Cursor[E], error) {
	if order < PreOrder || order > LevelOrder {
		return nil, fmt.Errorf("new cursor: invalid order %d: %w", order, ErrIllegalArguments)
	}
	nodes := linearize(t.rootNode(), order)
	debugf("bintree: new %s cursor over %d nodes", order, len(nodes))
	return &Cursor[E]{order: order, nodes: nodes}, nil
}

func (t *Tree[E]) mustCursor(order Order) *Cursor[E] {
	c, err := t.NewCursor(order)
	assert(err == nil, "cursor creation failed for a valid order")
	return c
}

// PreOrderCursor returns a cursor for traversing t in pre-order.
func (t *Tree[E]) PreOrderCursor() *Cursor[E] {
	return t.mustCursor(PreOrder)
}

// InOrderCursor returns a cursor for traversing t in in-order.
func (t *Tree[E]) InOrderCursor() *Cursor[E] {
	return t.mustCursor(InOrder)
}

// PostOrderCursor returns a cursor for traversing t in post-order.
func (t *Tree[E]) PostOrderCursor() *Cursor[E] {
	return t.mustCursor(PostOrder)
}

// LevelOrderCursor returns a cursor for traversing t in level-order.
func (t *Tree[E]) LevelOrderCursor() *Cursor[E] {
	return t.mustCursor(LevelOrder)
}

// Order returns the traversal order of the cursor.
func (c *Cursor[E]) Order() Order {
	return c.order
}

// State returns the current state of the cursor.
func (c *Cursor[E]) State() CursorState {
	if c.HasMore() {
		return HasNext
	}
	return Exhausted
}

// HasMore reports whether a call to Next will return an element.
func (c *Cursor[E]) HasMore() bool {
	return c != nil && c.pos < len(c.nodes)
}

// Next returns the next element and advances the cursor.
//
// If the cursor is exhausted, ErrNoSuchElement is returned and the cursor
// remains unchanged.
func (c *Cursor[E]) Next() (E, error) {
	if !c.HasMore() {
		var zero E
		return zero, ErrNoSuchElement
	}
	c.last = c.nodes[c.pos]
	c.pos++
	return c.last.element, nil
}

// Set replaces the element most recently returned by Next.
//
// If Next has not yet returned an element, ErrIllegalState is returned.
func (c *Cursor[E]) Set(element E) error {
	if c == nil || c.last == nil {
		return ErrIllegalState
	}
	c.last.element = element
	return nil
}

// Reset rewinds the cursor to the start of its node sequence. The sequence
// itself is not re-captured.
func (c *Cursor[E]) Reset() {
	if c == nil {
		return
	}
	c.pos = 0
	c.last = nil
}
