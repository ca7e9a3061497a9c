package bintree

import "fmt"

// Check validates the cached subtree sizes of t against a recount.
//
// Sizes may drift if a subtree shared between trees has been pruned through
// one of them. The checker is meant for tests and debugging; it runs in O(n).
func (t *Tree[E]) Check() error {
	if t.IsEmpty() {
		return nil
	}
	if _, err := checkNode(t.root); err != nil {
		errorf("bintree: %v", err)
		return err
	}
	return nil
}

func checkNode[E comparable](n *node[E]) (int, error) {
	if n == nil {
		return 0, nil
	}
	l, err := checkNode(n.left)
	if err != nil {
		return 0, err
	}
	r, err := checkNode(n.right)
	if err != nil {
		return 0, err
	}
	if n.size != 1+l+r {
		return 0, fmt.Errorf("%w: cached size %d at element %v, counted %d",
			ErrIllegalState, n.size, n.element, 1+l+r)
	}
	return n.size, nil
}
