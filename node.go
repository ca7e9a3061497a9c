package bintree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// node is the link record of a tree. Invariants:
//
//   - size == 1 + size(left) + size(right), with size(nil) == 0.
//   - An absent subtree is always nil.
//   - A node is referenced by at most one parent slot, unless Make links it
//     into more than one tree on purpose.
type node[E comparable] struct {
	left    *node[E]
	element E
	right   *node[E]
	size    int
}

func makeNode[E comparable](left *node[E], element E, right *node[E]) *node[E] {
	return &node[E]{
		left:    left,
		element: element,
		right:   right,
		size:    1 + size(left) + size(right),
	}
}

// size returns the cached subtree size of n.
func size[E comparable](n *node[E]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// count recomputes the subtree size of n without trusting cached values.
func count[E comparable](n *node[E]) int {
	if n == nil {
		return 0
	}
	return 1 + count(n.left) + count(n.right)
}

func contains[E comparable](n *node[E], target E) bool {
	if n == nil {
		return false
	}
	return n.element == target || contains(n.left, target) || contains(n.right, target)
}

// height counts the nodes on the longest path from n down to a leaf,
// i.e. 0 for an absent node and 1 for a leaf.
func height[E comparable](n *node[E]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// equalStructure compares two subtrees by shape and element values.
func equalStructure[E comparable](a, b *node[E]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.element == b.element &&
		equalStructure(a.left, b.left) &&
		equalStructure(a.right, b.right)
}

// copyNodes deep-copies a subtree, dropping any sharing.
func copyNodes[E comparable](n *node[E]) *node[E] {
	if n == nil {
		return nil
	}
	return makeNode(copyNodes(n.left), n.element, copyNodes(n.right))
}

// --- Linearization ---------------------------------------------------------

func preOrder[E comparable](n *node[E]) []*node[E] {
	nodes := make([]*node[E], 0, size(n))
	collectPreOrder(n, &nodes)
	return nodes
}

func collectPreOrder[E comparable](n *node[E], nodes *[]*node[E]) {
	if n == nil {
		return
	}
	*nodes = append(*nodes, n)
	collectPreOrder(n.left, nodes)
	collectPreOrder(n.right, nodes)
}

func inOrder[E comparable](n *node[E]) []*node[E] {
	nodes := make([]*node[E], 0, size(n))
	collectInOrder(n, &nodes)
	return nodes
}

func collectInOrder[E comparable](n *node[E], nodes *[]*node[E]) {
	if n == nil {
		return
	}
	collectInOrder(n.left, nodes)
	*nodes = append(*nodes, n)
	collectInOrder(n.right, nodes)
}

func postOrder[E comparable](n *node[E]) []*node[E] {
	nodes := make([]*node[E], 0, size(n))
	collectPostOrder(n, &nodes)
	return nodes
}

func collectPostOrder[E comparable](n *node[E], nodes *[]*node[E]) {
	if n == nil {
		return
	}
	collectPostOrder(n.left, nodes)
	collectPostOrder(n.right, nodes)
	*nodes = append(*nodes, n)
}

// levelOrder collects nodes breadth-first. The result slice doubles as the
// queue: nodes[head:] are visited but their children are not yet enqueued.
func levelOrder[E comparable](n *node[E]) []*node[E] {
	if n == nil {
		return []*node[E]{}
	}
	nodes := make([]*node[E], 0, size(n))
	nodes = append(nodes, n)
	for head := 0; head < len(nodes); head++ {
		if l := nodes[head].left; l != nil {
			nodes = append(nodes, l)
		}
		if r := nodes[head].right; r != nil {
			nodes = append(nodes, r)
		}
	}
	return nodes
}
