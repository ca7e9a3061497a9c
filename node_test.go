package bintree

import "testing"

// completeTree builds a complete tree holding 1…n, numbered in level order.
func completeTree(n int) *Tree[int] {
	var build func(i int) *Tree[int]
	build = func(i int) *Tree[int] {
		if i > n {
			return nil
		}
		return Make(build(2*i), i, build(2*i+1))
	}
	if n < 1 {
		return Empty[int]()
	}
	return build(1)
}

func TestNodeSizeCache(t *testing.T) {
	for n := 0; n <= 33; n++ {
		tree := completeTree(n)
		if tree.Size() != n {
			t.Fatalf("complete tree %d: size = %d", n, tree.Size())
		}
		if c := count(tree.rootNode()); c != n {
			t.Fatalf("complete tree %d: recount = %d", n, c)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("complete tree %d: %v", n, err)
		}
	}
}

func TestNodeHeightOffset(t *testing.T) {
	cases := []struct{ n, nodeHeight, treeHeight int }{
		{0, 0, -1},
		{1, 1, 0},
		{2, 2, 1},
		{3, 2, 1},
		{7, 3, 2},
		{8, 4, 3},
	}
	for _, c := range cases {
		tree := completeTree(c.n)
		if h := height(tree.rootNode()); h != c.nodeHeight {
			t.Errorf("n=%d: node height = %d, want %d", c.n, h, c.nodeHeight)
		}
		if h := tree.Height(); h != c.treeHeight {
			t.Errorf("n=%d: tree height = %d, want %d", c.n, h, c.treeHeight)
		}
	}
}

func TestNodeLevelOrderOfCompleteTree(t *testing.T) {
	tree := completeTree(12)
	for i, x := range tree.LevelOrder() {
		if x != i+1 {
			t.Fatalf("level order position %d holds %d", i, x)
		}
	}
}

func TestNodePruningKeepsCache(t *testing.T) {
	tree := completeTree(15)
	left, _ := tree.Left()
	right, _ := tree.Right()
	ll, _ := left.Left()
	if err := ll.RemoveRight(); err != nil {
		t.Fatal(err)
	}
	if err := right.RemoveLeft(); err != nil {
		t.Fatal(err)
	}
	// pruning through child handles leaves the root's cached size stale
	if err := tree.Check(); err == nil {
		t.Fatalf("expected stale size at root to be detected")
	}
	for _, sub := range []*Tree[int]{ll, right} {
		if err := sub.Check(); err != nil {
			t.Errorf("pruned subtree %s: %v", sub, err)
		}
	}
	if count(tree.rootNode()) != 11 {
		t.Errorf("recount after pruning = %d, want 11", count(tree.rootNode()))
	}
}

func TestNodeCopyDropsSharing(t *testing.T) {
	tree := completeTree(7)
	cp := copyNodes(tree.root)
	if !equalStructure(tree.root, cp) {
		t.Fatalf("copy differs from original")
	}
	orig, copied := preOrder(tree.root), preOrder(cp)
	for i := range orig {
		if orig[i] == copied[i] {
			t.Fatalf("copy shares node %v", orig[i].element)
		}
	}
}
