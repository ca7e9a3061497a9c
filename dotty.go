package bintree

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
)

type nodeids[E comparable] struct {
	idTable map[*node[E]]int
	max     int
}

func newtable[E comparable]() nodeids[E] {
	return nodeids[E]{
		idTable: make(map[*node[E]]int),
		max:     1,
	}
}

func (ids *nodeids[E]) alloc(n *node[E]) (int, bool) {
	if id, ok := ids.idTable[n]; ok {
		return id, false
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1, true
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Nodes shared between several parents are drawn once, with an edge from every
// parent. Absent children are drawn as empty circles, so left and right
// children can be told apart.
func Tree2Dot[E comparable](t *Tree[E], w io.Writer) error {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("fontname", "Arial")
	ids := newtable[E]()
	if !t.IsEmpty() {
		dotNode(graph, t.root, &ids)
	}
	_, err := io.WriteString(w, graph.String())
	if err != nil {
		errorf("tree DOT: %s", err.Error())
	}
	return err
}

func dotNode[E comparable](graph *dot.Graph, n *node[E], ids *nodeids[E]) dot.Node {
	id, fresh := ids.alloc(n)
	gnode := graph.Node(fmt.Sprintf("n%d", id))
	if !fresh {
		return gnode
	}
	gnode = gnode.Label(fmt.Sprintf("%v [%d]", n.element, n.size))
	nodeDotStyles(gnode, n.left == nil && n.right == nil)
	if n.left == nil && n.right == nil {
		return gnode
	}
	for i, child := range [2]*node[E]{n.left, n.right} {
		var target dot.Node
		if child == nil {
			target = emptyNode(graph, id, i)
		} else {
			target = dotNode(graph, child, ids)
		}
		gnode.Edge(target)
	}
	return gnode
}

func emptyNode(graph *dot.Graph, parent int, slot int) dot.Node {
	n := graph.Node(fmt.Sprintf("nil%d_%d", parent, slot))
	n.Label("")
	n.Attr("shape", "circle")
	n.Attr("fixedsize", "true")
	n.Attr("width", ".2")
	return n
}

func nodeDotStyles(n dot.Node, isleaf bool) {
	n.Attr("style", "filled")
	if isleaf {
		n.Attr("shape", "box")
		n.Attr("fillcolor", "#a3d7e4")
	} else {
		n.Attr("shape", "circle")
		n.Attr("fillcolor", "#CCDDFF")
	}
}
