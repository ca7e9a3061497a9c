/*
Package html renders binary trees as nested HTML lists.

A tree

	make(make(2), 1, make(3))

is rendered as

	<ul class="bintree"><li class="root"><span>1</span><ul><li class="left"><span>2</span></li><li class="right"><span>3</span></li></ul></li></ul>

Every list item carries the position of its subtree as a class, so a node with
a single child may still be told apart as having a left or a right one.
*/
package html

import (
	"fmt"
	"io"

	"github.com/npillmayer/bintree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Outline creates an HTML node for a tree: a <ul> element with class
// "bintree", containing a single list item for the root. For the empty tree
// the list has no items.
func Outline[E comparable](t *bintree.Tree[E]) *html.Node {
	ul := element(atom.Ul, "bintree")
	if !t.IsEmpty() {
		ul.AppendChild(item(t, "root"))
	}
	return ul
}

// Render writes the outline of a tree to w.
func Render[E comparable](w io.Writer, t *bintree.Tree[E]) error {
	if w == nil {
		return bintree.ErrIllegalArguments
	}
	return html.Render(w, Outline(t))
}

func item[E comparable](t *bintree.Tree[E], class string) *html.Node {
	li := element(atom.Li, class)
	elem, _ := t.Root()
	span := element(atom.Span, "")
	span.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: fmt.Sprintf("%v", elem),
	})
	li.AppendChild(span)
	left, _ := t.Left()
	right, _ := t.Right()
	if left.IsEmpty() && right.IsEmpty() {
		return li
	}
	ul := element(atom.Ul, "")
	if !left.IsEmpty() {
		ul.AppendChild(item(left, "left"))
	}
	if !right.IsEmpty() {
		ul.AppendChild(item(right, "right"))
	}
	li.AppendChild(ul)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
