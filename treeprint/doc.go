/*
Package treeprint draws binary trees as text diagrams for consoles.

Trees are drawn sideways, with the root at the left margin, right subtrees
above and left subtrees below their parent:

	┌── 5
	4
	│   ┌── 3
	└── 1
	    └── 2

Element labels are measured in fixed-width display cells (“en”s), respecting
East Asian wide characters, and truncated if a line would exceed the
configured line width.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package treeprint

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
