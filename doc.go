/*
Package bintree offers a generic, mutable binary tree built from linked nodes.

Trees

A tree is either empty or consists of a root element with a left and a right
subtree, each of which is a tree again. Non-empty trees are composed bottom-up:

	t := bintree.Make(bintree.Leaf(2), 1, bintree.Leaf(3))

renders as

	make(make(2), 1, make(3))

Every node caches the size of the subtree it spans, so Size is O(1). Height,
Contains and Equal walk the tree.

Structural sharing

Make links its argument trees into the new tree by reference. Nothing is
copied, neither on construction nor when a subtree is extracted with Left or
Right. Consequently, mutations (RemoveLeft, RemoveRight, ReplaceRoot,
Cursor.Set) are visible through every tree handle sharing the mutated nodes.
Clients which want to mutate a subtree independently have to Clone it first.

Pruning a shared subtree through one handle will not update the cached sizes
of ancestors only reachable through another handle. Tree.Check reports such
drift. With the core tracer at debug level, RemoveLeft and RemoveRight run the
check on the pruned tree themselves.

Traversal

Trees iterate in pre-order by default (All). Cursors for pre-, in-, post- and
level-order capture the node sequence at the time of their creation and
allow replacing the element last returned.

Trees are not safe for concurrent mutation.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bintree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the bintree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrEmptyTree is flagged whenever an operation requires a non-empty tree.
const ErrEmptyTree = TreeError("operation on empty tree")

// ErrNoSuchElement signals that a cursor has been exhausted.
const ErrNoSuchElement = TreeError("no more elements")

// ErrIllegalState is flagged by Cursor.Set if no element has been returned
// by the cursor yet, and by Check for stale cached sizes.
const ErrIllegalState = TreeError("illegal state")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// debugf and errorf trace to T(), if a global tracer has been configured.
func debugf(format string, args ...any) {
	if tr := T(); tr != nil {
		tr.Debugf(format, args...)
	}
}

func errorf(format string, args ...any) {
	if tr := T(); tr != nil {
		tr.Errorf(format, args...)
	}
}

// debugging is true if a global tracer is configured at debug level.
func debugging() bool {
	tr := T()
	return tr != nil && tr.GetTraceLevel() >= tracing.LevelDebug
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
