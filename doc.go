/*
Package keytree implements a generic, in-memory B-tree of parametric order.

A Tree[K] stores distinct keys of any totally ordered key type (constrained
by cmp.Ordered) and supports membership search, insertion, deletion, ordered
range queries and linear-time bulk construction from pre-sorted input. The
branching order M is chosen at construction time and bounds every node to at
most M−1 keys and M children; all leaves stay at the same depth, so search,
insert and delete run in O(log n) node visits with O(M) work per node.

Trees are plain in-process containers: there is no persistence and no
internal locking. A Tree must not be used concurrently from multiple
goroutines, not even for concurrent reads during a write; callers needing
shared access must serialize externally.

The structural invariants maintained by every mutation can be verified with
Check, which is intended for tests and diagnostics.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package keytree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'keytree'
func tracer() tracing.Trace {
	return tracing.Select("keytree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
