package keytree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes an indented outline of the node structure to w, one node per
// line, children below their parent. It is a debugging aid complementing
// Join: Join shows the key sequence, Dump shows the shape.
//
// When w is an interactive terminal, occupancy is highlighted: full nodes
// are printed in cyan and nodes at (or, for the root, below) minimum
// occupancy in yellow. Non-terminal writers receive plain text.
func (t *Tree[K]) Dump(w io.Writer) {
	if t == nil || w == nil {
		return
	}
	if t.root == nil {
		fmt.Fprintln(w, "(empty tree)")
		return
	}
	var full, low *color.Color
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		full = color.New(color.FgCyan)
		low = color.New(color.FgYellow)
	}
	t.dumpNode(w, t.root, 0, full, low)
}

func (t *Tree[K]) dumpNode(w io.Writer, n *node[K], depth int, full, low *color.Color) {
	line := fmt.Sprintf("%v", n.keys)
	switch {
	case full != nil && len(n.keys) == t.order-1:
		line = full.Sprint(line)
	case low != nil && len(n.keys) <= t.minKeys():
		line = low.Sprint(line)
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), line)
	for _, child := range n.children {
		t.dumpNode(w, child, depth+1, full, low)
	}
}
