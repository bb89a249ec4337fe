package keytree

import (
	"fmt"
	"strings"
)

// Join renders all stored keys in ascending order, separated by sep.
//
// The output is a diagnostic dump of the traversal order; it is not a
// serialization format. An empty tree renders as the empty string.
func (t *Tree[K]) Join(sep string) string {
	if t == nil || t.root == nil {
		return ""
	}
	var sb strings.Builder
	first := true
	t.ForEach(func(key K) bool {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		fmt.Fprintf(&sb, "%v", key)
		return true
	})
	return sb.String()
}

// String renders the tree as its comma-separated key sequence.
func (t *Tree[K]) String() string {
	return t.Join(",")
}
