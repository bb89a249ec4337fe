package keytree

import "iter"

// ForEach walks stored keys in ascending order.
//
// Iteration stops early if fn returns false. The tree must not be mutated
// from within fn.
func (t *Tree[K]) ForEach(fn func(key K) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[K]) forEachNode(n *node[K], fn func(key K) bool) bool {
	assert(n != nil, "forEachNode called with nil node")
	for i, key := range n.keys {
		if !n.leaf && !t.forEachNode(n.children[i], fn) {
			return false
		}
		if !fn(key) {
			return false
		}
	}
	if !n.leaf {
		return t.forEachNode(n.children[len(n.keys)], fn)
	}
	return true
}

// All returns an in-order iterator over all stored keys, for use with
// range-over-func loops.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ForEach(yield)
	}
}

// Range returns all stored keys k with lo <= k <= hi in ascending order.
//
// The result is an independently owned slice of key copies; it stays valid
// after later mutations of the tree. An empty range or a range matching
// nothing yields a nil slice.
func (t *Tree[K]) Range(lo, hi K) []K {
	if t == nil || t.root == nil {
		return nil
	}
	var out []K
	t.rangeNode(t.root, lo, hi, &out)
	return out
}

// rangeNode is an in-order walk pruned on the lower bound: the child left
// of a key can only contribute when lo < key. Pruning is conservative; the
// rightmost child is always visited.
func (t *Tree[K]) rangeNode(n *node[K], lo, hi K, out *[]K) {
	for i, key := range n.keys {
		if !n.leaf && lo < key {
			t.rangeNode(n.children[i], lo, hi, out)
		}
		if lo <= key && key <= hi {
			*out = append(*out, key)
		}
	}
	if !n.leaf {
		t.rangeNode(n.children[len(n.keys)], lo, hi, out)
	}
}
