package keytree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "cmp"

// FromSorted builds a tree of the given order from keys that are already
// in ascending order and free of duplicates, in time linear in len(keys).
//
// Construction appends each key to the rightmost leaf and splits along the
// rightmost spine only; nodes elsewhere are never touched, which is what
// makes the pass linear. The resulting tree satisfies the same invariants
// as one built by repeated Insert calls. An order below 3 is rejected with
// ErrInvalidOrder. The input slice is not retained.
func FromSorted[K cmp.Ordered](keys []K, order int) (*Tree[K], error) {
	if order < 3 {
		return nil, ErrInvalidOrder
	}
	t := &Tree[K]{order: order}
	if len(keys) == 0 {
		return t, nil
	}

	root := newLeaf[K](order)
	t.root = root
	t.height = 1

	// spine is the path from the root to the current rightmost leaf.
	spine := make([]*node[K], 0, 8)
	spine = append(spine, root)

	for _, key := range keys {
		leaf := spine[len(spine)-1]
		assert(leaf.leaf, "bulk spine must end in a leaf")
		leaf.keys = append(leaf.keys, key)
		t.size++

		// Resolve overflow bottom-up along the spine. A split replaces the
		// spine entry with the new right sibling: the nodes below it moved
		// over together with their subtrees, so the deeper spine entries
		// stay valid.
		for i := len(spine) - 1; i >= 0; i-- {
			n := spine[i]
			if len(n.keys) < order {
				break
			}
			lifted, sibling := t.splitNode(n)
			spine[i] = sibling
			if i == 0 {
				newRoot := newInternal[K](order)
				newRoot.keys = append(newRoot.keys, lifted)
				newRoot.children = append(newRoot.children, n, sibling)
				t.root = newRoot
				t.height++
				spine = append(spine, nil)
				copy(spine[1:], spine)
				spine[0] = newRoot
				break
			}
			parent := spine[i-1]
			parent.keys = append(parent.keys, lifted)
			parent.children = append(parent.children, sibling)
		}
	}
	tracer().Debugf("keytree: bulk-loaded %d keys, height %d", t.size, t.height)
	return t, nil
}
