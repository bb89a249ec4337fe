package keytree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "cmp"

type insertOutcome uint8

const (
	// insertExisting: the key was already present, nothing changed below.
	insertExisting insertOutcome = iota
	// insertDone: the key was added, the subtree absorbed it locally.
	insertDone
	// insertSplit: the key was added and the subtree split; lifted and
	// sibling must be attached by the parent.
	insertSplit
)

// insertResult propagates the effect of a recursive insert upward.
//
// The outcome tag discriminates the shapes explicitly; lifted and sibling
// are meaningful only for insertSplit.
type insertResult[K cmp.Ordered] struct {
	outcome insertOutcome
	lifted  K
	sibling *node[K] // new right sibling of the node that split
}

// Insert adds key to the tree. Inserting a key that is already present is
// a no-op: the tree is left completely untouched.
func (t *Tree[K]) Insert(key K) {
	if t.root == nil {
		root := newLeaf[K](t.order)
		root.keys = append(root.keys, key)
		t.root = root
		t.size = 1
		t.height = 1
		return
	}
	res := t.insertNode(t.root, key)
	switch res.outcome {
	case insertExisting:
		return
	case insertSplit:
		// The root itself split: grow a new root above it, the only way
		// the tree gains height.
		newRoot := newInternal[K](t.order)
		newRoot.keys = append(newRoot.keys, res.lifted)
		newRoot.children = append(newRoot.children, t.root, res.sibling)
		t.root = newRoot
		t.height++
		tracer().Debugf("keytree: root split, height now %d", t.height)
	}
	t.size++
}

// insertNode inserts key into the subtree rooted at n.
//
// Descent locates the slot as in Search; the unwind attaches split results
// reported by children and resolves local overflow by splitting, so that
// every node on the path satisfies the capacity bound again before its own
// result is reported.
func (t *Tree[K]) insertNode(n *node[K], key K) insertResult[K] {
	slot, found := n.findSlot(key)
	if found {
		return insertResult[K]{outcome: insertExisting}
	}
	if n.leaf {
		n.insertKeyAt(slot, key)
		return t.resolveOverflow(n)
	}
	res := t.insertNode(n.children[slot], key)
	if res.outcome != insertSplit {
		return res
	}
	n.insertKeyAt(slot, res.lifted)
	n.insertChildAt(slot+1, res.sibling)
	return t.resolveOverflow(n)
}

// resolveOverflow reports insertDone while n is within capacity and splits
// it otherwise.
func (t *Tree[K]) resolveOverflow(n *node[K]) insertResult[K] {
	if len(n.keys) < t.order {
		return insertResult[K]{outcome: insertDone}
	}
	lifted, sibling := t.splitNode(n)
	return insertResult[K]{outcome: insertSplit, lifted: lifted, sibling: sibling}
}

// splitNode splits a node holding order keys (one over capacity, parked in
// the transient overflow slot) into two halves around mid = (order−1)/2.
//
// The key at mid is lifted out; n keeps the keys left of mid and a new
// right sibling receives the keys right of it. For even order−1 the left
// half ends up one key smaller — a fixed tie-break, so identical insertion
// sequences always produce identical trees.
func (t *Tree[K]) splitNode(n *node[K]) (K, *node[K]) {
	assert(len(n.keys) == t.order, "splitNode called without overflow")
	mid := (t.order - 1) / 2
	lifted := n.keys[mid]

	var sibling *node[K]
	if n.leaf {
		sibling = newLeaf[K](t.order)
	} else {
		sibling = newInternal[K](t.order)
		sibling.children = append(sibling.children, n.children[mid+1:]...)
		for i := mid + 1; i < len(n.children); i++ {
			n.children[i] = nil
		}
		n.children = n.children[:mid+1]
	}
	sibling.keys = append(sibling.keys, n.keys[mid+1:]...)
	n.keys = n.keys[:mid]
	return lifted, sibling
}
