package keytree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

type deleteOutcome uint8

const (
	// deleteNotFound: the key is not stored, nothing below changed.
	deleteNotFound deleteOutcome = iota
	// deleteDone: the key was removed and occupancy is repaired.
	deleteDone
	// deleteUnderflow: the key was removed and the mutated child may now be
	// under-occupied; the parent must verify and repair before returning.
	deleteUnderflow
)

// Delete removes key from the tree. Deleting an absent key is a no-op.
func (t *Tree[K]) Delete(key K) {
	if t == nil || t.root == nil {
		return
	}
	res := t.deleteNode(t.root, key)
	if res == deleteNotFound {
		return
	}
	if len(t.root.keys) == 0 {
		// Root collapse, the only way the tree loses height.
		if t.root.leaf {
			t.root = nil
			t.height = 0
		} else {
			assert(len(t.root.children) == 1, "empty internal root must have a single child")
			t.root = t.root.children[0]
			t.height--
			tracer().Debugf("keytree: root collapse, height now %d", t.height)
		}
	}
	t.size--
}

// deleteNode removes key from the subtree rooted at n.
//
// A key found in a leaf is removed in place. A key found in an internal
// node is replaced by its in-order successor (the minimum of the right
// child), which is then deleted from that child; successor substitution is
// applied uniformly, never predecessor substitution. The unwind repairs
// child underflow at the parent, so that every node below the current one
// satisfies the occupancy bound again before the result is reported.
func (t *Tree[K]) deleteNode(n *node[K], key K) deleteOutcome {
	slot, found := n.findSlot(key)
	if n.leaf {
		if !found {
			return deleteNotFound
		}
		n.removeKeyAt(slot)
		return deleteUnderflow
	}

	childIdx := slot
	var res deleteOutcome
	if found {
		succ := n.children[slot+1].minKey()
		n.keys[slot] = succ
		childIdx = slot + 1
		res = t.deleteNode(n.children[childIdx], succ)
	} else {
		res = t.deleteNode(n.children[childIdx], key)
	}
	if res != deleteUnderflow {
		return res
	}
	return t.repairChild(n, childIdx)
}

// minKeys is the lower occupancy bound ceil(order/2)−1 for non-root nodes.
func (t *Tree[K]) minKeys() int {
	return (t.order+1)/2 - 1
}

// repairChild restores occupancy of n.children[idx] after a delete below.
//
// Rotation is preferred over merging whenever a sibling has a key to
// spare, since it resolves locally; when both siblings are at minimum the
// child is merged with the right sibling if one exists, else the left.
func (t *Tree[K]) repairChild(n *node[K], idx int) deleteOutcome {
	child := n.children[idx]
	minKeys := t.minKeys()
	if len(child.keys) >= minKeys {
		return deleteDone
	}
	if idx > 0 && len(n.children[idx-1].keys) > minKeys {
		t.borrowFromLeft(n, idx)
		return deleteDone
	}
	if idx < len(n.keys) && len(n.children[idx+1].keys) > minKeys {
		t.borrowFromRight(n, idx)
		return deleteDone
	}
	if idx < len(n.keys) {
		t.mergeChildren(n, idx)
	} else {
		t.mergeChildren(n, idx-1)
	}
	// Merging removed a separator from n; n may underflow in turn.
	return deleteUnderflow
}

// borrowFromLeft rotates one key clockwise through the separator: the
// separator moves down as the child's new first key, the left sibling's
// last key moves up into the separator slot, and for internal nodes the
// left sibling's last child follows its key.
func (t *Tree[K]) borrowFromLeft(n *node[K], idx int) {
	child := n.children[idx]
	left := n.children[idx-1]
	child.insertKeyAt(0, n.keys[idx-1])
	if !child.leaf {
		child.insertChildAt(0, left.children[len(left.children)-1])
		left.removeChildAt(len(left.children) - 1)
	}
	n.keys[idx-1] = left.keys[len(left.keys)-1]
	left.removeKeyAt(len(left.keys) - 1)
}

// borrowFromRight is the mirror image of borrowFromLeft.
func (t *Tree[K]) borrowFromRight(n *node[K], idx int) {
	child := n.children[idx]
	right := n.children[idx+1]
	child.keys = append(child.keys, n.keys[idx])
	if !child.leaf {
		child.children = append(child.children, right.children[0])
		right.removeChildAt(0)
	}
	n.keys[idx] = right.keys[0]
	right.removeKeyAt(0)
}

// mergeChildren folds the separator n.keys[i] and all of children[i+1]
// into children[i], then drops both from n. Both nodes are at or below
// minimum occupancy, so the merged run always fits the fixed capacity.
func (t *Tree[K]) mergeChildren(n *node[K], i int) {
	left := n.children[i]
	right := n.children[i+1]
	left.keys = append(left.keys, n.keys[i])
	left.keys = append(left.keys, right.keys...)
	if !left.leaf {
		left.children = append(left.children, right.children...)
	}
	assert(len(left.keys) < t.order, "mergeChildren overflowed fixed capacity")
	n.removeKeyAt(i)
	n.removeChildAt(i + 1)
}
