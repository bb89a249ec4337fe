package keytree

import "cmp"

// node is one tree node: an ordered run of keys and, for internal nodes,
// one child link per key gap. A node is owned exclusively by its parent
// (or by the tree, for the root); no node is ever shared.
//
// Backing storage is fixed at creation from the tree order M: capacity for
// M−1 keys and M children, plus one transient overflow slot each. The
// overflow slot lets the mutation engines append one entry past capacity
// and split immediately afterwards; no slice ever reallocates.
type node[K cmp.Ordered] struct {
	keys     []K        // len == key count, strictly increasing
	children []*node[K] // len == key count + 1 for internal nodes, nil for leaves
	leaf     bool
}

func newLeaf[K cmp.Ordered](order int) *node[K] {
	return &node[K]{
		keys: make([]K, 0, order),
		leaf: true,
	}
}

func newInternal[K cmp.Ordered](order int) *node[K] {
	return &node[K]{
		keys:     make([]K, 0, order),
		children: make([]*node[K], 0, order+1),
	}
}

// findSlot returns the first index i with key <= n.keys[i], or len(n.keys)
// if key is greater than all keys. All engines share this scan so that an
// exact match is always reported at the same slot.
func (n *node[K]) findSlot(key K) (int, bool) {
	i := 0
	for i < len(n.keys) && n.keys[i] < key {
		i++
	}
	return i, i < len(n.keys) && n.keys[i] == key
}

// insertKeyAt shifts keys[idx:] right by one slot and stores key at idx.
// May fill the transient overflow slot; the caller must resolve overflow
// before returning.
func (n *node[K]) insertKeyAt(idx int, key K) {
	assert(idx >= 0 && idx <= len(n.keys), "insertKeyAt index out of range")
	assert(len(n.keys) < cap(n.keys), "insertKeyAt exceeds overflow storage")
	n.keys = n.keys[:len(n.keys)+1]
	copy(n.keys[idx+1:], n.keys[idx:])
	n.keys[idx] = key
}

// insertChildAt shifts children[idx:] right by one slot and stores child at idx.
func (n *node[K]) insertChildAt(idx int, child *node[K]) {
	assert(!n.leaf, "insertChildAt called on leaf")
	assert(idx >= 0 && idx <= len(n.children), "insertChildAt index out of range")
	assert(len(n.children) < cap(n.children), "insertChildAt exceeds overflow storage")
	n.children = n.children[:len(n.children)+1]
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child
}

func (n *node[K]) removeKeyAt(idx int) {
	assert(idx >= 0 && idx < len(n.keys), "removeKeyAt index out of range")
	copy(n.keys[idx:], n.keys[idx+1:])
	n.keys = n.keys[:len(n.keys)-1]
}

func (n *node[K]) removeChildAt(idx int) {
	assert(!n.leaf, "removeChildAt called on leaf")
	assert(idx >= 0 && idx < len(n.children), "removeChildAt index out of range")
	copy(n.children[idx:], n.children[idx+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
}

// minKey walks the left spine to the smallest key of the subtree.
func (n *node[K]) minKey() K {
	cur := n
	for !cur.leaf {
		cur = cur.children[0]
	}
	return cur.keys[0]
}

// maxKey walks the right spine to the largest key of the subtree.
func (n *node[K]) maxKey() K {
	cur := n
	for !cur.leaf {
		cur = cur.children[len(cur.children)-1]
	}
	return cur.keys[len(cur.keys)-1]
}
