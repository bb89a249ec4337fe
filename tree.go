package keytree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "cmp"

// Tree is an in-memory B-tree of branching order M over keys of type K.
//
// Every node holds at most M−1 keys; non-root nodes hold at least
// ceil(M/2)−1. Duplicate keys are not stored. The zero value is not usable;
// create trees with New or FromSorted.
//
// A Tree is not safe for concurrent use.
type Tree[K cmp.Ordered] struct {
	order  int
	root   *node[K]
	size   int
	height int // 0 means empty tree, 1 a single leaf root
}

// New creates an empty tree of the given branching order.
//
// The order is the maximum number of children of an internal node and must
// be at least 3; smaller orders cannot split a full node into two valid
// halves and are rejected with ErrInvalidOrder.
func New[K cmp.Ordered](order int) (*Tree[K], error) {
	if order < 3 {
		return nil, ErrInvalidOrder
	}
	return &Tree[K]{order: order}, nil
}

// Order returns the branching order the tree was created with.
func (t *Tree[K]) Order() int {
	return t.order
}

// Len returns the number of distinct keys stored in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the tree height, where 0 means empty and 1 means a leaf
// root. Height grows only through root splits and shrinks only through
// root collapse.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Search reports whether key is stored in the tree.
func (t *Tree[K]) Search(key K) bool {
	if t == nil {
		return false
	}
	cur := t.root
	for cur != nil {
		slot, found := cur.findSlot(key)
		if found {
			return true
		}
		if cur.leaf {
			return false
		}
		cur = cur.children[slot]
	}
	return false
}

// Min returns the smallest stored key, or ErrEmptyTree if there is none.
func (t *Tree[K]) Min() (K, error) {
	if t.IsEmpty() {
		var zero K
		return zero, ErrEmptyTree
	}
	return t.root.minKey(), nil
}

// Max returns the largest stored key, or ErrEmptyTree if there is none.
func (t *Tree[K]) Max() (K, error) {
	if t.IsEmpty() {
		var zero K
		return zero, ErrEmptyTree
	}
	return t.root.maxKey(), nil
}

// Clear discards all keys, resetting the tree to empty. The order is kept.
//
// Nodes form a strict ownership hierarchy with no cycles, so dropping the
// root releases the whole structure.
func (t *Tree[K]) Clear() {
	if t == nil {
		return
	}
	t.root = nil
	t.size = 0
	t.height = 0
}
