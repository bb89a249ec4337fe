package keytree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
)

// Check validates the structural invariants of the tree:
//
//   - every node's key run is strictly increasing,
//   - non-root nodes hold between ceil(M/2)−1 and M−1 keys, the root
//     between 1 and M−1 (or the tree is empty),
//   - an internal node with k keys has exactly k+1 children, a leaf none,
//   - all leaves are at the same depth,
//   - each separator key strictly brackets the key ranges of its two
//     adjacent children,
//   - the stored size and height match the actual structure.
//
// It returns nil when all invariants hold and a wrapped ErrInvariant
// naming the first violation otherwise. Check walks the whole tree and is
// meant for tests and diagnostics, not for hot paths.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.order < 3 {
		return fmt.Errorf("%w: order %d below minimum 3", ErrInvariant, t.order)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, got %d", ErrInvariant, t.size)
		}
		if t.height != 0 {
			return fmt.Errorf("%w: empty tree must have height 0, got %d", ErrInvariant, t.height)
		}
		return nil
	}
	info, err := t.checkNode(t.root, true)
	if err != nil {
		tracer().Errorf("%s", err)
		return err
	}
	if info.count != t.size {
		return fmt.Errorf("%w: size mismatch (stored %d, counted %d)", ErrInvariant, t.size, info.count)
	}
	if info.height != t.height {
		return fmt.Errorf("%w: height mismatch (stored %d, measured %d)", ErrInvariant, t.height, info.height)
	}
	return nil
}

// subtreeInfo carries the facts a parent needs to validate separator
// bracketing and leaf depth without re-walking the subtree.
type subtreeInfo[K cmp.Ordered] struct {
	min, max K
	height   int
	count    int
}

func (t *Tree[K]) checkNode(n *node[K], isRoot bool) (subtreeInfo[K], error) {
	var info subtreeInfo[K]
	if n == nil {
		return info, fmt.Errorf("%w: nil node", ErrInvariant)
	}

	minKeys := t.minKeys()
	if isRoot {
		minKeys = 1
	}
	if len(n.keys) < minKeys || len(n.keys) > t.order-1 {
		return info, fmt.Errorf("%w: node holds %d keys, want %d..%d",
			ErrInvariant, len(n.keys), minKeys, t.order-1)
	}
	for i := 0; i+1 < len(n.keys); i++ {
		if n.keys[i] >= n.keys[i+1] {
			return info, fmt.Errorf("%w: keys not strictly increasing at index %d", ErrInvariant, i)
		}
	}

	if n.leaf {
		if len(n.children) != 0 {
			return info, fmt.Errorf("%w: leaf owns %d children", ErrInvariant, len(n.children))
		}
		info.min = n.keys[0]
		info.max = n.keys[len(n.keys)-1]
		info.height = 1
		info.count = len(n.keys)
		return info, nil
	}

	if len(n.children) != len(n.keys)+1 {
		return info, fmt.Errorf("%w: internal node has %d keys but %d children",
			ErrInvariant, len(n.keys), len(n.children))
	}
	childHeight := 0
	for i, child := range n.children {
		ci, err := t.checkNode(child, false)
		if err != nil {
			return info, err
		}
		if i == 0 {
			childHeight = ci.height
			info.min = ci.min
		} else if ci.height != childHeight {
			return info, fmt.Errorf("%w: non-uniform leaf depth below child %d", ErrInvariant, i)
		}
		if i == len(n.children)-1 {
			info.max = ci.max
		}
		// Separator bracketing: keys[i-1] < everything in child i < keys[i].
		if i > 0 && ci.min <= n.keys[i-1] {
			return info, fmt.Errorf("%w: separator %d not below child %d", ErrInvariant, i-1, i)
		}
		if i < len(n.keys) && ci.max >= n.keys[i] {
			return info, fmt.Errorf("%w: separator %d not above child %d", ErrInvariant, i, i)
		}
		info.count += ci.count
	}
	info.count += len(n.keys)
	info.height = childHeight + 1
	return info, nil
}
