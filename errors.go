package keytree

import "errors"

var (
	// ErrInvalidOrder signals a branching order below 3, the minimum needed
	// to split a full node into two valid halves.
	ErrInvalidOrder = errors.New("keytree: invalid order")
	// ErrEmptyTree signals a min/max query on a tree holding no keys.
	ErrEmptyTree = errors.New("keytree: empty tree")
	// ErrInvariant marks a violated structural invariant found by Check.
	ErrInvariant = errors.New("keytree: invariant violated")
)
