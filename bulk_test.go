package keytree

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFromSortedRejectsInvalidOrder(t *testing.T) {
	if _, err := FromSorted([]int{1, 2, 3}, 2); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
}

func TestFromSortedEmptyInput(t *testing.T) {
	tree, err := FromSorted[int](nil, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tree.IsEmpty() || tree.Height() != 0 {
		t.Fatalf("expected empty tree, len=%d height=%d", tree.Len(), tree.Height())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariants failed: %v", err)
	}
}

func TestFromSortedSmallOrder3(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, err := FromSorted([]int{1, 2, 3, 4, 5, 6, 7}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Len() != 7 {
		t.Fatalf("unexpected size: %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariants failed: %v", err)
	}
	// Order-3 packing of 7 sequential keys fills three levels.
	if tree.Height() != 3 {
		t.Fatalf("unexpected height: %d", tree.Height())
	}
	for k := 1; k <= 7; k++ {
		if !tree.Search(k) {
			t.Fatalf("key %d missing after bulk load", k)
		}
	}
}

func TestFromSortedMatchesInsertion(t *testing.T) {
	keys := make([]int, 500)
	for i := range keys {
		keys[i] = i * 3
	}
	for _, order := range []int{3, 4, 5, 12} {
		bulk, err := FromSorted(keys, order)
		if err != nil {
			t.Fatalf("FromSorted order %d failed: %v", order, err)
		}
		if err := bulk.Check(); err != nil {
			t.Fatalf("bulk tree order %d invalid: %v", order, err)
		}
		if bulk.Len() != len(keys) {
			t.Fatalf("bulk tree order %d has size %d, want %d", order, bulk.Len(), len(keys))
		}
		var got []int
		for key := range bulk.All() {
			got = append(got, key)
		}
		if !slices.Equal(got, keys) {
			t.Fatalf("bulk tree order %d yields wrong sequence", order)
		}
	}
}

func TestFromSortedTreeIsMutable(t *testing.T) {
	tree, err := FromSorted([]int{2, 4, 6, 8, 10, 12, 14, 16}, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree.Insert(7)
	tree.Delete(2)
	tree.Delete(16)
	if err := tree.Check(); err != nil {
		t.Fatalf("invariants failed after mutating bulk-loaded tree: %v", err)
	}
	want := []int{4, 6, 7, 8, 10, 12, 14}
	var got []int
	for key := range tree.All() {
		got = append(got, key)
	}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected keys: got %v want %v", got, want)
	}
}

func TestFromSortedDoesNotRetainInput(t *testing.T) {
	keys := []int{1, 2, 3, 4, 5}
	tree, err := FromSorted(keys, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	keys[0] = 999
	if tree.Search(999) || !tree.Search(1) {
		t.Fatalf("bulk loader retained the input slice")
	}
}
