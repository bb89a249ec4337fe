package keytree

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
)

func TestDumpRendersEveryKeyOnce(t *testing.T) {
	tree := buildIntTree(t, 4, 10, 20, 5, 6, 12, 30, 7, 17)
	var buf bytes.Buffer
	tree.Dump(&buf)
	out := buf.String()
	for _, key := range []int{5, 6, 7, 10, 12, 17, 20, 30} {
		needle := strconv.Itoa(key)
		if !strings.Contains(out, needle) {
			t.Fatalf("key %d missing from dump:\n%s", key, out)
		}
	}
	// One line per node: root plus three leaves for this insertion sequence.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 node lines, got %d:\n%s", len(lines), out)
	}
	if strings.HasPrefix(lines[0], " ") || !strings.HasPrefix(lines[1], "  ") {
		t.Fatalf("unexpected indentation:\n%s", out)
	}
	// A bytes.Buffer is not a terminal, so no escape codes may appear.
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("unexpected color escapes in non-terminal dump:\n%s", out)
	}
}

func TestDumpEmptyTree(t *testing.T) {
	tree, err := New[int](3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	tree.Dump(&buf)
	if got := strings.TrimSpace(buf.String()); got != "(empty tree)" {
		t.Fatalf("unexpected empty dump: %q", got)
	}
}
