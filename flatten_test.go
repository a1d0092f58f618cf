// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rosetree

package rosetree

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

const deepTreeDepth = 100_000

// buildDeepTree returns a narrow tree of depth single-child nodes labeled
// depth-1 down to 0, the root holding depth-1.
func buildDeepTree(depth int) Tree[int] {
	tree := Leaf(0)
	for i := 1; i < depth; i++ {
		tree = Node(i, tree)
	}

	return tree
}

func TestFlattenLeftPreOrder(t *testing.T) {
	t.Parallel()

	// Four levels, uneven branching.
	tree := Node("a",
		Node("b",
			Node("c", Leaf("d")),
			Leaf("e"),
		),
		Leaf("f"),
		Node("g", Leaf("h")),
	)

	got := slices.Collect(FlattenLeft(tree))
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h"}, got)
}

func TestFlattenLeftSingleNode(t *testing.T) {
	t.Parallel()

	got := slices.Collect(FlattenLeft(Leaf(7)))
	require.Equal(t, []int{7}, got)
}

func TestFlattenLeftStopsEarly(t *testing.T) {
	t.Parallel()

	tree := Node(1, Leaf(2), Leaf(3), Leaf(4))

	var seen []int
	for v := range FlattenLeft(tree) {
		seen = append(seen, v)
		if len(seen) == 2 {
			break
		}
	}

	require.Equal(t, []int{1, 2}, seen)
}

func TestFlattenSubForests(t *testing.T) {
	t.Parallel()

	tree := Node("a", Node("b", Leaf("c")), Leaf("d"))
	flat := FlattenSubForests(tree)

	require.Equal(t, Node("a", Leaf("b"), Leaf("c"), Leaf("d")), flat)

	for _, child := range flat.Children() {
		if !child.IsLeaf() {
			t.Fatalf("child %v is not a leaf", child.Label())
		}
	}
}

func TestFlattenSubForestsLeaf(t *testing.T) {
	t.Parallel()

	require.Equal(t, Leaf(1), FlattenSubForests(Leaf(1)))
}

func TestFlattenLeftDeepTree(t *testing.T) {
	t.Parallel()

	tree := buildDeepTree(deepTreeDepth)

	count := 0
	last := -1
	for v := range FlattenLeft(tree) {
		count++
		last = v
	}

	if count != deepTreeDepth {
		t.Fatalf("flattened %d labels, want %d", count, deepTreeDepth)
	}

	if last != 0 {
		t.Fatalf("last label=%d, want 0", last)
	}
}

func TestSizeAndDepthDeepTree(t *testing.T) {
	t.Parallel()

	tree := buildDeepTree(deepTreeDepth)

	if got := tree.Size(); got != deepTreeDepth {
		t.Fatalf("Size()=%d, want %d", got, deepTreeDepth)
	}

	if got := tree.Depth(); got != deepTreeDepth {
		t.Fatalf("Depth()=%d, want %d", got, deepTreeDepth)
	}
}
