// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rosetree

package rosetree

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// keepPositive admits strictly positive labels unchanged.
func keepPositive(a int) (int, bool) {
	return a, a > 0
}

func TestPruneKeepsSurvivors(t *testing.T) {
	t.Parallel()

	pruned, ok := Prune(Node(1, Leaf(-1), Leaf(2)), keepPositive)
	require.True(t, ok)
	require.Equal(t, Node(1, Leaf(2)), pruned)
}

func TestPruneRootRejected(t *testing.T) {
	t.Parallel()

	if _, ok := Prune(Leaf(-1), keepPositive); ok {
		t.Fatalf("Prune(Leaf(-1))=ok, want absence")
	}
}

func TestPruneDropsWholeFilteredSubtree(t *testing.T) {
	t.Parallel()

	// The node labeled -1 has surviving descendants; they must be dropped with
	// it, not promoted into the root's child list.
	tree := Node(1, Node(-1, Leaf(5), Leaf(6)), Leaf(2))
	pruned, ok := Prune(tree, keepPositive)

	require.True(t, ok)
	require.Equal(t, Node(1, Leaf(2)), pruned)
}

func TestPruneTypeChange(t *testing.T) {
	t.Parallel()

	tree := Node(1, Leaf(-2), Node(3, Leaf(4)))
	pruned, ok := Prune(tree, func(a int) (string, bool) {
		return strconv.Itoa(a), a > 0
	})

	require.True(t, ok)
	require.Equal(t, Node("1", Node("3", Leaf("4"))), pruned)
}

func TestClean(t *testing.T) {
	t.Parallel()

	one, two := 1, 2
	tree := Node(&one, Leaf[*int](nil), Leaf(&two))

	require.Equal(t, Node(1, Leaf(2)), Clean(tree, 0))
}

func TestCleanEmptyRootFallsBackToInitial(t *testing.T) {
	t.Parallel()

	five := 5
	tree := Node[*int](nil, Leaf(&five))

	require.Equal(t, Leaf(42), Clean(tree, 42))
}

func TestPruneTreeSeesDescendants(t *testing.T) {
	t.Parallel()

	// Keep a node only when its subtree contains at least one even label, a
	// decision impossible with a label-only filter.
	containsEven := func(sub Tree[int]) (int, bool) {
		for v := range FlattenLeft(sub) {
			if v%2 == 0 {
				return sub.Label(), true
			}
		}

		return 0, false
	}

	tree := Node(1, Node(3, Leaf(4)), Node(5, Leaf(7)))
	cleaned := PruneTree(tree, containsEven, 0)

	require.Equal(t, Node(1, Node(3, Leaf(4))), cleaned)
}

func TestPruneTreeRootRemovedYieldsInitial(t *testing.T) {
	t.Parallel()

	rejectAll := func(Tree[int]) (int, bool) { return 0, false }

	require.Equal(t, Leaf(-1), PruneTree(Node(1, Leaf(2)), rejectAll, -1))
}
