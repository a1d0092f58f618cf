// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rosetree

package rosetree

import "iter"

// BottomUp folds the tree from the leaves toward the root while preserving its
// shape.
//
// For every node, each child subtree is folded first; f then combines the
// node's original label with the sequence of its children's already-computed
// new root labels (not whole subtrees) to produce the node's new label. The
// result has exactly the same branching structure as the input.
//
// Typical use is propagating aggregates upward: counts, worst status, summed
// durations of hierarchical report nodes.
func BottomUp[A, B any](t Tree[A], f func(A, iter.Seq[B]) B) Tree[B] {
	out := Tree[B]{}
	if len(t.children) > 0 {
		out.children = make([]Tree[B], len(t.children))
		for i, child := range t.children {
			out.children[i] = BottomUp(child, f)
		}
	}

	out.label = f(t.label, func(yield func(B) bool) {
		for _, child := range out.children {
			if !yield(child.label) {
				return
			}
		}
	})

	return out
}
