// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rosetree

package rosetree

// Prune filters the tree through f, which may also change the label type.
//
// A node whose label is rejected by f is dropped together with its entire
// subtree; surviving descendants of a rejected node are not promoted into its
// parent. A node whose label is accepted keeps its surviving children in
// order. The second result is false when the root itself is rejected.
func Prune[A, B any](t Tree[A], f func(A) (B, bool)) (Tree[B], bool) {
	label, ok := f(t.label)
	if !ok {
		return Tree[B]{}, false
	}

	var children []Tree[B]
	for _, child := range t.children {
		pruned, kept := Prune(child, f)
		if !kept {
			continue
		}

		children = append(children, pruned)
	}

	return Tree[B]{label: label, children: children}, true
}

// PruneTree filters the tree with a predicate that sees the whole subtree
// rooted at each node, not just the node's label, so the decision may depend
// on descendants.
//
// Implemented as two passes: every node is first replaced by f applied to its
// subtree, yielding a same-shape tree of optional labels, which Clean then
// strips. If the root itself is removed the result is a single leaf holding
// initial.
func PruneTree[A any](t Tree[A], f func(Tree[A]) (A, bool), initial A) Tree[A] {
	return Clean(mapSubtrees(t, f), initial)
}

// Clean drops every node whose label is nil, removing the node's whole subtree
// as in Prune. If the root itself is nil the result is a single leaf holding
// initial, so callers never observe absence.
func Clean[A any](t Tree[*A], initial A) Tree[A] {
	cleaned, ok := Prune(t, func(label *A) (A, bool) {
		if label == nil {
			var zero A
			return zero, false
		}

		return *label, true
	})
	if !ok {
		return Leaf(initial)
	}

	return cleaned
}

// mapSubtrees relabels every node with f applied to the subtree rooted there,
// using nil for rejected nodes. Shape is preserved.
func mapSubtrees[A any](t Tree[A], f func(Tree[A]) (A, bool)) Tree[*A] {
	out := Tree[*A]{}
	if v, ok := f(t); ok {
		out.label = &v
	}

	if len(t.children) == 0 {
		return out
	}

	out.children = make([]Tree[*A], len(t.children))
	for i, child := range t.children {
		out.children[i] = mapSubtrees(child, f)
	}

	return out
}
