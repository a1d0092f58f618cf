// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rosetree

package rosetree

// AllPaths returns every root-to-leaf path as an ordered label list from the
// root down to the leaf, in left-to-right leaf order.
//
// A single-node tree yields exactly one path holding only the root's label.
// Each returned path has its own backing array.
func AllPaths[A any](t Tree[A]) [][]A {
	var paths [][]A
	collectPaths(t, nil, &paths)
	return paths
}

// collectPaths extends prefix with the node's label and either records the
// completed path at a leaf or descends into each child in order.
func collectPaths[A any](t Tree[A], prefix []A, paths *[][]A) {
	branch := make([]A, 0, len(prefix)+1)
	branch = append(branch, prefix...)
	branch = append(branch, t.label)

	if len(t.children) == 0 {
		*paths = append(*paths, branch)
		return
	}

	for _, child := range t.children {
		collectPaths(child, branch, paths)
	}
}
