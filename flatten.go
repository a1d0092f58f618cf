// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rosetree

package rosetree

import "iter"

// FlattenLeft returns the lazy pre-order sequence of all labels: the root
// first, then each child's full pre-order sequence, left to right.
//
// The walk uses an explicit work stack instead of recursion, so trees far
// deeper than the call stack allows (hundreds of thousands of levels) flatten
// without failure. Each label is produced exactly once, in a single pass.
func FlattenLeft[A any](t Tree[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		stack := []Tree[A]{t}
		for len(stack) > 0 {
			next := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(next.label) {
				return
			}

			// Children are pushed right-to-left so the leftmost is visited first.
			for i := len(next.children) - 1; i >= 0; i-- {
				stack = append(stack, next.children[i])
			}
		}
	}
}

// FlattenSubForests collapses all structure below the root into a single level:
// the result keeps the root label and has one leaf child per label of the
// pre-order flattening, the root's own label excluded.
//
// Useful when a consumer needs a shallow tree for display and the original
// hierarchy can be discarded.
func FlattenSubForests[A any](t Tree[A]) Tree[A] {
	var leaves []Tree[A]
	skipRoot := true
	for label := range FlattenLeft(t) {
		if skipRoot {
			skipRoot = false
			continue
		}

		leaves = append(leaves, Leaf(label))
	}

	return Tree[A]{label: t.label, children: leaves}
}
