// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rosetree

package rosetree

import (
	"iter"
	"slices"
)

// Tree is an immutable ordered rose tree: one label plus an ordered sequence of
// child subtrees. A tree with no children is a leaf.
//
// Tree is a value type. Constructors copy caller-supplied child slices and
// accessors return fresh slices, so no operation can observe or cause mutation
// of a previously built tree. Structural sharing between derived trees is safe
// for the same reason.
type Tree[A any] struct {
	// label is the node's value.
	label A
	// children is the ordered list of subtrees, nil for a leaf.
	children []Tree[A]
}

// Leaf returns a tree holding a with no children.
func Leaf[A any](a A) Tree[A] {
	return Tree[A]{label: a}
}

// Node returns a tree holding a with the given ordered children.
//
// The child slice is copied; later mutation of the caller's slice does not
// affect the returned tree.
func Node[A any](a A, children ...Tree[A]) Tree[A] {
	if len(children) == 0 {
		return Tree[A]{label: a}
	}

	return Tree[A]{label: a, children: slices.Clone(children)}
}

// Label returns the node's value.
func (t Tree[A]) Label() A {
	return t.label
}

// Children returns the ordered child subtrees as a fresh slice.
func (t Tree[A]) Children() []Tree[A] {
	if len(t.children) == 0 {
		return nil
	}

	return slices.Clone(t.children)
}

// ChildSeq returns the ordered child subtrees as a sequence without copying.
func (t Tree[A]) ChildSeq() iter.Seq[Tree[A]] {
	return func(yield func(Tree[A]) bool) {
		for _, child := range t.children {
			if !yield(child) {
				return
			}
		}
	}
}

// IsLeaf reports whether the node has no children.
func (t Tree[A]) IsLeaf() bool {
	return len(t.children) == 0
}

// Size returns the total node count of the tree, root included.
//
// Counting walks the whole tree iteratively, so arbitrarily deep trees are safe.
func (t Tree[A]) Size() int {
	size := 0
	for range FlattenLeft(t) {
		size++
	}

	return size
}

// Depth returns the number of nodes on the longest root-to-leaf path.
//
// Computed with an explicit work stack, so arbitrarily deep trees are safe.
func (t Tree[A]) Depth() int {
	deepest := 0
	trees := []Tree[A]{t}
	depths := []int{1}
	for len(trees) > 0 {
		last := len(trees) - 1
		next, depth := trees[last], depths[last]
		trees, depths = trees[:last], depths[:last]
		if depth > deepest {
			deepest = depth
		}

		for _, child := range next.children {
			trees = append(trees, child)
			depths = append(depths, depth+1)
		}
	}

	return deepest
}

// Map returns a tree of the same shape with every label replaced by f(label).
func Map[A, B any](t Tree[A], f func(A) B) Tree[B] {
	out := Tree[B]{label: f(t.label)}
	if len(t.children) == 0 {
		return out
	}

	out.children = make([]Tree[B], len(t.children))
	for i, child := range t.children {
		out.children[i] = Map(child, f)
	}

	return out
}

// Eq reports whether two trees have the same shape and pairwise-equal labels
// under eq.
func Eq[A any](a, b Tree[A], eq func(A, A) bool) bool {
	if !eq(a.label, b.label) || len(a.children) != len(b.children) {
		return false
	}

	for i := range a.children {
		if !Eq(a.children[i], b.children[i], eq) {
			return false
		}
	}

	return true
}
