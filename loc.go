// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rosetree

package rosetree

import "slices"

// crumb records one ancestor of the focus: the ancestor's label and the
// siblings on each side of the path taken through it. lefts are stored
// nearest-first.
type crumb[A any] struct {
	lefts  []Tree[A]
	label  A
	rights []Tree[A]
}

// TreeLoc is a zipper cursor into a Tree: the subtree currently in focus plus
// enough immutable context to rebuild the whole tree with the focus replaced.
//
// TreeLoc is a value type and every operation returns a new cursor; the tree a
// cursor was created from is never modified. Context slices may share backing
// arrays between cursors, which is safe because no operation writes to a slice
// in place.
type TreeLoc[A any] struct {
	// tree is the subtree under the cursor.
	tree Tree[A]
	// lefts holds the focus node's left siblings, nearest-first.
	lefts []Tree[A]
	// rights holds the focus node's right siblings, nearest-first.
	rights []Tree[A]
	// parents holds the ancestor chain, nearest-first; empty at the root.
	parents []crumb[A]
}

// Loc returns a cursor focused on the root of the tree.
func (t Tree[A]) Loc() TreeLoc[A] {
	return TreeLoc[A]{tree: t}
}

// Tree returns the subtree under the cursor.
func (l TreeLoc[A]) Tree() Tree[A] {
	return l.tree
}

// Label returns the label of the focus node.
func (l TreeLoc[A]) Label() A {
	return l.tree.label
}

// IsRoot reports whether the cursor is at the root.
func (l TreeLoc[A]) IsRoot() bool {
	return len(l.parents) == 0
}

// IsLeaf reports whether the focus node has no children.
func (l TreeLoc[A]) IsLeaf() bool {
	return l.tree.IsLeaf()
}

// IsFirst reports whether the focus node has no left sibling.
func (l TreeLoc[A]) IsFirst() bool {
	return len(l.lefts) == 0
}

// IsLast reports whether the focus node has no right sibling.
func (l TreeLoc[A]) IsLast() bool {
	return len(l.rights) == 0
}

// Lefts returns the focus node's left siblings in left-to-right order.
func (l TreeLoc[A]) Lefts() []Tree[A] {
	return reversed(l.lefts)
}

// Rights returns the focus node's right siblings in left-to-right order.
func (l TreeLoc[A]) Rights() []Tree[A] {
	if len(l.rights) == 0 {
		return nil
	}

	return slices.Clone(l.rights)
}

// Parent moves to the enclosing node. The second result is false at the root,
// in which case the cursor is returned unchanged.
func (l TreeLoc[A]) Parent() (TreeLoc[A], bool) {
	if len(l.parents) == 0 {
		return l, false
	}

	p := l.parents[0]
	return TreeLoc[A]{
		tree:    Tree[A]{label: p.label, children: l.siblings()},
		lefts:   p.lefts,
		rights:  p.rights,
		parents: l.parents[1:],
	}, true
}

// GetParent moves to the enclosing node, or stays at the current position when
// already at the root. It never fails.
func (l TreeLoc[A]) GetParent() TreeLoc[A] {
	parent, _ := l.Parent()
	return parent
}

// Root moves to the root of the tree this cursor views.
func (l TreeLoc[A]) Root() TreeLoc[A] {
	for {
		parent, ok := l.Parent()
		if !ok {
			return l
		}

		l = parent
	}
}

// ToTree rebuilds and returns the full tree this cursor views, with any edits
// applied at the focus position.
func (l TreeLoc[A]) ToTree() Tree[A] {
	return l.Root().tree
}

// Child moves to the n-th child of the focus node, 0-based. The second result
// is false when no such child exists.
func (l TreeLoc[A]) Child(n int) (TreeLoc[A], bool) {
	children := l.tree.children
	if n < 0 || n >= len(children) {
		return l, false
	}

	return TreeLoc[A]{
		tree:    children[n],
		lefts:   reversed(children[:n]),
		rights:  children[n+1:],
		parents: l.downParents(),
	}, true
}

// FirstChild moves to the leftmost child of the focus node; false on a leaf.
func (l TreeLoc[A]) FirstChild() (TreeLoc[A], bool) {
	return l.Child(0)
}

// LastChild moves to the rightmost child of the focus node; false on a leaf.
func (l TreeLoc[A]) LastChild() (TreeLoc[A], bool) {
	return l.Child(len(l.tree.children) - 1)
}

// Left moves to the nearest left sibling; false when the focus is the first
// child or the root.
func (l TreeLoc[A]) Left() (TreeLoc[A], bool) {
	if len(l.lefts) == 0 {
		return l, false
	}

	return TreeLoc[A]{
		tree:    l.lefts[0],
		lefts:   l.lefts[1:],
		rights:  prepended(l.tree, l.rights),
		parents: l.parents,
	}, true
}

// Right moves to the nearest right sibling; false when the focus is the last
// child or the root.
func (l TreeLoc[A]) Right() (TreeLoc[A], bool) {
	if len(l.rights) == 0 {
		return l, false
	}

	return TreeLoc[A]{
		tree:    l.rights[0],
		lefts:   prepended(l.tree, l.lefts),
		rights:  l.rights[1:],
		parents: l.parents,
	}, true
}

// Find returns the first cursor in the focus subtree, in pre-order, whose
// position satisfies p. The second result is false when nothing matches, in
// which case the receiver is returned unchanged.
func (l TreeLoc[A]) Find(p func(TreeLoc[A]) bool) (TreeLoc[A], bool) {
	if p(l) {
		return l, true
	}

	for i := range l.tree.children {
		child, _ := l.Child(i)
		if found, ok := child.Find(p); ok {
			return found, true
		}
	}

	return l, false
}

// ParentLocs returns the cursor's ancestor chain from the root down to the
// immediate parent. Empty at the root.
func (l TreeLoc[A]) ParentLocs() []TreeLoc[A] {
	var chain []TreeLoc[A]
	for {
		parent, ok := l.Parent()
		if !ok {
			break
		}

		chain = append(chain, parent)
		l = parent
	}

	slices.Reverse(chain)
	return chain
}

// Path returns the labels on the path from the root down to the focus node,
// the focus label included.
func (l TreeLoc[A]) Path() []A {
	labels := make([]A, 0, len(l.parents)+1)
	for i := len(l.parents) - 1; i >= 0; i-- {
		labels = append(labels, l.parents[i].label)
	}

	return append(labels, l.tree.label)
}

// Size returns the total node count of the full tree this cursor views.
func (l TreeLoc[A]) Size() int {
	return l.ToTree().Size()
}

// siblings rebuilds the parent's full ordered child list around the focus.
func (l TreeLoc[A]) siblings() []Tree[A] {
	out := make([]Tree[A], 0, len(l.lefts)+1+len(l.rights))
	for i := len(l.lefts) - 1; i >= 0; i-- {
		out = append(out, l.lefts[i])
	}

	out = append(out, l.tree)
	return append(out, l.rights...)
}

// downParents returns the ancestor chain for a cursor one level below the
// focus.
func (l TreeLoc[A]) downParents() []crumb[A] {
	return prepended(crumb[A]{lefts: l.lefts, label: l.tree.label, rights: l.rights}, l.parents)
}

// prepended returns a fresh slice holding head followed by tail.
func prepended[E any](head E, tail []E) []E {
	out := make([]E, 0, len(tail)+1)
	out = append(out, head)
	return append(out, tail...)
}

// reversed returns a reversed copy of the slice, nil for empty input.
func reversed[A any](ts []Tree[A]) []Tree[A] {
	if len(ts) == 0 {
		return nil
	}

	out := slices.Clone(ts)
	slices.Reverse(out)
	return out
}
