// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rosetree

package rosetree

// SetTree replaces the whole focus subtree, keeping the cursor position.
func (l TreeLoc[A]) SetTree(t Tree[A]) TreeLoc[A] {
	l.tree = t
	return l
}

// ModifyTree replaces the focus subtree with f applied to it.
func (l TreeLoc[A]) ModifyTree(f func(Tree[A]) Tree[A]) TreeLoc[A] {
	return l.SetTree(f(l.tree))
}

// SetLabel replaces the focus node's label, keeping its children and position.
func (l TreeLoc[A]) SetLabel(a A) TreeLoc[A] {
	return l.SetTree(Tree[A]{label: a, children: l.tree.children})
}

// UpdateLabel replaces the focus node's label with f applied to it.
func (l TreeLoc[A]) UpdateLabel(f func(A) A) TreeLoc[A] {
	return l.SetLabel(f(l.tree.label))
}

// AddChild appends a new leaf labeled a as the last child of the focus node.
// The cursor stays on the node that received the child.
func (l TreeLoc[A]) AddChild(a A) TreeLoc[A] {
	children := make([]Tree[A], 0, len(l.tree.children)+1)
	children = append(children, l.tree.children...)
	children = append(children, Leaf(a))

	return l.SetTree(Tree[A]{label: l.tree.label, children: children})
}

// AddFirstChild inserts a new leaf labeled a as the first child of the focus
// node. The cursor stays on the node that received the child.
func (l TreeLoc[A]) AddFirstChild(a A) TreeLoc[A] {
	return l.SetTree(Tree[A]{
		label:    l.tree.label,
		children: prepended(Leaf(a), l.tree.children),
	})
}

// InsertLeft inserts t as the nearest left sibling of the focus node and moves
// the cursor to the inserted subtree.
func (l TreeLoc[A]) InsertLeft(t Tree[A]) TreeLoc[A] {
	return TreeLoc[A]{
		tree:    t,
		lefts:   l.lefts,
		rights:  prepended(l.tree, l.rights),
		parents: l.parents,
	}
}

// InsertRight inserts t as the nearest right sibling of the focus node and
// moves the cursor to the inserted subtree.
func (l TreeLoc[A]) InsertRight(t Tree[A]) TreeLoc[A] {
	return TreeLoc[A]{
		tree:    t,
		lefts:   prepended(l.tree, l.lefts),
		rights:  l.rights,
		parents: l.parents,
	}
}

// InsertDownFirst inserts t as the first child of the focus node and moves the
// cursor to the inserted subtree.
func (l TreeLoc[A]) InsertDownFirst(t Tree[A]) TreeLoc[A] {
	return TreeLoc[A]{
		tree:    t,
		rights:  l.tree.children,
		parents: l.downParents(),
	}
}

// InsertDownLast inserts t as the last child of the focus node and moves the
// cursor to the inserted subtree.
func (l TreeLoc[A]) InsertDownLast(t Tree[A]) TreeLoc[A] {
	return TreeLoc[A]{
		tree:    t,
		lefts:   reversed(l.tree.children),
		parents: l.downParents(),
	}
}

// DeleteAndMoveUp removes the focus subtree and moves the cursor to the
// nearest right sibling, else the nearest left sibling, else the parent. The
// second result is false at the root, where deletion is not possible and the
// cursor is returned unchanged.
func (l TreeLoc[A]) DeleteAndMoveUp() (TreeLoc[A], bool) {
	switch {
	case len(l.rights) > 0:
		return TreeLoc[A]{
			tree:    l.rights[0],
			lefts:   l.lefts,
			rights:  l.rights[1:],
			parents: l.parents,
		}, true

	case len(l.lefts) > 0:
		return TreeLoc[A]{
			tree:    l.lefts[0],
			lefts:   l.lefts[1:],
			rights:  l.rights,
			parents: l.parents,
		}, true

	case len(l.parents) > 0:
		p := l.parents[0]
		return TreeLoc[A]{
			tree:    Tree[A]{label: p.label},
			lefts:   p.lefts,
			rights:  p.rights,
			parents: l.parents[1:],
		}, true
	}

	return l, false
}
