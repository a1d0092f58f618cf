// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rosetree

package rosetree

import (
	"fmt"
	"strings"
)

// Draw renders the tree as an indented multi-line listing, one label per line,
// two spaces of indent per level, in pre-order. Labels are formatted with %v.
func (t Tree[A]) Draw() string {
	var sb strings.Builder
	drawInto(&sb, t, 0)
	return sb.String()
}

// String renders the tree on a single line in "label(child child)" form.
func (t Tree[A]) String() string {
	var sb strings.Builder
	writeCompact(&sb, t)
	return sb.String()
}

// drawInto appends one indented line per node, depth-first.
func drawInto[A any](sb *strings.Builder, t Tree[A], depth int) {
	for range depth {
		sb.WriteString("  ")
	}

	fmt.Fprintf(sb, "%v\n", t.label)
	for _, child := range t.children {
		drawInto(sb, child, depth+1)
	}
}

// writeCompact appends the single-line rendering of one subtree.
func writeCompact[A any](sb *strings.Builder, t Tree[A]) {
	fmt.Fprintf(sb, "%v", t.label)
	if len(t.children) == 0 {
		return
	}

	sb.WriteByte('(')
	for i, child := range t.children {
		if i > 0 {
			sb.WriteByte(' ')
		}

		writeCompact(sb, child)
	}

	sb.WriteByte(')')
}
