// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rosetree

package rosetree

// Sized is the narrow capability of reporting how many elements a structure
// holds. Both Tree and TreeLoc implement it, which lets size-accounting
// consumers (report assertions, budgets) treat them uniformly without coupling
// the two types.
type Sized interface {
	// Size returns the total element count of the structure.
	Size() int
}
