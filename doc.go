// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rosetree

/*
Package rosetree implements an immutable ordered multi-way ("rose") tree with
structural algorithms and a zipper cursor for localized navigation and editing.

The package is intentionally generic and can be used for hierarchical reports,
aggregation pipelines, outline/document models, and other tree-shaped data where
the original structure must never be mutated.

Basic flow:
  - build a tree from leaves and nodes (`Leaf`, `Node`)
  - derive aggregate labels bottom-up (`BottomUp`)
  - filter subtrees (`Prune`, `PruneTree`, `Clean`)
  - enumerate labels and paths (`FlattenLeft`, `FlattenSubForests`, `AllPaths`)
  - render for display (`Draw`)

For localized edits, use `TreeLoc`:
  - create a cursor at the root (`Tree.Loc`)
  - navigate with `Parent`, `FirstChild`, `Left`, `Right` and friends
  - edit with `SetLabel`, `AddChild`, `InsertLeft` and friends
  - rebuild the full edited tree (`ToTree`)

Every operation is pure: it returns a new value and leaves its input untouched, so
trees and cursors are safe to share across goroutines without synchronization.
*/
package rosetree
