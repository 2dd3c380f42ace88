// Package io reads and writes toggle scripts: lists of cell sides to flip
// on a fresh board.
//
// # Overview
//
// A script names the board size and the sides to toggle, in order. Scripts
// are plain input for the CLI and the HTTP editor; they describe how to
// build a board, not a saved board. Three encodings are accepted, chosen by
// file extension:
//
//   - .toml
//   - .yaml or .yml
//   - .json
//
// # Format
//
// In TOML:
//
//	name = "reference"
//	width = 7
//	height = 7
//
//	[[toggles]]
//	q = 0
//	r = 1
//	edge = 1
//
// The same keys are used in YAML and JSON. Width and height default to 7.
// Unknown keys are rejected so that typos do not silently drop toggles.
//
// # Edges
//
// An edge is a side index 0..5 of the named cell, in the same numbering as
// [hex.Direction]. Sides 3..5 are stored by the neighbor across them, so
// {q=0, r=0, edge=4} and {q=0, r=1, edge=1} flip the same side. Toggling a
// side twice restores it.
//
// # Errors
//
// [Script.Apply] checks every direction before touching the board and fails
// with INVALID_DIRECTION on the first bad one. Toggles whose side has no
// slot on the board are skipped and reported together as OUT_OF_BOUNDS;
// the rest still apply.
//
// [hex.Direction]: github.com/matzehuels/hexrail/pkg/core/hex.Direction
package io
