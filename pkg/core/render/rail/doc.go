// Package rail derives the track pieces of a single cell from its side
// connectivity and turns them into scene shapes.
//
// # Pieces
//
// Given which of the six sides carry a rail, three kinds of pieces are drawn:
//
//   - Stub: a dead end at side d, drawn when d is connected and none of the
//     three sides facing it (d+2, d+3, d+4) are
//   - Straight: a rail across the cell, drawn for each opposite pair
//     (d, d+3) with both sides connected
//   - Bend: a curve around corner d, drawn when both sides adjacent to d
//     (d-1, d+1) are connected
//
// Stubs, straights and bends are evaluated independently, so a cell joining
// three sides may show a straight and bends at the same time.
//
// # Preview
//
// A hovered side is rendered as if it were already connected. Pieces that
// depend on at least one previewed (not yet real) side are ghosts and carry
// the ghost class, so the presentation layer can show them as provisional.
package rail
