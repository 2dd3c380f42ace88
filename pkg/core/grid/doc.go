// Package grid stores the rail connections of a bounded hexagon board.
//
// Every physical side between two cells is stored exactly once. A cell owns
// its sides 0, 1 and 2; its sides 3, 4 and 5 are the owned sides 0, 1 and 2
// of the neighbors in those directions. [Grid.Resolve] maps any
// (cell, direction) pair to that canonical storage slot, and every read and
// write goes through it, so both cells sharing a side always agree.
//
// Cells outside the configured bounds are absent: their sides read as
// disconnected and writes to them are rejected.
package grid
