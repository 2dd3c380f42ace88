package grid

import (
	"github.com/matzehuels/hexrail/pkg/core/hex"
)

// OwnedEdges is the number of sides stored by each cell.
const OwnedEdges = 3

// Edge is one side of a cell.
type Edge struct {
	RailConnection bool `json:"rail_connection"`
}

// Cell holds the three sides a cell owns.
type Cell struct {
	Edges [OwnedEdges]Edge `json:"edges"`
}

// Bounds is a closed axial rectangle.
type Bounds struct {
	MinQ, MaxQ int
	MinR, MaxR int
}

// Contains reports whether a lies within b.
func (b Bounds) Contains(a hex.Axial) bool {
	return a.Q >= b.MinQ && a.Q <= b.MaxQ && a.R >= b.MinR && a.R <= b.MaxR
}

// Width returns the number of columns.
func (b Bounds) Width() int { return b.MaxQ - b.MinQ + 1 }

// Height returns the number of rows.
func (b Bounds) Height() int { return b.MaxR - b.MinR + 1 }

// Ref names a canonical storage slot: side Owned (0..2) of Cell.
type Ref struct {
	Cell  hex.Axial     `json:"cell"`
	Owned hex.Direction `json:"edge"`
}

// Grid is a bounded board of cells. The zero value is an empty board with
// no cells; use [New].
type Grid struct {
	bounds Bounds
	cells  []Cell
}

// DefaultSize is the width and height of the reference board.
const DefaultSize = 7

// New returns a cleared board of width×height cells centred on the origin.
// New(7, 7) covers q and r in [-3, 3].
func New(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	minQ, minR := -(width / 2), -(height / 2)
	b := Bounds{MinQ: minQ, MaxQ: minQ + width - 1, MinR: minR, MaxR: minR + height - 1}
	return &Grid{bounds: b, cells: make([]Cell, width*height)}
}

// Default returns a cleared reference board.
func Default() *Grid { return New(DefaultSize, DefaultSize) }

// Bounds returns the axial rectangle covered by g.
func (g *Grid) Bounds() Bounds { return g.bounds }

// Contains reports whether cell a exists in g.
func (g *Grid) Contains(a hex.Axial) bool { return len(g.cells) > 0 && g.bounds.Contains(a) }

func (g *Grid) index(a hex.Axial) int {
	return (a.Q-g.bounds.MinQ)*g.bounds.Height() + (a.R - g.bounds.MinR)
}

// Cell returns the cell at a, or false when a is outside the board.
func (g *Grid) Cell(a hex.Axial) (Cell, bool) {
	if !g.Contains(a) {
		return Cell{}, false
	}
	return g.cells[g.index(a)], true
}

// Resolve maps side d of cell a to its canonical slot. Sides 0..2 belong to
// a itself; sides 3..5 belong to the neighbor across them. The result is
// false when the owning cell lies outside the board.
func (g *Grid) Resolve(a hex.Axial, d hex.Direction) (Ref, bool) {
	if d.Must() >= OwnedEdges {
		return g.Resolve(a.Neighbor(d), d-OwnedEdges)
	}
	if !g.Contains(a) {
		return Ref{}, false
	}
	return Ref{Cell: a, Owned: d}, true
}

// Edge returns side d of cell a and whether its slot exists.
func (g *Grid) Edge(a hex.Axial, d hex.Direction) (Edge, bool) {
	ref, ok := g.Resolve(a, d)
	if !ok {
		return Edge{}, false
	}
	return g.cells[g.index(ref.Cell)].Edges[ref.Owned], true
}

// Edges returns the six sides of a in direction order. Sides whose owning
// cell is absent read as disconnected.
func (g *Grid) Edges(a hex.Axial) [hex.NumDirections]Edge {
	var out [hex.NumDirections]Edge
	for _, d := range hex.Directions {
		out[d], _ = g.Edge(a, d)
	}
	return out
}

// Connections is Edges reduced to the connection flags.
func (g *Grid) Connections(a hex.Axial) [hex.NumDirections]bool {
	var out [hex.NumDirections]bool
	for d, e := range g.Edges(a) {
		out[d] = e.RailConnection
	}
	return out
}

// Toggle flips side d of cell a. It reports false, leaving g unchanged,
// when the side has no slot on the board.
func (g *Grid) Toggle(a hex.Axial, d hex.Direction) bool {
	ref, ok := g.Resolve(a, d)
	if !ok {
		return false
	}
	e := &g.cells[g.index(ref.Cell)].Edges[ref.Owned]
	e.RailConnection = !e.RailConnection
	return true
}

// Set stores v on side d of cell a, reporting false when the side has no
// slot on the board.
func (g *Grid) Set(a hex.Axial, d hex.Direction, v bool) bool {
	ref, ok := g.Resolve(a, d)
	if !ok {
		return false
	}
	g.cells[g.index(ref.Cell)].Edges[ref.Owned].RailConnection = v
	return true
}

// Connected lists every connected slot, ordered by q, r, then side.
func (g *Grid) Connected() []Ref {
	var refs []Ref
	for q := g.bounds.MinQ; q <= g.bounds.MaxQ; q++ {
		for r := g.bounds.MinR; r <= g.bounds.MaxR; r++ {
			a := hex.Axial{Q: q, R: r}
			for i, e := range g.cells[g.index(a)].Edges {
				if e.RailConnection {
					refs = append(refs, Ref{Cell: a, Owned: hex.Direction(i)})
				}
			}
		}
	}
	return refs
}

// Count returns the number of connected slots.
func (g *Grid) Count() int { return len(g.Connected()) }

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{bounds: g.bounds, cells: cells}
}
