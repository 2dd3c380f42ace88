package editor

import (
	"github.com/matzehuels/hexrail/pkg/core/grid"
	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/hittest"
	"github.com/matzehuels/hexrail/pkg/core/render/board"
	"github.com/matzehuels/hexrail/pkg/core/scene"
)

// Highlight is the hovered side, if any.
type Highlight struct {
	Target hittest.Target `json:"target"`
	Active bool           `json:"active"`
}

// Model is the board together with the hover state. Models share their
// grid; a model that changes the board works on a copy.
type Model struct {
	grid      *grid.Grid
	highlight Highlight
}

// New returns a model over g with nothing hovered. The model takes
// ownership of g.
func New(g *grid.Grid) Model {
	return Model{grid: g}
}

// Grid returns a copy of the board.
func (m Model) Grid() *grid.Grid { return m.grid.Clone() }

// Highlight returns the hover state.
func (m Model) Highlight() Highlight { return m.highlight }

// Connections returns the confirmed sides of cell a.
func (m Model) Connections(a hex.Axial) [hex.NumDirections]bool {
	return m.grid.Connections(a)
}

// Count returns the number of connected sides on the board.
func (m Model) Count() int { return m.grid.Count() }

// Hit resolves a pointer position to a side that has a slot on the board.
// Sides on the rim whose slot belongs to a cell past the edge are hovered
// but never hit.
func (m Model) Hit(x, y float64) (hittest.Target, bool) {
	t, ok := hittest.EdgeAt(hex.Point{X: x, Y: y})
	if !ok || !m.Stored(t) {
		return hittest.Target{}, false
	}
	return t, true
}

// Stored reports whether side t has a slot on the board and can be toggled.
func (m Model) Stored(t hittest.Target) bool {
	_, ok := m.grid.Resolve(t.Cell, t.Dir)
	return ok
}

// WithHighlight returns m hovering t.
func (m Model) WithHighlight(t hittest.Target) Model {
	m.highlight = Highlight{Target: t, Active: true}
	return m
}

// WithoutHighlight returns m with nothing hovered.
func (m Model) WithoutHighlight() Model {
	m.highlight = Highlight{}
	return m
}

// Toggle returns m with side t flipped, or m unchanged and false when the
// side has no slot on the board.
func (m Model) Toggle(t hittest.Target) (Model, bool) {
	g := m.grid.Clone()
	if !g.Toggle(t.Cell, t.Dir) {
		return m, false
	}
	m.grid = g
	return m, true
}

// Render draws m. The hovered side is previewed on both cells it borders.
func Render(m Model, opts ...board.Option) scene.Scene {
	var hl *hittest.Target
	if m.highlight.Active {
		t := m.highlight.Target
		hl = &t
	}
	return board.Render(m.grid, hl, opts...)
}
