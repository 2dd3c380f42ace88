// Package board renders a whole grid, plus the hovered side, as a scene.
package board

import (
	"fmt"

	"github.com/matzehuels/hexrail/pkg/core/grid"
	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/hittest"
	"github.com/matzehuels/hexrail/pkg/core/render/rail"
	"github.com/matzehuels/hexrail/pkg/core/scene"
)

// Canvas defaults of the reference layout.
const (
	DefaultCanvasWidth  = 1000.0
	DefaultCanvasHeight = 1000.0
	// DefaultRadius is the diamond radius rendered for the reference grid.
	DefaultRadius = 3
)

// Outline of a cell, corner by corner.
var hexagon = []hex.Point{
	{X: -15, Y: -26}, {X: 15, Y: -26}, {X: 30, Y: 0}, {X: 15, Y: 26}, {X: -15, Y: 26}, {X: -30, Y: 0},
}

// Wedges are the clickable bands along each side, indexed by direction.
var wedges = [hex.NumDirections][]hex.Point{
	{{X: -18, Y: 0}, {X: -30, Y: 0}, {X: -15, Y: -26}, {X: -9, Y: -15.6}},
	{{X: -9, Y: -15.6}, {X: -15, Y: -26}, {X: 15, Y: -26}, {X: 9, Y: -15.6}},
	{{X: 9, Y: -15.6}, {X: 15, Y: -26}, {X: 30, Y: 0}, {X: 18, Y: 0}},
	{{X: 18, Y: 0}, {X: 30, Y: 0}, {X: 15, Y: 26}, {X: 9, Y: 15.6}},
	{{X: 9, Y: 15.6}, {X: 15, Y: 26}, {X: -15, Y: 26}, {X: -9, Y: 15.6}},
	{{X: -9, Y: 15.6}, {X: -15, Y: 26}, {X: -30, Y: 0}, {X: -18, Y: 0}},
}

// Options controls board rendering.
type Options struct {
	Style         rail.Style
	Radius        int
	Width, Height float64
}

// Option configures [Render].
type Option func(*Options)

// WithStyle selects the rail style.
func WithStyle(s rail.Style) Option { return func(o *Options) { o.Style = s } }

// WithRadius sets the radius of the rendered diamond.
func WithRadius(r int) Option { return func(o *Options) { o.Radius = r } }

// WithCanvas sets the canvas size; the board is centred on it.
func WithCanvas(w, h float64) Option {
	return func(o *Options) { o.Width, o.Height = w, h }
}

func newOptions(g *grid.Grid, opts ...Option) Options {
	o := Options{
		Style:  rail.StyleLanes,
		Radius: FitRadius(g.Bounds()),
		Width:  DefaultCanvasWidth,
		Height: DefaultCanvasHeight,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// FitRadius returns the largest diamond radius that fits in b around the
// origin.
func FitRadius(b grid.Bounds) int {
	r := min(-b.MinQ, b.MaxQ, -b.MinR, b.MaxR)
	return max(r, 0)
}

// Preview returns the side of cell a that the highlight covers, if any. A
// highlight on a neighbor across side d shows up on a as side d's mirror.
func Preview(a hex.Axial, highlight *hittest.Target) (hex.Direction, bool) {
	if highlight == nil {
		return 0, false
	}
	if highlight.Cell == a {
		return highlight.Dir, true
	}
	if m := highlight.Mirror(); m.Cell == a {
		return m.Dir, true
	}
	return 0, false
}

// Cell returns the connectivity of a including the hover preview.
func Cell(g *grid.Grid, a hex.Axial, highlight *hittest.Target) rail.Connectivity {
	c := rail.FromConnections(g.Connections(a))
	if d, ok := Preview(a, highlight); ok {
		c = c.WithPreview(d)
	}
	return c
}

// Render draws every cell of the diamond around the origin. Highlight may
// be nil.
func Render(g *grid.Grid, highlight *hittest.Target, opts ...Option) scene.Scene {
	o := newOptions(g, opts...)
	cells := hex.Diamond(o.Radius)

	s := scene.Scene{
		Width:   o.Width,
		Height:  o.Height,
		OriginX: o.Width / 2,
		OriginY: o.Height / 2,
		Groups:  make([]scene.Group, 0, len(cells)),
	}
	for _, a := range cells {
		s.Groups = append(s.Groups, renderCell(g, a, highlight, o.Style))
	}
	return s
}

// GroupID names the group of cell a.
func GroupID(a hex.Axial) string { return fmt.Sprintf("cell-%d-%d", a.Q, a.R) }

func renderCell(g *grid.Grid, a hex.Axial, highlight *hittest.Target, style rail.Style) scene.Group {
	c := hex.Center(a)
	grp := scene.Group{ID: GroupID(a), X: c.X, Y: c.Y}

	grp.Shapes = append(grp.Shapes, scene.Polygon{Class: scene.ClassBackground, Points: hexagon})
	hovered, isHovered := Preview(a, highlight)
	for _, d := range hex.Directions {
		class := scene.ClassEdge
		if isHovered && hovered == d {
			class = scene.ClassHighlight
		}
		grp.Shapes = append(grp.Shapes, scene.Polygon{Class: class, Points: wedges[d]})
	}
	grp.Shapes = append(grp.Shapes, scene.Polygon{Class: scene.ClassForeground, Points: hexagon})

	pieces := rail.Pieces(Cell(g, a, highlight))
	grp.Shapes = append(grp.Shapes, rail.Shapes(pieces, style)...)
	return grp
}
