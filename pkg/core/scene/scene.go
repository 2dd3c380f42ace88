// Package scene defines the renderer-neutral drawing produced for a board.
//
// A [Scene] is a list of groups, each translated to a cell centre and holding
// shapes in cell-local coordinates. Shapes carry a class tag instead of
// concrete colors; sinks map classes to a visual style.
package scene

import "github.com/matzehuels/hexrail/pkg/core/hex"

// Shape classes emitted by the board renderer.
const (
	ClassBackground = "hex-background"
	ClassEdge       = "hex-edge"
	ClassHighlight  = "hex-edge highlight"
	ClassForeground = "hex-foreground"
	ClassRails      = "rails"
	ClassRailsGhost = "rails ghost"
	ClassDot        = "rail-dot"
	ClassDotGhost   = "rail-dot ghost"
)

// Kind discriminates the concrete shape types.
type Kind string

const (
	KindPolygon Kind = "polygon"
	KindLine    Kind = "line"
	KindPath    Kind = "path"
	KindCircle  Kind = "circle"
)

// Shape is a drawable primitive.
type Shape interface {
	Kind() Kind
	ClassName() string
}

// Polygon is a closed outline.
type Polygon struct {
	Class  string
	Points []hex.Point
}

// Line is a straight stroke from (X1, Y1) to (X2, Y2).
type Line struct {
	Class          string
	X1, Y1, X2, Y2 float64
}

// Arc is a circular arc in SVG endpoint form.
type Arc struct {
	From, To hex.Point
	Radius   float64
	LargeArc bool
	Sweep    bool
}

// Path is a stroke made of disjoint arcs, each starting a new subpath.
type Path struct {
	Class string
	Arcs  []Arc
}

// Circle is a filled disc.
type Circle struct {
	Class  string
	CX, CY float64
	R      float64
}

func (Polygon) Kind() Kind { return KindPolygon }
func (Line) Kind() Kind    { return KindLine }
func (Path) Kind() Kind    { return KindPath }
func (Circle) Kind() Kind  { return KindCircle }

func (s Polygon) ClassName() string { return s.Class }
func (s Line) ClassName() string    { return s.Class }
func (s Path) ClassName() string    { return s.Class }
func (s Circle) ClassName() string  { return s.Class }

// Group is a set of shapes translated by (X, Y).
type Group struct {
	ID     string
	X, Y   float64
	Shapes []Shape
}

// Scene is a full drawing. Board coordinates are centred on (OriginX,
// OriginY) of a Width×Height canvas.
type Scene struct {
	Width, Height    float64
	OriginX, OriginY float64
	Groups           []Group
}

// Count returns the number of shapes with the given class across all
// groups.
func (s Scene) Count(class string) int {
	n := 0
	for _, g := range s.Groups {
		for _, sh := range g.Shapes {
			if sh.ClassName() == class {
				n++
			}
		}
	}
	return n
}

// Lookup returns the group with the given ID.
func (s Scene) Lookup(id string) (Group, bool) {
	for _, g := range s.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}
