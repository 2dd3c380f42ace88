package rail

import (
	"fmt"

	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/scene"
)

// Track geometry, in pixel units.
const (
	// LaneOffset is the distance of each of the two rails from the track
	// centre line.
	LaneOffset = 10.0
	// StubLength is the length of a dead-end stub.
	StubLength = 10.0
	// StraightLength spans the cell between opposite side midpoints.
	StraightLength = 2 * hex.EdgeRadius
	// BendRadius is the radius of the track centre line of a bend.
	BendRadius = 45.0
	// DotDistance places a dot marker along its side's direction.
	DotDistance = 16.0
	// DotRadius is the radius of a dot marker.
	DotRadius = 4.0
)

// Style selects how dead ends are drawn.
type Style string

const (
	// StyleLanes draws every piece as a pair of rails.
	StyleLanes Style = "lanes"
	// StyleDots draws dead ends as dots.
	StyleDots Style = "dots"
)

// ValidStyles is the set of supported styles.
var ValidStyles = map[Style]bool{StyleLanes: true, StyleDots: true}

// ParseStyle validates s.
func ParseStyle(s string) (Style, error) {
	if s == "" {
		return StyleLanes, nil
	}
	if !ValidStyles[Style(s)] {
		return "", fmt.Errorf("invalid style: %s (must be 'lanes' or 'dots')", s)
	}
	return Style(s), nil
}

func railClass(ghost bool) string {
	if ghost {
		return scene.ClassRailsGhost
	}
	return scene.ClassRails
}

func dotClass(ghost bool) string {
	if ghost {
		return scene.ClassDotGhost
	}
	return scene.ClassDot
}

// Shapes converts pieces to cell-local shapes.
func Shapes(pieces []Piece, style Style) []scene.Shape {
	var out []scene.Shape
	for _, p := range pieces {
		switch p.Kind {
		case KindStub:
			if style == StyleDots {
				out = append(out, Dot(p.Dir, p.Ghost))
				continue
			}
			out = append(out, Lanes(p.Dir, StubLength, p.Ghost)...)
		case KindStraight:
			out = append(out, Lanes(p.Dir, StraightLength, p.Ghost)...)
		case KindBend:
			out = append(out, Bend(p.Dir, p.Ghost))
		default:
			panic(fmt.Sprintf("rail: unknown piece kind %q", p.Kind))
		}
	}
	return out
}

// Lanes returns the two rails running inward from the midpoint of side d
// for length units.
func Lanes(d hex.Direction, length float64, ghost bool) []scene.Shape {
	v := d.Vector()
	start := v.Scale(hex.EdgeRadius)
	end := v.Scale(hex.EdgeRadius - length)
	off := v.Perp().Scale(LaneOffset)

	class := railClass(ghost)
	a1, a2 := start.Sub(off), end.Sub(off)
	b1, b2 := start.Add(off), end.Add(off)
	return []scene.Shape{
		scene.Line{Class: class, X1: a1.X, Y1: a1.Y, X2: a2.X, Y2: a2.Y},
		scene.Line{Class: class, X1: b1.X, Y1: b1.Y, X2: b2.X, Y2: b2.Y},
	}
}

// Bend returns the two rails curving around corner d, joining the
// midpoints of sides d-1 and d+1.
func Bend(d hex.Direction, ghost bool) scene.Shape {
	v1, v2 := d.Rotate(-1).Vector(), d.Rotate(1).Vector()
	p1, p2 := v1.Scale(hex.EdgeRadius), v2.Scale(hex.EdgeRadius)
	o1, o2 := v1.Perp().Scale(LaneOffset), v2.Perp().Scale(LaneOffset)

	return scene.Path{
		Class: railClass(ghost),
		Arcs: []scene.Arc{
			{From: p1.Sub(o1), To: p2.Add(o2), Radius: BendRadius + LaneOffset},
			{From: p1.Add(o1), To: p2.Sub(o2), Radius: BendRadius - LaneOffset},
		},
	}
}

// Dot returns a dead-end marker on side d.
func Dot(d hex.Direction, ghost bool) scene.Shape {
	c := d.Vector().Scale(DotDistance)
	return scene.Circle{Class: dotClass(ghost), CX: c.X, CY: c.Y, R: DotRadius}
}
