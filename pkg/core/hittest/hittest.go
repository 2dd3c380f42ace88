// Package hittest maps pointer positions to the cell side under them.
package hittest

import (
	"fmt"

	"github.com/matzehuels/hexrail/pkg/core/hex"
)

// Threshold is the minimum proximity for a side to count as hit. Proximity
// is the pointer offset projected on a side's direction, in units of
// [hex.EdgeRadius].
const Threshold = 0.6

// Target is a side of a cell in that cell's own numbering.
type Target struct {
	Cell hex.Axial     `json:"cell"`
	Dir  hex.Direction `json:"dir"`
}

// Mirror returns the same physical side seen from the neighboring cell.
func (t Target) Mirror() Target {
	return Target{Cell: t.Cell.Neighbor(t.Dir), Dir: t.Dir.Opposite()}
}

// Is reports whether t and o name the same physical side.
func (t Target) Is(o Target) bool { return t == o || t.Mirror() == o }

func (t Target) String() string {
	return fmt.Sprintf("(%d,%d):%d", t.Cell.Q, t.Cell.R, int(t.Dir))
}

// Proximities returns the signed proximity of an offset from a cell centre
// to each of the six sides.
func Proximities(rel hex.Point) [hex.NumDirections]float64 {
	var p [hex.NumDirections]float64
	for d := hex.Direction(0); d < 3; d++ {
		p[d] = d.Vector().Dot(rel) / hex.EdgeRadius
		p[d+3] = -p[d]
	}
	return p
}

// Nearest returns the side with the greatest proximity. Exact ties go to
// the lowest index.
func Nearest(p [hex.NumDirections]float64) (hex.Direction, float64) {
	best := hex.Direction(0)
	for d := hex.Direction(1); d < hex.NumDirections; d++ {
		if p[d] > p[best] {
			best = d
		}
	}
	return best, p[best]
}

// Classify returns the nearest side to an offset from a cell centre and
// whether it is close enough to count as hit.
func Classify(rel hex.Point) (hex.Direction, bool) {
	d, prox := Nearest(Proximities(rel))
	return d, prox > Threshold
}

// EdgeAt returns the side under pixel position p, or false when p is too
// close to a cell centre to pick one.
func EdgeAt(p hex.Point) (Target, bool) {
	cell := hex.PixelToHex(p)
	d, ok := Classify(p.Sub(hex.Center(cell)))
	if !ok {
		return Target{}, false
	}
	return Target{Cell: cell, Dir: d}, true
}

// Aim returns a pixel position that hits side d of cell a, part way
// between the cell centre and the side midpoint.
func Aim(a hex.Axial, d hex.Direction) hex.Point {
	return hex.Center(a).Add(d.Vector().Scale(0.8 * hex.EdgeRadius))
}
