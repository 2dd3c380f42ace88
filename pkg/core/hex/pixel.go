package hex

import "math"

// Layout constants of the reference board, in pixel units.
const (
	// Size is the centre-to-corner distance of a hexagon.
	Size = 30.0
	// EdgeRadius is the centre-to-side-midpoint distance, rounded.
	EdgeRadius = 26.0
	// StepQ is the horizontal distance between columns.
	StepQ = 45
	// StepR is the vertical distance between rows of one column.
	StepR = 52
)

// Point is a position in board pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p+o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub returns p-o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dot returns the scalar product of p and o.
func (p Point) Dot(o Point) float64 { return p.X*o.X + p.Y*o.Y }

// Perp returns p rotated a quarter turn clockwise in y-down space.
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

// Center returns the pixel position of the centre of cell a.
func Center(a Axial) Point {
	return Point{
		X: float64(a.Q * StepQ),
		Y: float64(a.Q*(StepR/2) + a.R*StepR),
	}
}

// PixelToFrac converts a pixel position to an unrounded axial position.
func PixelToFrac(p Point) FracAxial {
	return FracAxial{
		Q: (2.0 / 3.0 * p.X) / Size,
		R: (-1.0/3.0*p.X + math.Sqrt(3)/3.0*p.Y) / Size,
	}
}

// PixelToHex returns the cell containing pixel position p.
func PixelToHex(p Point) Axial {
	return HexRound(PixelToFrac(p))
}

// EdgeMidpoint returns the midpoint of side d of cell a.
func EdgeMidpoint(a Axial, d Direction) Point {
	return Center(a).Add(d.Vector().Scale(EdgeRadius))
}
