package hex

import "fmt"

// Direction is a side of a cell, 0..5 clockwise from west-by-northwest.
type Direction int

// NumDirections is the number of sides of a cell.
const NumDirections = 6

var axialOffsets = [NumDirections]Axial{
	{-1, 0}, {0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 1},
}

var planarVectors = [NumDirections]Point{
	{-0.8660254037844386, -0.5},
	{0, -1.0},
	{0.8660254037844384, -0.5},
	{0.8660254037844387, 0.5},
	{0, 1.0},
	{-0.8660254037844387, 0.5},
}

// Directions lists all six sides in index order.
var Directions = [NumDirections]Direction{0, 1, 2, 3, 4, 5}

// Valid reports whether d is in 0..5.
func (d Direction) Valid() bool { return d >= 0 && d < NumDirections }

// Must panics when d is out of range and returns d otherwise.
func (d Direction) Must() Direction {
	if !d.Valid() {
		panic(fmt.Sprintf("hex: direction %d out of range 0..5", int(d)))
	}
	return d
}

// Offset returns the axial step towards the neighbor across side d.
func (d Direction) Offset() Axial { return axialOffsets[d.Must()] }

// Vector returns the planar unit vector from a cell centre towards the
// midpoint of side d.
func (d Direction) Vector() Point { return planarVectors[d.Must()] }

// Opposite returns the side facing d.
func (d Direction) Opposite() Direction { return d.Rotate(3) }

// Rotate turns d clockwise by n sides; n may be negative.
func (d Direction) Rotate(n int) Direction {
	return Direction(((int(d.Must())+n)%NumDirections + NumDirections) % NumDirections)
}

func (d Direction) String() string { return fmt.Sprintf("dir%d", int(d)) }
