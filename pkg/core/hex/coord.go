package hex

import "math"

// Axial identifies a cell by its axial coordinates.
type Axial struct {
	Q int `json:"q" toml:"q" yaml:"q"`
	R int `json:"r" toml:"r" yaml:"r"`
}

// Cube is a cell (or fractional position) in cube coordinates.
type Cube struct {
	X, Y, Z float64
}

// FracAxial is an unrounded axial position.
type FracAxial struct {
	Q, R float64
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Neighbor returns the adjacent cell across side d.
func (a Axial) Neighbor(d Direction) Axial { return a.Add(d.Offset()) }

// S returns the implicit third cube component.
func (a Axial) S() int { return -a.Q - a.R }

// AxialToCube converts a fractional axial position to cube form.
func AxialToCube(a FracAxial) Cube {
	return Cube{X: a.Q, Y: -a.Q - a.R, Z: a.R}
}

// ToAxial drops the redundant y component.
func (c Cube) ToAxial() FracAxial { return FracAxial{Q: c.X, R: c.Z} }

// CubeRound rounds every component to the nearest integer and then restores
// x+y+z = 0 by recomputing the component with the largest rounding error.
// Ties resolve towards correcting y, then z.
func CubeRound(c Cube) Cube {
	rx := math.Round(c.X)
	ry := math.Round(c.Y)
	rz := math.Round(c.Z)

	dx := math.Abs(rx - c.X)
	dy := math.Abs(ry - c.Y)
	dz := math.Abs(rz - c.Z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return Cube{X: rx, Y: ry, Z: rz}
}

// HexRound snaps a fractional axial position to the containing cell.
func HexRound(a FracAxial) Axial {
	r := CubeRound(AxialToCube(a)).ToAxial()
	return Axial{Q: int(r.Q), R: int(r.R)}
}

// Distance returns the number of steps between two cells.
func Distance(a, b Axial) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	return max(dq, dr, ds)
}

// Diamond returns every cell within radius steps of the origin, ordered by
// q and then r.
func Diamond(radius int) []Axial {
	if radius < 0 {
		return nil
	}
	cells := make([]Axial, 0, 1+3*radius*(radius+1))
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -radius-q); r <= min(radius, radius-q); r++ {
			cells = append(cells, Axial{Q: q, R: r})
		}
	}
	return cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
