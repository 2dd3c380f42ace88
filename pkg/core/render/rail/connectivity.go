package rail

import "github.com/matzehuels/hexrail/pkg/core/hex"

// State is the connection state of one side as a bit set.
type State uint8

const (
	// Real marks a confirmed connection.
	Real State = 1 << iota
	// Preview marks a hovered side.
	Preview
)

// Set reports whether any bit is present.
func (s State) Set() bool { return s != 0 }

// IsReal reports whether the connection is confirmed.
func (s State) IsReal() bool { return s&Real != 0 }

// Connectivity holds the state of all six sides of a cell.
type Connectivity [hex.NumDirections]State

// FromConnections builds connectivity from confirmed connection flags.
func FromConnections(conn [hex.NumDirections]bool) Connectivity {
	var c Connectivity
	for d, on := range conn {
		if on {
			c[d] = Real
		}
	}
	return c
}

// WithPreview returns c with side d marked as hovered.
func (c Connectivity) WithPreview(d hex.Direction) Connectivity {
	c[d.Must()] |= Preview
	return c
}

// At returns the state of side d.
func (c Connectivity) At(d hex.Direction) State { return c[d.Must()] }

// Kind names a track piece.
type Kind string

const (
	KindStub     Kind = "stub"
	KindStraight Kind = "straight"
	KindBend     Kind = "bend"
)

// Piece is one track piece of a cell. Dir is the side of a stub, the lower
// side of a straight, or the corner a bend wraps around.
type Piece struct {
	Kind  Kind
	Dir   hex.Direction
	Ghost bool
}

// Stubs returns the dead ends of c in direction order.
func Stubs(c Connectivity) []Piece {
	var out []Piece
	for _, d := range hex.Directions {
		if c.At(d).Set() && !c.At(d.Rotate(2)).Set() && !c.At(d.Rotate(3)).Set() && !c.At(d.Rotate(4)).Set() {
			out = append(out, Piece{Kind: KindStub, Dir: d, Ghost: !c.At(d).IsReal()})
		}
	}
	return out
}

// Straights returns the rails crossing c, one per opposite pair.
func Straights(c Connectivity) []Piece {
	var out []Piece
	for _, d := range hex.Directions[:3] {
		a, b := c.At(d), c.At(d.Opposite())
		if a.Set() && b.Set() {
			out = append(out, Piece{Kind: KindStraight, Dir: d, Ghost: !(a & b).IsReal()})
		}
	}
	return out
}

// Bends returns the curves of c in corner order.
func Bends(c Connectivity) []Piece {
	var out []Piece
	for _, d := range hex.Directions {
		a, b := c.At(d.Rotate(-1)), c.At(d.Rotate(1))
		if a.Set() && b.Set() {
			out = append(out, Piece{Kind: KindBend, Dir: d, Ghost: !(a & b).IsReal()})
		}
	}
	return out
}

// Pieces returns stubs, straights and bends of c, in that order.
func Pieces(c Connectivity) []Piece {
	out := Stubs(c)
	out = append(out, Straights(c)...)
	return append(out, Bends(c)...)
}
