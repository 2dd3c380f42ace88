// Package hex provides the coordinate model of the flat-top hexagon board.
//
// # Coordinates
//
// Cells are addressed with axial coordinates ([Axial]). Cube coordinates
// ([Cube]) are the redundant three-component form with x+y+z = 0 and are
// used for exact rounding when mapping a pixel back to a cell:
//
//	a := hex.PixelToHex(hex.Point{X: 47, Y: 20}) // {Q: 1, R: 0}
//
// # Directions
//
// The six sides of a cell are numbered 0..5. Direction 0 points
// west-by-northwest and the numbering proceeds clockwise. Every direction
// has an axial neighbor offset ([Direction.Offset]) and a planar unit vector
// from the cell centre towards the midpoint of that side
// ([Direction.Vector]). Using a direction outside 0..5 is a programming
// error and panics.
//
// # Pixel space
//
// Pixel positions are local to the board: the centre of cell (0, 0) is the
// origin and y grows downwards. Cell centres sit on a fixed lattice
// ([Center]); any canvas offset is applied by the presentation layer.
package hex
