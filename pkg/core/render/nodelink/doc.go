// Package nodelink renders the track topology of a board as a node-link
// diagram.
//
// # Overview
//
// Every connected side of the board becomes a node, named by its canonical
// slot ("q,r:e", see [grid.Ref]). Two nodes are linked when a cell joins
// the two sides with a straight or a bend, so a continuous line of track
// shows up as a chain of nodes. Sides that end in a stub are drawn dashed.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Detailed: label nodes with the pixel midpoint of the side and links
//     with the piece kind and the cell that carries it.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
