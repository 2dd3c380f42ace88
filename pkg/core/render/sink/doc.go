// Package sink turns a [scene.Scene] into output formats.
//
// # Overview
//
//   - SVG: [RenderSVG], with an embedded stylesheet for the shape classes
//   - JSON: [RenderJSON], the scene with a kind tag per shape
//   - PNG: [RenderPNG], rasterized in-process with golang.org/x/image/vector
//
// All sinks share one [Theme], so the SVG stylesheet and the raster colors
// always agree.
//
// Basic usage:
//
//	s := board.Render(g, nil)
//	svg := sink.RenderSVG(s)
//	png, err := sink.RenderPNG(s, sink.WithScale(2))
package sink
