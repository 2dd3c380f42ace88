package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/hexrail/pkg/core/grid"
	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/render/rail"
)

// Options configures topology diagram rendering.
type Options struct {
	// Detailed adds positions to node labels and piece kinds to links.
	Detailed bool
}

// Link joins two sides through one cell.
type Link struct {
	From, To grid.Ref
	Cell     hex.Axial
	Kind     rail.Kind
}

// NodeID names a canonical slot.
func NodeID(r grid.Ref) string {
	return fmt.Sprintf("%d,%d:%d", r.Cell.Q, r.Cell.R, r.Owned)
}

// Links returns every straight and bend of g as a link between canonical
// slots, cell by cell in q, r order.
func Links(g *grid.Grid) []Link {
	var out []Link
	b := g.Bounds()
	for q := b.MinQ; q <= b.MaxQ; q++ {
		for r := b.MinR; r <= b.MaxR; r++ {
			a := hex.Axial{Q: q, R: r}
			if !g.Contains(a) {
				continue
			}
			c := rail.FromConnections(g.Connections(a))
			for _, p := range append(rail.Straights(c), rail.Bends(c)...) {
				s1, s2 := p.Dir, p.Dir.Opposite()
				if p.Kind == rail.KindBend {
					s1, s2 = p.Dir.Rotate(-1), p.Dir.Rotate(1)
				}
				from, ok1 := g.Resolve(a, s1)
				to, ok2 := g.Resolve(a, s2)
				if !ok1 || !ok2 {
					continue
				}
				out = append(out, Link{From: from, To: to, Cell: a, Kind: p.Kind})
			}
		}
	}
	return out
}

// deadEnds returns the slots that end in a stub on at least one side.
func deadEnds(g *grid.Grid) map[grid.Ref]bool {
	out := map[grid.Ref]bool{}
	b := g.Bounds()
	for q := b.MinQ; q <= b.MaxQ; q++ {
		for r := b.MinR; r <= b.MaxR; r++ {
			a := hex.Axial{Q: q, R: r}
			if !g.Contains(a) {
				continue
			}
			for _, p := range rail.Stubs(rail.FromConnections(g.Connections(a))) {
				if ref, ok := g.Resolve(a, p.Dir); ok {
					out[ref] = true
				}
			}
		}
	}
	return out
}

// ToDOT converts the track of g to Graphviz DOT format. The result can be
// rendered with [RenderSVG] or saved for external Graphviz tools.
func ToDOT(g *grid.Grid, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10];\n")
	buf.WriteString("\n")

	ends := deadEnds(g)
	for _, ref := range g.Connected() {
		fmt.Fprintf(&buf, "  %q [%s];\n", NodeID(ref), nodeAttrs(ref, ends[ref], opts.Detailed))
	}

	buf.WriteString("\n")
	for _, l := range Links(g) {
		fmt.Fprintf(&buf, "  %q -- %q", NodeID(l.From), NodeID(l.To))
		if opts.Detailed {
			fmt.Fprintf(&buf, " [label=%q]", fmt.Sprintf("%s %d,%d", l.Kind, l.Cell.Q, l.Cell.R))
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(ref grid.Ref, deadEnd, detailed bool) string {
	label := NodeID(ref)
	// Pin nodes to the side midpoint so neato keeps the board's shape.
	p := hex.EdgeMidpoint(ref.Cell, ref.Owned)
	attrs := fmt.Sprintf("pos=\"%s,%s!\"", strconv.FormatFloat(p.X/36, 'f', 2, 64), strconv.FormatFloat(-p.Y/36, 'f', 2, 64))
	if detailed {
		label = fmt.Sprintf("%s\n(%.1f, %.1f)", label, p.X, p.Y)
	}
	attrs += fmt.Sprintf(", label=%q", label)
	if deadEnd {
		attrs += ", style=\"filled,dashed\", fillcolor=lightgrey"
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox drops Graphviz's pt units so the diagram scales with
// its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
