package sink

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/matzehuels/hexrail/pkg/core/scene"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme      Theme
	stylesheet bool
	id         string
}

// WithTheme replaces the default theme.
func WithTheme(t Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// WithoutStylesheet omits the embedded <style>, for pages that bring their
// own.
func WithoutStylesheet() SVGOption { return func(r *svgRenderer) { r.stylesheet = false } }

// WithID sets the id attribute of the root element.
func WithID(id string) SVGOption { return func(r *svgRenderer) { r.id = id } }

// RenderSVG renders s as a standalone SVG document.
func RenderSVG(s scene.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{theme: DefaultTheme(), stylesheet: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	if r.id != "" {
		fmt.Fprintf(&buf, ` id="%s"`, html.EscapeString(r.id))
	}
	fmt.Fprintf(&buf, ` viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(s.Width), num(s.Height), num(s.Width), num(s.Height))

	if r.stylesheet {
		fmt.Fprintf(&buf, "  <style>\n%s  </style>\n", r.theme.CSS())
	}

	fmt.Fprintf(&buf, `  <g transform="translate(%s,%s)">`+"\n", num(s.OriginX), num(s.OriginY))
	for _, g := range s.Groups {
		renderGroup(&buf, g)
	}
	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func renderGroup(buf *bytes.Buffer, g scene.Group) {
	fmt.Fprintf(buf, `    <g id="%s" transform="translate(%s,%s)">`+"\n", html.EscapeString(g.ID), num(g.X), num(g.Y))
	for _, sh := range g.Shapes {
		buf.WriteString("      ")
		renderShape(buf, sh)
		buf.WriteString("\n")
	}
	buf.WriteString("    </g>\n")
}

func renderShape(buf *bytes.Buffer, sh scene.Shape) {
	class := html.EscapeString(sh.ClassName())
	switch s := sh.(type) {
	case scene.Polygon:
		fmt.Fprintf(buf, `<polygon class="%s" points="%s"/>`, class, points(s))
	case scene.Line:
		fmt.Fprintf(buf, `<line class="%s" x1="%s" y1="%s" x2="%s" y2="%s"/>`,
			class, num(s.X1), num(s.Y1), num(s.X2), num(s.Y2))
	case scene.Path:
		fmt.Fprintf(buf, `<path class="%s" d="%s"/>`, class, PathData(s))
	case scene.Circle:
		fmt.Fprintf(buf, `<circle class="%s" cx="%s" cy="%s" r="%s"/>`, class, num(s.CX), num(s.CY), num(s.R))
	default:
		panic(fmt.Sprintf("sink: unsupported shape %T", sh))
	}
}

func points(p scene.Polygon) string {
	parts := make([]string, len(p.Points))
	for i, pt := range p.Points {
		parts[i] = num(pt.X) + "," + num(pt.Y)
	}
	return strings.Join(parts, " ")
}

// PathData returns the SVG path data of p, one "M ... A ..." subpath per
// arc.
func PathData(p scene.Path) string {
	parts := make([]string, len(p.Arcs))
	for i, a := range p.Arcs {
		parts[i] = fmt.Sprintf("M%s,%s A%s,%s 0 %d %d %s,%s",
			num(a.From.X), num(a.From.Y),
			num(a.Radius), num(a.Radius),
			flag(a.LargeArc), flag(a.Sweep),
			num(a.To.X), num(a.To.Y))
	}
	return strings.Join(parts, " ")
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
