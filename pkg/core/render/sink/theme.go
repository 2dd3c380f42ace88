package sink

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/matzehuels/hexrail/pkg/core/scene"
)

// Paint is how one shape class is drawn. A zero color is not drawn.
type Paint struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
}

// Theme maps shape classes to paints.
type Theme map[string]Paint

var (
	colorGround = color.RGBA{0xf4, 0xf1, 0xe8, 0xff}
	colorGrid   = color.RGBA{0x9a, 0x94, 0x86, 0xff}
	colorHover  = color.RGBA{0xf2, 0xc1, 0x4e, 0xff}
	colorRail   = color.RGBA{0x3b, 0x3b, 0x3b, 0xff}
	colorGhost  = color.RGBA{0x3b, 0x3b, 0x3b, 0x59}
)

// DefaultTheme is the stock look of the board.
func DefaultTheme() Theme {
	return Theme{
		scene.ClassBackground: {Fill: colorGround},
		scene.ClassEdge:       {},
		scene.ClassHighlight:  {Fill: colorHover},
		scene.ClassForeground: {Stroke: colorGrid, StrokeWidth: 1},
		scene.ClassRails:      {Stroke: colorRail, StrokeWidth: 3},
		scene.ClassRailsGhost: {Stroke: colorGhost, StrokeWidth: 3},
		scene.ClassDot:        {Fill: colorRail},
		scene.ClassDotGhost:   {Fill: colorGhost},
	}
}

// CSS renders the theme as a stylesheet keyed by class selectors.
func (t Theme) CSS() string {
	classes := make([]string, 0, len(t))
	for c := range t {
		classes = append(classes, c)
	}
	sort.Strings(classes)

	var b strings.Builder
	for _, c := range classes {
		p := t[c]
		fmt.Fprintf(&b, "    .%s { fill: %s; stroke: %s;", strings.ReplaceAll(c, " ", "."), cssColor(p.Fill), cssColor(p.Stroke))
		if p.StrokeWidth > 0 {
			fmt.Fprintf(&b, " stroke-width: %g; stroke-linecap: round;", p.StrokeWidth)
		}
		b.WriteString(" }\n")
	}
	return b.String()
}

func cssColor(c color.RGBA) string {
	switch c.A {
	case 0:
		return "none"
	case 0xff:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	// color.RGBA is alpha-premultiplied; CSS is not.
	un := func(v uint8) int { return int(v) * 0xff / int(c.A) }
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", un(c.R), un(c.G), un(c.B), float64(c.A)/255)
}
