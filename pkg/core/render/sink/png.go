package sink

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/vector"

	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/scene"
)

// PNGOption configures [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	theme      Theme
	scale      float64
	background color.Color
}

// WithScale sets the raster scale factor (default 1.0).
func WithScale(s float64) PNGOption { return func(r *pngRenderer) { r.scale = s } }

// WithPNGTheme replaces the default theme.
func WithPNGTheme(t Theme) PNGOption { return func(r *pngRenderer) { r.theme = t } }

// WithBackground fills the canvas before drawing; the default is
// transparent.
func WithBackground(c color.Color) PNGOption { return func(r *pngRenderer) { r.background = c } }

const (
	arcSegments    = 24
	circleSegments = 24
)

// RenderPNG rasterizes s.
func RenderPNG(s scene.Scene, opts ...PNGOption) ([]byte, error) {
	img, err := Rasterize(s, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Rasterize draws s into a new image.
func Rasterize(s scene.Scene, opts ...PNGOption) (*image.RGBA, error) {
	r := pngRenderer{theme: DefaultTheme(), scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, fmt.Errorf("invalid scale: %v", r.scale)
	}

	w := int(math.Ceil(s.Width * r.scale))
	h := int(math.Ceil(s.Height * r.scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid canvas size: %vx%v", s.Width, s.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if r.background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
	}

	p := &painter{img: img, ras: vector.NewRasterizer(w, h), scale: r.scale}
	for _, g := range s.Groups {
		p.origin = hex.Point{X: s.OriginX + g.X, Y: s.OriginY + g.Y}
		for _, sh := range g.Shapes {
			if err := p.shape(sh, r.theme[sh.ClassName()]); err != nil {
				return nil, fmt.Errorf("group %s: %w", g.ID, err)
			}
		}
	}
	return img, nil
}

type painter struct {
	img    *image.RGBA
	ras    *vector.Rasterizer
	scale  float64
	origin hex.Point
}

func (p *painter) shape(sh scene.Shape, paint Paint) error {
	switch s := sh.(type) {
	case scene.Polygon:
		p.fill(s.Points, paint.Fill)
		if paint.StrokeWidth > 0 && len(s.Points) > 0 {
			closed := append(append([]hex.Point{}, s.Points...), s.Points[0])
			p.stroke(closed, paint.Stroke, paint.StrokeWidth)
		}
	case scene.Line:
		p.stroke([]hex.Point{{X: s.X1, Y: s.Y1}, {X: s.X2, Y: s.Y2}}, paint.Stroke, paint.StrokeWidth)
	case scene.Path:
		for _, a := range s.Arcs {
			p.stroke(flattenArc(a, arcSegments), paint.Stroke, paint.StrokeWidth)
		}
	case scene.Circle:
		pts := make([]hex.Point, circleSegments)
		for i := range pts {
			t := 2 * math.Pi * float64(i) / circleSegments
			pts[i] = hex.Point{X: s.CX + s.R*math.Cos(t), Y: s.CY + s.R*math.Sin(t)}
		}
		p.fill(pts, paint.Fill)
	default:
		return fmt.Errorf("unsupported shape %T", sh)
	}
	return nil
}

func (p *painter) pt(v hex.Point) (float32, float32) {
	return float32((p.origin.X + v.X) * p.scale), float32((p.origin.Y + v.Y) * p.scale)
}

func (p *painter) draw(c color.RGBA) {
	p.ras.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{})
}

func (p *painter) reset() {
	b := p.img.Bounds()
	p.ras.Reset(b.Dx(), b.Dy())
}

func (p *painter) fill(pts []hex.Point, c color.RGBA) {
	if c.A == 0 || len(pts) < 3 {
		return
	}
	p.reset()
	p.ras.MoveTo(p.pt(pts[0]))
	for _, v := range pts[1:] {
		p.ras.LineTo(p.pt(v))
	}
	p.ras.ClosePath()
	p.draw(c)
}

// stroke outlines a polyline with one quad per segment. Every quad winds
// the same way, so overlaps at joints accumulate instead of cancelling.
func (p *painter) stroke(pts []hex.Point, c color.RGBA, width float64) {
	if c.A == 0 || width <= 0 || len(pts) < 2 {
		return
	}
	p.reset()
	half := width / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		l := math.Hypot(d.X, d.Y)
		if l == 0 {
			continue
		}
		n := d.Perp().Scale(half / l)
		p.ras.MoveTo(p.pt(a.Add(n)))
		p.ras.LineTo(p.pt(b.Add(n)))
		p.ras.LineTo(p.pt(b.Sub(n)))
		p.ras.LineTo(p.pt(a.Sub(n)))
		p.ras.ClosePath()
	}
	p.draw(c)
}
