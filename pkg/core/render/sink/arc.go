package sink

import (
	"math"

	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/scene"
)

// arcCenter converts an endpoint-form arc to its centre, radius, start
// angle and signed sweep, following the SVG implementation notes for an
// unrotated ellipse with equal radii.
func arcCenter(a scene.Arc) (c hex.Point, r, start, sweep float64, ok bool) {
	x1p := (a.From.X - a.To.X) / 2
	y1p := (a.From.Y - a.To.Y) / 2
	d2 := x1p*x1p + y1p*y1p
	r = math.Abs(a.Radius)
	if d2 == 0 || r == 0 {
		return hex.Point{}, 0, 0, 0, false
	}
	if l := d2 / (r * r); l > 1 {
		r *= math.Sqrt(l)
	}

	coef := math.Sqrt(math.Max(0, (r*r-d2)/d2))
	if a.LargeArc == a.Sweep {
		coef = -coef
	}
	cxp, cyp := coef*y1p, -coef*x1p
	c = hex.Point{X: cxp + (a.From.X+a.To.X)/2, Y: cyp + (a.From.Y+a.To.Y)/2}

	start = math.Atan2((y1p-cyp)/r, (x1p-cxp)/r)
	end := math.Atan2((-y1p-cyp)/r, (-x1p-cxp)/r)
	sweep = end - start
	switch {
	case !a.Sweep && sweep > 0:
		sweep -= 2 * math.Pi
	case a.Sweep && sweep < 0:
		sweep += 2 * math.Pi
	}
	return c, r, start, sweep, true
}

// flattenArc approximates a with a polyline of n segments. Degenerate arcs
// collapse to a straight segment.
func flattenArc(a scene.Arc, n int) []hex.Point {
	c, r, start, sweep, ok := arcCenter(a)
	if !ok {
		return []hex.Point{a.From, a.To}
	}
	pts := make([]hex.Point, n+1)
	for i := 0; i <= n; i++ {
		t := start + sweep*float64(i)/float64(n)
		pts[i] = hex.Point{X: c.X + r*math.Cos(t), Y: c.Y + r*math.Sin(t)}
	}
	pts[0], pts[n] = a.From, a.To
	return pts
}
