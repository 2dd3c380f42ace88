package sink

import (
	"math"
	"testing"

	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/render/rail"
	"github.com/matzehuels/hexrail/pkg/core/scene"
)

func TestFlattenArc(t *testing.T) {
	for _, d := range hex.Directions {
		p := rail.Bend(d, false).(scene.Path)
		for i, a := range p.Arcs {
			pts := flattenArc(a, 16)
			if len(pts) != 17 {
				t.Fatalf("bend %d arc %d: %d points", d, i, len(pts))
			}
			if pts[0] != a.From || pts[16] != a.To {
				t.Errorf("bend %d arc %d: endpoints not pinned", d, i)
			}
			c, r, _, sweep, ok := arcCenter(a)
			if !ok {
				t.Fatalf("bend %d arc %d: degenerate", d, i)
			}
			if math.Abs(r-a.Radius) > 1e-9 {
				t.Errorf("bend %d arc %d: radius %v, want %v", d, i, r, a.Radius)
			}
			if math.Abs(sweep) >= math.Pi {
				t.Errorf("bend %d arc %d: small arc swept %v", d, i, sweep)
			}
			for _, q := range pts[1:16] {
				if got := math.Hypot(q.X-c.X, q.Y-c.Y); math.Abs(got-r) > 1e-6 {
					t.Errorf("bend %d arc %d: point off circle by %v", d, i, got-r)
				}
			}
		}
	}
}

func TestFlattenArcDegenerate(t *testing.T) {
	p := hex.Point{X: 3, Y: 4}
	pts := flattenArc(scene.Arc{From: p, To: p, Radius: 10}, 8)
	if len(pts) != 2 {
		t.Errorf("degenerate arc flattened to %d points", len(pts))
	}
}

func TestArcCenterSweepDirection(t *testing.T) {
	a := scene.Arc{From: hex.Point{X: -10, Y: 0}, To: hex.Point{X: 10, Y: 0}, Radius: 10}
	_, _, _, sweep, _ := arcCenter(a)
	if sweep >= 0 {
		t.Errorf("sweep flag 0 gave %v, want negative", sweep)
	}
	a.Sweep = true
	if _, _, _, sweep, _ = arcCenter(a); sweep <= 0 {
		t.Errorf("sweep flag 1 gave %v, want positive", sweep)
	}
}
