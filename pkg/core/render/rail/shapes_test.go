package rail

import (
	"math"
	"testing"

	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/scene"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestLanesStraightUp(t *testing.T) {
	shapes := Lanes(1, StraightLength, false)
	if len(shapes) != 2 {
		t.Fatalf("Lanes returned %d shapes, want 2", len(shapes))
	}
	// Direction 1 points up (0,-1); its perpendicular is (1,0).
	l0 := shapes[0].(scene.Line)
	l1 := shapes[1].(scene.Line)
	if !near(l0.X1, -10) || !near(l0.Y1, -26) || !near(l0.X2, -10) || !near(l0.Y2, 26) {
		t.Errorf("first lane = %+v, want (-10,-26)-(-10,26)", l0)
	}
	if !near(l1.X1, 10) || !near(l1.Y1, -26) || !near(l1.X2, 10) || !near(l1.Y2, 26) {
		t.Errorf("second lane = %+v, want (10,-26)-(10,26)", l1)
	}
	if l0.Class != scene.ClassRails {
		t.Errorf("class = %q, want %q", l0.Class, scene.ClassRails)
	}
}

func TestLanesStubLength(t *testing.T) {
	for _, d := range hex.Directions {
		for _, sh := range Lanes(d, StubLength, true) {
			l := sh.(scene.Line)
			if got := math.Hypot(l.X2-l.X1, l.Y2-l.Y1); !near(got, StubLength) {
				t.Errorf("stub %v length = %v, want %v", d, got, StubLength)
			}
			if l.Class != scene.ClassRailsGhost {
				t.Errorf("ghost stub class = %q", l.Class)
			}
		}
	}
}

func TestBendArcs(t *testing.T) {
	p := Bend(1, false).(scene.Path)
	if len(p.Arcs) != 2 {
		t.Fatalf("Bend has %d arcs, want 2", len(p.Arcs))
	}
	if p.Arcs[0].Radius != 55 || p.Arcs[1].Radius != 35 {
		t.Errorf("radii = %v,%v want 55,35", p.Arcs[0].Radius, p.Arcs[1].Radius)
	}
	for _, a := range p.Arcs {
		if a.LargeArc || a.Sweep {
			t.Errorf("arc flags = %v,%v want short way, negative sweep", a.LargeArc, a.Sweep)
		}
		chord := math.Hypot(a.To.X-a.From.X, a.To.Y-a.From.Y)
		if chord > 2*a.Radius {
			t.Errorf("arc chord %v longer than diameter %v", chord, 2*a.Radius)
		}
	}
	// Both rails start on the line through the midpoint of side 0.
	m := hex.Direction(0).Vector().Scale(hex.EdgeRadius)
	for _, a := range p.Arcs {
		off := a.From.Sub(m)
		if !near(math.Hypot(off.X, off.Y), LaneOffset) {
			t.Errorf("arc starts %v from the side midpoint, want %v", math.Hypot(off.X, off.Y), LaneOffset)
		}
	}
}

func TestShapesDotStyle(t *testing.T) {
	pieces := []Piece{{Kind: KindStub, Dir: 4, Ghost: true}}
	shapes := Shapes(pieces, StyleDots)
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
	c, ok := shapes[0].(scene.Circle)
	if !ok {
		t.Fatalf("dot style produced %T", shapes[0])
	}
	if !near(c.CX, 0) || !near(c.CY, DotDistance) || c.R != DotRadius || c.Class != scene.ClassDotGhost {
		t.Errorf("dot = %+v", c)
	}
	if n := len(Shapes(pieces, StyleLanes)); n != 2 {
		t.Errorf("lane style stub produced %d shapes, want 2", n)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"", StyleLanes, false},
		{"lanes", StyleLanes, false},
		{"dots", StyleDots, false},
		{"handdrawn", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseStyle(%q) = %q,%v want %q,err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
