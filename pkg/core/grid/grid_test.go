package grid

import (
	"testing"

	"github.com/matzehuels/hexrail/pkg/core/hex"
)

func TestNewBounds(t *testing.T) {
	tests := []struct {
		w, h int
		want Bounds
	}{
		{7, 7, Bounds{MinQ: -3, MaxQ: 3, MinR: -3, MaxR: 3}},
		{1, 1, Bounds{MinQ: 0, MaxQ: 0, MinR: 0, MaxR: 0}},
		{4, 3, Bounds{MinQ: -2, MaxQ: 1, MinR: -1, MaxR: 1}},
	}
	for _, tt := range tests {
		g := New(tt.w, tt.h)
		if got := g.Bounds(); got != tt.want {
			t.Errorf("New(%d,%d).Bounds() = %+v, want %+v", tt.w, tt.h, got, tt.want)
		}
		if g.Bounds().Width() != tt.w || g.Bounds().Height() != tt.h {
			t.Errorf("New(%d,%d) size = %dx%d", tt.w, tt.h, g.Bounds().Width(), g.Bounds().Height())
		}
	}
}

func TestNewIsCleared(t *testing.T) {
	g := Default()
	if n := g.Count(); n != 0 {
		t.Errorf("new grid has %d connections", n)
	}
	for _, a := range hex.Diamond(3) {
		for d, c := range g.Connections(a) {
			if c {
				t.Errorf("cell %v side %d connected on a new grid", a, d)
			}
		}
	}
}

func TestZeroGridHasNoCells(t *testing.T) {
	var g Grid
	if g.Contains(hex.Axial{}) {
		t.Error("zero Grid should contain no cells")
	}
	if g.Toggle(hex.Axial{}, 0) {
		t.Error("Toggle on zero Grid should fail")
	}
}

func TestResolve(t *testing.T) {
	g := Default()
	tests := []struct {
		name string
		a    hex.Axial
		d    hex.Direction
		want Ref
		ok   bool
	}{
		{"owned side", hex.Axial{Q: 0, R: 0}, 1, Ref{hex.Axial{Q: 0, R: 0}, 1}, true},
		{"borrowed side", hex.Axial{Q: 0, R: 0}, 4, Ref{hex.Axial{Q: 0, R: 1}, 1}, true},
		{"borrowed east", hex.Axial{Q: 1, R: 1}, 3, Ref{hex.Axial{Q: 2, R: 1}, 0}, true},
		{"owner off grid", hex.Axial{Q: 3, R: 0}, 3, Ref{}, false},
		{"cell off grid", hex.Axial{Q: 4, R: 0}, 0, Ref{}, false},
		{"off-grid cell borrowing from on-grid owner", hex.Axial{Q: -4, R: 0}, 3, Ref{hex.Axial{Q: -3, R: 0}, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.Resolve(tt.a, tt.d)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Resolve(%v,%d) = %+v,%v want %+v,%v", tt.a, tt.d, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSharedEdgeConsistency(t *testing.T) {
	g := Default()
	// Connect a scattering of sides through both numbering schemes.
	g.Toggle(hex.Axial{Q: 0, R: 0}, 4)
	g.Toggle(hex.Axial{Q: 1, R: -1}, 0)
	g.Toggle(hex.Axial{Q: -2, R: 3}, 5)
	g.Toggle(hex.Axial{Q: 2, R: 1}, 2)

	b := g.Bounds()
	for q := b.MinQ; q <= b.MaxQ; q++ {
		for r := b.MinR; r <= b.MaxR; r++ {
			a := hex.Axial{Q: q, R: r}
			edges := g.Edges(a)
			for _, d := range []hex.Direction{3, 4, 5} {
				n := a.Neighbor(d)
				want := g.Edges(n)[d-3]
				if edges[d] != want {
					t.Errorf("Edges(%v)[%d] = %v, Edges(%v)[%d] = %v", a, d, edges[d], n, d-3, want)
				}
			}
		}
	}
}

func TestToggleInvolution(t *testing.T) {
	g := Default()
	g.Toggle(hex.Axial{Q: 0, R: 0}, 2)
	before := g.Clone()

	for _, a := range hex.Diamond(3) {
		for _, d := range hex.Directions {
			g.Toggle(a, d)
			g.Toggle(a, d)
			if g.Edges(a) != before.Edges(a) {
				t.Fatalf("double toggle of %v side %d changed the board", a, d)
			}
		}
	}
}

func TestToggleThroughNeighbor(t *testing.T) {
	g := Default()
	if !g.Toggle(hex.Axial{Q: 0, R: 0}, 4) {
		t.Fatal("Toggle returned false for an on-grid side")
	}
	if !g.Edges(hex.Axial{Q: 0, R: 1})[1].RailConnection {
		t.Error("toggling side 4 of (0,0) should connect side 1 of (0,1)")
	}
	if !g.Connections(hex.Axial{Q: 0, R: 0})[4] {
		t.Error("side 4 of (0,0) should read connected")
	}
}

func TestToggleOffGridIsNoop(t *testing.T) {
	g := Default()
	if g.Toggle(hex.Axial{Q: 3, R: 3}, 4) {
		t.Error("Toggle of a side owned off grid should report false")
	}
	if g.Set(hex.Axial{Q: 9, R: 9}, 0, true) {
		t.Error("Set off grid should report false")
	}
	if n := g.Count(); n != 0 {
		t.Errorf("off-grid writes changed the board: %d connections", n)
	}
	if _, ok := g.Edge(hex.Axial{Q: 3, R: 3}, 4); ok {
		t.Error("Edge should report absent for a side owned off grid")
	}
}

func TestBoundaryReadsDisconnected(t *testing.T) {
	g := Default()
	edges := g.Edges(hex.Axial{Q: 3, R: 3})
	for d := 3; d < 6; d++ {
		if edges[d].RailConnection {
			t.Errorf("boundary side %d reads connected", d)
		}
	}
}

func TestConnectedOrder(t *testing.T) {
	g := Default()
	g.Set(hex.Axial{Q: 1, R: 0}, 0, true)
	g.Set(hex.Axial{Q: -1, R: 2}, 2, true)
	g.Set(hex.Axial{Q: -1, R: 2}, 1, true)

	want := []Ref{
		{hex.Axial{Q: -1, R: 2}, 1},
		{hex.Axial{Q: -1, R: 2}, 2},
		{hex.Axial{Q: 1, R: 0}, 0},
	}
	got := g.Connected()
	if len(got) != len(want) {
		t.Fatalf("Connected() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Connected()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := Default()
	c := g.Clone()
	c.Toggle(hex.Axial{}, 0)
	if g.Count() != 0 {
		t.Error("mutating a clone changed the original")
	}
	if c.Count() != 1 {
		t.Errorf("clone Count() = %d, want 1", c.Count())
	}
}

func TestResolveInvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Resolve with direction 6 did not panic")
		}
	}()
	Default().Resolve(hex.Axial{}, 6)
}
