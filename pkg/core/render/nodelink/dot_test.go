package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/hexrail/pkg/core/grid"
	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/render/rail"
)

func reference() *grid.Grid {
	g := grid.Default()
	for _, t := range []struct {
		q, r int
		e    hex.Direction
	}{
		{0, 1, 1}, {0, 0, 2}, {2, -1, 0}, {2, 0, 1}, {1, 1, 0},
		{1, 1, 2}, {0, 0, 1}, {0, 2, 1}, {0, 2, 2},
	} {
		g.Toggle(hex.Axial{Q: t.q, R: t.r}, t.e)
	}
	return g
}

func TestLinks(t *testing.T) {
	links := Links(reference())
	if len(links) != 9 {
		t.Fatalf("Links() = %d links, want 9: %+v", len(links), links)
	}

	kinds := map[rail.Kind]int{}
	for _, l := range links {
		kinds[l.Kind]++
	}
	if kinds[rail.KindStraight] != 3 || kinds[rail.KindBend] != 6 {
		t.Errorf("kinds = %v, want 3 straights and 6 bends", kinds)
	}

	first := links[0]
	want := Link{
		From: grid.Ref{Cell: hex.Axial{Q: 0, R: 0}, Owned: 1},
		To:   grid.Ref{Cell: hex.Axial{Q: 0, R: 1}, Owned: 1},
		Cell: hex.Axial{Q: 0, R: 0},
		Kind: rail.KindStraight,
	}
	if first != want {
		t.Errorf("first link = %+v, want %+v", first, want)
	}
}

func TestLinksEmpty(t *testing.T) {
	if links := Links(grid.Default()); len(links) != 0 {
		t.Errorf("empty board has %d links", len(links))
	}
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(reference(), Options{})

	if !strings.Contains(dot, "graph G {") {
		t.Error("ToDOT() output missing graph declaration")
	}
	if !strings.Contains(dot, `"0,0:1" -- "0,1:1";`) {
		t.Error("ToDOT() output missing straight link")
	}
	// 1,1 owns side 2 and borrows side 5 from 0,2.
	if !strings.Contains(dot, `"1,1:2" -- "0,2:2";`) {
		t.Error("ToDOT() output missing straight through a borrowed side")
	}
	if !strings.Contains(dot, `"1,1:0" -- "1,1:2";`) {
		t.Error("ToDOT() output missing bend link")
	}
	if got := strings.Count(dot, " -- "); got != 9 {
		t.Errorf("ToDOT() has %d links, want 9", got)
	}
	if got := strings.Count(dot, "dashed"); got != 3 {
		t.Errorf("ToDOT() has %d dead ends, want 3", got)
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(reference(), Options{Detailed: true})

	if !strings.Contains(dot, `[label="straight 0,0"]`) {
		t.Error("ToDOT() detailed output missing link label")
	}
	if !strings.Contains(dot, `label="0,0:1\n(0.0, -26.0)"`) {
		t.Errorf("ToDOT() detailed output missing node position:\n%s", dot)
	}
}

func TestNodeID(t *testing.T) {
	ref := grid.Ref{Cell: hex.Axial{Q: -2, R: 3}, Owned: 2}
	if got := NodeID(ref); got != "-2,3:2" {
		t.Errorf("NodeID() = %q", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(normalizeViewBox([]byte(tt.svg))); got != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(reference(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), `not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
