package hittest

import (
	"testing"

	"github.com/matzehuels/hexrail/pkg/core/hex"
)

func TestProximitiesAntiParallel(t *testing.T) {
	p := Proximities(hex.Point{X: 7, Y: -11})
	for d := 0; d < 3; d++ {
		if p[d+3] != -p[d] {
			t.Errorf("p[%d] = %v, want %v", d+3, p[d+3], -p[d])
		}
	}
}

func TestNearestTieLowestIndex(t *testing.T) {
	tests := []struct {
		name string
		p    [6]float64
		want hex.Direction
	}{
		{"all zero", [6]float64{}, 0},
		{"tie 1 and 2", [6]float64{0, 0.9, 0.9, 0, -0.9, -0.9}, 1},
		{"tie 2 and 5", [6]float64{-1, 0, 0.7, 0, 0, 0.7}, 2},
		{"single max", [6]float64{0.1, 0.2, 0.3, -0.1, -0.2, -0.3}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := Nearest(tt.p); got != tt.want {
				t.Errorf("Nearest(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestClassifyAlongDirection(t *testing.T) {
	for _, d := range hex.Directions {
		for _, dist := range []float64{20, 26, 30} {
			got, ok := Classify(d.Vector().Scale(dist))
			if !ok || got != d {
				t.Errorf("Classify(%v*%v) = %v,%v want %v,true", d, dist, got, ok, d)
			}
		}
	}
}

func TestClassifyNearCenterMisses(t *testing.T) {
	for _, rel := range []hex.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: -10, Y: 3}, {X: 0, Y: -15}} {
		if d, ok := Classify(rel); ok {
			t.Errorf("Classify(%v) = %v, want miss", rel, d)
		}
	}
}

func TestEdgeAt(t *testing.T) {
	for _, a := range hex.Diamond(3) {
		for _, d := range hex.Directions {
			got, ok := EdgeAt(Aim(a, d))
			want := Target{Cell: a, Dir: d}
			if !ok || got != want {
				t.Errorf("EdgeAt(Aim(%v,%v)) = %v,%v want %v", a, d, got, ok, want)
			}
		}
	}
}

func TestEdgeAtMidpointSamePhysicalSide(t *testing.T) {
	for _, a := range hex.Diamond(2) {
		for _, d := range hex.Directions {
			got, ok := EdgeAt(hex.EdgeMidpoint(a, d))
			want := Target{Cell: a, Dir: d}
			if !ok || !got.Is(want) {
				t.Errorf("EdgeAt(midpoint %v) = %v,%v, want side %v", want, got, ok, want)
			}
		}
	}
}

func TestEdgeAtCenterMisses(t *testing.T) {
	for _, a := range hex.Diamond(3) {
		if got, ok := EdgeAt(hex.Center(a)); ok {
			t.Errorf("EdgeAt(Center(%v)) = %v, want miss", a, got)
		}
	}
}

func TestMirror(t *testing.T) {
	tg := Target{Cell: hex.Axial{Q: 0, R: 0}, Dir: 4}
	m := tg.Mirror()
	if m != (Target{Cell: hex.Axial{Q: 0, R: 1}, Dir: 1}) {
		t.Errorf("Mirror() = %v", m)
	}
	if m.Mirror() != tg {
		t.Error("Mirror is not an involution")
	}
	if !tg.Is(m) || !m.Is(tg) {
		t.Error("Is should match the mirrored side")
	}
}
