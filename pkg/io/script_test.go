package io

import (
	"testing"

	"github.com/matzehuels/hexrail/pkg/core/grid"
	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/errors"
)

func TestReferenceGrid(t *testing.T) {
	g, err := Reference().Grid()
	if err != nil {
		t.Fatalf("Grid() error: %v", err)
	}
	if g.Count() != 9 {
		t.Errorf("Count() = %d, want 9", g.Count())
	}
	// (0,0) side 4 is (0,1) side 1.
	if !g.Connections(hex.Axial{})[4] {
		t.Error("shared side (0,0):4 not connected")
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		toggles []Toggle
		applied int
		code    errors.Code
		count   int
	}{
		{
			name:    "inner sides",
			toggles: []Toggle{{0, 0, 0}, {0, 0, 3}},
			applied: 2,
			count:   2,
		},
		{
			name:    "double toggle",
			toggles: []Toggle{{0, 0, 4}, {0, 1, 1}},
			applied: 2,
			count:   0,
		},
		{
			name:    "off board skipped",
			toggles: []Toggle{{3, 0, 3}, {0, 0, 0}, {9, 9, 0}},
			applied: 1,
			code:    errors.ErrCodeOutOfBounds,
			count:   1,
		},
		{
			name:    "bad direction",
			toggles: []Toggle{{0, 0, 0}, {0, 0, 6}},
			applied: 0,
			code:    errors.ErrCodeInvalidDirection,
			count:   0,
		},
		{
			name:    "negative direction",
			toggles: []Toggle{{0, 0, -1}},
			code:    errors.ErrCodeInvalidDirection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid.Default()
			s := &Script{Toggles: tt.toggles}
			applied, err := s.Apply(g)
			if applied != tt.applied {
				t.Errorf("applied = %d, want %d", applied, tt.applied)
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (err %v)", got, tt.code, err)
			}
			if g.Count() != tt.count {
				t.Errorf("Count() = %d, want %d", g.Count(), tt.count)
			}
		})
	}
}

func TestScriptSize(t *testing.T) {
	s := &Script{Width: 9}
	if w, h := s.Size(); w != 9 || h != grid.DefaultSize {
		t.Errorf("Size() = %d,%d", w, h)
	}
	s.Height = 100
	if err := s.Validate(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Validate() = %v, want INVALID_INPUT", err)
	}
}

func TestFromGrid(t *testing.T) {
	g, err := Reference().Grid()
	if err != nil {
		t.Fatal(err)
	}
	s := FromGrid("copy", g)
	if len(s.Toggles) != 9 || s.Width != 7 || s.Height != 7 {
		t.Fatalf("FromGrid() = %+v", s)
	}
	if s.Toggles[0] != (Toggle{Q: 0, R: 0, Edge: 1}) {
		t.Errorf("first toggle = %v", s.Toggles[0])
	}

	g2, err := s.Grid()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g2.Connected(), g.Connected(); len(got) != len(want) {
		t.Fatalf("rebuilt %d sides, want %d", len(got), len(want))
	}
	for i, ref := range g.Connected() {
		if g2.Connected()[i] != ref {
			t.Errorf("side %d = %v, want %v", i, g2.Connected()[i], ref)
		}
	}
}
