package editor

import (
	"testing"

	"github.com/matzehuels/hexrail/pkg/core/grid"
	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/hittest"
	"github.com/matzehuels/hexrail/pkg/core/scene"
)

func aim(q, r int, d hex.Direction) (float64, float64) {
	p := hittest.Aim(hex.Axial{Q: q, R: r}, d)
	return p.X, p.Y
}

func TestReducePointerMove(t *testing.T) {
	m := New(grid.Default())
	x, y := aim(1, 0, 2)

	m, redraw := Reduce(m, PointerMove{X: x, Y: y})
	if !redraw {
		t.Error("move did not ask for a redraw")
	}
	want := Highlight{Target: hittest.Target{Cell: hex.Axial{Q: 1}, Dir: 2}, Active: true}
	if got := m.Highlight(); got != want {
		t.Errorf("highlight = %+v, want %+v", got, want)
	}

	// The centre of a cell is too far from every side.
	m, redraw = Reduce(m, PointerMove{})
	if !redraw || m.Highlight().Active {
		t.Errorf("centre move: redraw %v, highlight %+v", redraw, m.Highlight())
	}
}

func TestReduceHoverRimSide(t *testing.T) {
	// Side 3 of (3,0) is stored on (4,0), past the edge of the board.
	x, y := aim(3, 0, 3)
	m, redraw := Reduce(New(grid.Default()), PointerMove{X: x, Y: y})
	if !redraw {
		t.Error("move did not ask for a redraw")
	}
	want := Highlight{Target: hittest.Target{Cell: hex.Axial{Q: 3}, Dir: 3}, Active: true}
	if got := m.Highlight(); got != want {
		t.Fatalf("highlight = %+v, want %+v", got, want)
	}
	if m.Stored(want.Target) {
		t.Error("rim side reported as stored")
	}

	sc := Render(m)
	if n := sc.Count(scene.ClassHighlight); n != 1 {
		t.Errorf("highlighted wedges = %d, want 1", n)
	}
	if n := sc.Count(scene.ClassRailsGhost); n != 2 {
		t.Errorf("ghost rails = %d, want 2 (one stub)", n)
	}

	m, redraw = Reduce(m, Click{X: x, Y: y})
	if redraw || m.Count() != 0 {
		t.Errorf("rim click: redraw %v, count %d", redraw, m.Count())
	}
	if !m.Highlight().Active {
		t.Error("rim click cleared the highlight")
	}
}

func TestReducePointerLeave(t *testing.T) {
	x, y := aim(0, 0, 0)
	m, _ := Reduce(New(grid.Default()), PointerMove{X: x, Y: y})
	m, redraw := Reduce(m, PointerLeave{})
	if !redraw || m.Highlight().Active {
		t.Errorf("leave: redraw %v, highlight %+v", redraw, m.Highlight())
	}
}

func TestReduceClick(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		redraw bool
		count  int
	}{
		{"inner side", 0, -20.8, true, 1},
		{"centre", 0, 0, false, 0},
		{"far away", 10000, 10000, false, 0},
		{"outer side of the board", 135 + 20.8*0.8660254037844387, 78 + 20.8*0.5, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, redraw := Reduce(New(grid.Default()), Click{X: tt.x, Y: tt.y})
			if redraw != tt.redraw {
				t.Errorf("redraw = %v, want %v", redraw, tt.redraw)
			}
			if got := m.Count(); got != tt.count {
				t.Errorf("count = %d, want %d", got, tt.count)
			}
		})
	}
}

func TestReduceDoesNotMutate(t *testing.T) {
	m0 := New(grid.Default())
	x, y := aim(0, 0, 1)

	m1, _ := Reduce(m0, Click{X: x, Y: y})
	m2, _ := Reduce(m1, Click{X: x, Y: y})

	if m0.Count() != 0 || m1.Count() != 1 || m2.Count() != 0 {
		t.Errorf("counts = %d,%d,%d want 0,1,0", m0.Count(), m1.Count(), m2.Count())
	}
}

func TestReduceClickSharedSide(t *testing.T) {
	// Side 4 of (0,-1) is side 1 of (0,0).
	x, y := aim(0, -1, 4)
	m, ok := Reduce(New(grid.Default()), Click{X: x, Y: y})
	if !ok {
		t.Fatal("click missed")
	}
	if !m.Connections(hex.Axial{})[1] || !m.Connections(hex.Axial{Q: 0, R: -1})[4] {
		t.Error("shared side not connected from both cells")
	}
}

func TestReduceUnknownEvent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Reduce(New(grid.Default()), nil)
}

func TestGridIsCopied(t *testing.T) {
	m := New(grid.Default())
	g := m.Grid()
	g.Toggle(hex.Axial{}, 0)
	if m.Count() != 0 {
		t.Error("Grid() exposed the model's board")
	}
}
