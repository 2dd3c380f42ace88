package editor

import (
	"fmt"

	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/hittest"
)

// Event is a pointer event in board space.
type Event interface {
	event()
}

// PointerMove reports the pointer position.
type PointerMove struct{ X, Y float64 }

// PointerLeave reports that the pointer left the canvas.
type PointerLeave struct{}

// Click reports a primary button click.
type Click struct{ X, Y float64 }

func (PointerMove) event()  {}
func (PointerLeave) event() {}
func (Click) event()        {}

// Reduce applies ev to m. Pointer moves and leaves always ask for a redraw;
// a click does only when it toggled a side. A move highlights any side
// under the pointer, including rim sides a click cannot toggle.
func Reduce(m Model, ev Event) (Model, bool) {
	switch ev := ev.(type) {
	case PointerMove:
		if t, ok := hittest.EdgeAt(hex.Point{X: ev.X, Y: ev.Y}); ok {
			return m.WithHighlight(t), true
		}
		return m.WithoutHighlight(), true
	case PointerLeave:
		return m.WithoutHighlight(), true
	case Click:
		t, ok := m.Hit(ev.X, ev.Y)
		if !ok {
			return m, false
		}
		return m.Toggle(t)
	default:
		panic(fmt.Sprintf("editor: unknown event %T", ev))
	}
}
