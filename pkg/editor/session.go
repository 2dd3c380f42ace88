package editor

import (
	"github.com/matzehuels/hexrail/pkg/core/grid"
	"github.com/matzehuels/hexrail/pkg/core/render/board"
	"github.com/matzehuels/hexrail/pkg/core/scene"
)

// Session keeps the current model for a single event source. It is not
// safe for concurrent use.
type Session struct {
	model Model
	opts  []board.Option
}

// NewSession starts a session over g. Render options apply to every
// [Session.Render].
func NewSession(g *grid.Grid, opts ...board.Option) *Session {
	return &Session{model: New(g), opts: opts}
}

// Model returns the current model.
func (s *Session) Model() Model { return s.model }

// Dispatch applies ev and reports whether a redraw is needed.
func (s *Session) Dispatch(ev Event) bool {
	var redraw bool
	s.model, redraw = Reduce(s.model, ev)
	return redraw
}

// OnPointerMove recomputes the hovered side.
func (s *Session) OnPointerMove(x, y float64) Highlight {
	s.Dispatch(PointerMove{X: x, Y: y})
	return s.model.Highlight()
}

// OnPointerLeave clears the hovered side.
func (s *Session) OnPointerLeave() Highlight {
	s.Dispatch(PointerLeave{})
	return s.model.Highlight()
}

// OnClick toggles the side under the pointer and reports whether anything
// changed.
func (s *Session) OnClick(x, y float64) bool {
	return s.Dispatch(Click{X: x, Y: y})
}

// Render draws the current model.
func (s *Session) Render() scene.Scene { return Render(s.model, s.opts...) }
