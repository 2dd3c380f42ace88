// Package editor holds the interactive state of a board and the rules that
// change it.
//
// A [Model] is an immutable value: the board plus the side under the
// pointer. [Reduce] applies one pointer [Event] and returns the next model
// together with whether the view needs redrawing. [Render] turns a model
// into a [scene.Scene] for a sink to draw. None of these touch shared
// state, so they can be tested without any UI.
//
// [Session] wraps a model for callers that dispatch events one at a time
// and want the current state kept for them:
//
//	s := editor.NewSession(grid.Default())
//	s.OnPointerMove(40, -20)
//	if s.OnClick(40, -20) {
//		svg := sink.RenderSVG(s.Render())
//		...
//	}
//
// Pointer positions are in board space: the canvas origin sits on the
// centre of cell (0,0).
package editor
