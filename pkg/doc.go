// Package pkg provides the core libraries for the hexrail track editor.
//
// # Overview
//
// Hexrail lays rail track on the shared edges of a hexagonal board. A side
// is toggled by pointing at it; each cell then draws its connected sides as
// straights, bends and dead-end stubs. The pkg directory is organized into
// three areas:
//
//  1. [core] - Geometry, the edge grid, hit-testing and rendering
//  2. [editor] - The immutable editor model and its event reducer
//  3. Support - toggle scripts ([io]), sessions, caching, errors, hooks
//
// # Architecture
//
// The data flow for one pointer event:
//
//	pointer position
//	       ↓
//	  [core/hittest] (nearest side of the cell under the pointer)
//	       ↓
//	  [editor] (hover or toggle, through [core/grid])
//	       ↓
//	  [core/render/board] (cells → rail pieces → scene)
//	       ↓
//	  [core/render/sink] (SVG, JSON, PNG)
//
// # Quick Start
//
// Toggle a side and draw the board:
//
//	import (
//	    "github.com/matzehuels/hexrail/pkg/core/grid"
//	    "github.com/matzehuels/hexrail/pkg/core/render/sink"
//	    "github.com/matzehuels/hexrail/pkg/editor"
//	)
//
//	s := editor.NewSession(grid.Default())
//	s.OnPointerMove(0, -20)
//	s.OnClick(0, -20)
//	svg := sink.RenderSVG(s.Render())
//
// # Main Packages
//
// ## Core Domain Logic
//
// [core/hex] - Axial coordinates, pixel conversion and the six directions.
//
// [core/grid] - The edge grid. Every physical side has one storage slot, so
// toggling from either cell changes both views.
//
// [core/hittest] - Maps a pointer position to the side it points at.
//
// [core/render] - Rail pieces ([core/render/rail]), the board drawing
// ([core/render/board]), output formats ([core/render/sink]) and the track
// graph laid out by Graphviz ([core/render/nodelink]).
//
// ## Editor
//
// [editor] - Model, Reduce and a single-user Session with the pointer-event
// API used by the terminal and browser editors.
//
// ## Support
//
// [io] - Toggle scripts in TOML, YAML or JSON and the reference track.
//
// [session] - Editor sessions with expiry for the HTTP editor.
//
// [cache] - File cache for Graphviz layouts.
//
// [observability] - Hooks for editor, render and session events.
//
// [errors] - Coded errors and input validation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/core/grid/... # Specific package
//	go test -run Example        # Examples only
//
// [core]: https://pkg.go.dev/github.com/matzehuels/hexrail/pkg/core
// [core/hex]: https://pkg.go.dev/github.com/matzehuels/hexrail/pkg/core/hex
// [core/grid]: https://pkg.go.dev/github.com/matzehuels/hexrail/pkg/core/grid
// [core/hittest]: https://pkg.go.dev/github.com/matzehuels/hexrail/pkg/core/hittest
// [core/render]: https://pkg.go.dev/github.com/matzehuels/hexrail/pkg/core/render
// [core/render/rail]: https://pkg.go.dev/github.com/matzehuels/hexrail/pkg/core/render/rail
// [core/render/board]: https://pkg.go.dev/github.com/matzehuels/hexrail/pkg/core/render/board
// [core/render/sink]: https://pkg.go.dev/github.com/matzehuels/hexrail/pkg/core/render/sink
// [core/render/nodelink]: https://pkg.go.dev/github.com/matzehuels/hexrail/pkg/core/render/nodelink
// [editor]: https://pkg.go.dev/github.com/matzehuels/hexrail/pkg/editor
// [io]: https://pkg.go.dev/github.com/matzehuels/hexrail/pkg/io
// [session]: https://pkg.go.dev/github.com/matzehuels/hexrail/pkg/session
// [cache]: https://pkg.go.dev/github.com/matzehuels/hexrail/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/hexrail/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/hexrail/pkg/errors
package pkg
