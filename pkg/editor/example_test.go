package editor_test

import (
	"fmt"

	"github.com/matzehuels/hexrail/pkg/core/grid"
	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/hittest"
	"github.com/matzehuels/hexrail/pkg/editor"
)

func ExampleReduce() {
	m := editor.New(grid.Default())
	p := hittest.Aim(hex.Axial{Q: 0, R: 0}, 2)

	m, redraw := editor.Reduce(m, editor.PointerMove{X: p.X, Y: p.Y})
	fmt.Println(m.Highlight().Target, redraw)

	m, redraw = editor.Reduce(m, editor.Click{X: p.X, Y: p.Y})
	fmt.Println(m.Count(), redraw)

	m, redraw = editor.Reduce(m, editor.Click{X: 0, Y: 0})
	fmt.Println(m.Count(), redraw)
	// Output:
	// (0,0):2 true
	// 1 true
	// 1 false
}
