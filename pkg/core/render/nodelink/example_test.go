package nodelink_test

import (
	"fmt"

	"github.com/matzehuels/hexrail/pkg/core/grid"
	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/render/nodelink"
)

func ExampleLinks() {
	// A bend in the origin cell joins its sides 0 and 2.
	g := grid.Default()
	g.Toggle(hex.Axial{}, 0)
	g.Toggle(hex.Axial{}, 2)

	for _, l := range nodelink.Links(g) {
		fmt.Println(l.Kind, nodelink.NodeID(l.From), nodelink.NodeID(l.To))
	}
	// Output:
	// bend 0,0:0 0,0:2
}
