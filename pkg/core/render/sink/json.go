package sink

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/scene"
)

type jsonOutput struct {
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	OriginX float64     `json:"origin_x"`
	OriginY float64     `json:"origin_y"`
	Groups  []jsonGroup `json:"groups"`
}

type jsonGroup struct {
	ID     string      `json:"id"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Shapes []jsonShape `json:"shapes"`
}

type jsonShape struct {
	Kind   scene.Kind  `json:"kind"`
	Class  string      `json:"class"`
	Points []hex.Point `json:"points,omitempty"`
	X1     float64     `json:"x1,omitempty"`
	Y1     float64     `json:"y1,omitempty"`
	X2     float64     `json:"x2,omitempty"`
	Y2     float64     `json:"y2,omitempty"`
	D      string      `json:"d,omitempty"`
	CX     float64     `json:"cx,omitempty"`
	CY     float64     `json:"cy,omitempty"`
	R      float64     `json:"r,omitempty"`
}

// RenderJSON encodes s for consumers that draw the scene themselves.
func RenderJSON(s scene.Scene) ([]byte, error) {
	out := jsonOutput{
		Width:   s.Width,
		Height:  s.Height,
		OriginX: s.OriginX,
		OriginY: s.OriginY,
		Groups:  make([]jsonGroup, 0, len(s.Groups)),
	}
	for _, g := range s.Groups {
		jg := jsonGroup{ID: g.ID, X: g.X, Y: g.Y, Shapes: make([]jsonShape, 0, len(g.Shapes))}
		for _, sh := range g.Shapes {
			js, err := toJSONShape(sh)
			if err != nil {
				return nil, fmt.Errorf("group %s: %w", g.ID, err)
			}
			jg.Shapes = append(jg.Shapes, js)
		}
		out.Groups = append(out.Groups, jg)
	}
	return json.MarshalIndent(out, "", "  ")
}

func toJSONShape(sh scene.Shape) (jsonShape, error) {
	js := jsonShape{Kind: sh.Kind(), Class: sh.ClassName()}
	switch s := sh.(type) {
	case scene.Polygon:
		js.Points = s.Points
	case scene.Line:
		js.X1, js.Y1, js.X2, js.Y2 = s.X1, s.Y1, s.X2, s.Y2
	case scene.Path:
		js.D = PathData(s)
	case scene.Circle:
		js.CX, js.CY, js.R = s.CX, s.CY, s.R
	default:
		return jsonShape{}, fmt.Errorf("unsupported shape %T", sh)
	}
	return js, nil
}
