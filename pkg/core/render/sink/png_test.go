package sink

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/matzehuels/hexrail/pkg/core/scene"
)

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(sampleScene(), WithScale(0.5))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 500 || b.Dy() != 500 {
		t.Errorf("size = %dx%d, want 500x500", b.Dx(), b.Dy())
	}
}

func TestRasterizeColors(t *testing.T) {
	img, err := Rasterize(sampleScene())
	if err != nil {
		t.Fatal(err)
	}
	// Corner of the canvas lies outside the board.
	if c := img.RGBAAt(2, 2); c.A != 0 {
		t.Errorf("corner = %v, want transparent", c)
	}
	// The centre of the origin cell is ground, inside the bend.
	if c := img.RGBAAt(500, 500); c != colorGround {
		t.Errorf("centre = %v, want %v", c, colorGround)
	}
	// The hovered wedge of cell (1,0) sits 24 units along direction 2.
	if c := img.RGBAAt(545+21, 526-12); c != colorHover {
		t.Errorf("hovered wedge = %v, want %v", c, colorHover)
	}
}

func TestRasterizeBackground(t *testing.T) {
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	img, err := Rasterize(sampleScene(), WithBackground(white), WithPNGTheme(Theme{}))
	if err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(500, 500); c != white {
		t.Errorf("empty theme drew %v", c)
	}
}

func TestRasterizeErrors(t *testing.T) {
	if _, err := Rasterize(sampleScene(), WithScale(0)); err == nil {
		t.Error("expected error for zero scale")
	}
	if _, err := Rasterize(scene.Scene{}); err == nil {
		t.Error("expected error for empty canvas")
	}
}
