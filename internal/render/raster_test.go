package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gridcast/internal/core"
	"gridcast/internal/projection"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func TestRasterizeRectCoverage(t *testing.T) {
	img := Rasterize([]projection.DrawCommand{
		projection.FillRect(2, 1, 3, 2, red),
	}, core.Size{W: 8, H: 4})

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x < 5 && y >= 1 && y < 3
			got := img.RGBAAt(x, y)
			if inside && got != red {
				t.Fatalf("pixel (%d,%d) = %v, expected red", x, y, got)
			}
			if !inside && got != (color.RGBA{0, 0, 0, 255}) {
				t.Fatalf("pixel (%d,%d) = %v, expected background", x, y, got)
			}
		}
	}
}

func TestRasterizeClipsAndOrders(t *testing.T) {
	img := Rasterize([]projection.DrawCommand{
		projection.FillRect(-10, -10, 100, 100, red),
		projection.FillRect(3, 3, 1, 1, blue),
		projection.FillRect(1, 1, 0, 5, blue),
	}, core.Size{W: 5, H: 5})

	if img.RGBAAt(0, 0) != red || img.RGBAAt(4, 4) != red {
		t.Fatal("oversized rect should be clipped to the image")
	}
	if img.RGBAAt(3, 3) != blue {
		t.Fatal("later commands paint over earlier ones")
	}
	if img.RGBAAt(1, 1) != red {
		t.Fatal("zero-width rect must not paint")
	}
}

func TestRasterizeFractionalRect(t *testing.T) {
	// Pixel centres at 0.5, 1.5, 2.5: a strip from 0.6 to 2.6 covers 1 and 2.
	img := Rasterize([]projection.DrawCommand{
		projection.FillRect(0.6, 0, 2, 1, red),
	}, core.Size{W: 4, H: 1})
	want := []bool{false, true, true, false}
	for x, w := range want {
		if (img.RGBAAt(x, 0) == red) != w {
			t.Fatalf("pixel %d coverage %v, expected %v", x, !w, w)
		}
	}
}

func TestRasterizeCircle(t *testing.T) {
	img := Rasterize([]projection.DrawCommand{
		projection.FillCircle(5, 5, 3, blue),
	}, core.Size{W: 10, H: 10})

	if img.RGBAAt(4, 4) != blue || img.RGBAAt(5, 5) != blue {
		t.Fatal("circle centre must be filled")
	}
	if img.RGBAAt(0, 0) == blue || img.RGBAAt(9, 9) == blue {
		t.Fatal("corners lie outside the circle")
	}
	if img.RGBAAt(7, 4) != blue {
		t.Fatal("pixel (7,4) centre is 2.5 from the centre and inside r=3")
	}
	if img.RGBAAt(8, 8) == blue {
		t.Fatal("pixel (8,8) centre is ~4.9 from the centre")
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "frame.png")
	cmds := []projection.DrawCommand{projection.FillRect(0, 0, 2, 2, red)}
	if err := WritePNG(path, cmds, core.Size{W: 4, H: 3}); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("bounds %v", b)
	}
	if r, _, _, _ := img.At(1, 1).RGBA(); r != 0xffff {
		t.Fatal("painted pixel lost in PNG round trip")
	}
}
