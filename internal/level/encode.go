package level

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"gridcast/internal/core"
)

// ToImage is the inverse of FromImage: walls become opaque white pixels and
// every other cell opaque black.
func ToImage(g *core.Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.W, g.H))
	floor := color.NRGBA{A: 255}
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			x, y := SourcePixel(col, row)
			if g.IsWall(col, row) {
				img.SetNRGBA(x, y, wallColor)
			} else {
				img.SetNRGBA(x, y, floor)
			}
		}
	}
	return img
}

// Save writes g as a PNG map at path.
func Save(path string, g *core.Grid) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create map dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create map: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close map: %w", cerr)
		}
	}()
	if err := png.Encode(f, ToImage(g)); err != nil {
		return fmt.Errorf("encode map: %w", err)
	}
	return nil
}
