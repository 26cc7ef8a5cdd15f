// Package level turns raster map assets into occupancy grids.
package level

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"gridcast/internal/core"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// wallColor is the only pixel value that produces a wall.
var wallColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Load opens and decodes the map image at path.
func Load(path string) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: DecodeFailure, Path: path, Err: err}
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Path = path
		}
		return nil, err
	}
	return g, nil
}

// Decode reads an image from r and classifies its pixels.
func Decode(r io.Reader) (*core.Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &LoadError{Kind: DecodeFailure, Err: err}
	}
	return FromImage(img)
}

// FromImage builds a grid from an already decoded image. Grid cell (col, row)
// is read from image pixel SourcePixel(col, row).
func FromImage(img image.Image) (*core.Grid, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &LoadError{Kind: EmptyMap}
	}

	g := core.NewGrid(b.Dx(), b.Dy())
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			x, y := SourcePixel(col, row)
			if IsWallPixel(img.At(b.Min.X+x, b.Min.Y+y)) {
				g.Set(col, row, core.Wall)
			}
		}
	}
	return g, nil
}

// SourcePixel maps grid cell (col, row) to the image pixel (x, y) it is read
// from. Existing map assets were produced by a loader that named its loop
// variables the other way round (outer "col" over image x, inner "row" over
// image y, then read pixel[row, col] and indexed the result as map[row][col]);
// the two swaps cancel, so grid columns follow image x and grid rows image y.
func SourcePixel(col, row int) (x, y int) {
	return col, row
}

// IsWallPixel reports whether c is fully opaque white.
func IsWallPixel(c color.Color) bool {
	return color.NRGBAModel.Convert(c).(color.NRGBA) == wallColor
}
