package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"gridcast/internal/core"
	"gridcast/internal/projection"
)

// Rasterize paints draw commands in order onto a new opaque black image of
// the given size. A pixel is covered when its centre lies inside the shape.
func Rasterize(cmds []projection.DrawCommand, size core.Size) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(size.W, 1), max(size.H, 1)))
	Paint(img, cmds)
	return img
}

// Paint draws cmds onto img, which is first cleared to opaque black.
func Paint(img *image.RGBA, cmds []projection.DrawCommand) {
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	for _, c := range cmds {
		switch c.Kind {
		case projection.Rect:
			fillRect(img, c.X, c.Y, c.W, c.H, c.Color)
		case projection.Circle:
			fillCircle(img, c.X, c.Y, c.R, c.Color)
		}
	}
}

// span converts a [lo, hi) float interval into the pixel index range whose
// centres fall inside it, clipped to [0, limit).
func span(lo, hi float64, limit int) (int, int) {
	a := int(math.Ceil(lo - 0.5))
	b := int(math.Ceil(hi - 0.5))
	return max(a, 0), min(b, limit)
}

func fillRect(img *image.RGBA, x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	b := img.Bounds()
	x0, x1 := span(x, x+w, b.Dx())
	y0, y1 := span(y, y+h, b.Dy())
	for py := y0; py < y1; py++ {
		row := img.Pix[py*img.Stride:]
		for px := x0; px < x1; px++ {
			setPixel(row, px, c)
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	if r <= 0 {
		return
	}
	b := img.Bounds()
	x0, x1 := span(cx-r, cx+r, b.Dx())
	y0, y1 := span(cy-r, cy+r, b.Dy())
	r2 := r * r
	for py := y0; py < y1; py++ {
		dy := float64(py) + 0.5 - cy
		row := img.Pix[py*img.Stride:]
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				setPixel(row, px, c)
			}
		}
	}
}

func setPixel(row []byte, px int, c color.RGBA) {
	base := px * 4
	row[base+0] = c.R
	row[base+1] = c.G
	row[base+2] = c.B
	row[base+3] = c.A
}
