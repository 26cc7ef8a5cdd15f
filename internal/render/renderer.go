//go:build ebiten

package render

import (
	"image/color"

	"gridcast/internal/projection"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter issues draw commands as ebiten vector fills.
type Painter struct {
	antialias bool
}

// NewPainter returns a Painter. Antialiasing smooths circle edges at a small
// cost per command.
func NewPainter(antialias bool) *Painter {
	return &Painter{antialias: antialias}
}

// Draw clears dst and fills every command in order.
func (p *Painter) Draw(dst *ebiten.Image, cmds []projection.DrawCommand) {
	dst.Fill(color.Black)
	for _, c := range cmds {
		switch c.Kind {
		case projection.Rect:
			vector.DrawFilledRect(dst, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), c.Color, false)
		case projection.Circle:
			vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(c.R), c.Color, p.antialias)
		}
	}
}
