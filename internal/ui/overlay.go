//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"gridcast/internal/core"
	"gridcast/internal/game"
	"gridcast/internal/projection"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws a minimap of the level in the top-right corner of the
// first-person view.
type Overlay struct {
	grid    *core.Grid
	cell    int
	show    bool
	walls   *ebiten.Image
	heading color.RGBA
}

// NewOverlay prepares the static wall layer for grid.
func NewOverlay(grid *core.Grid, rayColor color.RGBA) *Overlay {
	o := &Overlay{grid: grid, cell: MinimapCell(grid.Size(), minimapSide), heading: rayColor}
	o.buildWalls()
	return o
}

// Update toggles the minimap on M.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.show = !o.show
	}
}

// Draw renders the minimap when it is enabled and the view is first-person.
func (o *Overlay) Draw(screen *ebiten.Image, s game.State) {
	if !o.show || s.View != projection.FirstPerson || o.walls == nil {
		return
	}
	originX := float64(screen.Bounds().Dx()-o.walls.Bounds().Dx()) - panelMargin
	originY := float64(panelMargin)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(originX, originY)
	screen.DrawImage(o.walls, op)

	cell := float64(o.cell)
	px := originX + (float64(s.Player.X)+0.5)*cell
	py := originY + (float64(s.Player.Y)+0.5)*cell
	hx, hy := s.Player.Heading()
	reach := math.Max(cell*3, 6)
	vector.StrokeLine(screen, float32(px), float32(py), float32(px+hx*reach), float32(py+hy*reach), 1, o.heading, false)
	vector.DrawFilledCircle(screen, float32(px), float32(py), float32(math.Max(cell/2, 2)), color.RGBA{R: 220, G: 40, B: 40, A: 255}, true)

	label := fmt.Sprintf("%d,%d", s.Player.X, s.Player.Y)
	ebitenutil.DebugPrintAt(screen, label, int(originX), int(originY)+o.walls.Bounds().Dy()+2)
}

func (o *Overlay) buildWalls() {
	size := o.grid.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	o.walls = ebiten.NewImage(size.W*o.cell, size.H*o.cell)
	o.walls.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 180})
	cell := float32(o.cell)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if o.grid.IsWall(x, y) {
				vector.DrawFilledRect(o.walls, float32(x)*cell, float32(y)*cell, cell, cell, color.RGBA{R: 200, G: 200, B: 210, A: 255}, false)
			}
		}
	}
}

const minimapSide = 160
