// Package projection turns ray casts into per-frame draw commands.
package projection

import (
	"gridcast/internal/config"
	"gridcast/internal/core"
	"gridcast/internal/player"
	"gridcast/internal/raycast"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/sync/errgroup"
)

// Engine renders frames for either view from a fixed configuration.
type Engine struct {
	cfg *config.Config
}

// New returns an Engine using cfg. cfg must already be validated and must not
// change while the engine is in use.
func New(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the settings the engine renders with.
func (e *Engine) Config() *config.Config { return e.cfg }

// Surface reports the output size of a view.
func (e *Engine) Surface(v View, grid *core.Grid) core.Size {
	if v == TopDown {
		s := e.cfg.TopDownScale
		return core.Size{W: grid.W * s, H: grid.H * s}
	}
	return core.Size{W: e.cfg.ScreenWidth, H: e.cfg.ScreenHeight}
}

// Angles returns the heading of every sample ray, left edge first.
func (e *Engine) Angles(heading float64) []float64 {
	n := e.cfg.NumberOfRays
	step := e.cfg.RayStep()
	start := heading - e.cfg.FOVAngle/2
	out := make([]float64, n)
	for i := range out {
		out[i] = player.NormalizeAngle(start + float64(i)*step)
	}
	return out
}

func (e *Engine) caster(grid *core.Grid) *raycast.Caster {
	c := raycast.NewCaster(grid)
	c.ExclusiveEnd = e.cfg.ExclusiveLines
	return c
}

// Columns casts one ray per sample column and projects each hit.
func (e *Engine) Columns(grid *core.Grid, p *player.Player) []Column {
	angles := e.Angles(p.Angle)
	cols := make([]Column, len(angles))
	c := e.caster(grid)
	origin := p.Position()

	e.forEach(len(cols), func(i int) {
		cols[i] = e.column(c, origin, p.Angle, i, angles[i])
	})
	return cols
}

func (e *Engine) column(c *raycast.Caster, origin core.Point, heading float64, i int, phi float64) Column {
	col := Column{Index: i, Angle: phi}
	hit, wall := c.Hit(origin, phi, e.cfg.FOVRadius)
	col.HitX, col.HitY = hit.X, hit.Y
	col.Distance = raycast.Distance(origin, hit)
	if !wall || col.Distance == 0 {
		return col
	}
	col.Perpendicular = Perpendicular(col.Distance, phi, heading)
	if col.Perpendicular <= 0 {
		return col
	}
	col.WallHeight = WallHeight(col.Perpendicular, float64(e.cfg.WallScaling))
	col.Brightness = Brightness(col.Perpendicular, e.cfg.FOVRadius)
	col.Visible = true
	return col
}

// forEach runs fn for every index in [0, n). With more than one worker the
// range is split into contiguous chunks; each index is visited exactly once.
func (e *Engine) forEach(n int, fn func(i int)) {
	workers := e.cfg.Workers
	if workers <= 1 || n < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Render produces the draw commands for one frame of view v.
func (e *Engine) Render(v View, grid *core.Grid, p *player.Player) []DrawCommand {
	if v == TopDown {
		return e.topDown(grid, p)
	}
	return e.firstPerson(grid, p)
}

func (e *Engine) firstPerson(grid *core.Grid, p *player.Player) []DrawCommand {
	cfg := e.cfg
	w, h := float64(cfg.ScreenWidth), float64(cfg.ScreenHeight)
	half := float64(cfg.ScreenHeight / 2)
	colW := float64(cfg.ColumnWidth())

	cols := e.Columns(grid, p)
	cmds := make([]DrawCommand, 0, len(cols)+2)
	cmds = append(cmds,
		FillRect(0, 0, w, half, cfg.CeilingColor.RGBA()),
		FillRect(0, half, w, h-half, cfg.FloorColor.RGBA()),
	)
	for _, col := range cols {
		if !col.Visible {
			continue
		}
		cmds = append(cmds, FillRect(
			float64(col.Index)*colW,
			(h-col.WallHeight)/2,
			colW,
			col.WallHeight,
			cfg.WallColor.Scale(col.Brightness),
		))
	}
	return cmds
}

func (e *Engine) topDown(grid *core.Grid, p *player.Player) []DrawCommand {
	cfg := e.cfg
	s := float64(cfg.TopDownScale)
	c := e.caster(grid)
	origin := p.Position()

	rays := make([][]core.Point, cfg.NumberOfRays)
	angles := e.Angles(p.Angle)
	e.forEach(len(rays), func(i int) {
		rays[i] = c.Cast(origin, angles[i], cfg.FOVRadius)
	})

	var cmds []DrawCommand
	seen := mapset.New[core.Point]()
	line := cfg.RaycastLineColor.RGBA()
	for _, ray := range rays {
		for _, cell := range ray {
			if seen.Has(cell) {
				continue
			}
			seen.Put(cell)
			cmds = append(cmds, FillRect(float64(cell.X)*s, float64(cell.Y)*s, s, s, line))
		}
	}

	wall := cfg.WallColor.RGBA()
	for row := 0; row < grid.H; row++ {
		for col := 0; col < grid.W; col++ {
			if grid.IsWall(col, row) {
				cmds = append(cmds, FillRect(float64(col)*s, float64(row)*s, s, s, wall))
			}
		}
	}
	if occ, ok := grid.Occupant(); ok {
		cmds = append(cmds, FillCircle(float64(occ.X)*s, float64(occ.Y)*s, 2*s, cfg.PlayerColor.RGBA()))
	}
	return cmds
}
