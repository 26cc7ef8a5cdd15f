package projection

import (
	"math"
	"slices"
	"testing"

	"gridcast/internal/config"
	"gridcast/internal/core"
	"gridcast/internal/player"
)

func borderGrid(w, h int) *core.Grid {
	g := core.NewGrid(w, h)
	for col := 0; col < w; col++ {
		g.Set(col, 0, core.Wall)
		g.Set(col, h-1, core.Wall)
	}
	for row := 0; row < h; row++ {
		g.Set(0, row, core.Wall)
		g.Set(w-1, row, core.Wall)
	}
	return g
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.ScreenWidth = 120
	cfg.ScreenHeight = 80
	cfg.WallScaling = 80
	cfg.NumberOfRays = 60
	return &cfg
}

func TestSingleCentredRayHasNoFisheyeCorrection(t *testing.T) {
	cfg := testConfig()
	cfg.NumberOfRays = 1
	cfg.FOVAngle = 0
	cfg.FOVRadius = 20

	g := borderGrid(10, 10)
	p := player.New(g, 1, 5)
	e := New(cfg)

	cols := e.Columns(g, p)
	if len(cols) != 1 {
		t.Fatalf("expected one column, got %d", len(cols))
	}
	col := cols[0]
	if !col.Visible || col.HitX != 9 || col.HitY != 5 {
		t.Fatalf("expected east border hit at (9,5), got %+v", col)
	}
	if col.Distance != 4 || col.Perpendicular != col.Distance {
		t.Fatalf("distance %v perpendicular %v, expected both 4", col.Distance, col.Perpendicular)
	}
	if col.WallHeight != 20 {
		t.Fatalf("wall height %v, expected 80/4", col.WallHeight)
	}
	if math.Abs(col.Brightness-0.8) > 1e-12 {
		t.Fatalf("brightness %v, expected 0.8", col.Brightness)
	}

	cmds := e.Render(FirstPerson, g, p)
	if len(cmds) != 3 {
		t.Fatalf("expected ceiling, floor and one strip, got %d commands", len(cmds))
	}
	strip := cmds[2]
	if strip.X != 0 || strip.W != 120 || strip.H != 20 || strip.Y != 30 {
		t.Fatalf("strip geometry %+v", strip)
	}
	if want := cfg.WallColor.Scale(0.8); strip.Color != want {
		t.Fatalf("strip colour %v, expected %v", strip.Color, want)
	}
}

func TestFirstPersonBackground(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenHeight = 81
	g := borderGrid(10, 10)
	p := player.New(g, 1, 5)

	cmds := New(cfg).Render(FirstPerson, g, p)
	ceil, floor := cmds[0], cmds[1]
	if ceil.Y != 0 || ceil.H != 40 || ceil.Color != cfg.CeilingColor.RGBA() {
		t.Fatalf("ceiling %+v", ceil)
	}
	if floor.Y != 40 || floor.H != 41 || floor.Color != cfg.FloorColor.RGBA() {
		t.Fatalf("floor %+v", floor)
	}
	for _, c := range cmds[2:] {
		if c.Kind != Rect || c.W != 2 {
			t.Fatalf("strip %+v", c)
		}
		if c.H > float64(cfg.WallScaling) || c.H < 0 {
			t.Fatalf("strip height %v outside clamp", c.H)
		}
	}
}

func TestFisheyeCorrectionFlattensWall(t *testing.T) {
	cfg := testConfig()
	cfg.FOVRadius = 30
	cfg.NumberOfRays = 30

	g := core.NewGrid(40, 40)
	for row := 0; row < g.H; row++ {
		g.Set(30, row, core.Wall)
	}
	g.PlaceOccupant(core.Point{X: 10, Y: 20})
	p := &player.Player{X: 10, Y: 20}

	cols := New(cfg).Columns(g, p)
	minP, maxP := math.Inf(1), math.Inf(-1)
	minD, maxD := math.Inf(1), math.Inf(-1)
	for _, c := range cols {
		if !c.Visible || c.HitX != 30 {
			t.Fatalf("column %d missed the wall: %+v", c.Index, c)
		}
		minP, maxP = math.Min(minP, c.Perpendicular), math.Max(maxP, c.Perpendicular)
		minD, maxD = math.Min(minD, c.Distance), math.Max(maxD, c.Distance)
	}
	if maxP-minP > 1.5 {
		t.Fatalf("corrected distances spread %v..%v", minP, maxP)
	}
	if maxD-minD < 2 {
		t.Fatalf("raw distances should bow outwards, got %v..%v", minD, maxD)
	}
}

func TestNoWallNoStrip(t *testing.T) {
	cfg := testConfig()
	cfg.FOVRadius = 3
	g := core.NewGrid(30, 30)
	p := player.New(g, 1, 5)

	cmds := New(cfg).Render(FirstPerson, g, p)
	if len(cmds) != 2 {
		t.Fatalf("open space within radius should only draw the background, got %d commands", len(cmds))
	}
}

func TestBrightnessMonotoneAndBounded(t *testing.T) {
	const radius = 20
	prev := math.Inf(1)
	for perp := -5.0; perp <= 40; perp += 0.25 {
		b := Brightness(perp, radius)
		if b < 0 || b > 1 {
			t.Fatalf("Brightness(%v) = %v outside [0,1]", perp, b)
		}
		if b > prev {
			t.Fatalf("Brightness increased at %v: %v > %v", perp, b, prev)
		}
		prev = b
	}
	if Brightness(0, radius) != 1 || Brightness(radius, radius) != 0 {
		t.Fatal("fog endpoints wrong")
	}
}

func TestWallHeightClamp(t *testing.T) {
	cases := []struct {
		perp, want float64
	}{
		{0.25, 600},
		{1, 600},
		{2, 300},
		{600, 1},
		{1e9, 600 / 1e9},
	}
	for _, tc := range cases {
		if got := WallHeight(tc.perp, 600); got != tc.want {
			t.Fatalf("WallHeight(%v) = %v, expected %v", tc.perp, got, tc.want)
		}
	}
}

func TestAnglesSpanFieldOfView(t *testing.T) {
	cfg := testConfig()
	cfg.FOVAngle = 60
	cfg.NumberOfRays = 6
	got := New(cfg).Angles(10)
	want := []float64{340, 350, 0, 10, 20, 30}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("angles %v, expected %v", got, want)
		}
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	rng := core.NewRNG(7)
	g := borderGrid(24, 18)
	core.ScatterWalls(g, rng, 0.15)
	p := player.New(g, 1, 5)
	p.Rotate(33)

	serial := testConfig()
	parallel := testConfig()
	parallel.Workers = 4

	for _, v := range []View{FirstPerson, TopDown} {
		a := New(serial).Render(v, g, p)
		b := New(parallel).Render(v, g, p)
		if !slices.Equal(a, b) {
			t.Fatalf("%v: parallel render differs from serial", v)
		}
	}
}

func TestTopDown(t *testing.T) {
	cfg := testConfig()
	cfg.TopDownScale = 4
	g := borderGrid(10, 10)
	p := player.New(g, 1, 5)
	e := New(cfg)

	if s := e.Surface(TopDown, g); s != (core.Size{W: 40, H: 40}) {
		t.Fatalf("top-down surface %v", s)
	}
	if s := e.Surface(FirstPerson, g); s != (core.Size{W: 120, H: 80}) {
		t.Fatalf("first-person surface %v", s)
	}

	cmds := e.Render(TopDown, g, p)
	var rays, walls, circles int
	seen := map[[2]float64]bool{}
	for _, c := range cmds {
		switch {
		case c.Kind == Circle:
			circles++
			if c.X != 20 || c.Y != 20 || c.R != 8 || c.Color != cfg.PlayerColor.RGBA() {
				t.Fatalf("player marker %+v", c)
			}
		case c.Color == cfg.RaycastLineColor.RGBA():
			rays++
			key := [2]float64{c.X, c.Y}
			if seen[key] {
				t.Fatalf("ray cell %v drawn twice", key)
			}
			seen[key] = true
		case c.Color == cfg.WallColor.RGBA():
			walls++
		}
	}
	if circles != 1 {
		t.Fatalf("expected one player marker, got %d", circles)
	}
	if walls != g.Walls() {
		t.Fatalf("expected %d wall cells, got %d", g.Walls(), walls)
	}
	if rays == 0 || !seen[[2]float64{20, 20}] {
		t.Fatalf("ray paths must include the player's cell, got %d cells", rays)
	}
	if cmds[len(cmds)-1].Kind != Circle {
		t.Fatal("player marker must be drawn last")
	}
}
