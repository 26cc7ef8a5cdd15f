package ui

import (
	"strings"
	"testing"

	"gridcast/internal/config"
	"gridcast/internal/core"
	"gridcast/internal/game"
	"gridcast/internal/player"
	"gridcast/internal/projection"
)

func TestPanelLines(t *testing.T) {
	s := game.State{
		Player: player.Player{X: 3, Y: 4, Angle: 90},
		View:   projection.TopDown,
	}
	cfg := config.Default()
	lines := PanelLines(s, 29.96, cfg.Parameters())
	text := strings.Join(lines, "\n")
	for _, want := range []string{"FPS 30.0", "View top-down", "Pos 3,4", "Angle 90 (+0.00,+1.00)", "[motion]"} {
		if !strings.Contains(text, want) {
			t.Fatalf("HUD text missing %q:\n%s", want, text)
		}
	}
}

func TestMinimapCell(t *testing.T) {
	cases := []struct {
		size core.Size
		max  int
		want int
	}{
		{core.Size{W: 32, H: 16}, 160, 5},
		{core.Size{W: 400, H: 10}, 160, 1},
		{core.Size{}, 160, 1},
	}
	for _, tc := range cases {
		if got := MinimapCell(tc.size, tc.max); got != tc.want {
			t.Fatalf("MinimapCell(%v,%d) = %d, expected %d", tc.size, tc.max, got, tc.want)
		}
	}
}
