package ui

import (
	"fmt"

	"gridcast/internal/core"
	"gridcast/internal/game"
)

// StatusLines describes the player state for the HUD header.
func StatusLines(s game.State, fps float64) []string {
	hx, hy := s.Player.Heading()
	return []string{
		fmt.Sprintf("FPS %.1f", fps),
		fmt.Sprintf("View %s", s.View),
		fmt.Sprintf("Pos %d,%d", s.Player.X, s.Player.Y),
		fmt.Sprintf("Angle %.0f (%+.2f,%+.2f)", s.Player.Angle, hx, hy),
	}
}

// PanelLines is the full HUD text: status, a blank line, then the settings.
func PanelLines(s game.State, fps float64, params core.ParameterSnapshot) []string {
	lines := StatusLines(s, fps)
	lines = append(lines, "")
	return append(lines, params.Lines()...)
}

// MinimapCell is the pixel size of one grid cell on the minimap so the whole
// grid fits within maxSide pixels.
func MinimapCell(size core.Size, maxSide int) int {
	side := max(size.W, size.H)
	if side <= 0 {
		return 1
	}
	return max(maxSide/side, 1)
}
