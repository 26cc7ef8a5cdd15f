package projection

import "image/color"

// Kind selects the primitive a DrawCommand fills.
type Kind uint8

const (
	// Rect fills the axis-aligned rectangle (X, Y, W, H).
	Rect Kind = iota
	// Circle fills the disc centred on (X, Y) with radius R.
	Circle
)

// DrawCommand is one filled primitive in surface pixel coordinates.
type DrawCommand struct {
	Kind  Kind
	X, Y  float64
	W, H  float64
	R     float64
	Color color.RGBA
}

// FillRect returns a rectangle command.
func FillRect(x, y, w, h float64, c color.RGBA) DrawCommand {
	return DrawCommand{Kind: Rect, X: x, Y: y, W: w, H: h, Color: c}
}

// FillCircle returns a disc command.
func FillCircle(cx, cy, r float64, c color.RGBA) DrawCommand {
	return DrawCommand{Kind: Circle, X: cx, Y: cy, R: r, Color: c}
}

// View selects what a frame shows.
type View uint8

const (
	// FirstPerson is the pseudo-3D wall strip view.
	FirstPerson View = iota
	// TopDown is the diagnostic map view with ray paths.
	TopDown
)

func (v View) String() string {
	if v == TopDown {
		return "top-down"
	}
	return "first-person"
}

// Title is the window caption for the view.
func (v View) Title() string {
	if v == TopDown {
		return "Raycast 2D FOV"
	}
	return "Raycasting 3D Render"
}
