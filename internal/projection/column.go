package projection

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Column is the projection of one sample ray.
type Column struct {
	Index int
	// Angle is the ray heading in degrees.
	Angle float64
	// Distance is the Euclidean distance from the player to the hit cell.
	Distance float64
	// Perpendicular is Distance projected onto the view direction.
	Perpendicular float64
	WallHeight    float64
	Brightness    float64
	HitX, HitY    int
	// Visible is false when the ray hit nothing or the hit cannot be
	// projected (zero or negative perpendicular distance).
	Visible bool
}

// Perpendicular removes the fisheye bend by projecting a ray of length d at
// heading phi onto the view direction angle (both in degrees).
func Perpendicular(d, phi, angle float64) float64 {
	return d * math.Cos((phi-angle)*math.Pi/180)
}

// WallHeight is the strip height for a wall at perpendicular distance perp,
// clamped to [0, scale].
func WallHeight(perp, scale float64) float64 {
	if perp <= 0 {
		return scale
	}
	return clamp(scale/perp, 0, scale)
}

// Brightness is linear distance fog: 1 at the eye, 0 at radius and beyond.
func Brightness(perp, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return clamp(1-perp/radius, 0, 1)
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
