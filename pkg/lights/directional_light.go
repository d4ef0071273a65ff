package lights

import "github.com/df07/go-lambert-raytracer/pkg/core"

// DirectionalLight is a light at infinity shining along a fixed direction
type DirectionalLight struct {
	Direction core.Vec3  // Direction the light travels, from the light toward the scene
	Color     core.Color // Light color
	Intensity float64    // Linear multiplier, unbounded
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(direction core.Vec3, color core.Color, intensity float64) DirectionalLight {
	return DirectionalLight{
		Direction: direction,
		Color:     color,
		Intensity: intensity,
	}
}

// Power returns the light arriving at a surface with the given normal.
// Surfaces facing away from the light receive zero rather than negative power.
func (l DirectionalLight) Power(normal core.Vec3) float64 {
	cosine := l.Direction.Normalize().Dot(normal.Normalize())
	return max(0, -l.Intensity*cosine)
}
