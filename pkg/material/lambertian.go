package material

import (
	"math"

	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/lights"
)

// Lambertian represents a perfectly diffuse surface
type Lambertian struct {
	Albedo float64 // Reflectance in [0,1]
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo float64) Lambertian {
	return Lambertian{Albedo: albedo}
}

// BRDF returns the constant lambertian BRDF: albedo / π
func (l Lambertian) BRDF() float64 {
	return l.Albedo / math.Pi
}

// Illumination sums the scalar light factor for a surface with the given normal.
// Each light contributes its clamped power times the BRDF; light color is not applied.
func (l Lambertian) Illumination(normal core.Vec3, sceneLights []lights.DirectionalLight) float64 {
	brdf := l.BRDF()
	factor := 0.0
	for _, light := range sceneLights {
		factor += light.Power(normal) * brdf
	}
	return factor
}

// Shade returns the base color scaled by the summed light factor
func (l Lambertian) Shade(base core.Color, normal core.Vec3, sceneLights []lights.DirectionalLight) core.Color {
	return base.Multiply(l.Illumination(normal, sceneLights))
}
