package geometry

import (
	"math"

	"github.com/df07/go-lambert-raytracer/pkg/core"
)

const tangentTolerance = 1e-12

// Sphere represents a solid-colored diffuse sphere
type Sphere struct {
	Center      core.Point
	Radius      float64
	Color       core.Color
	Reflectance float64 // Diffuse albedo in [0,1]
}

// NewSphere creates a new sphere
func NewSphere(center core.Point, radius float64, color core.Color, reflectance float64) *Sphere {
	return &Sphere{
		Center:      center,
		Radius:      radius,
		Color:       color,
		Reflectance: reflectance,
	}
}

// Intersects reports whether the ray line passes within the sphere radius
func (s *Sphere) Intersects(ray core.Ray) bool {
	_, isHit := s.IntersectDistance(ray)
	return isHit
}

// IntersectDistance returns the distance from the ray origin to the near
// intersection. The distance is negative when the near intersection lies
// behind the origin; callers decide whether to accept it.
func (s *Sphere) IntersectDistance(ray core.Ray) (float64, bool) {
	// Vector from ray origin to sphere center, projected onto the ray
	v := core.Displacement(ray.Origin, s.Center)
	proj := v.Dot(ray.Direction.Normalize())

	// Squared perpendicular distance from the center to the ray line.
	// The relative tolerance keeps exact tangents classified as hits.
	d2 := v.LengthSquared() - proj*proj
	r2 := s.Radius * s.Radius
	if d2 > r2*(1+tangentTolerance) {
		return 0, false
	}

	// Half chord length is zero for tangent rays
	halfChord := math.Sqrt(max(0, r2-d2))
	return proj - halfChord, true
}

// ColorAt returns the sphere's base color
func (s *Sphere) ColorAt(point core.Point) core.Color {
	return s.Color
}

// NormalAt returns the outward vector from the center to the given point
func (s *Sphere) NormalAt(point core.Point) core.Vec3 {
	return core.Displacement(s.Center, point)
}

// Albedo returns the sphere's reflectance
func (s *Sphere) Albedo() float64 {
	return s.Reflectance
}
