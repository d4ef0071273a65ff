package geometry

import (
	"math"

	"github.com/df07/go-lambert-raytracer/pkg/core"
)

const (
	// parallelEpsilon bounds |cos| between ray and normal below which the ray is treated as parallel
	parallelEpsilon = 1e-8
	// selfHitEpsilon is the minimum accepted hit distance
	selfHitEpsilon = 1e-6
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point       core.Point // A point on the plane
	Normal      core.Vec3  // Unit normal
	Color       core.Color
	Reflectance float64 // Diffuse albedo in [0,1]
}

// NewPlane creates a new plane
func NewPlane(point core.Point, normal core.Vec3, color core.Color, reflectance float64) *Plane {
	return &Plane{
		Point:       point,
		Normal:      normal.Normalize(), // Ensure normal is normalized
		Color:       color,
		Reflectance: reflectance,
	}
}

// Intersects reports whether the ray hits the plane in front of its origin
func (p *Plane) Intersects(ray core.Ray) bool {
	_, isHit := p.IntersectDistance(ray)
	return isHit
}

// IntersectDistance returns the world-space distance along the ray to the plane
func (p *Plane) IntersectDistance(ray core.Ray) (float64, bool) {
	// Cosine between the ray and the normal; zero when the ray runs parallel to the plane
	cosine := ray.Direction.Normalize().Dot(p.Normal)
	if math.Abs(cosine) < parallelEpsilon {
		return 0, false
	}

	// Signed distance from the ray origin to the plane, divided by the cosine
	t := core.Displacement(ray.Origin, p.Point).Dot(p.Normal) / cosine
	if !(t > selfHitEpsilon) {
		return 0, false
	}

	return t, true
}

// ColorAt returns the plane's base color
func (p *Plane) ColorAt(point core.Point) core.Color {
	return p.Color
}

// NormalAt returns the plane's fixed normal
func (p *Plane) NormalAt(point core.Point) core.Vec3 {
	return p.Normal
}

// Albedo returns the plane's reflectance
func (p *Plane) Albedo() float64 {
	return p.Reflectance
}
