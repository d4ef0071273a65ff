package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Primitive is a surface that primary rays can hit.
// IntersectDistance reports a hit exactly when Intersects is true for the same ray.
type Primitive interface {
	// Intersects reports whether the ray hits the primitive
	Intersects(ray Ray) bool
	// IntersectDistance returns the world-space distance along the ray to the hit
	IntersectDistance(ray Ray) (float64, bool)
	// ColorAt returns the base surface color at a hit point
	ColorAt(point Point) Color
	// NormalAt returns the surface normal at a hit point (not necessarily unit length)
	NormalAt(point Point) Vec3
	// Albedo returns the diffuse reflectance coefficient in [0,1]
	Albedo() float64
}
