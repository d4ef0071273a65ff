package core

// Ray represents a ray with an origin and direction.
// Direction is not required to be unit length.
type Ray struct {
	Origin    Point
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin Point, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter s along the ray, measured in multiples of Direction
func (r Ray) At(s float64) Point {
	return r.Origin.Add(r.Direction.Multiply(s))
}

// AtDistance returns the point a world-space distance t along the ray
func (r Ray) AtDistance(t float64) Point {
	return r.At(t / r.Direction.Length())
}
