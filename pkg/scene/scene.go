package scene

import (
	"fmt"

	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/geometry"
	"github.com/df07/go-lambert-raytracer/pkg/lights"
	"github.com/df07/go-lambert-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering.
// A scene is assembled once and treated as read-only while it renders.
type Scene struct {
	CameraConfig renderer.CameraConfig
	Shapes       []core.Primitive          // Objects in the scene
	Lights       []lights.DirectionalLight // Lights in the scene
}

// NewScene creates an empty scene with the given camera
func NewScene(cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		CameraConfig: cameraConfig,
		Shapes:       make([]core.Primitive, 0),
		Lights:       make([]lights.DirectionalLight, 0),
	}
}

// GetCameraConfig returns the camera configuration
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.CameraConfig
}

// GetShapes returns all primitives in declaration order
func (s *Scene) GetShapes() []core.Primitive {
	return s.Shapes
}

// GetLights returns all lights
func (s *Scene) GetLights() []lights.DirectionalLight {
	return s.Lights
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Point, radius float64, color core.Color, reflectance float64) {
	s.Shapes = append(s.Shapes, geometry.NewSphere(center, radius, color, reflectance))
}

// AddPlane adds an infinite plane to the scene
func (s *Scene) AddPlane(point core.Point, normal core.Vec3, color core.Color, reflectance float64) {
	s.Shapes = append(s.Shapes, geometry.NewPlane(point, normal, color, reflectance))
}

// AddDirectionalLight adds a directional light to the scene
func (s *Scene) AddDirectionalLight(direction core.Vec3, color core.Color, intensity float64) {
	s.Lights = append(s.Lights, lights.NewDirectionalLight(direction, color, intensity))
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// Validate checks the scene for geometry the renderer cannot handle.
// Every returned error wraps core.ErrDegenerateGeometry.
func (s *Scene) Validate() error {
	if err := s.CameraConfig.Validate(); err != nil {
		return err
	}

	for i, shape := range s.Shapes {
		switch p := shape.(type) {
		case *geometry.Sphere:
			if !(p.Radius > 0) {
				return fmt.Errorf("%w: sphere %d has radius %g", core.ErrDegenerateGeometry, i, p.Radius)
			}
		case *geometry.Plane:
			if p.Normal.IsZero() {
				return fmt.Errorf("%w: plane %d has a zero normal", core.ErrDegenerateGeometry, i)
			}
		}

		if albedo := shape.Albedo(); !(albedo >= 0 && albedo <= 1) {
			return fmt.Errorf("%w: shape %d has reflectance %g outside [0, 1]", core.ErrDegenerateGeometry, i, albedo)
		}
	}

	for i, light := range s.Lights {
		if light.Direction.IsZero() {
			return fmt.Errorf("%w: light %d has a zero direction", core.ErrDegenerateGeometry, i)
		}
		if !(light.Intensity >= 0) {
			return fmt.Errorf("%w: light %d has intensity %g", core.ErrDegenerateGeometry, i, light.Intensity)
		}
	}

	return nil
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override renderer.CameraConfig) renderer.CameraConfig {
	result := base
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.Height > 0 {
		result.Height = override.Height
	}
	if override.FOV > 0 {
		result.FOV = override.FOV
	}
	if override.Position != (core.Point{}) {
		result.Position = override.Position
	}
	return result
}

// cameraConfigFor applies the first override, if any, to the scene's default camera
func cameraConfigFor(defaults renderer.CameraConfig, overrides []renderer.CameraConfig) renderer.CameraConfig {
	if len(overrides) == 0 {
		return defaults
	}
	return MergeCameraConfig(defaults, overrides[0])
}
