package scene

import (
	"math"

	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/renderer"
)

// hueToRGB converts a hue in degrees to a fully saturated RGB color
func hueToRGB(h float64) core.Color {
	h = math.Mod(h, 360) / 60
	x := 1 - math.Abs(math.Mod(h, 2)-1)

	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = 1, x, 0
	case h < 2:
		r, g, b = x, 1, 0
	case h < 3:
		r, g, b = 0, 1, x
	case h < 4:
		r, g, b = 0, x, 1
	case h < 5:
		r, g, b = x, 0, 1
	default:
		r, g, b = 1, 0, x
	}
	return core.NewColor(float32(r), float32(g), float32(b))
}

// NewSphereGridScene creates a scene with a grid of spheres on a ground plane
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Width:    800,
		Height:   450,
		FOV:      50,
		Position: core.NewPoint(0, 2, 4),
	}

	s := NewScene(cameraConfigFor(defaultCameraConfig, cameraOverrides))

	// Ground plane (medium gray)
	s.AddPlane(core.NewPoint(0, 0, 0), core.NewVec3(0, 1, 0), core.NewColor(0.5, 0.5, 0.5), 0.6)

	gridSize := 6
	spacing := 1.2
	radius := spacing * 0.35

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			// Center the grid on x=0, receding from z=-4
			x := (float64(i) - float64(gridSize-1)/2) * spacing
			z := -4 - float64(j)*spacing

			// Hue varies across X, reflectance across Z
			color := hueToRGB(float64(i) / float64(gridSize) * 360)
			reflectance := 0.4 + 0.5*float64(j)/float64(gridSize-1)

			s.AddSphere(core.NewPoint(x, radius, z), radius, color, reflectance)
		}
	}

	s.AddDirectionalLight(core.NewVec3(-0.5, -1, -0.3), core.NewColor(1, 1, 1), 12)

	return s
}
