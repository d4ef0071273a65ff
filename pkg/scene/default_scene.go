package scene

import (
	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/renderer"
)

// NewDefaultScene creates the two-sphere demo scene over a ground plane
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Width:    800,
		Height:   600,
		FOV:      90,
		Position: core.NewPoint(0, 0, 0),
	}

	s := NewScene(cameraConfigFor(defaultCameraConfig, cameraOverrides))

	// Green sphere straight ahead, magenta sphere up and to the right
	s.AddSphere(core.NewPoint(0, 0, -3), 1, core.NewColor(0.4, 1.0, 0.4), 0.18)
	s.AddSphere(core.NewPoint(4, 3, -6), 2.5, core.NewColor(0.8, 0.2, 0.7), 0.18)

	// Ground plane below both spheres
	s.AddPlane(core.NewPoint(0, -2, 0), core.NewVec3(0, 1, 0), core.NewColor(0.2, 0.2, 0.2), 0.18)

	// Key light from above, slightly behind the camera
	s.AddDirectionalLight(core.NewVec3(0, -1, -0.5), core.NewColor(1, 1, 1), 20)

	return s
}

// NewPlaneScene creates a sphere resting on a tilted floor lit by two colored lights
func NewPlaneScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Width:    640,
		Height:   480,
		FOV:      60,
		Position: core.NewPoint(0, 0, 0),
	}

	s := NewScene(cameraConfigFor(defaultCameraConfig, cameraOverrides))

	s.AddSphere(core.NewPoint(0, 0, -5), 1, core.NewColor(1, 1, 1), 0.9)
	s.AddPlane(core.NewPoint(0, -1, -5), core.NewVec3(0, 1, 0.1), core.NewColor(0.6, 0.6, 0.6), 0.5)
	s.AddPlane(core.NewPoint(0, 0, -20), core.NewVec3(0, 0, 1), core.NewColor(0.2, 0.3, 0.8), 0.5)

	// Warm light from the upper left, cool fill from the right
	s.AddDirectionalLight(core.NewVec3(1, -1, -1), core.NewColor(1.0, 0.85, 0.7), 8)
	s.AddDirectionalLight(core.NewVec3(-1, -0.2, -0.5), core.NewColor(0.6, 0.7, 1.0), 3)

	return s
}
