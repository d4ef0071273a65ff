package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-lambert-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Width    int        // Image width in pixels
	Height   int        // Image height in pixels
	FOV      float64    // Field of view in degrees, exclusive range (0, 180)
	Position core.Point // Camera position; the camera always looks down -Z
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:    800,
		Height:   600,
		FOV:      90,
		Position: core.NewPoint(0, 0, 0),
	}
}

// Validate reports configurations that cannot produce a finite projection
func (c CameraConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d must be positive", core.ErrDegenerateGeometry, c.Width, c.Height)
	}
	if !(c.FOV > 0 && c.FOV < 180) {
		return fmt.Errorf("%w: field of view %g must be in (0, 180) degrees", core.ErrDegenerateGeometry, c.FOV)
	}
	return nil
}

// Camera generates primary rays through a sensor plane one unit in front of the camera
type Camera struct {
	position core.Point
	width    float64
	height   float64
	fovScale float64 // tan(fov/2)
	aspect   float64 // width / height
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	width := float64(config.Width)
	height := float64(config.Height)
	return &Camera{
		position: config.Position,
		width:    width,
		height:   height,
		fovScale: math.Tan(config.FOV * math.Pi / 180 / 2),
		aspect:   width / height,
	}, nil
}

// PrimaryRay returns the ray from the camera through the center of pixel (x, y).
// Row 0 is the top of the image; world +Y is up. The direction is not normalized.
func (c *Camera) PrimaryRay(x, y int) core.Ray {
	sensorX := ((float64(x)+0.5)/c.width*2 - 1) * c.aspect * c.fovScale
	sensorY := (1 - (float64(y)+0.5)/c.height*2) * c.fovScale
	sensor := core.NewPoint(sensorX, sensorY, -1)

	return core.NewRay(c.position, core.Displacement(c.position, sensor))
}
