package renderer

import (
	"image"
	"math"
	"time"

	"github.com/fogleman/gg"

	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/lights"
	"github.com/df07/go-lambert-raytracer/pkg/material"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCameraConfig() CameraConfig
	GetShapes() []core.Primitive
	GetLights() []lights.DirectionalLight
}

// Raytracer resolves primary rays against a fixed scene
type Raytracer struct {
	camera *Camera
	shapes []core.Primitive
	lights []lights.DirectionalLight
	width  int
	height int
	logger core.Logger
}

// NewRaytracer creates a new raytracer for the scene
func NewRaytracer(scene Scene, logger core.Logger) (*Raytracer, error) {
	config := scene.GetCameraConfig()
	camera, err := NewCamera(config)
	if err != nil {
		return nil, err
	}

	return &Raytracer{
		camera: camera,
		shapes: scene.GetShapes(),
		lights: scene.GetLights(),
		width:  config.Width,
		height: config.Height,
		logger: logger,
	}, nil
}

// Camera returns the camera used for primary rays
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// hitWorld finds the nearest primitive in front of the ray origin.
// Ties keep the first primitive in declaration order.
func (rt *Raytracer) hitWorld(ray core.Ray) (core.Primitive, float64, bool) {
	var closest core.Primitive
	closestSoFar := math.MaxFloat64

	for _, shape := range rt.shapes {
		dist, isHit := shape.IntersectDistance(ray)
		if isHit && dist > 0 && dist < closestSoFar {
			closestSoFar = dist
			closest = shape
		}
	}

	return closest, closestSoFar, closest != nil
}

// trace returns the shaded color for a ray and whether it hit anything
func (rt *Raytracer) trace(ray core.Ray) (core.Color, bool) {
	shape, dist, isHit := rt.hitWorld(ray)
	if !isHit {
		return core.Black, false
	}

	point := ray.AtDistance(dist)
	normal := shape.NormalAt(point)
	base := shape.ColorAt(point)
	return material.NewLambertian(shape.Albedo()).Shade(base, normal, rt.lights), true
}

// Resolve returns the color seen along a ray; black when nothing is hit
func (rt *Raytracer) Resolve(ray core.Ray) core.Color {
	c, _ := rt.trace(ray)
	return c
}

// RenderPass renders every pixel once in row-major order and returns the image
func (rt *Raytracer) RenderPass() (image.Image, RenderStats) {
	rt.logger.Printf("Rendering %dx%d with %d shapes and %d lights\n",
		rt.width, rt.height, len(rt.shapes), len(rt.lights))

	startTime := time.Now()
	dc := gg.NewContext(rt.width, rt.height)
	stats := RenderStats{TotalPixels: rt.width * rt.height}

	for y := 0; y < rt.height; y++ {
		for x := 0; x < rt.width; x++ {
			pixel, isHit := rt.trace(rt.camera.PrimaryRay(x, y))
			stats.AddPixel(isHit)

			dc.SetColor(pixel.ToRGBA())
			dc.SetPixel(x, y)
		}
	}

	stats.Elapsed = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d hit, %d background)\n",
		stats.Elapsed, stats.HitPixels, stats.MissPixels)

	return dc.Image(), stats
}
