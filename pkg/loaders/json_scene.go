package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/renderer"
	"github.com/df07/go-lambert-raytracer/pkg/scene"
)

// JSONScene is the on-disk scene description
type JSONScene struct {
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	FOV     float64      `json:"fov"`
	Camera  [3]float64   `json:"camera"`
	Spheres []JSONSphere `json:"spheres,omitempty"`
	Planes  []JSONPlane  `json:"planes,omitempty"`
	Lights  []JSONLight  `json:"lights,omitempty"`
}

type JSONSphere struct {
	Center      [3]float64 `json:"center"`
	Radius      float64    `json:"radius"`
	Color       [3]float32 `json:"color"`
	Reflectance float64    `json:"reflectance"`
}

type JSONPlane struct {
	Point       [3]float64 `json:"point"`
	Normal      [3]float64 `json:"normal"`
	Color       [3]float32 `json:"color"`
	Reflectance float64    `json:"reflectance"`
}

type JSONLight struct {
	Direction [3]float64 `json:"direction"`
	Color     [3]float32 `json:"color"`
	Intensity float64    `json:"intensity"`
}

// LoadSceneJSON reads and validates a scene description file
func LoadSceneJSON(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseSceneJSON(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}
	return s, nil
}

// ParseSceneJSON decodes a scene description and validates the resulting scene
func ParseSceneJSON(r io.Reader) (*scene.Scene, error) {
	var desc JSONScene
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&desc); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}

	s := desc.Build()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return s, nil
}

// Build converts the description into a scene without validating it
func (d JSONScene) Build() *scene.Scene {
	s := scene.NewScene(renderer.CameraConfig{
		Width:    d.Width,
		Height:   d.Height,
		FOV:      d.FOV,
		Position: toPoint(d.Camera),
	})

	for _, sp := range d.Spheres {
		s.AddSphere(toPoint(sp.Center), sp.Radius, toColor(sp.Color), sp.Reflectance)
	}
	for _, pl := range d.Planes {
		s.AddPlane(toPoint(pl.Point), toVec3(pl.Normal), toColor(pl.Color), pl.Reflectance)
	}
	for _, l := range d.Lights {
		s.AddDirectionalLight(toVec3(l.Direction), toColor(l.Color), l.Intensity)
	}
	return s
}

func toPoint(v [3]float64) core.Point {
	return core.NewPoint(v[0], v[1], v[2])
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func toColor(c [3]float32) core.Color {
	return core.NewColor(c[0], c[1], c[2])
}
