package scene

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/geometry"
	"github.com/df07/go-lambert-raytracer/pkg/renderer"
)

type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}

func TestBuiltinScenesAreValid(t *testing.T) {
	for _, info := range ListScenes() {
		t.Run(info.Name, func(t *testing.T) {
			s, err := NewByName(info.Name)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Scene should be valid: %v", err)
			}
			if s.GetPrimitiveCount() == 0 {
				t.Error("Scene should contain primitives")
			}
			if len(s.GetLights()) == 0 {
				t.Error("Scene should contain lights")
			}
		})
	}
}

func TestNewByName_Unknown(t *testing.T) {
	s, err := NewByName("nonexistent")
	if err == nil {
		t.Error("Expected error for unknown scene")
	}
	if s != nil {
		t.Errorf("Expected nil scene, got %v", s)
	}
}

func TestListScenes_Sorted(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(builtinScenes) {
		t.Fatalf("Expected %d scenes, got %d", len(builtinScenes), len(scenes))
	}
	for i := 1; i < len(scenes); i++ {
		if scenes[i-1].Name >= scenes[i].Name {
			t.Errorf("Scenes not sorted: %q before %q", scenes[i-1].Name, scenes[i].Name)
		}
	}
}

func TestDefaultScene_CameraOverrides(t *testing.T) {
	s := NewDefaultScene(renderer.CameraConfig{Width: 40, Height: 30})

	config := s.GetCameraConfig()
	if config.Width != 40 || config.Height != 30 {
		t.Errorf("Expected overridden size 40x30, got %dx%d", config.Width, config.Height)
	}
	if config.FOV != 90 {
		t.Errorf("Expected default FOV 90 to survive the override, got %f", config.FOV)
	}
}

func TestDefaultScene_Render(t *testing.T) {
	s := NewDefaultScene(renderer.CameraConfig{Width: 32, Height: 24})

	rt, err := renderer.NewRaytracer(s, discardLogger{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	img, stats := rt.RenderPass()

	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("Expected 32x24 image, got %v", img.Bounds())
	}
	if stats.HitPixels == 0 || stats.MissPixels == 0 {
		t.Errorf("Expected both hits and background pixels, got %+v", stats)
	}

	// The green sphere sits straight ahead of the camera
	center := rt.Resolve(rt.Camera().PrimaryRay(16, 12))
	if !(center.G > center.R && center.G > center.B) {
		t.Errorf("Expected green center pixel, got %v", center)
	}
}

func TestScene_Validate(t *testing.T) {
	valid := renderer.CameraConfig{Width: 10, Height: 10, FOV: 90}

	tests := []struct {
		name  string
		build func() *Scene
	}{
		{"zero width", func() *Scene {
			return NewScene(renderer.CameraConfig{Width: 0, Height: 10, FOV: 90})
		}},
		{"fov out of range", func() *Scene {
			return NewScene(renderer.CameraConfig{Width: 10, Height: 10, FOV: 200})
		}},
		{"zero radius", func() *Scene {
			s := NewScene(valid)
			s.AddSphere(core.NewPoint(0, 0, -5), 0, core.NewColor(1, 1, 1), 1)
			return s
		}},
		{"NaN radius", func() *Scene {
			s := NewScene(valid)
			s.AddSphere(core.NewPoint(0, 0, -5), math.NaN(), core.NewColor(1, 1, 1), 1)
			return s
		}},
		{"zero plane normal", func() *Scene {
			s := NewScene(valid)
			s.AddPlane(core.NewPoint(0, -1, 0), core.NewVec3(0, 0, 0), core.NewColor(1, 1, 1), 1)
			return s
		}},
		{"reflectance above one", func() *Scene {
			s := NewScene(valid)
			s.AddSphere(core.NewPoint(0, 0, -5), 1, core.NewColor(1, 1, 1), 1.5)
			return s
		}},
		{"zero light direction", func() *Scene {
			s := NewScene(valid)
			s.AddDirectionalLight(core.NewVec3(0, 0, 0), core.NewColor(1, 1, 1), 1)
			return s
		}},
		{"negative intensity", func() *Scene {
			s := NewScene(valid)
			s.AddDirectionalLight(core.NewVec3(0, -1, 0), core.NewColor(1, 1, 1), -1)
			return s
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if !errors.Is(err, core.ErrDegenerateGeometry) {
				t.Errorf("Expected ErrDegenerateGeometry, got %v", err)
			}
		})
	}
}

func TestScene_ShapesKeepDeclarationOrder(t *testing.T) {
	s := NewScene(renderer.DefaultCameraConfig())
	s.AddPlane(core.NewPoint(0, -1, 0), core.NewVec3(0, 1, 0), core.NewColor(1, 1, 1), 1)
	s.AddSphere(core.NewPoint(0, 0, -5), 1, core.NewColor(1, 0, 0), 1)

	shapes := s.GetShapes()
	if _, ok := shapes[0].(*geometry.Plane); !ok {
		t.Errorf("Expected plane first, got %T", shapes[0])
	}
	if _, ok := shapes[1].(*geometry.Sphere); !ok {
		t.Errorf("Expected sphere second, got %T", shapes[1])
	}
}

func TestListJSONScenes(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListJSONScenes(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 json scenes, got %d", len(scenes))
	}
	if scenes[0].Name != "a" || scenes[1].Name != "b" {
		t.Errorf("Expected [a b], got [%s %s]", scenes[0].Name, scenes[1].Name)
	}
	if scenes[0].Type != "json" || scenes[0].FilePath != filepath.Join(dir, "a.json") {
		t.Errorf("Unexpected scene info %+v", scenes[0])
	}

	missing, err := ListJSONScenes(filepath.Join(dir, "missing"))
	if err != nil || len(missing) != 0 {
		t.Errorf("Expected empty list for missing directory, got %v, %v", missing, err)
	}
}

func TestListJSONScenes_StatErrorIsReturned(t *testing.T) {
	// A regular file used as a path component fails with ENOTDIR, not ErrNotExist
	file := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(file, []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	scenes, err := ListJSONScenes(filepath.Join(file, "scenes"))
	if err == nil {
		t.Fatalf("Expected stat error, got %v", scenes)
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a non-ErrNotExist error, got %v", err)
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := renderer.CameraConfig{Width: 800, Height: 600, FOV: 90}

	tests := []struct {
		name     string
		override renderer.CameraConfig
		expected renderer.CameraConfig
	}{
		{"empty override keeps base", renderer.CameraConfig{}, base},
		{"size only", renderer.CameraConfig{Width: 64, Height: 48}, renderer.CameraConfig{Width: 64, Height: 48, FOV: 90}},
		{"fov and position", renderer.CameraConfig{FOV: 45, Position: core.NewPoint(0, 1, 2)},
			renderer.CameraConfig{Width: 800, Height: 600, FOV: 45, Position: core.NewPoint(0, 1, 2)}},
		{"negative fields are ignored", renderer.CameraConfig{Width: -1, FOV: -30}, base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeCameraConfig(base, tt.override); got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestIsBuiltin(t *testing.T) {
	for _, info := range ListScenes() {
		if !IsBuiltin(info.Name) {
			t.Errorf("Expected %q to be built in", info.Name)
		}
	}
	if IsBuiltin("room") {
		t.Error("Expected room not to be built in")
	}
}
