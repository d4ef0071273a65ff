package scene

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-lambert-raytracer/pkg/renderer"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to scene file (json type only)
}

type builtinScene struct {
	description string
	create      func(cameraOverrides ...renderer.CameraConfig) *Scene
}

var builtinScenes = map[string]builtinScene{
	"default":    {"Two spheres over a ground plane", NewDefaultScene},
	"plane":      {"Sphere on a tilted floor with two colored lights", NewPlaneScene},
	"spheregrid": {"Grid of spheres with varying hue and reflectance", NewSphereGridScene},
}

// NewByName creates a built-in scene by name
func NewByName(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene type: %q", name)
	}
	return builtin.create(cameraOverrides...), nil
}

// IsBuiltin reports whether name is a built-in scene
func IsBuiltin(name string) bool {
	_, ok := builtinScenes[name]
	return ok
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for name, builtin := range builtinScenes {
		scenes = append(scenes, SceneInfo{
			ID:          "builtin:" + name,
			Name:        name,
			Description: builtin.description,
			Type:        "builtin",
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// ListJSONScenes scans dir for *.json scene files.
// A missing directory yields an empty list.
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []SceneInfo{}, nil
		}
		return nil, fmt.Errorf("failed to stat scenes directory: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		scenes = append(scenes, SceneInfo{
			ID:       "json:" + name,
			Name:     name,
			Type:     "json",
			FilePath: filePath,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}
