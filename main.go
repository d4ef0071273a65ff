package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fogleman/gg"

	"github.com/df07/go-lambert-raytracer/pkg/loaders"
	"github.com/df07/go-lambert-raytracer/pkg/renderer"
	"github.com/df07/go-lambert-raytracer/pkg/scene"
)

// scenesDir holds JSON scene files that can be selected by name
var scenesDir = "scenes"

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Built-in scene name or path to a .json scene file")
	width := flag.Int("width", 0, "Override image width in pixels")
	height := flag.Int("height", 0, "Override image height in pixels")
	fov := flag.Float64("fov", 0, "Override field of view in degrees")
	output := flag.String("output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Lambert Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-10s - %s\n", info.Name, info.Description)
		}
		if jsonScenes, err := scene.ListJSONScenes(scenesDir); err == nil {
			for _, info := range jsonScenes {
				fmt.Printf("  %-10s - %s\n", info.Name, info.FilePath)
			}
		}
		return
	}

	overrides := renderer.CameraConfig{Width: *width, Height: *height, FOV: *fov}
	selectedScene, err := createScene(*sceneType, overrides)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error creating raytracer: %v\n", err)
		os.Exit(1)
	}

	img, stats := raytracer.RenderPass()
	fmt.Printf("Coverage: %.1f%% of %d pixels\n", stats.Coverage()*100, stats.TotalPixels)

	filename := outputPath(*output, *sceneType, time.Now())
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	if err := gg.SavePNG(filename, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds a built-in scene by name or loads a JSON scene file,
// given either as a path or as the name of a file in scenesDir.
// Camera overrides apply to both; the result is validated.
func createScene(sceneType string, overrides renderer.CameraConfig) (*scene.Scene, error) {
	path, err := resolveScenePath(sceneType)
	if err != nil {
		return nil, err
	}

	if path != "" {
		s, err := loaders.LoadSceneJSON(path)
		if err != nil {
			return nil, err
		}
		s.CameraConfig = scene.MergeCameraConfig(s.CameraConfig, overrides)
		if err := s.Validate(); err != nil {
			return nil, err
		}
		return s, nil
	}

	s, err := scene.NewByName(sceneType, overrides)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// resolveScenePath returns the JSON file to load for sceneType, or "" for a built-in.
// Built-in names take precedence over discovered files.
func resolveScenePath(sceneType string) (string, error) {
	if strings.HasSuffix(sceneType, ".json") {
		return sceneType, nil
	}
	if scene.IsBuiltin(sceneType) {
		return "", nil
	}

	jsonScenes, err := scene.ListJSONScenes(scenesDir)
	if err != nil {
		return "", err
	}
	for _, info := range jsonScenes {
		if info.Name == sceneType {
			return info.FilePath, nil
		}
	}
	return "", nil
}

// outputPath returns the explicit path if set, otherwise a timestamped path per scene
func outputPath(explicit, sceneType string, now time.Time) string {
	if explicit != "" {
		return explicit
	}
	name := strings.TrimSuffix(filepath.Base(sceneType), filepath.Ext(sceneType))
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", timestamp))
}
