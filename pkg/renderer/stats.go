package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-lambert-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	HitPixels   int           // Pixels whose primary ray hit a primitive
	MissPixels  int           // Pixels shaded with the background color
	Elapsed     time.Duration // Wall time of the pass
}

// AddPixel records the outcome of one primary ray
func (s *RenderStats) AddPixel(isHit bool) {
	if isHit {
		s.HitPixels++
	} else {
		s.MissPixels++
	}
}

// Coverage returns the fraction of pixels that hit geometry
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
