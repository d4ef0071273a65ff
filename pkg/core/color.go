package core

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Color is a linear RGB triple. Channels are nominally in [0,1] but are
// never clamped here; shading may overshoot in either direction.
type Color struct {
	R, G, B float32
}

// NewColor creates a new Color
func NewColor(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the background color returned for rays that hit nothing
var Black = Color{0, 0, 0}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	s := float32(scalar)
	return Color{c.R * s, c.G * s, c.B * s}
}

// ToRGBA converts the color to an opaque 8-bit display color.
// Each channel is rounded from c*255 and saturated into [0,255]; NaN maps to 0.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: channelToByte(c.R),
		G: channelToByte(c.G),
		B: channelToByte(c.B),
		A: 255,
	}
}

func channelToByte(v float32) uint8 {
	if math32.IsNaN(v) {
		return 0
	}
	scaled := math32.Floor(v*255 + 0.5)
	return uint8(max(0, min(255, scaled)))
}
