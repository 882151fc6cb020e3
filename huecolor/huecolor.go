// Package huecolor converts color maps to colors for hue lights.
package huecolor

import (
	"github.com/keep94/gohue"
	"github.com/keep94/huecolormap/colormap"
	"github.com/keep94/maybe"
)

// ToHue converts an RGB color to a hue light color and brightness.
// The brightness is the luminance of c scaled to 0-255.
func ToHue(c colormap.RGB) (gohue.Color, uint8) {
	x, y, luminance := c.Colorful().Xyy()
	return gohue.NewColor(x, y), toByte(luminance)
}

// Scale represents an immutable color scale for hue lights.
type Scale struct {
	m *colormap.ColorMap
}

// NewScale returns a new Scale backed by m.
func NewScale(m *colormap.ColorMap) *Scale {
	return &Scale{m: m}
}

// ColorMap returns the color map backing this instance.
func (s *Scale) ColorMap() *colormap.ColorMap {
	return s.m
}

// Get converts x to a hue light color.
func (s *Scale) Get(x float64) gohue.Color {
	c, _ := ToHue(s.m.Color(x))
	return c
}

// Brightness converts x to a hue light brightness.
func (s *Scale) Brightness(x float64) uint8 {
	_, bri := ToHue(s.m.Color(x))
	return bri
}

// ColorBrightness converts x to both color and brightness.
func (s *Scale) ColorBrightness(x float64) (gohue.MaybeColor, maybe.Uint8) {
	c, bri := ToHue(s.m.Color(x))
	return gohue.NewMaybeColor(c), maybe.NewUint8(bri)
}

func toByte(x float64) uint8 {
	if x <= 0.0 {
		return 0
	}
	if x >= 1.0 {
		return 255
	}
	return uint8(x*255.0 + 0.5)
}
