// Package colormap maps scalar values to colors by linear interpolation
// between control points.
package colormap

import (
	"errors"
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	"strconv"
	"strings"
)

var (
	// Reported by New when there are no control points.
	ErrEmpty = errors.New("colormap: No control points.")

	// Reported by New when colors and props differ in length.
	ErrLengthMismatch = errors.New("colormap: Colors and props differ in length.")

	// Reported by Parse and ParseHex for malformed input.
	ErrBadFormat = errors.New("colormap: Bad format.")
)

// RGB is a color with 8 bits per channel: red, green, blue in that order.
type RGB [3]uint8

// ParseHex parses a color of the form "#rrggbb".
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

// MustParseHex works like ParseHex except that it panics on bad input.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns this color as "#rrggbb".
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// Colorful returns this color as a go-colorful color.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c[0]) / 255.0,
		G: float64(c[1]) / 255.0,
		B: float64(c[2]) / 255.0,
	}
}

// ColorMap represents an immutable color map. ColorMap instances are safe
// to use with multiple goroutines.
type ColorMap struct {
	colors []RGB
	props  []float64
}

// New returns a new color map. colors[i] is the color at props[i].
// props must be sorted in ascending order. New does not check this; an
// unsorted props gives meaningless, but in-range, colors. New copies both
// slices.
func New(colors []RGB, props []float64) (*ColorMap, error) {
	if len(props) == 0 {
		return nil, ErrEmpty
	}
	if len(colors) != len(props) {
		return nil, ErrLengthMismatch
	}
	return &ColorMap{
		colors: append([]RGB(nil), colors...),
		props:  append([]float64(nil), props...),
	}, nil
}

// MustNew works like New except that it panics on error.
func MustNew(colors []RGB, props []float64) *ColorMap {
	m, err := New(colors, props)
	if err != nil {
		panic(err)
	}
	return m
}

// Parse parses the output of String.
func Parse(s string) (*ColorMap, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}
	parts := strings.Split(s, ",")
	colors := make([]RGB, len(parts))
	props := make([]float64, len(parts))
	for i := range parts {
		pair := strings.SplitN(strings.TrimSpace(parts[i]), ":", 2)
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrBadFormat, parts[i])
		}
		prop, err := strconv.ParseFloat(pair[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadFormat, parts[i])
		}
		color, err := ParseHex(pair[1])
		if err != nil {
			return nil, err
		}
		props[i] = prop
		colors[i] = color
	}
	return New(colors, props)
}

// MustParse works like Parse except that it panics on error.
func MustParse(s string) *ColorMap {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns this color map as comma separated prop:color pairs,
// for example "0:#326e96,0.01:#c8c8b4"
func (m *ColorMap) String() string {
	parts := make([]string, len(m.props))
	for i := range m.props {
		parts[i] = strconv.FormatFloat(m.props[i], 'g', -1, 64) + ":" +
			m.colors[i].Hex()
	}
	return strings.Join(parts, ",")
}

// Len returns the number of control points.
func (m *ColorMap) Len() int {
	return len(m.props)
}

// At returns the ith control point.
func (m *ColorMap) At(i int) (prop float64, color RGB) {
	return m.props[i], m.colors[i]
}

// Min returns the prop of the first control point.
func (m *ColorMap) Min() float64 {
	return m.props[0]
}

// Max returns the prop of the last control point.
func (m *ColorMap) Max() float64 {
	return m.props[len(m.props)-1]
}

// Color converts prop to a color. Color returns the first color for
// props at or below the first control point and the last color for
// props at or above the last control point. In between, Color
// interpolates linearly between the two surrounding control points.
// Channels are truncated, not rounded. A NaN prop between the first and
// last control points yields the first color.
func (m *ColorMap) Color(prop float64) RGB {
	a, b := bracket(m.props, prop)
	if a == b {
		return m.colors[a]
	}
	t := (prop - m.props[a]) / (m.props[b] - m.props[a])
	return lerp(m.colors[a], m.colors[b], clamp(t, 0.0, 1.0))
}

// bracket returns the indexes of the control points surrounding target.
// Both are the same at either end of props.
func bracket(props []float64, target float64) (int, int) {
	last := len(props) - 1
	if target <= props[0] {
		return 0, 0
	}
	if target >= props[last] {
		return last, last
	}
	idx := 1
	for i := range props {
		if target < props[i] {
			idx = i
			break
		}
	}
	return idx - 1, idx
}

// lerp blends c1 and c2. t is between 0 and 1.
func lerp(c1, c2 RGB, t float64) RGB {
	var result RGB
	for k := range result {
		// Explicit conversion prevents a fused multiply-add.
		delta := float64((float64(c2[k]) - float64(c1[k])) * t)
		result[k] = uint8(float64(c1[k]) + delta)
	}
	return result
}

// clamp maps NaN to lo.
func clamp(x, lo, hi float64) float64 {
	if !(x >= lo) {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
