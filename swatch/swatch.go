// Package swatch renders color maps as SVG color bars.
package swatch

import (
	"errors"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/keep94/huecolormap/colormap"
)

const (
	kLabelHeight = 16
	kTickLength  = 4
)

var (
	// Reported by Write when Options are invalid.
	ErrBadOptions = errors.New("swatch: Bad options.")
)

// Options controls how Write renders a color bar.
type Options struct {
	// Width and height of the color bar in pixels
	Width  int
	Height int

	// The range of values the color bar spans from left to right
	Lo float64
	Hi float64

	// If true, marks each control point within range below the bar.
	Ticks bool
}

// ForColorMap returns Options spanning all control points of m.
func ForColorMap(m *colormap.ColorMap, width, height int) Options {
	return Options{Width: width, Height: height, Lo: m.Min(), Hi: m.Max()}
}

// Write writes m to w as an SVG document.
func Write(w io.Writer, m *colormap.ColorMap, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 || !(opts.Hi > opts.Lo) {
		return ErrBadOptions
	}
	ew := &errWriter{w: w}
	height := opts.Height
	if opts.Ticks {
		height += kLabelHeight
	}
	canvas := svg.New(ew)
	canvas.Start(opts.Width, height)
	for i := 0; i < opts.Width; i++ {
		c := m.Color(opts.at(i))
		canvas.Rect(i, 0, 1, opts.Height, "fill:"+c.Hex())
	}
	if opts.Ticks {
		for i := 0; i < m.Len(); i++ {
			prop, _ := m.At(i)
			if prop < opts.Lo || prop > opts.Hi {
				continue
			}
			x := opts.column(prop)
			canvas.Line(
				x, opts.Height, x, opts.Height+kTickLength,
				"stroke:black")
			canvas.Text(
				x, height-2, strconv.FormatFloat(prop, 'g', -1, 64),
				"font-size:10px;text-anchor:middle")
		}
	}
	canvas.End()
	return ew.err
}

// at returns the value at column i.
func (o *Options) at(i int) float64 {
	if i == 0 {
		return o.Lo
	}
	if i == o.Width-1 {
		return o.Hi
	}
	return o.Lo + (o.Hi-o.Lo)*float64(i)/float64(o.Width-1)
}

// column returns the column nearest x.
func (o *Options) column(x float64) int {
	return int(math.Round((x - o.Lo) / (o.Hi - o.Lo) * float64(o.Width-1)))
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
