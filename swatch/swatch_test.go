package swatch_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/keep94/huecolormap/colormap"
	"github.com/keep94/huecolormap/swatch"
	asserts "github.com/stretchr/testify/assert"
)

var (
	kErrWrite = errors.New("swatch_test: write failed")
	kFive     = colormap.MustNew(
		[]colormap.RGB{
			{50, 110, 150},
			{200, 200, 180},
			{100, 150, 70},
			{60, 90, 55},
			{210, 210, 210},
		},
		[]float64{0.0, 0.01, 0.03, 0.35, 0.6})
)

func TestWrite(t *testing.T) {
	assert := asserts.New(t)
	var buffer bytes.Buffer
	opts := swatch.ForColorMap(kFive, 61, 20)
	if !assert.NoError(swatch.Write(&buffer, kFive, opts)) {
		return
	}
	out := buffer.String()
	assert.True(strings.HasPrefix(out, "<?xml"))
	assert.Equal(61, strings.Count(out, "<rect"))
	assert.Contains(out, "fill:#326e96")
	assert.Contains(out, "fill:#d2d2d2")
	assert.NotContains(out, "<line")
	assert.True(strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestWriteTicks(t *testing.T) {
	assert := asserts.New(t)
	var buffer bytes.Buffer
	opts := swatch.Options{Width: 100, Height: 20, Lo: 0.02, Hi: 0.6, Ticks: true}
	if !assert.NoError(swatch.Write(&buffer, kFive, opts)) {
		return
	}
	out := buffer.String()
	assert.Equal(100, strings.Count(out, "<rect"))
	assert.Equal(3, strings.Count(out, "<line"))
	assert.Contains(out, ">0.35<")
	assert.NotContains(out, ">0.01<")
}

func TestWriteSingleColumn(t *testing.T) {
	var buffer bytes.Buffer
	opts := swatch.Options{Width: 1, Height: 5, Lo: -1.0, Hi: 1.0}
	asserts.NoError(t, swatch.Write(&buffer, kFive, opts))
	asserts.Contains(t, buffer.String(), "fill:#326e96")
}

func TestWriteBadOptions(t *testing.T) {
	assert := asserts.New(t)
	var buffer bytes.Buffer
	assert.Equal(swatch.ErrBadOptions, swatch.Write(
		&buffer, kFive, swatch.Options{Width: 0, Height: 5, Lo: 0, Hi: 1}))
	assert.Equal(swatch.ErrBadOptions, swatch.Write(
		&buffer, kFive, swatch.Options{Width: 5, Height: 5, Lo: 1, Hi: 1}))
	assert.Zero(buffer.Len())
}

func TestWriteError(t *testing.T) {
	err := swatch.Write(
		failingWriter{}, kFive, swatch.ForColorMap(kFive, 10, 10))
	asserts.Equal(t, kErrWrite, err)
}

type failingWriter struct{}

func (f failingWriter) Write(p []byte) (int, error) {
	return 0, kErrWrite
}
