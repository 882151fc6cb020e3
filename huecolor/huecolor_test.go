package huecolor_test

import (
	"github.com/keep94/gohue"
	"github.com/keep94/huecolormap/colormap"
	"github.com/keep94/huecolormap/huecolor"
	"github.com/keep94/maybe"
	asserts "github.com/stretchr/testify/assert"
	"reflect"
	"testing"
)

var (
	kRed   = colormap.RGB{255, 0, 0}
	kWhite = colormap.RGB{255, 255, 255}
	kScale = huecolor.NewScale(colormap.MustNew(
		[]colormap.RGB{kRed, kWhite}, []float64{15.0, 25.0}))
)

func TestToHueWhite(t *testing.T) {
	assert := asserts.New(t)
	c, bri := huecolor.ToHue(kWhite)
	assert.InDelta(0.3127, c.X(), 0.001)
	assert.InDelta(0.3290, c.Y(), 0.001)
	assert.Equal(uint8(255), bri)
}

func TestToHueRed(t *testing.T) {
	assert := asserts.New(t)
	c, bri := huecolor.ToHue(kRed)
	assert.InDelta(0.64, c.X(), 0.001)
	assert.InDelta(0.33, c.Y(), 0.001)
	assert.Equal(uint8(54), bri)
}

func TestToHueBlack(t *testing.T) {
	_, bri := huecolor.ToHue(colormap.RGB{})
	asserts.Equal(t, uint8(0), bri)
}

func TestScale(t *testing.T) {
	assert := asserts.New(t)
	red, _ := huecolor.ToHue(kRed)
	white, _ := huecolor.ToHue(kWhite)
	assertColorEqual(t, red, kScale.Get(10.0))
	assertColorEqual(t, red, kScale.Get(15.0))
	assertColorEqual(t, white, kScale.Get(25.0))
	assertColorEqual(t, white, kScale.Get(30.0))
	assert.Equal(uint8(54), kScale.Brightness(15.0))
	assert.Equal(uint8(255), kScale.Brightness(25.0))
	middle := kScale.Brightness(20.0)
	assert.True(middle > 54 && middle < 255)
}

func TestScaleColorBrightness(t *testing.T) {
	assert := asserts.New(t)
	red, _ := huecolor.ToHue(kRed)
	c, bri := kScale.ColorBrightness(0.0)
	assert.Equal(gohue.NewMaybeColor(red), c)
	assert.Equal(maybe.NewUint8(54), bri)
	assert.Equal(2, kScale.ColorMap().Len())
}

func assertColorEqual(t *testing.T, expected, actual gohue.Color) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}
