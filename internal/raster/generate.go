package raster

import (
	"errors"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blend"

	"github.com/ironsheep/hsv-picker-mcp/internal/geom"
	"github.com/ironsheep/hsv-picker-mcp/internal/hsv"
)

// ErrUnsupported is returned for paint-level mutations a raster cannot honor.
var ErrUnsupported = errors.New("operation not supported")

// Checkerboard colors.
var (
	CheckerLight = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	CheckerDark  = color.RGBA{R: 0xCB, G: 0xCB, B: 0xCB, A: 0xFF}
)

// HueSpectrum renders hue 0..360 at full saturation and value. The spectrum
// runs along X when the raster is wider than tall, otherwise along Y.
// It returns nil for a non-positive size.
func HueSpectrum(size geom.Size) *image.RGBA {
	if !size.Valid() {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))

	if size.W > size.H {
		for x := 0; x < size.W; x++ {
			c := spectrumColor(x, size.W)
			for y := 0; y < size.H; y++ {
				img.SetRGBA(x, y, c)
			}
		}
		return img
	}

	for y := 0; y < size.H; y++ {
		c := spectrumColor(y, size.H)
		for x := 0; x < size.W; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func spectrumColor(step, steps int) color.RGBA {
	h := float64(step) * 360 / float64(steps)
	r, g, b := hsv.New(h, 1, 1, hsv.MaxAlpha).RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// SatValField renders the saturation/value plane for one hue: a horizontal
// white to pure-hue gradient multiplied by a vertical white to black one.
// It returns nil for a non-positive size.
func SatValField(hue float64, size geom.Size) *image.RGBA {
	if !size.Valid() {
		return nil
	}
	r, g, b := hsv.New(hue, 1, 1, hsv.MaxAlpha).RGB()
	pure := color.RGBA{R: r, G: g, B: b, A: 0xFF}

	sat := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	for x := 0; x < size.W; x++ {
		c := lerp(CheckerLight, pure, gradientPos(x, size.W))
		for y := 0; y < size.H; y++ {
			sat.SetRGBA(x, y, c)
		}
	}

	val := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	black := color.RGBA{A: 0xFF}
	for y := 0; y < size.H; y++ {
		c := lerp(CheckerLight, black, gradientPos(y, size.H))
		for x := 0; x < size.W; x++ {
			val.SetRGBA(x, y, c)
		}
	}

	return blend.Multiply(val, sat)
}

// gradientPos places pixel i of n on [0,1] so the first and last pixels hit
// the gradient's end colors exactly.
func gradientPos(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func lerp(from, to color.RGBA, t float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}

// CheckerTile renders alternating light and dark squares of cell pixels,
// starting light at the top-left. It returns nil for a non-positive size or
// cell.
func CheckerTile(size geom.Size, cell int) *image.RGBA {
	if !size.Valid() || cell <= 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, CheckerLight)
			} else {
				img.SetRGBA(x, y, CheckerDark)
			}
		}
	}
	return img
}
