package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/hsv-picker-mcp/internal/hsv"
)

// RGBAColor holds straight 8-bit channels.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSVColor is the sampled color in picker coordinates.
type HSVColor struct {
	H float64 `json:"h"` // Hue: 0-360 degrees
	S float64 `json:"s"` // Saturation: 0-1
	V float64 `json:"v"` // Value: 0-1
}

// ColorResult is one pixel in the representations the picker uses.
type ColorResult struct {
	Hex  string    `json:"hex"` // "#AARRGGBB"
	RGBA RGBAColor `json:"rgba"`
	HSV  HSVColor  `json:"hsv"`
}

// SampleColor returns the color at (x, y).
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if !(image.Point{X: x, Y: y}).In(bounds) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %v", x, y, bounds)
	}

	n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	c := hsv.FromRGB(n.A, n.R, n.G, n.B)

	return &ColorResult{
		Hex:  c.String(),
		RGBA: RGBAColor{R: n.R, G: n.G, B: n.B, A: n.A},
		HSV:  HSVColor{H: c.H, S: c.S, V: c.V},
	}, nil
}

// LabeledPoint is a pixel coordinate with an optional label.
type LabeledPoint struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

// LabeledColorResult is a sample together with where it was taken.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult holds samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples every point. Any point outside the image fails
// the whole call.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}
