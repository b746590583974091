package hsv

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxAlpha is the fully opaque alpha value.
const MaxAlpha = 255

// Color is an immutable HSV color with an 8-bit alpha channel.
//
// Equality is by value on the four stored components; two colors that pack
// to the same ARGB integer but differ in hue (for example any hue at zero
// saturation) are different colors.
type Color struct {
	H float64 `json:"hue"`        // Hue: 0-360 degrees
	S float64 `json:"saturation"` // Saturation: 0-1
	V float64 `json:"value"`      // Value: 0-1
	A uint8   `json:"alpha"`      // Alpha: 0-255
}

// New creates a color from explicit components. Hue is clamped into
// [0,360], saturation and value into [0,1].
func New(h, s, v float64, a uint8) Color {
	return Color{H: clamp(h, 0, 360), S: clamp(s, 0, 1), V: clamp(v, 0, 1), A: a}
}

// FromARGB decomposes a packed 0xAARRGGBB integer and converts the RGB part
// to HSV. Every 32-bit value is accepted.
func FromARGB(argb uint32) Color {
	a := uint8(argb >> 24)
	r := uint8(argb >> 16)
	g := uint8(argb >> 8)
	b := uint8(argb)
	return FromRGB(a, r, g, b)
}

// FromRGB converts 8-bit channels to a Color.
func FromRGB(a, r, g, b uint8) Color {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, v := c.Hsv()
	return Color{H: h, S: s, V: v, A: a}
}

// RGB returns the 8-bit red, green and blue channels.
func (c Color) RGB() (r, g, b uint8) {
	return colorful.Hsv(wrapHue(c.H), clamp(c.S, 0, 1), clamp(c.V, 0, 1)).RGB255()
}

// ARGB packs the color into 0xAARRGGBB.
func (c Color) ARGB() uint32 {
	r, g, b := c.RGB()
	return uint32(c.A)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Hex returns the upper-case "AARRGGBB" form, without a leading '#'.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("%02X%02X%02X%02X", c.A, r, g, b)
}

// ARGBBytes returns the channels as [a, r, g, b].
func (c Color) ARGBBytes() [4]uint8 {
	r, g, b := c.RGB()
	return [4]uint8{c.A, r, g, b}
}

// AlphaPercent returns ceil(alpha / 255 * 100), always within [0,100].
func (c Color) AlphaPercent() int {
	return (int(c.A)*100 + MaxAlpha - 1) / MaxAlpha
}

// WithAlpha returns a copy of c with a different alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Opaque returns c with full alpha.
func (c Color) Opaque() Color {
	return c.WithAlpha(MaxAlpha)
}

// Transparent returns c with zero alpha.
func (c Color) Transparent() Color {
	return c.WithAlpha(0)
}

// PureHue returns the fully saturated, full value color at c's hue.
func (c Color) PureHue() Color {
	return Color{H: c.H, S: 1, V: 1, A: MaxAlpha}
}

// RGBA implements image/color.Color with alpha-premultiplied channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	a = uint32(c.A)
	a |= a << 8
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r * a / 0xffff, g * a / 0xffff, b * a / 0xffff, a
}

// NRGBA returns the straight (non-premultiplied) 8-bit form, keeping the
// RGB channels even when alpha is zero.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: c.A}
}

// String returns "#AARRGGBB".
func (c Color) String() string {
	return "#" + c.Hex()
}

// wrapHue maps 360 back onto 0 so the conversion sees a hue in [0,360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
