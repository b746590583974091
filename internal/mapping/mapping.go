// Package mapping converts between widget-local pointer coordinates and the
// color component each picker widget controls.
//
// Every mapping is a pure function of the pointer coordinate and the track
// rectangle, paired with an inverse used to place the thumb. Pointer
// coordinates outside the track are clamped, never rejected.
package mapping

import (
	"math"

	"github.com/ironsheep/hsv-picker-mcp/internal/geom"
	"github.com/ironsheep/hsv-picker-mcp/internal/hsv"
)

// XToHue maps a horizontal pointer position to a hue in [0,360].
//
//	hue = (x - left) * 360 / width
func XToHue(x float64, track geom.Rect) float64 {
	w := track.Width()
	if w <= 0 {
		return 0
	}
	h := (x - track.Left) * 360 / w
	if h < 0 {
		return 0
	}
	if h > 360 {
		return 360
	}
	return h
}

// HueToX is the inverse of XToHue.
func HueToX(hue float64, track geom.Rect) float64 {
	return track.Left + hue*track.Width()/360
}

// XToAlpha maps a horizontal pointer position to an alpha value.
//
// A pointer left of the track maps to 0. A pointer right of the track is
// clamped to the track's pixel width before scaling, not to 255; the result
// is still limited to a byte.
func XToAlpha(x float64, track geom.Rect) uint8 {
	w := track.Width()
	if w <= 0 {
		return 0
	}
	switch {
	case x < track.Left:
		x = 0
	case x > track.Right:
		x = w
	default:
		x -= track.Left
	}
	a := math.Round(x * hsv.MaxAlpha / w)
	if a < 0 {
		return 0
	}
	if a > hsv.MaxAlpha {
		return hsv.MaxAlpha
	}
	return uint8(a)
}

// AlphaToX is the inverse of XToAlpha.
func AlphaToX(alpha uint8, track geom.Rect) float64 {
	return track.Left + float64(alpha)*track.Width()/hsv.MaxAlpha
}

// PointToSatVal maps a pointer position to saturation (x axis) and value
// (y axis, top is 1). The point is clamped into the track first.
func PointToSatVal(p geom.Point, track geom.Rect) (sat, val float64) {
	w, h := track.Width(), track.Height()
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	p = track.Clamp(p)
	sat = (p.X - track.Left) / w
	val = 1 - (p.Y-track.Top)/h
	return sat, val
}

// SatValToPoint is the inverse of PointToSatVal.
func SatValToPoint(sat, val float64, track geom.Rect) geom.Point {
	return geom.Point{
		X: sat*track.Width() + track.Left,
		Y: (1-val)*track.Height() + track.Top,
	}
}
