// Package geom holds the small amount of 2-D geometry the picker needs:
// widget-local points and the rectangles pointer input is mapped against.
//
// Coordinates are floating point with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward, matching pointer events.
package geom

import "math"

// Point is a widget-local coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle. Left and Top are inclusive, Right and
// Bottom are the far edges.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// XYWH builds a rectangle from its origin and size.
func XYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Valid reports whether the rectangle has a positive area.
func (r Rect) Valid() bool {
	return r.Width() > 0 && r.Height() > 0
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Inset shrinks the rectangle by d on every side. Negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{Left: r.Left + d, Top: r.Top + d, Right: r.Right - d, Bottom: r.Bottom - d}
}

// Clamp moves p to the nearest point inside r.
func (r Rect) Clamp(p Point) Point {
	return Point{
		X: math.Min(math.Max(p.X, r.Left), r.Right),
		Y: math.Min(math.Max(p.Y, r.Top), r.Bottom),
	}
}

// Size is an integer pixel size. It is the cache key for every raster that
// depends only on widget dimensions.
type Size struct {
	W int `json:"width"`
	H int `json:"height"`
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}

// SizeOf truncates a rectangle's dimensions to whole pixels.
func SizeOf(r Rect) Size {
	return Size{W: int(r.Width()), H: int(r.Height())}
}
