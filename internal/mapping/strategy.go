package mapping

import (
	"github.com/ironsheep/hsv-picker-mcp/internal/geom"
	"github.com/ironsheep/hsv-picker-mcp/internal/hsv"
)

// Mapper is the per-widget coordinate strategy.
type Mapper interface {
	// Accepts reports whether a press at origin opens a drag session.
	Accepts(origin geom.Point, track geom.Rect) bool

	// Apply maps p onto the components this widget owns and writes only
	// those components into st. It returns the resulting color.
	Apply(st *hsv.State, p geom.Point, track geom.Rect) hsv.Color

	// Thumb returns where the position indicator is drawn for c.
	Thumb(c hsv.Color, track geom.Rect) geom.Point
}

// Hue drives the hue component from a horizontal track.
type Hue struct{}

// Accepts requires the press to start inside the track.
func (Hue) Accepts(origin geom.Point, track geom.Rect) bool {
	return track.Contains(origin)
}

// Apply writes the hue.
func (Hue) Apply(st *hsv.State, p geom.Point, track geom.Rect) hsv.Color {
	return st.SetHue(XToHue(p.X, track))
}

// Thumb places the indicator on the track's horizontal center line.
func (Hue) Thumb(c hsv.Color, track geom.Rect) geom.Point {
	return geom.Point{X: HueToX(c.H, track), Y: track.Center().Y}
}

// Alpha drives the alpha component from a horizontal track.
type Alpha struct{}

// Accepts takes any press; the alpha slider clamps rather than hit-tests.
func (Alpha) Accepts(geom.Point, geom.Rect) bool {
	return true
}

// Apply writes the alpha.
func (Alpha) Apply(st *hsv.State, p geom.Point, track geom.Rect) hsv.Color {
	return st.SetAlpha(XToAlpha(p.X, track))
}

// Thumb places the indicator on the track's horizontal center line.
func (Alpha) Thumb(c hsv.Color, track geom.Rect) geom.Point {
	return geom.Point{X: AlphaToX(c.A, track), Y: track.Center().Y}
}

// SatVal drives saturation and value from a 2-D plane.
type SatVal struct{}

// Accepts requires the press to start inside the plane.
func (SatVal) Accepts(origin geom.Point, track geom.Rect) bool {
	return track.Contains(origin)
}

// Apply writes saturation and value.
func (SatVal) Apply(st *hsv.State, p geom.Point, track geom.Rect) hsv.Color {
	s, v := PointToSatVal(p, track)
	return st.SetSatVal(s, v)
}

// Thumb returns the point that maps back to c's saturation and value.
func (SatVal) Thumb(c hsv.Color, track geom.Rect) geom.Point {
	return SatValToPoint(c.S, c.V, track)
}
