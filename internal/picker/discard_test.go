package picker

import (
	"image"
	"image/color"

	"github.com/ironsheep/hsv-picker-mcp/internal/geom"
)

// discard is a Surface that draws nothing.
type discard struct{}

func (discard) DrawBorder(geom.Rect, float64, color.Color) error               { return nil }
func (discard) DrawRaster(image.Image, geom.Rect, float64) error               { return nil }
func (discard) DrawGradient(geom.Rect, color.Color, color.Color, float64) error { return nil }
func (discard) DrawThumb(geom.Point, float64, color.Color, color.Color) error  { return nil }
func (discard) DrawCaption(string, geom.Point, color.Color) error              { return nil }
