package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/hsv-picker-mcp/internal/geom"
	"github.com/ironsheep/hsv-picker-mcp/internal/hsv"
)

// Generator produces the cached background raster of one widget kind.
type Generator interface {
	// Raster returns the background for c at size, regenerating it only
	// when the generator's cache key changed. A non-positive size yields nil.
	Raster(c hsv.Color, size geom.Size) *image.RGBA

	// Invalidate drops any cached raster.
	Invalidate()

	// Regenerations counts cache misses.
	Regenerations() int
}

// HueGenerator caches the hue spectrum by pixel size.
type HueGenerator struct {
	cache Cache[geom.Size]
}

// NewHueGenerator creates an empty hue spectrum generator.
func NewHueGenerator() *HueGenerator {
	return &HueGenerator{}
}

// Raster ignores c; the spectrum depends on size only.
func (g *HueGenerator) Raster(_ hsv.Color, size geom.Size) *image.RGBA {
	return g.cache.GetOrRegenerate(size, func() *image.RGBA { return HueSpectrum(size) })
}

// Invalidate drops the cached spectrum.
func (g *HueGenerator) Invalidate() { g.cache.Invalidate() }

// Regenerations counts cache misses.
func (g *HueGenerator) Regenerations() int { return g.cache.Regenerations() }

type satValKey struct {
	hue  float64
	size geom.Size
}

// SatValGenerator caches the saturation/value field by hue and pixel size.
// Saturation, value and alpha changes reuse the cached field.
type SatValGenerator struct {
	cache Cache[satValKey]
}

// NewSatValGenerator creates an empty sat/val field generator.
func NewSatValGenerator() *SatValGenerator {
	return &SatValGenerator{}
}

// Raster returns the field for c's hue.
func (g *SatValGenerator) Raster(c hsv.Color, size geom.Size) *image.RGBA {
	key := satValKey{hue: c.H, size: size}
	return g.cache.GetOrRegenerate(key, func() *image.RGBA { return SatValField(c.H, size) })
}

// Invalidate drops the cached field.
func (g *SatValGenerator) Invalidate() { g.cache.Invalidate() }

// Regenerations counts cache misses.
func (g *SatValGenerator) Regenerations() int { return g.cache.Regenerations() }

type checkerKey struct {
	size geom.Size
	cell int
}

// Checkerboard caches the transparency pattern drawn behind the alpha
// gradient. The pattern is opaque and unfiltered; SetAlpha and
// SetColorFilter are rejected.
type Checkerboard struct {
	cell  int
	cache Cache[checkerKey]
}

// NewCheckerboard creates a checkerboard with square cells of cell pixels.
// Cells smaller than one pixel are raised to one.
func NewCheckerboard(cell int) *Checkerboard {
	if cell < 1 {
		cell = 1
	}
	return &Checkerboard{cell: cell}
}

// Cell returns the cell size in pixels.
func (g *Checkerboard) Cell() int { return g.cell }

// Raster ignores c; the pattern depends on size and cell only.
func (g *Checkerboard) Raster(_ hsv.Color, size geom.Size) *image.RGBA {
	key := checkerKey{size: size, cell: g.cell}
	return g.cache.GetOrRegenerate(key, func() *image.RGBA { return CheckerTile(size, g.cell) })
}

// Invalidate drops the cached pattern.
func (g *Checkerboard) Invalidate() { g.cache.Invalidate() }

// Regenerations counts cache misses.
func (g *Checkerboard) Regenerations() int { return g.cache.Regenerations() }

// SetAlpha always fails: the pattern carries no paint-level opacity.
func (g *Checkerboard) SetAlpha(alpha int) error {
	return fmt.Errorf("checkerboard alpha %d: %w", alpha, ErrUnsupported)
}

// SetColorFilter always fails: the pattern carries no color filter.
func (g *Checkerboard) SetColorFilter(filter color.Model) error {
	return fmt.Errorf("checkerboard color filter: %w", ErrUnsupported)
}
