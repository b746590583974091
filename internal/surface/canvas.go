// Package surface rasterizes picker widgets onto a gogpu/gg drawing context.
package surface

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/hsv-picker-mcp/internal/geom"
)

// thumbFill is the outer disc of every thumb.
var thumbFill = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Canvas is a software drawing surface for one widget.
type Canvas struct {
	dc   *gg.Context
	face font.Face
}

// New creates a transparent canvas of width x height pixels.
func New(width, height int) *Canvas {
	return &Canvas{
		dc:   gg.NewContext(width, height),
		face: basicfont.Face7x13,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Image flushes pending drawing and returns the rendered pixels.
func (c *Canvas) Image() (image.Image, error) {
	if err := c.dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("flush canvas: %w", err)
	}
	return c.dc.Image(), nil
}

// EncodePNG flushes pending drawing and writes the rendered pixels as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.FlushGPU(); err != nil {
		return fmt.Errorf("flush canvas: %w", err)
	}
	return c.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

// DrawBorder fills r with col.
func (c *Canvas) DrawBorder(r geom.Rect, radius float64, col color.Color) error {
	c.path(r, radius)
	c.dc.SetFillBrush(gg.Solid(straight(col)))
	return c.dc.Fill()
}

// DrawRaster scales img into dst, clipped to dst's rounded outline.
func (c *Canvas) DrawRaster(img image.Image, dst geom.Rect, radius float64) error {
	c.dc.Push()
	defer c.dc.Pop()

	c.path(dst, radius)
	c.dc.Clip()
	c.dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:             dst.Left,
		Y:             dst.Top,
		DstWidth:      dst.Width(),
		DstHeight:     dst.Height(),
		Interpolation: gg.InterpNearest,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

// DrawGradient fills dst left to right from one color to another.
func (c *Canvas) DrawGradient(dst geom.Rect, from, to color.Color, radius float64) error {
	grad := gg.NewLinearGradientBrush(dst.Left, dst.Top, dst.Right, dst.Top).
		AddColorStop(0, straight(from)).
		AddColorStop(1, straight(to))

	c.path(dst, radius)
	c.dc.SetFillBrush(grad)
	return c.dc.Fill()
}

// DrawThumb draws a white disc outlined with ring and a half-size disc
// filled with inner.
func (c *Canvas) DrawThumb(center geom.Point, radius float64, ring, inner color.Color) error {
	if radius <= 0 {
		return nil
	}

	c.dc.DrawCircle(center.X, center.Y, radius)
	c.dc.SetFillBrush(gg.Solid(straight(thumbFill)))
	if err := c.dc.Fill(); err != nil {
		return err
	}

	c.dc.DrawCircle(center.X, center.Y, radius)
	c.dc.SetStrokeBrush(gg.Solid(straight(ring)))
	c.dc.SetLineWidth(1)
	if err := c.dc.Stroke(); err != nil {
		return err
	}

	c.dc.DrawCircle(center.X, center.Y, radius/2)
	c.dc.SetFillBrush(gg.Solid(straight(inner)))
	return c.dc.Fill()
}

// DrawCaption draws text in the 7x13 bitmap face centered on center.
func (c *Canvas) DrawCaption(text string, center geom.Point, col color.Color) error {
	if text == "" {
		return nil
	}
	m := c.face.Metrics()
	w := font.MeasureString(c.face, text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}

	label := image.NewNRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  label,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(text)

	c.dc.DrawImageEx(gg.ImageBufFromImage(label), gg.DrawImageOptions{
		X:             center.X - float64(w)/2,
		Y:             center.Y - float64(h)/2,
		Interpolation: gg.InterpNearest,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

func (c *Canvas) path(r geom.Rect, radius float64) {
	if radius > 0 {
		c.dc.DrawRoundedRectangle(r.Left, r.Top, r.Width(), r.Height(), radius)
		return
	}
	c.dc.DrawRectangle(r.Left, r.Top, r.Width(), r.Height())
}

// straight converts col to gg's non-premultiplied float color. gg.FromColor
// keeps premultiplied channels, which loses the RGB of transparent stops.
func straight(col color.Color) gg.RGBA {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return gg.RGBA2(float64(n.R)/255, float64(n.G)/255, float64(n.B)/255, float64(n.A)/255)
}
