package widget

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/hsv-picker-mcp/internal/geom"
	"github.com/ironsheep/hsv-picker-mcp/internal/hsv"
	"github.com/ironsheep/hsv-picker-mcp/internal/mapping"
	"github.com/ironsheep/hsv-picker-mcp/internal/raster"
)

// Kind names a widget.
type Kind string

// Widget kinds.
const (
	KindHue    Kind = "hue"
	KindSatVal Kind = "satval"
	KindAlpha  Kind = "alpha"
)

// Kinds lists every widget kind in drawing order.
var Kinds = []Kind{KindSatVal, KindHue, KindAlpha}

// ErrUnknownKind is returned by ParseKind for unrecognized names.
var ErrUnknownKind = errors.New("unknown widget kind")

// ParseKind converts a name such as "hue" into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindHue, KindSatVal, KindAlpha:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Surface is the drawing capability a widget paints through.
type Surface interface {
	// DrawBorder fills r with c, rounding corners by radius.
	DrawBorder(r geom.Rect, radius float64, c color.Color) error

	// DrawRaster scales img into dst, clipped to a rounded rectangle.
	DrawRaster(img image.Image, dst geom.Rect, radius float64) error

	// DrawGradient fills dst with a horizontal gradient from one color to
	// another, clipped to a rounded rectangle.
	DrawGradient(dst geom.Rect, from, to color.Color, radius float64) error

	// DrawThumb draws the position indicator: a white disc of radius
	// outlined with ring, and a disc of half that radius filled with inner.
	DrawThumb(center geom.Point, radius float64, ring, inner color.Color) error

	// DrawCaption draws text centered on center.
	DrawCaption(text string, center geom.Point, c color.Color) error
}

// Overlay paints on top of a widget's cached background at draw time.
type Overlay interface {
	Paint(s Surface, c hsv.Color, track geom.Rect, radius float64) error
}

// Default colors.
var (
	DefaultTrackColor   color.Color = color.NRGBA{R: 0xBD, G: 0xBD, B: 0xBD, A: 0xFF}
	DefaultBorderColor  color.Color = color.NRGBA{R: 0x6E, G: 0x6E, B: 0x6E, A: 0xFF}
	DefaultCaptionColor color.Color = color.NRGBA{R: 0x1C, G: 0x1C, B: 0x1C, A: 0xFF}
)

// Options configures a widget's appearance. The zero value is usable.
type Options struct {
	TrackColor   color.Color // thumb outline
	BorderColor  color.Color
	CaptionColor color.Color
	BorderWidth  float64 // pixels drawn outside the track
	Padding      float64 // inset of the track from the widget bounds
	Rounded      bool    // round track corners by half the track height
	ThumbRadius  float64 // 0 selects half the track height
	Hidden       bool    // hidden widgets neither draw nor accept input
	Caption      *string // text drawn over the track; nil or empty draws nothing
}

func (o Options) withDefaults() Options {
	if o.TrackColor == nil {
		o.TrackColor = DefaultTrackColor
	}
	if o.BorderColor == nil {
		o.BorderColor = DefaultBorderColor
	}
	if o.CaptionColor == nil {
		o.CaptionColor = DefaultCaptionColor
	}
	return o
}

type session struct {
	origin geom.Point
}

// Widget is one picker surface: hue slider, sat/val plane or alpha slider.
//
// A Widget is not safe for concurrent use; drive it from one goroutine.
// The shared *hsv.State may be shared with widgets on other goroutines.
type Widget struct {
	kind    Kind
	mapper  mapping.Mapper
	gen     raster.Generator
	overlay Overlay
	state   *hsv.State
	opts    Options

	size    geom.Size
	track   geom.Rect
	session *session
	dirty   bool

	broadcaster Broadcaster
}

// New assembles a widget from its strategies. overlay may be nil.
func New(kind Kind, st *hsv.State, mapper mapping.Mapper, gen raster.Generator, overlay Overlay, opts Options) *Widget {
	return &Widget{
		kind:    kind,
		mapper:  mapper,
		gen:     gen,
		overlay: overlay,
		state:   st,
		opts:    opts.withDefaults(),
		dirty:   true,
	}
}

// NewHue creates a hue slider.
func NewHue(st *hsv.State, opts Options) *Widget {
	return New(KindHue, st, mapping.Hue{}, raster.NewHueGenerator(), nil, opts)
}

// NewSatVal creates a saturation/value plane.
func NewSatVal(st *hsv.State, opts Options) *Widget {
	return New(KindSatVal, st, mapping.SatVal{}, raster.NewSatValGenerator(), nil, opts)
}

// NewAlpha creates an alpha slider whose checkerboard uses cells of cell
// pixels.
func NewAlpha(st *hsv.State, cell int, opts Options) *Widget {
	return New(KindAlpha, st, mapping.Alpha{}, raster.NewCheckerboard(cell), alphaGradient{}, opts)
}

// Kind returns the widget kind.
func (w *Widget) Kind() Kind { return w.kind }

// Generator exposes the background generator.
func (w *Widget) Generator() raster.Generator { return w.gen }

// Resize applies a new pixel size. The background cache is dropped when the
// size changes. A non-positive size makes the layout invalid, which
// discards any drag session and suppresses drawing until a valid size
// arrives.
func (w *Widget) Resize(width, height int) {
	size := geom.Size{W: width, H: height}
	if size != w.size {
		w.gen.Invalidate()
	}
	w.size = size
	w.track = geom.XYWH(0, 0, float64(width), float64(height)).Inset(w.opts.Padding)
	if !w.Valid() {
		w.session = nil
	}
	w.dirty = true
}

// Size returns the current pixel size.
func (w *Widget) Size() geom.Size { return w.size }

// Track returns the interactive rectangle.
func (w *Widget) Track() geom.Rect { return w.track }

// Valid reports whether the widget has a drawable, interactive layout.
func (w *Widget) Valid() bool {
	return w.size.Valid() && w.track.Valid()
}

// Hidden reports whether the widget is hidden.
func (w *Widget) Hidden() bool { return w.opts.Hidden }

// SetHidden shows or hides the widget. Hiding ends any drag session.
func (w *Widget) SetHidden(hidden bool) {
	w.opts.Hidden = hidden
	if hidden {
		w.session = nil
	}
	w.dirty = true
}

// Caption returns the caption text, or nil.
func (w *Widget) Caption() *string { return w.opts.Caption }

// SetCaption replaces the caption text.
func (w *Widget) SetCaption(text *string) {
	w.opts.Caption = text
	w.dirty = true
}

// SetListener registers the widget's single listener, replacing any
// previous one.
func (w *Widget) SetListener(l Listener) {
	w.broadcaster.SetListener(l)
}

// Color returns the current shared color.
func (w *Widget) Color() hsv.Color { return w.state.Snapshot() }

// ARGB returns the current shared color packed as 0xAARRGGBB.
func (w *Widget) ARGB() uint32 { return w.Color().ARGB() }

// SetColor writes c into the shared state and redraws. The listener is
// invoked only when notify is true, with Initial set. It reports whether
// the listener ran.
func (w *Widget) SetColor(c hsv.Color, notify bool) bool {
	c = w.state.Set(c)
	w.dirty = true
	return w.broadcaster.Publish(Change{Widget: w.kind, Color: c, Origin: Programmatic(notify), Initial: notify})
}

// Sync redraws after a sibling changed the shared state. Nothing is
// written. The listener runs only if origin requires notification.
func (w *Widget) Sync(origin Origin) bool {
	w.dirty = true
	return w.broadcaster.Publish(Change{Widget: w.kind, Color: w.state.Snapshot(), Origin: origin})
}

// NeedsRedraw reports whether anything changed since the last Draw.
func (w *Widget) NeedsRedraw() bool { return w.dirty }

// Thumb returns the indicator position for the current color.
func (w *Widget) Thumb() geom.Point {
	return w.mapper.Thumb(w.state.Snapshot(), w.track)
}

func (w *Widget) radius() float64 {
	if !w.opts.Rounded {
		return 0
	}
	return w.track.Height() / 2
}

func (w *Widget) thumbRadius() float64 {
	if w.opts.ThumbRadius > 0 {
		return w.opts.ThumbRadius
	}
	return w.track.Height() / 2
}

// Draw paints the widget. It reports false without touching s when the
// widget is hidden or its layout is invalid.
func (w *Widget) Draw(s Surface) (bool, error) {
	if w.opts.Hidden || !w.Valid() {
		return false, nil
	}

	c := w.state.Snapshot()
	radius := w.radius()

	if w.opts.BorderWidth > 0 {
		border := w.track.Inset(-w.opts.BorderWidth)
		if err := s.DrawBorder(border, radius+w.opts.BorderWidth, w.opts.BorderColor); err != nil {
			return false, fmt.Errorf("%s border: %w", w.kind, err)
		}
	}

	bg := w.gen.Raster(c, geom.SizeOf(w.track))
	if bg == nil {
		return false, nil
	}
	if err := s.DrawRaster(bg, w.track, radius); err != nil {
		return false, fmt.Errorf("%s background: %w", w.kind, err)
	}

	if w.overlay != nil {
		if err := w.overlay.Paint(s, c, w.track, radius); err != nil {
			return false, fmt.Errorf("%s overlay: %w", w.kind, err)
		}
	}

	if w.opts.Caption != nil && *w.opts.Caption != "" {
		if err := s.DrawCaption(*w.opts.Caption, w.track.Center(), w.opts.CaptionColor); err != nil {
			return false, fmt.Errorf("%s caption: %w", w.kind, err)
		}
	}

	if err := s.DrawThumb(w.mapper.Thumb(c, w.track), w.thumbRadius(), w.opts.TrackColor, c.NRGBA()); err != nil {
		return false, fmt.Errorf("%s thumb: %w", w.kind, err)
	}

	w.dirty = false
	return true, nil
}

// alphaGradient draws the current color from fully transparent to fully
// opaque over the checkerboard.
type alphaGradient struct{}

func (alphaGradient) Paint(s Surface, c hsv.Color, track geom.Rect, radius float64) error {
	return s.DrawGradient(track, c.Transparent().NRGBA(), c.Opaque().NRGBA(), radius)
}
