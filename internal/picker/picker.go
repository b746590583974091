package picker

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/hsv-picker-mcp/internal/config"
	"github.com/ironsheep/hsv-picker-mcp/internal/hsv"
	"github.com/ironsheep/hsv-picker-mcp/internal/logger"
	"github.com/ironsheep/hsv-picker-mcp/internal/surface"
	"github.com/ironsheep/hsv-picker-mcp/internal/widget"
)

// Errors returned by the picker.
var (
	ErrUnknownWidget = errors.New("unknown widget")
	ErrOutOfRange    = errors.New("value out of range")
)

// Picker owns the shared color state and its three widgets.
//
// A Picker is not safe for concurrent use.
type Picker struct {
	state   *hsv.State
	widgets map[widget.Kind]*widget.Widget
	log     *logger.Logger

	onHue    func(hsv.Color)
	onSatVal func(hsv.Color, bool)
	onAlpha  func(hsv.Color)
	onChange func(widget.Change)
}

// New builds a picker from cfg. log may be nil.
func New(cfg config.PickerConfig, log *logger.Logger) *Picker {
	p := &Picker{
		state:   hsv.NewState(cfg.Initial()),
		widgets: make(map[widget.Kind]*widget.Widget, len(widget.Kinds)),
		log:     log,
	}

	opts := widget.Options{
		TrackColor:  cfg.Track(),
		BorderColor: cfg.Border(),
		BorderWidth: float64(cfg.Px(cfg.BorderWidthDP)),
		Padding:     float64(cfg.Px(cfg.PaddingDP)),
		Rounded:     cfg.Rounded,
		ThumbRadius: float64(cfg.Px(cfg.ThumbRadiusDP)),
	}

	hue := widget.NewHue(p.state, opts)
	hue.Resize(cfg.Hue.Width, cfg.Hue.Height)

	planeOpts := opts
	planeOpts.Rounded = false
	satval := widget.NewSatVal(p.state, planeOpts)
	satval.Resize(cfg.SatVal.Width, cfg.SatVal.Height)

	alphaOpts := opts
	alphaOpts.Hidden = !cfg.AlphaPanelVisible
	alphaOpts.Caption = cfg.AlphaCaption
	alpha := widget.NewAlpha(p.state, cfg.Px(cfg.CheckerCellDP), alphaOpts)
	alpha.Resize(cfg.Alpha.Width, cfg.Alpha.Height)

	p.widgets[widget.KindHue] = hue
	p.widgets[widget.KindSatVal] = satval
	p.widgets[widget.KindAlpha] = alpha

	hue.SetListener(p.hueChanged)
	satval.SetListener(p.satValChanged)
	alpha.SetListener(p.alphaChanged)
	return p
}

// syncOthers redraws every widget but from. Each thumb is filled with the
// full color, so any change dirties all three.
func (p *Picker) syncOthers(from widget.Kind) {
	for _, kind := range widget.Kinds {
		if kind != from {
			p.widgets[kind].Sync(widget.Programmatic(false))
		}
	}
}

func (p *Picker) hueChanged(ch widget.Change) {
	p.syncOthers(widget.KindHue)
	if p.onHue != nil {
		p.onHue(ch.Color)
	}
	p.emit(ch)
}

func (p *Picker) satValChanged(ch widget.Change) {
	p.syncOthers(widget.KindSatVal)
	if p.onSatVal != nil {
		p.onSatVal(ch.Color, ch.Initial)
	}
	p.emit(ch)
}

func (p *Picker) alphaChanged(ch widget.Change) {
	p.syncOthers(widget.KindAlpha)
	if p.onAlpha != nil {
		p.onAlpha(ch.Color)
	}
	p.emit(ch)
}

func (p *Picker) emit(ch widget.Change) {
	p.log.WithFields(map[string]any{
		"widget": string(ch.Widget),
		"origin": ch.Origin.String(),
		"color":  ch.Color.String(),
	}).Debug("color changed")
	if p.onChange != nil {
		p.onChange(ch)
	}
}

// OnHueChanged registers the hue listener, replacing any previous one.
func (p *Picker) OnHueChanged(fn func(hsv.Color)) { p.onHue = fn }

// OnSaturationValueChanged registers the sat/val listener. initial is true
// only when the plane's SetColor ran with notify; touch input reports false.
func (p *Picker) OnSaturationValueChanged(fn func(c hsv.Color, initial bool)) { p.onSatVal = fn }

// OnAlphaChanged registers the alpha listener.
func (p *Picker) OnAlphaChanged(fn func(hsv.Color)) { p.onAlpha = fn }

// OnChange registers an observer of every notified change. Changes written
// by SetColor carry an empty Widget.
func (p *Picker) OnChange(fn func(widget.Change)) { p.onChange = fn }

// Color returns the current color.
func (p *Picker) Color() hsv.Color { return p.state.Snapshot() }

// State exposes the shared state.
func (p *Picker) State() *hsv.State { return p.state }

// Widget returns the widget of the given kind.
func (p *Picker) Widget(kind widget.Kind) (*widget.Widget, error) {
	w, ok := p.widgets[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, kind)
	}
	return w, nil
}

// SetColor writes c into the shared state once and redraws every widget
// without invoking their listeners. When notify is true the OnChange
// observer runs once. It reports whether the observer ran.
func (p *Picker) SetColor(c hsv.Color, notify bool) bool {
	c = p.state.Set(c)
	for _, kind := range widget.Kinds {
		p.widgets[kind].Sync(widget.Programmatic(false))
	}
	if !notify {
		return false
	}
	p.emit(widget.Change{Color: c, Origin: widget.Programmatic(true), Initial: true})
	return p.onChange != nil
}

// SetARGB is SetColor for a packed 0xAARRGGBB value.
func (p *Picker) SetARGB(argb uint32, notify bool) bool {
	return p.SetColor(hsv.FromARGB(argb), notify)
}

// Pointer feeds a pointer event to one widget.
func (p *Picker) Pointer(kind widget.Kind, ev widget.PointerEvent) (bool, error) {
	w, err := p.Widget(kind)
	if err != nil {
		return false, err
	}
	return w.Handle(ev)
}

// Resize changes one widget's pixel size.
func (p *Picker) Resize(kind widget.Kind, width, height int) error {
	w, err := p.Widget(kind)
	if err != nil {
		return err
	}
	w.Resize(width, height)
	return nil
}

// SetAlphaVisible shows or hides the alpha slider.
func (p *Picker) SetAlphaVisible(visible bool) {
	p.widgets[widget.KindAlpha].SetHidden(!visible)
}

// SetAlphaCaption replaces the text drawn over the alpha slider.
func (p *Picker) SetAlphaCaption(text *string) {
	p.widgets[widget.KindAlpha].SetCaption(text)
}

// Render draws one widget onto a fresh canvas. drawn is false when the
// widget is hidden or its layout is invalid; img is nil in that case.
func (p *Picker) Render(kind widget.Kind) (img image.Image, drawn bool, err error) {
	w, err := p.Widget(kind)
	if err != nil {
		return nil, false, err
	}
	size := w.Size()
	if w.Hidden() || !size.Valid() {
		return nil, false, nil
	}

	canvas := surface.New(size.W, size.H)
	defer canvas.Close()

	drawn, err = w.Draw(canvas)
	if err != nil || !drawn {
		return nil, false, err
	}
	img, err = canvas.Image()
	if err != nil {
		return nil, false, fmt.Errorf("render %s: %w", kind, err)
	}
	return img, true, nil
}

// Snapshot captures the state a host needs to recreate the picker.
func (p *Picker) Snapshot() hsv.Snapshot {
	c := p.state.Snapshot()
	alpha := p.widgets[widget.KindAlpha]
	return hsv.Snapshot{
		Alpha:             int(c.A),
		Hue:               c.H,
		Sat:               c.S,
		Val:               c.V,
		AlphaPanelVisible: !alpha.Hidden(),
		AlphaCaptionText:  alpha.Caption(),
	}
}

// Restore applies a snapshot without notifying any listener.
func (p *Picker) Restore(s hsv.Snapshot) {
	alpha := p.widgets[widget.KindAlpha]
	alpha.SetHidden(!s.AlphaPanelVisible)
	alpha.SetCaption(s.AlphaCaptionText)
	p.SetColor(s.Color(), false)
}

// Fields is the text shown by the preview editor.
type Fields struct {
	Hex          string `json:"hex"`
	Red          int    `json:"red"`
	Green        int    `json:"green"`
	Blue         int    `json:"blue"`
	AlphaPercent int    `json:"alpha_percent"`
}

// Fields returns the preview editor contents for the current color.
func (p *Picker) Fields() Fields {
	c := p.state.Snapshot()
	r, g, b := c.RGB()
	return Fields{
		Hex:          "#" + c.Hex(),
		Red:          int(r),
		Green:        int(g),
		Blue:         int(b),
		AlphaPercent: c.AlphaPercent(),
	}
}

// SetHex applies a color typed into the hex field.
func (p *Picker) SetHex(s string) error {
	c, err := hsv.ParseHex(s)
	if err != nil {
		return err
	}
	p.SetColor(c, true)
	return nil
}

// SetRGB applies the red, green and blue fields, keeping the current alpha.
func (p *Picker) SetRGB(r, g, b int) error {
	for name, v := range map[string]int{"red": r, "green": g, "blue": b} {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: %s %d not in [0,255]", ErrOutOfRange, name, v)
		}
	}
	cur := p.state.Snapshot()
	p.SetColor(hsv.FromRGB(cur.A, uint8(r), uint8(g), uint8(b)), true)
	return nil
}

// SetAlphaPercent applies the alpha field, a percentage in [0,100].
func (p *Picker) SetAlphaPercent(pct int) error {
	if pct < 0 || pct > 100 {
		return fmt.Errorf("%w: alpha %d%% not in [0,100]", ErrOutOfRange, pct)
	}
	a := uint8(math.Round(float64(pct) / 100 * hsv.MaxAlpha))
	p.SetColor(p.state.Snapshot().WithAlpha(a), true)
	return nil
}
