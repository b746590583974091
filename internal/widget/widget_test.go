package widget

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/hsv-picker-mcp/internal/geom"
	"github.com/ironsheep/hsv-picker-mcp/internal/hsv"
)

// recorder is a Surface that remembers what it was asked to draw.
type recorder struct {
	ops       []string
	rasters   []image.Image
	gradients [][2]color.Color
	thumbs    []geom.Point
	captions  []string
	fail      string
}

func (r *recorder) op(name string) error {
	r.ops = append(r.ops, name)
	if r.fail == name {
		return errors.New("boom")
	}
	return nil
}

func (r *recorder) DrawBorder(geom.Rect, float64, color.Color) error { return r.op("border") }

func (r *recorder) DrawRaster(img image.Image, _ geom.Rect, _ float64) error {
	r.rasters = append(r.rasters, img)
	return r.op("raster")
}

func (r *recorder) DrawGradient(_ geom.Rect, from, to color.Color, _ float64) error {
	r.gradients = append(r.gradients, [2]color.Color{from, to})
	return r.op("gradient")
}

func (r *recorder) DrawThumb(center geom.Point, _ float64, _, _ color.Color) error {
	r.thumbs = append(r.thumbs, center)
	return r.op("thumb")
}

func (r *recorder) DrawCaption(text string, _ geom.Point, _ color.Color) error {
	r.captions = append(r.captions, text)
	return r.op("caption")
}

type changes []Change

func (c *changes) listen(ch Change) { *c = append(*c, ch) }

func TestHueDrag(t *testing.T) {
	st := hsv.NewState(hsv.New(0, 1, 1, 255))
	w := NewHue(st, Options{})
	w.Resize(360, 24)

	var got changes
	w.SetListener(got.listen)

	assert.True(t, w.Press(geom.Pt(90, 12)))
	assert.True(t, w.Dragging())
	assert.InDelta(t, 90, st.Snapshot().H, 1e-9)

	assert.True(t, w.Move(geom.Pt(180, 12)))
	assert.True(t, w.Release(geom.Pt(180, 12)))
	assert.False(t, w.Dragging())

	require.Len(t, got, 3)
	for _, ch := range got {
		assert.Equal(t, KindHue, ch.Widget)
		assert.True(t, ch.Origin.IsUser())
		assert.False(t, ch.Initial, "pointer changes are never initial")
	}
	assert.Equal(t, uint32(0xFF00FFFF), got[2].Color.ARGB())
	assert.Equal(t, uint32(0xFF00FFFF), w.ARGB())
}

func TestHuePressOutsideTrackIgnored(t *testing.T) {
	st := hsv.NewState(hsv.New(30, 1, 1, 255))
	w := NewHue(st, Options{})
	w.Resize(360, 24)

	var got changes
	w.SetListener(got.listen)

	assert.False(t, w.Press(geom.Pt(400, 12)))
	assert.False(t, w.Dragging())
	assert.Empty(t, got)
	assert.Equal(t, uint64(0), st.Writes())
}

func TestRejectedPressEndsEarlierSession(t *testing.T) {
	st := hsv.NewState(hsv.New(0, 1, 1, 255))
	w := NewHue(st, Options{Padding: 1})
	w.Resize(360, 24)

	var got changes
	w.SetListener(got.listen)

	require.True(t, w.Press(geom.Pt(90, 12)))
	require.True(t, w.Dragging())

	assert.False(t, w.Press(geom.Pt(0, 12)), "press on the padding is outside the track")
	assert.False(t, w.Dragging())
	assert.False(t, w.Move(geom.Pt(180, 12)))
	assert.False(t, w.Release(geom.Pt(180, 12)))
	assert.Len(t, got, 1)
}

func TestAlphaClamps(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want uint8
	}{
		{"left of track", -10, 0},
		{"right of track", 300, 255},
		{"middle", 127.5, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := hsv.NewState(hsv.New(0, 1, 1, 100))
			w := NewAlpha(st, 4, Options{})
			w.Resize(255, 24)

			var got changes
			w.SetListener(got.listen)

			require.True(t, w.Press(geom.Pt(tt.x, 12)))
			assert.Equal(t, tt.want, st.Snapshot().A)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Color.A)
		})
	}
}

func TestSatValPressAndCache(t *testing.T) {
	st := hsv.NewState(hsv.New(0, 1, 1, 255))
	w := NewSatVal(st, Options{})
	w.Resize(200, 200)

	s := &recorder{}
	drawn, err := w.Draw(s)
	require.NoError(t, err)
	require.True(t, drawn)

	require.True(t, w.Press(geom.Pt(100, 100)))
	c := st.Snapshot()
	assert.InDelta(t, 0.5, c.S, 1e-9)
	assert.InDelta(t, 0.5, c.V, 1e-9)
	assert.Equal(t, 0.0, c.H)
	w.Release(geom.Pt(100, 100))

	drawn, err = w.Draw(s)
	require.NoError(t, err)
	require.True(t, drawn)

	require.Len(t, s.rasters, 2)
	assert.Same(t, s.rasters[0], s.rasters[1], "sat/val changes must reuse the field")
	assert.Equal(t, 1, w.Generator().Regenerations())
}

func TestMoveWhileIdle(t *testing.T) {
	st := hsv.NewState(hsv.New(0, 1, 1, 255))
	w := NewHue(st, Options{})
	w.Resize(360, 24)

	var got changes
	w.SetListener(got.listen)

	assert.False(t, w.Move(geom.Pt(50, 12)))
	assert.False(t, w.Release(geom.Pt(50, 12)))
	assert.Empty(t, got)
	assert.Equal(t, uint64(0), st.Writes())
}

func TestSetColorEchoSuppression(t *testing.T) {
	st := hsv.NewState(hsv.New(0, 1, 1, 255))
	w := NewHue(st, Options{})
	w.Resize(360, 24)

	var got changes
	w.SetListener(got.listen)

	assert.False(t, w.SetColor(hsv.New(120, 1, 1, 255), false))
	assert.Empty(t, got)
	assert.Equal(t, uint64(1), st.Writes())
	assert.True(t, w.NeedsRedraw())

	assert.True(t, w.SetColor(hsv.New(240, 1, 1, 255), true))
	require.Len(t, got, 1)
	assert.False(t, got[0].Origin.IsUser())
	assert.True(t, got[0].Initial)
	assert.Equal(t, uint32(0xFF0000FF), got[0].Color.ARGB())
	assert.Equal(t, uint64(2), st.Writes())
}

func TestSyncDoesNotWrite(t *testing.T) {
	st := hsv.NewState(hsv.New(0, 1, 1, 255))
	w := NewAlpha(st, 4, Options{})
	w.Resize(255, 24)

	var got changes
	w.SetListener(got.listen)

	assert.False(t, w.Sync(Programmatic(false)))
	assert.True(t, w.Sync(Programmatic(true)))
	assert.Len(t, got, 1)
	assert.Equal(t, uint64(0), st.Writes())
}

func TestInvalidResizeEndsSession(t *testing.T) {
	st := hsv.NewState(hsv.New(0, 1, 1, 255))
	w := NewHue(st, Options{})
	w.Resize(360, 24)

	require.True(t, w.Press(geom.Pt(10, 10)))
	w.Resize(0, 24)
	assert.False(t, w.Dragging())
	assert.False(t, w.Move(geom.Pt(20, 10)))

	s := &recorder{}
	drawn, err := w.Draw(s)
	require.NoError(t, err)
	assert.False(t, drawn)
	assert.Empty(t, s.ops)

	assert.False(t, w.Press(geom.Pt(0, 0)))
}

func TestResizeInvalidatesCache(t *testing.T) {
	st := hsv.NewState(hsv.New(0, 1, 1, 255))
	w := NewHue(st, Options{})
	s := &recorder{}

	w.Resize(360, 24)
	_, err := w.Draw(s)
	require.NoError(t, err)
	w.Resize(360, 24)
	_, err = w.Draw(s)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Generator().Regenerations())

	w.Resize(300, 24)
	_, err = w.Draw(s)
	require.NoError(t, err)
	assert.Equal(t, 2, w.Generator().Regenerations())
}

func TestDrawOrder(t *testing.T) {
	st := hsv.NewState(hsv.New(0, 1, 1, 128))
	caption := "50%"
	w := NewAlpha(st, 4, Options{BorderWidth: 1, Padding: 2, Caption: &caption})
	w.Resize(255, 24)

	s := &recorder{}
	drawn, err := w.Draw(s)
	require.NoError(t, err)
	require.True(t, drawn)
	assert.Equal(t, []string{"border", "raster", "gradient", "caption", "thumb"}, s.ops)
	assert.False(t, w.NeedsRedraw())

	require.Len(t, s.gradients, 1)
	from := color.NRGBAModel.Convert(s.gradients[0][0]).(color.NRGBA)
	to := color.NRGBAModel.Convert(s.gradients[0][1]).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 255, A: 0}, from)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, to)
	assert.Equal(t, []string{"50%"}, s.captions)
}

func TestDrawHiddenAndEmptyCaption(t *testing.T) {
	st := hsv.NewState(hsv.New(0, 1, 1, 255))
	empty := ""
	w := NewAlpha(st, 4, Options{Caption: &empty})
	w.Resize(255, 24)

	s := &recorder{}
	_, err := w.Draw(s)
	require.NoError(t, err)
	assert.NotContains(t, s.ops, "caption")

	w.SetHidden(true)
	s = &recorder{}
	drawn, err := w.Draw(s)
	require.NoError(t, err)
	assert.False(t, drawn)
	assert.Empty(t, s.ops)
	assert.False(t, w.Press(geom.Pt(10, 10)))
}

func TestDrawPropagatesSurfaceError(t *testing.T) {
	st := hsv.NewState(hsv.New(0, 1, 1, 255))
	w := NewHue(st, Options{})
	w.Resize(360, 24)

	_, err := w.Draw(&recorder{fail: "thumb"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hue thumb")
	assert.True(t, w.NeedsRedraw())
}

func TestHandle(t *testing.T) {
	st := hsv.NewState(hsv.New(0, 1, 1, 255))
	w := NewHue(st, Options{})
	w.Resize(360, 24)

	changed, err := w.Handle(PointerEvent{Action: ActionPress, X: 60, Y: 5})
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = w.Handle(PointerEvent{Action: ActionRelease, X: 60, Y: 5})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.InDelta(t, 60, st.Snapshot().H, 1e-9)

	_, err = w.Handle(PointerEvent{Action: "scroll"})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("alpha")
	require.NoError(t, err)
	assert.Equal(t, KindAlpha, k)

	_, err = ParseKind("opacity")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestOrigin(t *testing.T) {
	assert.True(t, UserInitiated.ShouldNotify())
	assert.True(t, Programmatic(true).ShouldNotify())
	assert.False(t, Programmatic(false).ShouldNotify())
	assert.Equal(t, "user", UserInitiated.String())
	assert.Equal(t, "programmatic", Programmatic(false).String())
}
