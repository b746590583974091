package widget

import (
	"errors"
	"fmt"

	"github.com/ironsheep/hsv-picker-mcp/internal/geom"
)

// Action is a pointer event type.
type Action string

// Pointer actions.
const (
	ActionPress   Action = "press"
	ActionMove    Action = "move"
	ActionRelease Action = "release"
)

// ErrUnknownAction is returned by Handle for unrecognized actions.
var ErrUnknownAction = errors.New("unknown pointer action")

// PointerEvent is a single-pointer input event in widget-local coordinates.
type PointerEvent struct {
	Action Action  `json:"action"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Handle dispatches ev to Press, Move or Release. It reports whether the
// event changed the color.
func (w *Widget) Handle(ev PointerEvent) (bool, error) {
	p := geom.Pt(ev.X, ev.Y)
	switch ev.Action {
	case ActionPress:
		return w.Press(p), nil
	case ActionMove:
		return w.Move(p), nil
	case ActionRelease:
		return w.Release(p), nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownAction, ev.Action)
}

// Dragging reports whether a drag session is active.
func (w *Widget) Dragging() bool { return w.session != nil }

// Press opens a drag session when the press is accepted by the widget's
// strategy and applies the mapping at p. Only one pointer is tracked, so any
// earlier unreleased session ends here even when p is rejected.
func (w *Widget) Press(p geom.Point) bool {
	w.session = nil
	if w.opts.Hidden || !w.Valid() || !w.mapper.Accepts(p, w.track) {
		return false
	}
	w.session = &session{origin: p}
	w.apply(p)
	return true
}

// Move re-applies the mapping during a drag. Without a session it is a
// no-op.
func (w *Widget) Move(p geom.Point) bool {
	if w.session == nil {
		return false
	}
	w.apply(p)
	return true
}

// Release applies the mapping one last time and ends the session. Without
// a session it is a no-op.
func (w *Widget) Release(p geom.Point) bool {
	if w.session == nil {
		return false
	}
	w.apply(p)
	w.session = nil
	return true
}

func (w *Widget) apply(p geom.Point) {
	c := w.mapper.Apply(w.state, p, w.track)
	w.dirty = true
	w.broadcaster.Publish(Change{Widget: w.kind, Color: c, Origin: UserInitiated})
}
