package widget

import (
	"github.com/ironsheep/hsv-picker-mcp/internal/hsv"
)

// Origin tags a color mutation with where it came from.
type Origin struct {
	programmatic bool
	notify       bool
}

// UserInitiated marks changes produced by pointer input on the widget.
var UserInitiated = Origin{}

// Programmatic marks changes pushed in by the owning container. notify
// selects whether the widget's listener hears about them.
func Programmatic(notify bool) Origin {
	return Origin{programmatic: true, notify: notify}
}

// IsUser reports whether the change came from pointer input.
func (o Origin) IsUser() bool { return !o.programmatic }

// ShouldNotify reports whether the listener must be invoked.
func (o Origin) ShouldNotify() bool { return !o.programmatic || o.notify }

func (o Origin) String() string {
	switch {
	case !o.programmatic:
		return "user"
	case o.notify:
		return "programmatic(notify)"
	default:
		return "programmatic"
	}
}

// Change is delivered to a widget's listener. Color is always a complete
// snapshot of the shared state, never a single component.
type Change struct {
	Widget  Kind
	Color   hsv.Color
	Origin  Origin
	Initial bool // pushed by SetColor with notify; pointer input never sets it
}

// Listener receives changes from one widget.
type Listener func(Change)

// Broadcaster holds the single listener of a widget and filters changes by
// their Origin.
type Broadcaster struct {
	listener Listener
}

// SetListener replaces the listener. nil removes it.
func (b *Broadcaster) SetListener(l Listener) {
	b.listener = l
}

// Publish delivers ch if its origin requires notification. It reports
// whether the listener was invoked.
func (b *Broadcaster) Publish(ch Change) bool {
	if b.listener == nil || !ch.Origin.ShouldNotify() {
		return false
	}
	b.listener(ch)
	return true
}
