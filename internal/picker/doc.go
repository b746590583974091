// Package picker assembles the hue slider, saturation/value plane and alpha
// slider around one shared color state.
//
// The container relays user changes between widgets without echo: a hue
// drag redraws the sat/val plane and the alpha slider, a sat/val drag
// redraws the alpha slider, and none of those relays reach a widget's
// listener. Programmatic writes from the host or the preview inputs update
// the state once and redraw every widget.
package picker
