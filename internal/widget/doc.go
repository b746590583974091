// Package widget implements the three picker widgets as one generic type.
//
// A Widget pairs a coordinate strategy (mapping.Mapper) with a background
// generator (raster.Generator) and shares a single *hsv.State with its
// siblings. Pointer input runs through a two-state controller:
//
//	Idle --press inside track--> Dragging
//	Dragging --move--> Dragging     (pointer clamped, session kept)
//	Dragging --release--> Idle      (final apply, session cleared)
//
// Moves and releases that arrive while Idle are ignored.
//
// # Change Propagation
//
// Every mutation is tagged with an Origin. User-initiated changes always
// reach the widget's listener. Programmatic changes reach it only when the
// caller asked for notification, so a container relaying a value between
// widgets with Programmatic(false) never produces an echo.
//
// # Drawing
//
// Draw paints through a Surface. A widget without a positive size skips
// drawing entirely; the first draw after it gets a valid size regenerates
// its background.
package widget
