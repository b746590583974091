// Package imaging reads and encodes the rasters produced by rendering picker
// widgets.
//
// Coordinates are 0-based with the origin at the top-left of the rendered
// widget. Regions are half-open: (X1,Y1) is inclusive, (X2,Y2) exclusive.
//
// Sampled colors are reported un-premultiplied, so a half transparent red
// thumb reads back as red with alpha 128 rather than as dark red.
package imaging
