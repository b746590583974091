// Package hsv provides the color model shared by the picker widgets.
//
// A Color holds hue, saturation, value and alpha. Hue is in degrees (0-360),
// saturation and value are unit fractions (0-1) and alpha is an 8-bit
// channel (0-255). Packed ARGB, the 8-digit hex form and the byte array
// form are derived on demand and never stored.
//
// # Round Trips
//
// Alpha is stored, so it survives any ARGB round trip exactly. RGB channels
// go through HSV and may drift by one step per channel, which is the usual
// 8-bit HSV rounding loss.
//
// # Shared State
//
// State is the live, mutable color owned by the picker container and shared
// by pointer with each widget. Each widget writes only the components it is
// responsible for (hue, saturation and value, or alpha). State serializes its
// writes with a mutex so hosts that drive widgets from several goroutines
// stay consistent.
package hsv
