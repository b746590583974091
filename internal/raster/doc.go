// Package raster generates and memoizes the per-pixel backgrounds drawn by
// the picker widgets.
//
// Three rasters are produced:
//   - HueSpectrum: every hue from 0 to 360 at full saturation and value,
//     laid out along the longer axis of the track.
//   - SatValField: saturation across X (white to pure hue) multiplied by
//     value down Y (white to black) for one hue.
//   - Checkerboard: alternating light and dark cells used behind the alpha
//     gradient to show transparency.
//
// # Caching
//
// Each generator owns a Cache keyed by the parameters that affect its
// raster. A cached raster is reused only while the key matches the key it
// was generated with; any mismatch regenerates it synchronously on the next
// lookup. The sat/val field is keyed by hue and pixel size only, so
// scrubbing the value axis never regenerates it.
//
// Rounded corners are not baked into any raster. The consuming draw call
// clips to the rounded shape.
//
// # Thread Safety
//
// Caches and generators are not safe for concurrent use. They belong to a
// single widget and are driven from the goroutine that owns it.
package raster
