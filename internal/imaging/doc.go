// Package imaging loads chart images and turns them into greyscale intensity
// grids for line extraction.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - Column: horizontal position (0 = leftmost pixel)
//   - Row: vertical position (0 = topmost pixel)
//
// Note that rows grow downward while chart y values grow upward; the flip is
// handled by the calibration package, not here.
//
// # Intensity Scale
//
// Grid values are luminance on the 0-255 scale, lower is darker. A grid is
// never modified after construction and is safe to share between goroutines.
//
// # Error Handling
//
// LoadGrid returns an error when the file is missing or cannot be decoded.
// Callers treat that as fatal: nothing downstream can run without a grid.
//
// # Trace Overlay
//
// TraceOverlay draws the extracted line back on top of the source image, which
// is the quickest way to check that the whiteness threshold picked up the
// curve and not an axis or gridline.
package imaging
