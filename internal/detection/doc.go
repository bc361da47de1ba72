// Package detection finds a single plotted line in a greyscale intensity grid.
//
// Detection is column-wise. Each column is handled on its own:
//
//  1. Classification: a column whose darkest pixel is brighter than the
//     whiteness threshold has no line and is flagged blank.
//  2. Extraction: in every other column the line is the darkest pixel,
//     taking the topmost one when several share the minimum.
//
// Blank columns still produce a RawPoint so the output keeps one entry per
// column; their row is reported as missing rather than as zero.
//
// # Limitations
//
// Only one curve per image is supported. Gridlines, axes or legend text that
// are darker than the curve will be picked up instead of it, so crop or
// lighten them before running detection.
package detection
