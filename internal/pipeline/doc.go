// Package pipeline wires the graph reader stages together.
//
// A run is one synchronous pass:
//
//  1. Validate the configuration (axis bounds, threshold, window size)
//  2. Load the image as a greyscale grid
//  3. Flag blank columns
//  4. Extract the darkest row of every other column
//  5. Map pixels to axis units and report the per-axis resolution
//  6. Smooth the calibrated y values
//
// Run returns both series without writing anything. Write then renders the
// CSV tables, the charts and the optional trace overlay, in that order. Any
// failure aborts the run; there are no retries and no partial results.
package pipeline
