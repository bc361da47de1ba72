// Package calibration maps pixel positions to chart axis units.
//
// The mapping is linear in each axis and fixed for a run: the image spans
// exactly [XMin, XMax] horizontally and [YMin, YMax] vertically. Image rows
// grow downward while chart y grows upward, so rows are flipped against the
// image height.
package calibration

import (
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/graph-reader/internal/detection"
	"github.com/ironsheep/graph-reader/internal/series"
)

// ErrInvalidAxes is returned for axis bounds that would give a zero,
// negative or non-finite scale.
var ErrInvalidAxes = errors.New("invalid axis bounds")

// Axes are the chart values at the image edges.
type Axes struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// DefaultAxes covers 0-150 on both axes.
func DefaultAxes() Axes {
	return Axes{XMin: 0, XMax: 150, YMin: 0, YMax: 150}
}

// Validate rejects bounds where max <= min or any bound is NaN or infinite.
func (a Axes) Validate() error {
	for _, v := range []float64{a.XMin, a.XMax, a.YMin, a.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: bounds must be finite, got x[%v,%v] y[%v,%v]", ErrInvalidAxes, a.XMin, a.XMax, a.YMin, a.YMax)
		}
	}
	if a.XMax <= a.XMin {
		return fmt.Errorf("%w: x_max (%v) must be greater than x_min (%v)", ErrInvalidAxes, a.XMax, a.XMin)
	}
	if a.YMax <= a.YMin {
		return fmt.Errorf("%w: y_max (%v) must be greater than y_min (%v)", ErrInvalidAxes, a.YMax, a.YMin)
	}
	return nil
}

// Transform converts raw pixel points into calibrated points for one image.
// It holds no mutable state; Apply may be called any number of times.
type Transform struct {
	axes   Axes
	width  int
	height int

	// XScale and YScale are pixels per axis unit.
	XScale float64
	YScale float64
}

// NewTransform builds the pixel to axis mapping for a width x height image.
func NewTransform(axes Axes, width, height int) (*Transform, error) {
	if err := axes.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d", width, height)
	}

	return &Transform{
		axes:   axes,
		width:  width,
		height: height,
		XScale: float64(width) / (axes.XMax - axes.XMin),
		YScale: float64(height) / (axes.YMax - axes.YMin),
	}, nil
}

// Resolution returns the axis units covered by one pixel in x and y. This is
// the quantization step of the digitized curve.
func (t *Transform) Resolution() (x, y float64) {
	return 1 / t.XScale, 1 / t.YScale
}

// Axes returns the bounds the transform was built with.
func (t *Transform) Axes() Axes { return t.axes }

// Point maps a single column and optional row to axis units.
func (t *Transform) Point(col, row int, found bool) series.Point {
	p := series.Point{X: float64(col)/t.XScale + t.axes.XMin}
	if found {
		p.Y = series.Some(float64(t.height-row)/t.YScale + t.axes.YMin)
	}
	return p
}

// Apply maps raw points to calibrated points, preserving order. Every point
// gets an x; y is missing wherever the raw row is missing.
func (t *Transform) Apply(raw []detection.RawPoint) series.Series {
	out := make(series.Series, len(raw))
	for i, p := range raw {
		out[i] = t.Point(p.Col, p.Row, p.Found)
	}
	return out
}
