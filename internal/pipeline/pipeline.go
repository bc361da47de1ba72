package pipeline

import (
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/graph-reader/internal/calibration"
	"github.com/ironsheep/graph-reader/internal/detection"
	"github.com/ironsheep/graph-reader/internal/imaging"
	"github.com/ironsheep/graph-reader/internal/series"
)

// Resolution is the size of one pixel in axis units.
type Resolution struct {
	X float64
	Y float64
}

// Result is everything a run produces before anything is written.
type Result struct {
	Width  int
	Height int

	// Blank is the number of columns with no detected line.
	Blank int

	// Points are the per-column pixel positions, in column order.
	Points []detection.RawPoint

	Raw      series.Series
	Smoothed series.Series

	Resolution Resolution

	// Source is the decoded input image, kept for the trace overlay.
	Source image.Image
}

// Run validates cfg, loads the input image and digitizes it.
func Run(cfg Config, logger *log.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Printf("Reading graph %s", cfg.InputFilename)
	decoded, err := imaging.LoadGrid(cfg.InputFilename, cfg.PlotArea)
	if err != nil {
		return nil, err
	}

	res, err := Digitize(decoded.Grid, cfg, logger)
	if err != nil {
		return nil, err
	}
	res.Source = decoded.Source
	return res, nil
}

// Digitize runs classification, extraction, normalization and smoothing over
// an already loaded grid.
func Digitize(grid *imaging.Grid, cfg Config, logger *log.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transform, err := calibration.NewTransform(cfg.Axes, grid.Width(), grid.Height())
	if err != nil {
		return nil, fmt.Errorf("failed to calibrate %dx%d image: %w", grid.Width(), grid.Height(), err)
	}

	logger.Printf("Finding columns without a line")
	blank := detection.BlankColumns(grid, cfg.WhiteThreshold)
	blankCount := detection.CountBlank(blank)
	if blankCount == len(blank) {
		logger.Printf("No line found in any column; every y value will be missing")
	}

	logger.Printf("Finding line")
	points, err := detection.ExtractLine(grid, blank)
	if err != nil {
		return nil, err
	}

	logger.Printf("Normalizing")
	raw := transform.Apply(points)
	rx, ry := transform.Resolution()
	logger.Printf("x-resolution = %1.3f", rx)
	logger.Printf("y-resolution = %1.3f", ry)

	logger.Printf("Smoothing (window %d)", cfg.WindowSize)
	smoothed, err := series.Smooth(raw, cfg.WindowSize)
	if err != nil {
		return nil, err
	}

	logger.Printf("Digitized %d columns, %d blank", len(points), blankCount)

	return &Result{
		Width:      grid.Width(),
		Height:     grid.Height(),
		Blank:      blankCount,
		Points:     points,
		Raw:        raw,
		Smoothed:   smoothed,
		Resolution: Resolution{X: rx, Y: ry},
	}, nil
}
