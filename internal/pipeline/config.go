package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/graph-reader/internal/calibration"
	"github.com/ironsheep/graph-reader/internal/imaging"
	"github.com/ironsheep/graph-reader/internal/series"
)

// ErrConfig wraps every configuration validation failure.
var ErrConfig = errors.New("invalid configuration")

// Config holds the fixed inputs of a run.
type Config struct {
	// InputFilename is the chart image to digitize.
	InputFilename string `json:"input_filename"`

	// OutputFilename is the raw CSV table. The smoothed table is written next
	// to it with output.SmoothedSuffix appended.
	OutputFilename string `json:"output_filename"`

	// ChartFilename and SmoothedChartFilename are the rendered line plots.
	// An empty name skips that chart.
	ChartFilename         string `json:"chart_filename"`
	SmoothedChartFilename string `json:"smoothed_chart_filename"`

	// TraceFilename, when set, receives the source image with the detected
	// line painted over it in TraceColor.
	TraceFilename string `json:"trace_filename"`
	TraceColor    string `json:"trace_color"`

	// WhiteThreshold is the greyscale level (0-255) above which a column's
	// darkest pixel is treated as paper, not ink.
	WhiteThreshold float64 `json:"white_threshold"`

	// WindowSize is the centered moving average window.
	WindowSize int `json:"window_size"`

	// Axes are the chart values at the edges of the plot area.
	Axes calibration.Axes `json:"axes"`

	// PlotArea restricts processing to a pixel rectangle of the input. The
	// zero value uses the whole image.
	PlotArea imaging.Region `json:"plot_area"`
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		InputFilename:         "graph.png",
		OutputFilename:        "graph_values.csv",
		ChartFilename:         "Output_Graph.png",
		SmoothedChartFilename: "Output_Graph_Smoothed.png",
		TraceColor:            "#FF0000",
		WhiteThreshold:        100,
		WindowSize:            series.DefaultWindow,
		Axes:                  calibration.DefaultAxes(),
	}
}

// Validate checks the configuration before any file is touched.
func (c Config) Validate() error {
	if c.InputFilename == "" {
		return fmt.Errorf("%w: input filename is empty", ErrConfig)
	}
	if c.OutputFilename == "" {
		return fmt.Errorf("%w: output filename is empty", ErrConfig)
	}
	if math.IsNaN(c.WhiteThreshold) || c.WhiteThreshold < 0 || c.WhiteThreshold > 255 {
		return fmt.Errorf("%w: white threshold %v outside [0,255]", ErrConfig, c.WhiteThreshold)
	}
	if c.WindowSize < 1 {
		return fmt.Errorf("%w: window size must be at least 1, got %d", ErrConfig, c.WindowSize)
	}
	if err := c.PlotArea.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := c.Axes.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}
