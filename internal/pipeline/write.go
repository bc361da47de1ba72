package pipeline

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/graph-reader/internal/detection"
	"github.com/ironsheep/graph-reader/internal/imaging"
	"github.com/ironsheep/graph-reader/internal/output"
)

// artifact is a rendered output file waiting to be written.
type artifact struct {
	path string
	data []byte
}

// Write renders every output of res and writes them to the paths in cfg.
//
// All artifacts are rendered in memory first, so a rendering failure leaves
// no output files behind.
func Write(res *Result, cfg Config, logger *log.Logger) error {
	artifacts, err := render(res, cfg)
	if err != nil {
		return err
	}

	logger.Printf("Exporting")
	for _, a := range artifacts {
		if err := os.WriteFile(a.path, a.data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", a.path, err)
		}
		logger.Printf("Wrote %s (%d bytes)", a.path, len(a.data))
	}
	logger.Printf("Done")
	return nil
}

func render(res *Result, cfg Config) ([]artifact, error) {
	var artifacts []artifact

	rawCSV, err := output.EncodeCSV(res.Raw)
	if err != nil {
		return nil, err
	}
	smoothedCSV, err := output.EncodeCSV(res.Smoothed)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts,
		artifact{cfg.OutputFilename, rawCSV},
		artifact{output.SmoothedName(cfg.OutputFilename), smoothedCSV},
	)

	if cfg.ChartFilename != "" {
		data, err := output.RenderChart(res.Raw, output.ChartOptions{Axes: cfg.Axes})
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact{cfg.ChartFilename, data})
	}
	if cfg.SmoothedChartFilename != "" {
		data, err := output.RenderChart(res.Smoothed, output.ChartOptions{Axes: cfg.Axes})
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact{cfg.SmoothedChartFilename, data})
	}

	if cfg.TraceFilename != "" {
		if res.Source == nil {
			return nil, fmt.Errorf("trace requested but no source image is available")
		}
		data, err := imaging.EncodeTrace(res.Source, detection.Trace(res.Points), cfg.TraceColor)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact{cfg.TraceFilename, data})
	}

	return artifacts, nil
}
