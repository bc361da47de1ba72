package output

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ironsheep/graph-reader/internal/calibration"
	"github.com/ironsheep/graph-reader/internal/series"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ChartOptions controls chart rendering.
type ChartOptions struct {
	Title string
	Axes  calibration.Axes

	// Width and Height of the rendered image. Zero values use 8x6 inches.
	Width  vg.Length
	Height vg.Length
}

// Segments splits s into runs of consecutive present points. Missing samples
// end a run so the chart shows a gap instead of bridging it.
func Segments(s series.Series) []plotter.XYs {
	var segs []plotter.XYs
	var cur plotter.XYs
	for _, p := range s {
		y, ok := p.Y.Get()
		if !ok {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: p.X, Y: y})
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

// RenderChart draws s as a line plot and returns it as PNG bytes. The axes
// are pinned to opts.Axes regardless of the data range.
func RenderChart(s series.Series, opts ChartOptions) ([]byte, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	for i, seg := range Segments(s) {
		line, err := plotter.NewLine(seg)
		if err != nil {
			return nil, fmt.Errorf("failed to create line segment %d: %w", i, err)
		}
		line.Width = vg.Points(1)
		line.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
		p.Add(line)
	}

	p.X.Min, p.X.Max = opts.Axes.XMin, opts.Axes.XMax
	p.Y.Min, p.Y.Max = opts.Axes.YMin, opts.Axes.YMax

	width, height := opts.Width, opts.Height
	if width == 0 {
		width = 8 * vg.Inch
	}
	if height == 0 {
		height = 6 * vg.Inch
	}

	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create chart writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}
