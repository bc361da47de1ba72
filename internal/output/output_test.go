package output

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/ironsheep/graph-reader/internal/calibration"
	"github.com/ironsheep/graph-reader/internal/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func sample() series.Series {
	return series.Series{
		{X: 0, Y: series.Some(1.5)},
		{X: 1, Y: series.Some(2)},
		{X: 2, Y: series.Missing()},
		{X: 3, Y: series.Some(-0.25)},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample()))

	want := "x,y\n0,1.5\n1,2\n2,\n3,-0.25\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_Empty(t *testing.T) {
	data, err := EncodeCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "x,y\n", string(data))
}

func TestSmoothedName(t *testing.T) {
	assert.Equal(t, "graph_values.csv_smoothed", SmoothedName("graph_values.csv"))
	assert.Equal(t, "out/a.csv_smoothed", SmoothedName("out/a.csv"))
}

func TestSegments(t *testing.T) {
	segs := Segments(sample())
	want := []plotter.XYs{
		{{X: 0, Y: 1.5}, {X: 1, Y: 2}},
		{{X: 3, Y: -0.25}},
	}
	assert.Equal(t, want, segs)

	assert.Empty(t, Segments(series.Series{{X: 0}, {X: 1}}))
}

func TestRenderChart(t *testing.T) {
	data, err := RenderChart(sample(), ChartOptions{
		Title:  "raw",
		Axes:   calibration.Axes{XMin: 0, XMax: 3, YMin: -1, YMax: 3},
		Width:  4 * vg.Inch,
		Height: 3 * vg.Inch,
	})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestRenderChart_AllMissing(t *testing.T) {
	data, err := RenderChart(series.Series{{X: 0}, {X: 1}}, ChartOptions{Axes: calibration.DefaultAxes()})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
