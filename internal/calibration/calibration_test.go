package calibration

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ironsheep/graph-reader/internal/detection"
	"github.com/ironsheep/graph-reader/internal/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxes_Validate(t *testing.T) {
	tests := []struct {
		name    string
		axes    Axes
		wantErr bool
	}{
		{"defaults", DefaultAxes(), false},
		{"negative range", Axes{XMin: -10, XMax: -1, YMin: -5, YMax: 5}, false},
		{"x equal", Axes{XMin: 3, XMax: 3, YMin: 0, YMax: 10}, true},
		{"x inverted", Axes{XMin: 10, XMax: 0, YMin: 0, YMax: 10}, true},
		{"y equal", Axes{XMin: 0, XMax: 10, YMin: 7, YMax: 7}, true},
		{"y inverted", Axes{XMin: 0, XMax: 10, YMin: 10, YMax: -10}, true},
		{"nan", Axes{XMin: math.NaN(), XMax: 10, YMin: 0, YMax: 10}, true},
		{"inf", Axes{XMin: 0, XMax: math.Inf(1), YMin: 0, YMax: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.axes.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidAxes), "error should wrap ErrInvalidAxes: %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewTransform_Rejects(t *testing.T) {
	_, err := NewTransform(Axes{XMin: 5, XMax: 5, YMin: 0, YMax: 1}, 10, 10)
	assert.ErrorIs(t, err, ErrInvalidAxes)

	_, err = NewTransform(DefaultAxes(), 0, 10)
	assert.Error(t, err)

	_, err = NewTransform(DefaultAxes(), 10, -1)
	assert.Error(t, err)
}

func TestTransform_Resolution(t *testing.T) {
	axes := Axes{XMin: 0, XMax: 150, YMin: -20, YMax: 40}
	tr, err := NewTransform(axes, 600, 240)
	require.NoError(t, err)

	rx, ry := tr.Resolution()
	assert.InDelta(t, (axes.XMax-axes.XMin)/600, rx, 1e-12)
	assert.InDelta(t, (axes.YMax-axes.YMin)/240, ry, 1e-12)
	assert.InDelta(t, 4.0, tr.XScale, 1e-12)
	assert.InDelta(t, 4.0, tr.YScale, 1e-12)
}

func TestTransform_Apply(t *testing.T) {
	tr, err := NewTransform(Axes{XMin: 0, XMax: 10, YMin: 0, YMax: 10}, 10, 10)
	require.NoError(t, err)

	raw := []detection.RawPoint{
		{Col: 0, Row: 9, Found: true},
		{Col: 3, Row: 7, Found: true},
		{Col: 5},
		{Col: 9, Row: 0, Found: true},
	}
	got := tr.Apply(raw)

	want := series.Series{
		{X: 0, Y: series.Some(1)},
		{X: 3, Y: series.Some(3)},
		{X: 5, Y: series.Missing()},
		{X: 9, Y: series.Some(10)},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(series.Value{})); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform_ApplyOffsetAxes(t *testing.T) {
	tr, err := NewTransform(Axes{XMin: 100, XMax: 200, YMin: -50, YMax: 50}, 50, 20)
	require.NoError(t, err)

	p := tr.Point(25, 5, true)
	assert.InDelta(t, 150.0, p.X, 1e-12)
	y, ok := p.Y.Get()
	require.True(t, ok)
	// (20-5)/(20/100) - 50
	assert.InDelta(t, 25.0, y, 1e-12)
}

func TestTransform_Idempotent(t *testing.T) {
	tr, err := NewTransform(DefaultAxes(), 37, 53)
	require.NoError(t, err)

	raw := make([]detection.RawPoint, 37)
	for i := range raw {
		raw[i] = detection.RawPoint{Col: i, Row: (i * 7) % 53, Found: i%4 != 0}
	}

	first := tr.Apply(raw)
	second := tr.Apply(raw)
	if diff := cmp.Diff(first, second, cmp.AllowUnexported(series.Value{})); diff != "" {
		t.Errorf("Apply is not idempotent (-first +second):\n%s", diff)
	}
}
